package config

import (
	"fmt"
	"strings"

	"github.com/galaplate/inikit/logger"
	"github.com/knadh/koanf/providers/env"
	koanf "github.com/knadh/koanf/v2"
)

// flatDelim never occurs in env names, so koanf keeps "section.key" paths flat
// and DB__HOST cannot collide with DB__HOST__PORT.
const flatDelim = "\x00"

// ApplyEnv overlays environment variables onto store.
// PREFIX_DATABASE__HOST=db sets database.host; names are lower-cased and
// any further "__" becomes "." inside the key. Returns the number of keys set.
func ApplyEnv(store *Store, prefix string) (int, error) {
	k := koanf.New(flatDelim)

	err := k.Load(env.Provider(prefix, flatDelim, func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, prefix))
		section, key, ok := strings.Cut(name, "__")
		if !ok || section == "" || key == "" {
			return ""
		}
		return section + "." + strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		logger.Error("config env overlay failed", map[string]any{"prefix": prefix, "error": err.Error()})
		return 0, fmt.Errorf("env overlay %s: %w", prefix, err)
	}

	applied := 0
	for path, value := range k.All() {
		section, key, ok := strings.Cut(path, ".")
		if !ok {
			continue
		}
		store.Set(section, key, fmt.Sprintf("%v", value))
		applied++
	}

	logger.Debug("config env overlay applied", map[string]any{"prefix": prefix, "keys": applied})
	return applied, nil
}
