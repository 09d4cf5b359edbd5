package env

import (
	"os"
	"sync"

	"github.com/galaplate/inikit/logger"
	"github.com/joho/godotenv"
)

var (
	loadOnce sync.Once
	files    = []string{".env"}
)

// SetFiles replaces the dotenv files read on first lookup.
// Must be called before Get or Lookup to have any effect.
func SetFiles(names ...string) {
	files = names
}

// Load reads the configured dotenv files once. Variables already present
// in the process environment are never overridden.
func Load() {
	loadOnce.Do(func() {
		for _, name := range files {
			if err := godotenv.Load(name); err != nil {
				logger.Debug("dotenv file not loaded", map[string]any{
					"file":  name,
					"error": err.Error(),
				})
			}
		}
	})
}

// Lookup returns the value of key and whether it is set
func Lookup(key string) (string, bool) {
	if value, ok := os.LookupEnv(key); ok {
		return value, true
	}

	Load()
	return os.LookupEnv(key)
}

// Get returns the value of key, or "" when unset
func Get(key string) string {
	value, _ := Lookup(key)
	return value
}
