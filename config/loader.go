package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/galaplate/inikit/env"
	"github.com/galaplate/inikit/logger"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigDir is returned when the config directory is missing or unreadable
	ErrConfigDir = errors.New("config directory unavailable")
	// ErrInvalidSection is returned when a top-level entry isn't a mapping
	ErrInvalidSection = errors.New("section must be a mapping")
)

// Loader builds a Store from the YAML files of a directory. Top-level
// keys of each file are section names.
type Loader struct {
	configPath string
}

// NewLoader creates a new config loader
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// Load reads every .yaml/.yml file in name order. Keys in later files
// override earlier ones.
func (l *Loader) Load() (*Store, error) {
	files, err := os.ReadDir(l.configPath)
	if err != nil {
		logger.Error("config directory unavailable", map[string]any{"path": l.configPath, "error": err.Error()})
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigDir, l.configPath, err)
	}

	store := NewStore()
	loaded := 0

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if !strings.HasSuffix(file.Name(), ".yaml") && !strings.HasSuffix(file.Name(), ".yml") {
			continue
		}

		filename := filepath.Join(l.configPath, file.Name())
		if err := l.loadFile(filename, store); err != nil {
			logger.Error("config file load failed", map[string]any{"file": filename, "error": err.Error()})
			return nil, fmt.Errorf("failed to load config file %s: %w", filename, err)
		}

		logger.Debug("config file loaded", map[string]any{"file": filename})
		loaded++
	}

	logger.Info("config loaded", map[string]any{
		"path":     l.configPath,
		"files":    loaded,
		"sections": len(store.SectionNames()),
	})
	return store, nil
}

// loadFile decodes one YAML file into store
func (l *Loader) loadFile(filename string, store *Store) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(l.processEnvVariables(string(content))), &doc); err != nil {
		return err
	}

	// empty file
	if len(doc.Content) == 0 {
		return nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: document root at line %d", ErrInvalidSection, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		body := resolve(root.Content[i+1])

		if isNull(body) {
			store.ensureSection(name)
			continue
		}
		if body.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: %q at line %d", ErrInvalidSection, name, body.Line)
		}

		store.ensureSection(name)
		flatten("", body, func(key, value string) {
			store.Set(name, key, value)
		})
	}

	return nil
}

// processEnvVariables replaces ${VAR_NAME} or ${VAR_NAME:default} with env values
func (l *Loader) processEnvVariables(content string) string {
	result := content
	start := 0

	for {
		idx := strings.Index(result[start:], "${")
		if idx == -1 {
			break
		}
		idx += start

		endIdx := strings.Index(result[idx:], "}")
		if endIdx == -1 {
			break
		}
		endIdx += idx

		varPart := result[idx+2 : endIdx]
		var varName, defaultValue string

		if before, after, ok := strings.Cut(varPart, ":"); ok {
			varName = before
			defaultValue = after
		} else {
			varName = varPart
		}

		value := env.Get(varName)
		if value == "" {
			value = defaultValue
		}

		result = result[:idx] + value + result[endIdx+1:]
		start = idx + len(value)
	}

	return result
}

// flatten walks a mapping node and emits dotted keys with raw scalar text
func flatten(prefix string, node *yaml.Node, emit func(key, value string)) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if prefix != "" {
			key = prefix + "." + key
		}
		flattenValue(key, resolve(node.Content[i+1]), emit)
	}
}

// flattenValue emits a scalar as is and joins a list of scalars with ",".
// Lists holding mappings or lists are indexed instead: replicas.0.host.
func flattenValue(key string, value *yaml.Node, emit func(key, value string)) {
	switch value.Kind {
	case yaml.MappingNode:
		flatten(key, value, emit)
	case yaml.SequenceNode:
		if !scalarsOnly(value) {
			for i, item := range value.Content {
				flattenValue(key+"."+strconv.Itoa(i), resolve(item), emit)
			}
			return
		}

		items := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			items = append(items, scalar(resolve(item)))
		}
		emit(key, strings.Join(items, ","))
	default:
		emit(key, scalar(value))
	}
}

func scalarsOnly(seq *yaml.Node) bool {
	for _, item := range seq.Content {
		if resolve(item).Kind != yaml.ScalarNode {
			return false
		}
	}
	return true
}

func scalar(node *yaml.Node) string {
	if isNull(node) {
		return ""
	}
	return node.Value
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
