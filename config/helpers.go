package config

import "sync"

var (
	globalStore *Store
	globalMu    sync.RWMutex
)

// InitializeGlobal installs store as the global document
func InitializeGlobal(store *Store) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalStore = store
}

// GetGlobal returns the global document, creating an empty one on first use
func GetGlobal() *Store {
	globalMu.RLock()
	store := globalStore
	globalMu.RUnlock()
	if store != nil {
		return store
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalStore == nil {
		globalStore = NewStore()
	}
	return globalStore
}

// String retrieves a raw value from the global document
// Example: config.String("database", "driver", "sqlite")
func String(section, key string, def ...string) string {
	return GetGlobal().GetString(section, key, def...)
}

// Int retrieves an int value from the global document
// Example: config.Int("database", "port", 3306)
func Int(section, key string, def ...int) int {
	return GetGlobal().GetInt(section, key, def...)
}

// Bool retrieves a bool value from the global document
// Example: config.Bool("database", "strict")
func Bool(section, key string, def ...bool) bool {
	return GetGlobal().GetBool(section, key, def...)
}
