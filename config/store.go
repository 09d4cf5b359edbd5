package config

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/galaplate/inikit/ini"
)

// Store is an in-memory sectioned document safe for concurrent use.
// It implements ini.Document.
type Store struct {
	sections map[string]map[string]string
	mu       sync.RWMutex
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sections: make(map[string]map[string]string),
	}
}

// Load replaces the whole document with a copy of data
func (s *Store) Load(data map[string]map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = copySections(data)
}

// Set stores value under section.key, creating the section if needed
// Example: Set("database", "driver", "mysql")
func (s *Store) Set(section, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, ok := s.sections[section]
	if !ok {
		keys = make(map[string]string)
		s.sections[section] = keys
	}
	keys[key] = value
}

func (s *Store) ensureSection(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sections[name]; !ok {
		s.sections[name] = make(map[string]string)
	}
}

// Delete removes section.key. Empty sections are kept.
func (s *Store) Delete(section, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sections[section], key)
}

// HasSection reports whether the section exists
func (s *Store) HasSection(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sections[name]
	return ok
}

// Section returns a snapshot of the named section, or nil if it doesn't exist
func (s *Store) Section(name string) ini.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys, ok := s.sections[name]
	if !ok {
		return nil
	}
	return ini.Keys(maps.Clone(keys))
}

// SectionNames returns the section names in sorted order
func (s *Store) SectionNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.sections))
}

// All returns a copy of the whole document
func (s *Store) All() map[string]map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySections(s.sections)
}

// GetString retrieves a raw value
func (s *Store) GetString(section, key string, def ...string) string {
	return ini.Lookup(s, section, key, def...)
}

// GetInt retrieves an int value
func (s *Store) GetInt(section, key string, def ...int) int {
	return ini.LookupAs(s, section, key, def...)
}

// GetBool retrieves a bool value
func (s *Store) GetBool(section, key string, def ...bool) bool {
	return ini.LookupAs(s, section, key, def...)
}

// GetFloat retrieves a float64 value
func (s *Store) GetFloat(section, key string, def ...float64) float64 {
	return ini.LookupAs(s, section, key, def...)
}

// GetDuration retrieves a duration such as "1m30s"
func (s *Store) GetDuration(section, key string, def ...time.Duration) time.Duration {
	return ini.LookupAs(s, section, key, def...)
}

func copySections(data map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(data))
	for name, keys := range data {
		if keys == nil {
			keys = map[string]string{}
		}
		out[name] = maps.Clone(keys)
	}
	return out
}
