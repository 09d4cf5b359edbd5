package ini

// Section is a read-only view over one section's key/value pairs
type Section interface {
	HasKey(key string) bool
	Value(key string) string
}

// Document is a read-only view over a parsed configuration made of named sections
type Document interface {
	HasSection(name string) bool
	Section(name string) Section
}

// Keys is a plain map-backed Section
type Keys map[string]string

func (k Keys) HasKey(key string) bool {
	_, ok := k[key]
	return ok
}

func (k Keys) Value(key string) string {
	return k[key]
}

// Sections is a plain map-backed Document
type Sections map[string]Keys

func (s Sections) HasSection(name string) bool {
	_, ok := s[name]
	return ok
}

// Section returns the named section, or nil when it doesn't exist
func (s Sections) Section(name string) Section {
	keys, ok := s[name]
	if !ok {
		return nil
	}
	return keys
}
