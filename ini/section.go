package ini

// String returns the raw value of key, or the default ("" when omitted).
// Example: ini.String(sec, "Title", "untitled")
func String(sec Section, key string, def ...string) string {
	if sec == nil || !sec.HasKey(key) {
		return first(def)
	}
	return sec.Value(key)
}

// Get returns the value of key converted to T, or the default (zero value
// when omitted) if the key is missing or the value doesn't convert.
// Example: ini.Get(sec, "Width", 800)
func Get[T Scalar](sec Section, key string, def ...T) T {
	return Parse(sec, key, Convert[T], def...)
}

// Parse returns parse applied to the value of key. A missing key or a parse
// error yields the default. parse is never called for a missing key.
func Parse[T any](sec Section, key string, parse Parser[T], def ...T) T {
	if sec == nil || !sec.HasKey(key) {
		return first(def)
	}

	v, err := parse(sec.Value(key))
	if err != nil {
		return first(def)
	}
	return v
}

// Text decodes the value of key through T's UnmarshalText.
// Example: ini.Text[net.IP](sec, "Bind")
func Text[T any, PT TextUnmarshaler[T]](sec Section, key string, def ...T) T {
	return Parse(sec, key, unmarshalText[T, PT], def...)
}
