package ini

// Lookup returns the raw value of key in section, or the default ("" when
// omitted) if either the section or the key is missing.
// Example: ini.Lookup(doc, "Audio", "Volume", "50")
func Lookup(doc Document, section, key string, def ...string) string {
	if doc == nil || !doc.HasSection(section) {
		return first(def)
	}

	sec := doc.Section(section)
	if sec == nil || !sec.HasKey(key) {
		return first(def)
	}
	return sec.Value(key)
}

// LookupAs returns the value of key in section converted to T. Missing
// section, missing key and failed conversion all yield the default.
// Example: ini.LookupAs(doc, "Graphics", "Width", 800)
func LookupAs[T Scalar](doc Document, section, key string, def ...T) T {
	return LookupParse(doc, section, key, Convert[T], def...)
}

// LookupParse is LookupAs with a caller-supplied parser
func LookupParse[T any](doc Document, section, key string, parse Parser[T], def ...T) T {
	if doc == nil || !doc.HasSection(section) {
		return first(def)
	}

	sec := doc.Section(section)
	if sec == nil || !sec.HasKey(key) {
		return first(def)
	}

	v, err := parse(sec.Value(key))
	if err != nil {
		return first(def)
	}
	return v
}

// LookupText is Text at document level
func LookupText[T any, PT TextUnmarshaler[T]](doc Document, section, key string, def ...T) T {
	return LookupParse(doc, section, key, unmarshalText[T, PT], def...)
}
