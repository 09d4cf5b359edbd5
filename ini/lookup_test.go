package ini_test

import (
	"net"
	"testing"

	"github.com/galaplate/inikit/ini"
	"github.com/stretchr/testify/assert"
)

// countingDoc records how often each capability is used
type countingDoc struct {
	ini.Sections
	sectionCalls int
}

func (d *countingDoc) Section(name string) ini.Section {
	d.sectionCalls++
	return d.Sections.Section(name)
}

// keylessSection claims no keys and counts raw reads
type keylessSection struct {
	reads int
}

func (s *keylessSection) HasKey(string) bool { return false }

func (s *keylessSection) Value(string) string {
	s.reads++
	return "unexpected"
}

type singleSectionDoc struct {
	sec *keylessSection
}

func (d singleSectionDoc) HasSection(string) bool     { return true }
func (d singleSectionDoc) Section(string) ini.Section { return d.sec }

func sampleDoc() ini.Sections {
	return ini.Sections{
		"Graphics": {"Width": "1920", "Vsync": "yes"},
		"Debug":    {"LogLevel": "3"},
	}
}

func TestLookupScenarios(t *testing.T) {
	doc := sampleDoc()

	assert.Equal(t, 1920, ini.LookupAs(doc, "Graphics", "Width", 800))
	assert.Equal(t, 600, ini.LookupAs(doc, "Graphics", "Height", 600))
	assert.False(t, ini.LookupAs(doc, "Graphics", "Vsync", false))
	assert.Equal(t, "50", ini.Lookup(doc, "Audio", "Volume", "50"))
	assert.Equal(t, levelDebug, ini.LookupParse(doc, "Debug", "LogLevel", parseLevel, levelOff))
}

func TestLookupMissingSection(t *testing.T) {
	doc := sampleDoc()

	for _, def := range []string{"", "x", "Width"} {
		assert.Equal(t, def, ini.Lookup(doc, "Audio", "Width", def))
	}
	assert.Equal(t, "", ini.Lookup(doc, "Audio", "Width"))
	assert.Equal(t, 5, ini.LookupAs(doc, "Audio", "Width", 5))
	assert.Equal(t, "d", ini.Lookup(nil, "Graphics", "Width", "d"))
}

func TestLookupExistingSectionMissingKey(t *testing.T) {
	doc := sampleDoc()

	assert.Equal(t, "none", ini.Lookup(doc, "Graphics", "Depth", "none"))
	assert.Equal(t, 32, ini.LookupAs(doc, "Graphics", "Depth", 32))
	assert.Equal(t, "none", ini.Lookup(doc, "Debug", "Width", "none"))
}

func TestLookupReturnsRawString(t *testing.T) {
	assert.Equal(t, "1920", ini.Lookup(sampleDoc(), "Graphics", "Width", "800"))
}

func TestLookupShortCircuitsOnMissingSection(t *testing.T) {
	doc := &countingDoc{Sections: sampleDoc()}

	ini.Lookup(doc, "Audio", "Volume")
	ini.LookupAs(doc, "Audio", "Volume", 1)
	assert.Zero(t, doc.sectionCalls)

	ini.Lookup(doc, "Graphics", "Width")
	assert.Equal(t, 1, doc.sectionCalls)
}

func TestLookupParseNotCalledWhenAbsent(t *testing.T) {
	calls := 0
	parser := func(string) (level, error) {
		calls++
		return levelDebug, nil
	}

	ini.LookupParse(sampleDoc(), "Audio", "LogLevel", parser, levelOff)
	ini.LookupParse(sampleDoc(), "Debug", "Missing", parser, levelOff)

	assert.Zero(t, calls)
}

func TestLookupText(t *testing.T) {
	doc := ini.Sections{"Net": {"Bind": "10.0.0.1"}}

	ip := ini.LookupText[net.IP](doc, "Net", "Bind")
	assert.Equal(t, "10.0.0.1", ip.String())
	assert.Nil(t, ini.LookupText[net.IP](doc, "Other", "Bind"))
}

func TestLookupNeverReadsMissingKey(t *testing.T) {
	doc := singleSectionDoc{sec: &keylessSection{}}

	assert.Equal(t, "d", ini.Lookup(doc, "Graphics", "Width", "d"))
	assert.Equal(t, 800, ini.LookupAs(doc, "Graphics", "Width", 800))
	assert.Equal(t, levelWarn, ini.LookupParse(doc, "Debug", "LogLevel", parseLevel, levelWarn))
	assert.Zero(t, doc.sec.reads)
}
