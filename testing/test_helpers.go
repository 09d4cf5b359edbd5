package testing

type AssertHelper struct {
	tc *TestCase
}

func NewAssertHelper(tc *TestCase) *AssertHelper {
	return &AssertHelper{tc: tc}
}

func (a *AssertHelper) AssertLoaded() {
	a.tc.Require().NoError(a.tc.LoadErr)
	a.tc.Require().NotNil(a.tc.Store)
}

func (a *AssertHelper) AssertValue(section, key, expected string) {
	a.AssertLoaded()
	sec := a.tc.Store.Section(section)
	a.tc.Require().NotNil(sec, "section %q", section)
	a.tc.True(sec.HasKey(key), "key %s.%s", section, key)
	a.tc.Equal(expected, sec.Value(key))
}

func (a *AssertHelper) AssertMissing(section, key string) {
	a.AssertLoaded()
	if sec := a.tc.Store.Section(section); sec != nil {
		a.tc.False(sec.HasKey(key), "key %s.%s", section, key)
	}
}

func (a *AssertHelper) AssertSections(names ...string) {
	a.AssertLoaded()
	a.tc.Equal(names, a.tc.Store.SectionNames())
}

func (a *AssertHelper) AssertLogged(message string) {
	a.tc.Contains(a.tc.Logs.String(), message)
}
