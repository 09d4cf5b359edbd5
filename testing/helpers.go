package testing

import "github.com/galaplate/inikit/config"

// WithGlobalStore installs the loaded store as the global document
// for the duration of each test.
type WithGlobalStore struct {
	TestCase
	previous *config.Store
}

func (w *WithGlobalStore) SetupTest() {
	w.TestCase.SetupTest()
	w.previous = config.GetGlobal()
	if w.Store != nil {
		config.InitializeGlobal(w.Store)
	}
}

func (w *WithGlobalStore) TearDownTest() {
	config.InitializeGlobal(w.previous)
	w.TestCase.TearDownTest()
}
