package testing_test

import (
	"os"
	"testing"

	"github.com/galaplate/inikit/config"
	coretesting "github.com/galaplate/inikit/testing"
	"github.com/stretchr/testify/suite"
)

type ExampleTestSuite struct {
	coretesting.TestCase
}

func (s *ExampleTestSuite) SetupSuite() {
	s.Config = coretesting.DefaultTestConfig()
	s.Config.Files["app.yaml"] = "graphics:\n  width: 1920\n  vsync: yes\n"
}

func (s *ExampleTestSuite) TestLoadedValues() {
	assertHelper := coretesting.NewAssertHelper(&s.TestCase)

	assertHelper.AssertSections("graphics")
	assertHelper.AssertValue("graphics", "width", "1920")
	assertHelper.AssertValue("graphics", "vsync", "yes")
	assertHelper.AssertMissing("graphics", "height")
	assertHelper.AssertLogged("config loaded")

	s.Equal(1920, s.Store.GetInt("graphics", "width", 800))
	s.False(s.Store.GetBool("graphics", "vsync"))
}

func TestExampleTestSuite(t *testing.T) {
	suite.Run(t, new(ExampleTestSuite))
}

type GlobalStoreExampleSuite struct {
	coretesting.WithGlobalStore
}

func (s *GlobalStoreExampleSuite) SetupSuite() {
	s.Config = coretesting.DefaultTestConfig()
	s.Config.Files["db.yml"] = "database:\n  port: 5432\n"
}

func (s *GlobalStoreExampleSuite) TestGlobalHelpers() {
	s.Equal(5432, config.Int("database", "port", 3306))
	s.Equal("sqlite", config.String("database", "driver", "sqlite"))
}

func TestGlobalStoreExampleSuite(t *testing.T) {
	suite.Run(t, new(GlobalStoreExampleSuite))
}

type EnvOverlayExampleSuite struct {
	coretesting.TestCase
	bootstrapped int
}

func (s *EnvOverlayExampleSuite) SetupSuite() {
	s.Config = coretesting.DefaultTestConfig()
	s.Config.Files["app.yaml"] = "database:\n  host: localhost\n  port: 5432\n"
	s.Config.EnvFile = "INIKITSUITE_DATABASE__HOST=db.internal\n"
	s.Config.EnvPrefix = "INIKITSUITE_"
	s.Config.CustomBootstrap = func(tc *coretesting.TestCase) {
		s.bootstrapped++
		tc.Store.Set("runtime", "ready", "true")
	}
}

func (s *EnvOverlayExampleSuite) TestOverlayApplied() {
	assertHelper := coretesting.NewAssertHelper(&s.TestCase)

	assertHelper.AssertValue("database", "host", "db.internal")
	assertHelper.AssertValue("database", "port", "5432")
	s.Equal("db.internal", os.Getenv("INIKITSUITE_DATABASE__HOST"))
}

func (s *EnvOverlayExampleSuite) TestCustomBootstrapRuns() {
	s.Positive(s.bootstrapped)
	s.True(s.GetStore().GetBool("runtime", "ready"))
}

func TestEnvOverlayExampleSuite(t *testing.T) {
	suite.Run(t, new(EnvOverlayExampleSuite))

	_, set := os.LookupEnv("INIKITSUITE_DATABASE__HOST")
	if set {
		t.Errorf("env file variable leaked past the suite")
	}
}
