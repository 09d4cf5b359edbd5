package testing

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/galaplate/inikit/config"
	"github.com/galaplate/inikit/logger"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
)

type TestConfig struct {
	// EnvFile is written next to the config files and loaded with godotenv
	EnvFile string
	// Files maps file names to YAML content written into ConfigDir
	Files           map[string]string
	EnvPrefix       string
	CustomBootstrap func(*TestCase)
}

// TestCase is a suite base with a temporary config directory that is
// loaded into Store before every test.
type TestCase struct {
	suite.Suite
	Store     *config.Store
	Config    *TestConfig
	ConfigDir string
	Logs      bytes.Buffer
	LoadErr   error
}

func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		Files: map[string]string{},
	}
}

func NewTestCase(opts ...func(*TestConfig)) *TestCase {
	cfg := DefaultTestConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	return &TestCase{Config: cfg}
}

func (tc *TestCase) SetupTest() {
	if tc.Config == nil {
		tc.Config = DefaultTestConfig()
	}

	tc.Logs.Reset()
	logger.SetOutput(&tc.Logs)

	tc.ConfigDir = tc.T().TempDir()
	for name, content := range tc.Config.Files {
		tc.WriteConfig(name, content)
	}

	tc.loadEnvironment()
	tc.Reload()

	if tc.Config.CustomBootstrap != nil {
		tc.Config.CustomBootstrap(tc)
	}
}

// loadEnvironment sets every EnvFile pair through T().Setenv so the
// process environment is restored after each test
func (tc *TestCase) loadEnvironment() {
	if tc.Config.EnvFile == "" {
		return
	}

	path := filepath.Join(tc.ConfigDir, ".env")
	tc.Require().NoError(os.WriteFile(path, []byte(tc.Config.EnvFile), 0o644))

	vars, err := godotenv.Read(path)
	tc.Require().NoError(err)
	for key, value := range vars {
		tc.T().Setenv(key, value)
	}
}

// WriteConfig writes a YAML file into ConfigDir
func (tc *TestCase) WriteConfig(name, content string) {
	path := filepath.Join(tc.ConfigDir, name)
	tc.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
}

// Reload loads ConfigDir again, applying the env overlay when EnvPrefix is set
func (tc *TestCase) Reload() {
	tc.Store, tc.LoadErr = config.NewLoader(tc.ConfigDir).Load()
	if tc.LoadErr != nil || tc.Config.EnvPrefix == "" {
		return
	}
	_, tc.LoadErr = config.ApplyEnv(tc.Store, tc.Config.EnvPrefix)
}

func (tc *TestCase) TearDownTest() {
	logger.SetOutput(nil)
}

func (tc *TestCase) GetStore() *config.Store {
	return tc.Store
}
