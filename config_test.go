package heap

import (
	"heap/internal/assert"
	"os"
	"testing"
)

type testConfig struct {
	ListenAddr string `env:"HEAP_TEST_ADDR" default:":8080"`
	Quantum    int32  `env:"HEAP_TEST_QUANTUM" default:"64"`
	Debug      bool   `env:"HEAP_TEST_DEBUG" default:"false"`
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig[testConfig]()
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, int32(64), cfg.Quantum)
	assert.Equal(t, false, cfg.Debug)
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("HEAP_TEST_ADDR", ":9090")
	os.Setenv("HEAP_TEST_QUANTUM", "128")
	os.Setenv("HEAP_TEST_DEBUG", "true")
	defer os.Unsetenv("HEAP_TEST_ADDR")
	defer os.Unsetenv("HEAP_TEST_QUANTUM")
	defer os.Unsetenv("HEAP_TEST_DEBUG")

	cfg := LoadConfig[testConfig]()
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, int32(128), cfg.Quantum)
	assert.Equal(t, true, cfg.Debug)
}
