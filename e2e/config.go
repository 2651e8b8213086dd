package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BINARY is the chat-cli binary under test; the suites skip without it
	Binary string `envconfig:"E2E_BINARY"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_KEEP_STORE leaves the data directory of each test behind for inspection
	KeepStore bool          `envconfig:"E2E_KEEP_STORE" default:"false"`
	Timeout   time.Duration `envconfig:"E2E_TIMEOUT" default:"60s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
