package internal

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"chat-cli/errors"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appName = "chat-cli"

	ConfigFileName       = "config.yaml"
	ConversationsFile    = "conversations.txt"
	UsersFile            = "users.txt"
	defaultLogFile       = "chat-cli.log"
	defaultTokenFile     = "refresh_token.txt"
	defaultStoreDir      = "store"
	defaultCacheDir      = "cache"
	DefaultEventCount    = 50
	DefaultTokenDuration = 720 * time.Hour
	DefaultTimeout       = 30 * time.Second
)

// Config is layered: defaults, then config.yaml, then .env and the process
// environment, then command line flags (applied by the caller).
type Config struct {
	LogPath           string        `yaml:"log_path" env:"CHAT_CLI_LOG_PATH"`
	TokenPath         string        `yaml:"token_path" env:"CHAT_CLI_TOKEN_PATH"`
	StorePath         string        `yaml:"store_path" env:"CHAT_CLI_STORE_PATH"`
	CacheDir          string        `yaml:"cache_dir" env:"CHAT_CLI_CACHE_DIR"`
	Debug             bool          `yaml:"debug" env:"CHAT_CLI_DEBUG"`
	RequestTimeout    time.Duration `yaml:"request_timeout" env:"CHAT_CLI_REQUEST_TIMEOUT"`
	TokenDuration     time.Duration `yaml:"token_duration" env:"CHAT_CLI_TOKEN_DURATION"`
	DefaultEventCount int           `yaml:"default_event_count" env:"CHAT_CLI_EVENT_COUNT"`
	Colours           bool          `yaml:"colours" env:"CHAT_CLI_COLOURS"`
}

// Dirs are the per-user directories the defaults live in.
type Dirs struct {
	Config string
	Data   string
}

// ConfigDir returns the XDG config directory, or CHAT_CLI_CONFIG_DIR.
func ConfigDir() (string, error) {
	if override := os.Getenv("CHAT_CLI_CONFIG_DIR"); override != "" {
		return override, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName), nil
}

// DataDir returns the platform data directory, or CHAT_CLI_DATA_DIR.
func DataDir() (string, error) {
	if override := os.Getenv("CHAT_CLI_DATA_DIR"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", appName), nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

func ResolveDirs() (Dirs, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return Dirs{}, err
	}
	dataDir, err := DataDir()
	if err != nil {
		return Dirs{}, err
	}
	return Dirs{Config: configDir, Data: dataDir}, nil
}

func Defaults(dirs Dirs) Config {
	return Config{
		LogPath:           filepath.Join(dirs.Data, defaultLogFile),
		TokenPath:         filepath.Join(dirs.Data, defaultTokenFile),
		StorePath:         filepath.Join(dirs.Data, defaultStoreDir),
		CacheDir:          filepath.Join(dirs.Data, defaultCacheDir),
		RequestTimeout:    DefaultTimeout,
		TokenDuration:     DefaultTokenDuration,
		DefaultEventCount: DefaultEventCount,
		Colours:           true,
	}
}

// Load builds the configuration from every layer but the flags. A missing
// config.yaml or .env is not an error.
func Load(dirs Dirs, dotenvPath string) (Config, error) {
	cfg := Defaults(dirs)

	data, err := os.ReadFile(filepath.Join(dirs.Config, ConfigFileName))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err = godotenv.Load(dotenvPath); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
	}
	if _, err = env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.RequestTimeout <= 0:
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	case c.TokenDuration <= 0:
		return fmt.Errorf("token duration must be positive, got %s", c.TokenDuration)
	case c.DefaultEventCount < 1:
		return fmt.Errorf("default event count must be at least 1, got %d", c.DefaultEventCount)
	}
	return nil
}

func (c Config) ConversationCachePath() string {
	return filepath.Join(c.CacheDir, ConversationsFile)
}

func (c Config) UserCachePath() string {
	return filepath.Join(c.CacheDir, UsersFile)
}

// EnsureDirs creates the directories of every file the run writes.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{filepath.Dir(c.LogPath), filepath.Dir(c.TokenPath), c.StorePath, c.CacheDir} {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: cannot create %s: %v", errors.ErrSetup, dir, err)
		}
	}
	return nil
}
