package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bitestnet/internal/domain"
)

// Environment variables consulted when the credential flags are absent.
const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
)

// DefaultLogFile is the append-only audit log in the working directory.
const DefaultLogFile = "bot.log"

// Settings holds everything configurable outside the order itself.
// All fields have working defaults; the yaml file is optional.
type Settings struct {
	API struct {
		BaseURL      string `yaml:"base_url"`
		RecvWindowMS int64  `yaml:"recv_window_ms"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// DefaultSettings returns the testnet defaults.
func DefaultSettings() Settings {
	var s Settings
	s.API.RecvWindowMS = 5000
	s.Logging.Level = "info"
	s.Logging.File = DefaultLogFile
	return s
}

// LoadSettings reads the optional yaml settings file. A missing file is not
// an error: defaults apply. A present but unparsable file is an error, so a
// typo never silently reroutes orders.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Logging.File == "" {
		s.Logging.File = DefaultLogFile
	}
	if s.API.RecvWindowMS < 0 {
		return s, fmt.Errorf("recv_window_ms must not be negative: %d", s.API.RecvWindowMS)
	}
	return s, nil
}

// Credentials is the resolved API key pair.
type Credentials struct {
	APIKey    string
	APISecret string
}

// ResolveCredentials applies flag values over environment variables.
// Both key and secret must resolve non-empty; otherwise a ConfigError is
// returned and no client is ever constructed.
func ResolveCredentials(flagKey, flagSecret string) (Credentials, error) {
	key := flagKey
	if key == "" {
		key = os.Getenv(EnvAPIKey)
	}
	secret := flagSecret
	if secret == "" {
		secret = os.Getenv(EnvAPISecret)
	}

	if key == "" || secret == "" {
		return Credentials{}, &domain.ConfigError{
			Reason: fmt.Sprintf("API credentials must be provided via flags or the %s/%s environment variables", EnvAPIKey, EnvAPISecret),
		}
	}
	return Credentials{APIKey: key, APISecret: secret}, nil
}
