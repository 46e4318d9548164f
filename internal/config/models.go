package config

import (
	"time"

	"github.com/wallie/wallie/internal/countries"
	"github.com/wallie/wallie/internal/urls"
)

// CurrentVersion is the only config schema version this build understands.
const CurrentVersion = 1

// DefaultDestination is the screen the Continue button navigates to.
const DefaultDestination = "Home"

// Config represents the entire user configuration file.
type Config struct {
	Version    int              `yaml:"version"`
	Countries  CountriesConfig  `yaml:"countries"`
	Navigation NavigationConfig `yaml:"navigation"`
	Log        LogConfig        `yaml:"log"`
}

// CountriesConfig controls where the calling code directory comes from.
type CountriesConfig struct {
	Endpoint    string        `yaml:"endpoint" env:"WALLIE_COUNTRIES_ENDPOINT"`
	FlagBaseURL string        `yaml:"flag_base_url" env:"WALLIE_FLAG_BASE_URL"`
	DefaultCode string        `yaml:"default_code" env:"WALLIE_DEFAULT_COUNTRY"`
	Timeout     time.Duration `yaml:"timeout,omitempty" env:"WALLIE_FETCH_TIMEOUT"` // 0 = no timeout
}

// NavigationConfig names the screen reached from the sign-up form.
type NavigationConfig struct {
	Destination string `yaml:"destination" env:"WALLIE_DESTINATION"`
}

// LogConfig controls zap output. Level empty means silent.
type LogConfig struct {
	Level string `yaml:"level,omitempty" env:"WALLIE_LOG_LEVEL"`
	File  string `yaml:"file,omitempty" env:"WALLIE_LOG_FILE"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Countries: CountriesConfig{
			Endpoint:    urls.CountriesAll,
			FlagBaseURL: urls.FlagService,
			DefaultCode: countries.DefaultCode,
		},
		Navigation: NavigationConfig{
			Destination: DefaultDestination,
		},
	}
}

// fillDefaults replaces empty fields with their defaults. A file only needs
// to mention the values it changes.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Countries.Endpoint == "" {
		c.Countries.Endpoint = d.Countries.Endpoint
	}
	if c.Countries.FlagBaseURL == "" {
		c.Countries.FlagBaseURL = d.Countries.FlagBaseURL
	}
	if c.Countries.DefaultCode == "" {
		c.Countries.DefaultCode = d.Countries.DefaultCode
	}
	if c.Navigation.Destination == "" {
		c.Navigation.Destination = d.Navigation.Destination
	}
}
