package localeroute

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig is the environment-driven subset of Config. Domains and
// pathnames carry structure that does not map cleanly to env vars; use
// LoadConfigFromYAML or plain Go for those.
type EnvConfig struct {
	Locales        []string `env:"LOCALEROUTE_LOCALES" envSeparator:","`        // Locales is the comma-separated supported locale list.
	DefaultLocale  string   `env:"LOCALEROUTE_DEFAULT_LOCALE"`                  // DefaultLocale falls back to the first entry of Locales.
	Prefix         string   `env:"LOCALEROUTE_PREFIX" envDefault:"as-needed"`   // Prefix is the locale prefix mode.
	CookieName     string   `env:"LOCALEROUTE_COOKIE_NAME"`                     // CookieName overrides the locale cookie name.
	Detection      bool     `env:"LOCALEROUTE_DETECTION" envDefault:"true"`     // Detection toggles cookie and Accept-Language detection.
	AlternateLinks bool     `env:"LOCALEROUTE_ALTERNATE_LINKS" envDefault:"true"` // AlternateLinks toggles the Link response header.
}

var defaultEnvLoaded sync.Once

// LoadConfigFromEnv builds a Config from environment variables, loading the
// default .env file once if present. The result still goes through New for
// validation.
func LoadConfigFromEnv() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})

	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, errors.Join(ErrParsingEnv, err)
	}

	return ec.Config(), nil
}

// Config converts the env shape into a Config value.
func (ec EnvConfig) Config() Config {
	return Config{
		Locales:         ec.Locales,
		DefaultLocale:   ec.DefaultLocale,
		LocalePrefix:    LocalePrefix(ec.Prefix),
		CookieName:      ec.CookieName,
		LocaleDetection: &ec.Detection,
		AlternateLinks:  &ec.AlternateLinks,
	}
}
