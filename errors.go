package localeroute

import "errors"

// Configuration errors are surfaced by New at setup time. Request processing
// never returns errors; unresolvable signals fall back to the default locale.
var (
	// ErrNoLocales is returned when the configuration declares no supported locales.
	ErrNoLocales = errors.New("no supported locales configured")

	// ErrDefaultLocaleNotSupported is returned when the default locale is missing
	// from the supported locale list.
	ErrDefaultLocaleNotSupported = errors.New("default locale is not in the supported locales")

	// ErrDomainWithoutHost is returned when a domain entry has an empty host.
	ErrDomainWithoutHost = errors.New("domain entry has no host")

	// ErrDomainLocaleNotSupported is returned when a domain references a locale
	// that is not in the supported locale list.
	ErrDomainLocaleNotSupported = errors.New("domain locale is not in the supported locales")

	// ErrInvalidLocalePrefix is returned for an unknown locale prefix mode.
	ErrInvalidLocalePrefix = errors.New("invalid locale prefix mode")

	// ErrInvalidMatcherPattern is returned when a request matcher pattern does not compile.
	ErrInvalidMatcherPattern = errors.New("invalid request matcher pattern")

	// ErrParsingEnv is returned when environment variables cannot be parsed
	// into the env config shape.
	ErrParsingEnv = errors.New("failed to parse environment variables into config")

	// ErrReadingConfigFile is returned when a YAML config file cannot be read.
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrParsingConfigFile is returned when a YAML config file cannot be parsed.
	ErrParsingConfigFile = errors.New("failed to parse config file")
)
