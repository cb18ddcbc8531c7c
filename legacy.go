package localeroute

import "fmt"

// LegacyRouting is the deprecated nested configuration shape that predates
// the flat LocalePrefix/Domains fields. Exactly one of Prefix or Domains was
// expected to be set.
//
// Deprecated: set Config.LocalePrefix and Config.Domains directly.
type LegacyRouting struct {
	Prefix  LocalePrefix
	Domains []Domain
}

// migrateLegacy transforms a config using deprecated fields into the flat
// shape. It is a pure function: the returned notices are emitted by the
// caller after migration completes, keeping the transform testable.
func migrateLegacy(cfg Config) (Config, []string) {
	var notices []string

	if cfg.Routing != nil {
		if cfg.Routing.Prefix != "" && cfg.LocalePrefix == "" {
			cfg.LocalePrefix = cfg.Routing.Prefix
			notices = append(notices, "config: `routing.prefix` is deprecated, use `localePrefix` instead")
		}
		if len(cfg.Routing.Domains) > 0 && len(cfg.Domains) == 0 {
			cfg.Domains = cfg.Routing.Domains
			notices = append(notices, "config: `routing.domains` is deprecated, use `domains` instead")
		}
		cfg.Routing = nil
	}

	for i := range cfg.Domains {
		d := &cfg.Domains[i]
		if d.Locale != "" {
			if d.DefaultLocale == "" {
				d.DefaultLocale = d.Locale
			}
			notices = append(notices, fmt.Sprintf("config: domain %q uses deprecated `locale`, use `defaultLocale` instead", d.Host))
			d.Locale = ""
		}
	}

	return cfg, notices
}
