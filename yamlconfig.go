package localeroute

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors Config for file-based routing tables. The deprecated
// nested routing shape and per-domain locale field are accepted and
// migrated by New.
type yamlConfig struct {
	Locales         []string                 `yaml:"locales"`
	DefaultLocale   string                   `yaml:"defaultLocale"`
	LocalePrefix    string                   `yaml:"localePrefix"`
	Domains         []yamlDomain             `yaml:"domains"`
	Pathnames       map[string]PathnameEntry `yaml:"pathnames"`
	AlternateLinks  *bool                    `yaml:"alternateLinks"`
	LocaleDetection *bool                    `yaml:"localeDetection"`
	Matcher         []string                 `yaml:"matcher"`
	CookieName      string                   `yaml:"cookieName"`
	Routing         *yamlRouting             `yaml:"routing"`
}

type yamlDomain struct {
	Domain        string   `yaml:"domain"`
	DefaultLocale string   `yaml:"defaultLocale"`
	Locale        string   `yaml:"locale"`
	Locales       []string `yaml:"locales"`
}

type yamlRouting struct {
	Prefix  string       `yaml:"prefix"`
	Domains []yamlDomain `yaml:"domains"`
}

// UnmarshalYAML accepts either a scalar template shared by all locales or a
// locale-to-template mapping.
func (e *PathnameEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Shared)
	case yaml.MappingNode:
		return node.Decode(&e.Localized)
	default:
		return fmt.Errorf("pathname entry must be a string or a locale mapping, got %v", node.Kind)
	}
}

// LoadConfigFromYAML reads a routing table from a YAML file. The result
// still goes through New for validation.
func LoadConfigFromYAML(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadingConfigFile, err)
	}
	return ParseConfigYAML(raw)
}

// ParseConfigYAML parses a YAML routing table from memory.
func ParseConfigYAML(raw []byte) (Config, error) {
	var yc yamlConfig
	if err := yaml.Unmarshal(raw, &yc); err != nil {
		return Config{}, errors.Join(ErrParsingConfigFile, err)
	}

	cfg := Config{
		Locales:         yc.Locales,
		DefaultLocale:   yc.DefaultLocale,
		LocalePrefix:    LocalePrefix(yc.LocalePrefix),
		Domains:         yamlDomains(yc.Domains),
		AlternateLinks:  yc.AlternateLinks,
		LocaleDetection: yc.LocaleDetection,
		Matcher:         yc.Matcher,
		CookieName:      yc.CookieName,
	}
	if len(yc.Pathnames) > 0 {
		cfg.Pathnames = Pathnames(yc.Pathnames)
	}
	if yc.Routing != nil {
		cfg.Routing = &LegacyRouting{
			Prefix:  LocalePrefix(yc.Routing.Prefix),
			Domains: yamlDomains(yc.Routing.Domains),
		}
	}

	return cfg, nil
}

func yamlDomains(in []yamlDomain) []Domain {
	if len(in) == 0 {
		return nil
	}
	out := make([]Domain, len(in))
	for i, d := range in {
		out[i] = Domain{
			Host:          d.Domain,
			DefaultLocale: d.DefaultLocale,
			Locale:        d.Locale,
			Locales:       d.Locales,
		}
	}
	return out
}
