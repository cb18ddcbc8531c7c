package localeroute

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"golang.org/x/text/language"
)

// LocalePrefix controls whether the locale code appears as the first path segment.
type LocalePrefix string

const (
	// PrefixAsNeeded omits the prefix for the default locale and requires it
	// for every other locale. This is the default mode.
	PrefixAsNeeded LocalePrefix = "as-needed"
	// PrefixAlways requires the prefix for every locale, including the default.
	PrefixAlways LocalePrefix = "always"
	// PrefixNever keeps locale codes out of the visible URL entirely.
	PrefixNever LocalePrefix = "never"
)

const (
	// DefaultCookieName is the cookie used to persist the resolved locale
	// between requests.
	DefaultCookieName = "NEXT_LOCALE"

	// LocaleHeader is the request header injected for downstream handlers
	// that need the resolved locale without re-running detection.
	LocaleHeader = "X-Locale"
)

// Domain assigns a locale policy to a request host. An empty Locales list
// means the domain supports every configured locale. A domain always
// supports its own default locale regardless of the list.
type Domain struct {
	Host          string
	DefaultLocale string
	Locales       []string

	// Locale is the deprecated name for DefaultLocale. It is migrated during
	// New and should not be set in new code.
	Locale string
}

// supports reports whether the domain serves the given locale. A domain
// without a restricted list serves everything.
func (d *Domain) supports(locale string) bool {
	if len(d.Locales) == 0 {
		return true
	}
	return d.supportsExplicitly(locale)
}

// supportsExplicitly reports whether the locale is the domain default or
// named in its locale list, ignoring the unrestricted-list wildcard.
func (d *Domain) supportsExplicitly(locale string) bool {
	return d.DefaultLocale == locale || slices.Contains(d.Locales, locale)
}

// PathnameEntry describes the public pathnames for one canonical route.
// Either Shared holds a single template used for every locale, or Localized
// maps locale codes to locale-specific templates. All templates for one
// entry must use the same placeholder set.
type PathnameEntry struct {
	Shared    string
	Localized map[string]string
}

// template returns the public template for the locale, or "" when the entry
// has no template for it.
func (e PathnameEntry) template(locale string) string {
	if e.Shared != "" {
		return e.Shared
	}
	return e.Localized[locale]
}

// Pathnames maps canonical pathname templates to their public counterparts.
type Pathnames map[string]PathnameEntry

// Config declares the routing behavior. Zero values fall back to defaults
// during New; the resolved configuration is immutable afterwards.
type Config struct {
	// Locales is the ordered list of supported locales. Order matters for
	// Accept-Language negotiation ties.
	Locales []string
	// DefaultLocale is used when no request signal resolves to a supported
	// locale. It must be present in Locales.
	DefaultLocale string
	// LocalePrefix defaults to PrefixAsNeeded.
	LocalePrefix LocalePrefix
	// Domains enables host-based locale policies.
	Domains []Domain
	// Pathnames enables localized public pathnames per canonical route.
	Pathnames Pathnames
	// AlternateLinks toggles the Link response header with per-locale
	// alternate URLs. Defaults to true.
	AlternateLinks *bool
	// LocaleDetection toggles cookie and Accept-Language detection.
	// Defaults to true. Path and domain signals apply regardless.
	LocaleDetection *bool
	// Matcher restricts processing to request paths matching at least one of
	// the given anchored regular expressions. Empty means all paths.
	Matcher []string
	// CookieName defaults to DefaultCookieName.
	CookieName string
	// Logger receives setup diagnostics such as deprecation notices.
	// Defaults to slog.Default.
	Logger *slog.Logger

	// Routing is the deprecated nested configuration shape. It is migrated
	// to the flat fields during New and should not be set in new code.
	Routing *LegacyRouting
}

// Router is the resolved, immutable routing configuration. It is safe for
// concurrent use; every request decision is a pure function of the router
// and the request snapshot.
type Router struct {
	locales         []string
	defaultLocale   string
	prefix          LocalePrefix
	domains         []Domain
	pathnames       Pathnames
	alternateLinks  bool
	localeDetection bool
	matcher         []*regexp.Regexp
	cookieName      string

	// canonicalPaths holds the pathnames map keys in sorted order so that
	// template matching is deterministic when entries overlap.
	canonicalPaths []string

	negotiator     *negotiator
	domainLanguage map[string]*negotiator
}

// New validates the configuration and resolves it into a Router. All
// configuration problems are reported here; request processing never fails.
func New(cfg Config) (*Router, error) {
	cfg, notices := migrateLegacy(cfg)

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	for _, notice := range notices {
		log.Warn(notice)
	}

	if cfg.LocalePrefix == "" {
		cfg.LocalePrefix = PrefixAsNeeded
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}

	if len(cfg.Locales) == 0 {
		return nil, ErrNoLocales
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = cfg.Locales[0]
	}
	if !slices.Contains(cfg.Locales, cfg.DefaultLocale) {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLocaleNotSupported, cfg.DefaultLocale)
	}

	switch cfg.LocalePrefix {
	case PrefixAsNeeded, PrefixAlways, PrefixNever:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocalePrefix, cfg.LocalePrefix)
	}

	for i, d := range cfg.Domains {
		if d.Host == "" {
			return nil, fmt.Errorf("%w: domain %d", ErrDomainWithoutHost, i)
		}
		if !slices.Contains(cfg.Locales, d.DefaultLocale) {
			return nil, fmt.Errorf("%w: domain %q default %q", ErrDomainLocaleNotSupported, d.Host, d.DefaultLocale)
		}
		for _, l := range d.Locales {
			if !slices.Contains(cfg.Locales, l) {
				return nil, fmt.Errorf("%w: domain %q locale %q", ErrDomainLocaleNotSupported, d.Host, l)
			}
		}
	}

	matcher := make([]*regexp.Regexp, 0, len(cfg.Matcher))
	for _, pattern := range cfg.Matcher {
		re, err := regexp.Compile("^" + pattern + "$")
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidMatcherPattern, pattern, err)
		}
		matcher = append(matcher, re)
	}

	rt := &Router{
		locales:         cfg.Locales,
		defaultLocale:   cfg.DefaultLocale,
		prefix:          cfg.LocalePrefix,
		domains:         cfg.Domains,
		pathnames:       cfg.Pathnames,
		alternateLinks:  cfg.AlternateLinks == nil || *cfg.AlternateLinks,
		localeDetection: cfg.LocaleDetection == nil || *cfg.LocaleDetection,
		matcher:         matcher,
		cookieName:      cfg.CookieName,
		negotiator:      newNegotiator(cfg.Locales),
		domainLanguage:  make(map[string]*negotiator, len(cfg.Domains)),
	}

	// Precompute per-domain negotiators so request handling never rebuilds
	// language matchers.
	for i := range cfg.Domains {
		d := &cfg.Domains[i]
		rt.domainLanguage[d.Host] = newNegotiator(rt.domainLocales(d))
	}

	// Compile every configured template up front so malformed-looking
	// templates surface at setup rather than mid-request.
	for canonical, entry := range cfg.Pathnames {
		rt.canonicalPaths = append(rt.canonicalPaths, canonical)
		compileTemplate(canonical)
		if entry.Shared != "" {
			compileTemplate(entry.Shared)
		}
		for _, tmpl := range entry.Localized {
			compileTemplate(tmpl)
		}
	}
	slices.Sort(rt.canonicalPaths)

	return rt, nil
}

// DefaultLocale returns the configured default locale.
func (rt *Router) DefaultLocale() string { return rt.defaultLocale }

// Locales returns the configured supported locales in order.
func (rt *Router) Locales() []string { return slices.Clone(rt.locales) }

// domainLocales returns the locales the domain serves. A nil domain or a
// domain without a restricted list serves every configured locale.
func (rt *Router) domainLocales(d *Domain) []string {
	if d == nil || len(d.Locales) == 0 {
		return rt.locales
	}
	if slices.Contains(d.Locales, d.DefaultLocale) {
		return d.Locales
	}
	locales := make([]string, 0, len(d.Locales)+1)
	locales = append(locales, d.DefaultLocale)
	locales = append(locales, d.Locales...)
	return locales
}

func (rt *Router) isSupported(locale string) bool {
	return slices.Contains(rt.locales, locale)
}

// negotiator picks the best supported locale for an Accept-Language header.
// The matcher is built once per locale set; Match maps back to the original
// locale string by index so configured spellings are preserved.
type negotiator struct {
	locales []string
	matcher language.Matcher
}

func newNegotiator(locales []string) *negotiator {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.Make(l)
	}
	return &negotiator{locales: locales, matcher: language.NewMatcher(tags)}
}

// match returns the best supported locale for the header, or "" when the
// header is empty, malformed, or matches nothing.
func (n *negotiator) match(header string) string {
	if header == "" {
		return ""
	}
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return ""
	}
	_, idx, conf := n.matcher.Match(desired...)
	if conf == language.No {
		return ""
	}
	return n.locales[idx]
}
