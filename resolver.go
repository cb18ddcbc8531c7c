package localeroute

import (
	"net"
	"net/http"
	"slices"
	"strings"
)

// resolution is the outcome of locale detection for one request.
type resolution struct {
	locale string
	domain *Domain
}

// resolveLocale determines the active locale and the matched domain record.
// Signal precedence, highest first:
//
//  1. Path prefix, when the first segment names a supported locale that the
//     current domain serves. A prefix valid globally but rejected by the
//     domain falls through to the next signal.
//  2. Locale cookie, when detection is enabled and the stored value names a
//     domain-allowed locale.
//  3. Accept-Language negotiation against the domain-allowed subset, when
//     detection is enabled.
//  4. The matched domain's default locale, else the global default.
//
// Resolution never fails; it always terminates in a supported locale.
func (rt *Router) resolveLocale(r *http.Request) resolution {
	domain := rt.findDomain(requestHost(r))
	allowed := rt.domainLocales(domain)

	if prefix := pathnameLocale(r.URL.Path, rt.locales); prefix != "" {
		if slices.Contains(allowed, prefix) {
			return resolution{locale: prefix, domain: domain}
		}
	}

	if rt.localeDetection {
		if c, err := r.Cookie(rt.cookieName); err == nil && c.Value != "" {
			if slices.Contains(allowed, c.Value) {
				return resolution{locale: c.Value, domain: domain}
			}
		}

		neg := rt.negotiator
		if domain != nil {
			if dn, ok := rt.domainLanguage[domain.Host]; ok {
				neg = dn
			}
		}
		if locale := neg.match(r.Header.Get("Accept-Language")); locale != "" {
			return resolution{locale: locale, domain: domain}
		}
	}

	if domain != nil {
		return resolution{locale: domain.DefaultLocale, domain: domain}
	}
	return resolution{locale: rt.defaultLocale}
}

// findDomain matches the request host against the configured domains.
func (rt *Router) findDomain(host string) *Domain {
	if host == "" {
		return nil
	}
	for i := range rt.domains {
		if rt.domains[i].Host == host {
			return &rt.domains[i]
		}
	}
	return nil
}

// requestHost returns the request host without the port.
func requestHost(r *http.Request) string {
	host := r.Host
	if host == "" {
		host = r.URL.Host
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// pathnameLocale returns the supported locale carried as the first path
// segment, or "" when the path has no known-locale prefix.
func pathnameLocale(pathname string, locales []string) string {
	seg := strings.TrimPrefix(pathname, "/")
	if idx := strings.IndexByte(seg, '/'); idx >= 0 {
		seg = seg[:idx]
	}
	if seg == "" {
		return ""
	}
	if slices.Contains(locales, seg) {
		return seg
	}
	return ""
}

// stripLocalePrefix removes the leading /<locale> segment, keeping the
// result rooted. Stripping "/de" yields "/"; only whole segments are
// stripped, so "/delta" is untouched by locale "de".
func stripLocalePrefix(pathname, locale string) string {
	prefix := "/" + locale
	switch {
	case pathname == prefix:
		return "/"
	case strings.HasPrefix(pathname, prefix+"/"):
		return pathname[len(prefix):]
	default:
		return pathname
	}
}
