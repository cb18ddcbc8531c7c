package localeroute

import (
	"fmt"
	"net/http"
	"strings"
)

// alternateLinksValue builds the Link response header enumerating the
// per-locale canonical URLs for the current request, plus one x-default
// entry. Each URL re-applies the prefix and pathname-localization rules for
// its locale; when domains are configured the best matching domain supplies
// the host and the URL becomes absolute.
func (rt *Router) alternateLinksValue(r *http.Request, res resolution) string {
	pathname := r.URL.Path
	if pathname == "" {
		pathname = "/"
	}
	if prefix := pathnameLocale(pathname, rt.locales); prefix != "" {
		pathname = stripLocalePrefix(pathname, prefix)
	}

	query := r.URL.RawQuery
	scheme := requestScheme(r)

	entries := make([]string, 0, len(rt.locales)+1)
	for _, locale := range rt.locales {
		url := rt.alternateURL(pathname, query, scheme, locale, res, false)
		entries = append(entries, fmt.Sprintf("<%s>; rel=\"alternate\"; hreflang=%q", url, locale))
	}

	url := rt.alternateURL(pathname, query, scheme, rt.defaultLocale, res, true)
	entries = append(entries, fmt.Sprintf("<%s>; rel=\"alternate\"; hreflang=%q", url, "x-default"))

	return strings.Join(entries, ", ")
}

// alternateURL builds the canonical URL of the current page in the given
// locale. The x-default entry always uses the unprefixed form.
func (rt *Router) alternateURL(pathname, query, scheme, locale string, res resolution, xDefault bool) string {
	localized := rt.localizePathname(pathname, res.locale, locale)

	var host string
	applicableDefault := rt.defaultLocale
	if len(rt.domains) > 0 {
		if best := bestDomain(res.domain, locale, rt.domains); best != nil {
			host = best.Host
			applicableDefault = best.DefaultLocale
		}
	}

	path := localized
	needsPrefix := !xDefault &&
		!(rt.prefix == PrefixAsNeeded && locale == applicableDefault)
	if needsPrefix {
		path = joinLocalePath(locale, localized)
	}

	url := withQuery(path, query)
	if host != "" {
		url = scheme + "://" + host + url
	}
	return url
}
