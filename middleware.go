package localeroute

import (
	"net/http"
	"strings"
)

// Route computes the routing decision for a request. It is a pure function
// of the router configuration and the request snapshot: no I/O, no shared
// mutable state, and it never fails. Decision steps, in order:
//
//  1. Skip requests the configured matcher does not cover.
//  2. Resolve the locale and domain from the request signals.
//  3. Decide rewrite, redirect, or pass-through for the root path, a
//     localized pathname, or via the generic prefix rules.
//  4. Attach cookie, forwarded-header, and alternate-link side effects.
func (rt *Router) Route(r *http.Request) Decision {
	pathname := r.URL.Path
	if pathname == "" {
		pathname = "/"
	}

	if len(rt.matcher) > 0 && !rt.matcherCovers(pathname) {
		return Decision{Kind: KindNext}
	}

	res := rt.resolveLocale(r)
	locale := res.locale

	var cookieValue string
	if c, err := r.Cookie(rt.cookieName); err == nil {
		cookieValue = c.Value
	}
	hasOutdatedCookie := cookieValue != locale

	applicableDefault := rt.defaultLocale
	if res.domain != nil {
		applicableDefault = res.domain.DefaultLocale
	}
	hasMatchedDefault := locale == applicableDefault

	// Serving without a visible prefix is allowed when the policy forbids
	// prefixes outright or the default locale matched under as-needed.
	canServeUnprefixed := rt.prefix == PrefixNever ||
		(rt.prefix == PrefixAsNeeded && hasMatchedDefault)

	query := r.URL.RawQuery

	d := Decision{Kind: KindNext, Locale: locale}
	rewrite := func(path string) {
		d.Kind = KindRewrite
		d.Path = withQuery(path, query)
	}
	redirect := func(path, host string) {
		d.Kind = KindRedirect
		d.Path = withQuery(path, query)
		d.Host = host
	}

	prefixLocale := pathnameLocale(pathname, rt.locales)
	hasPrefix := prefixLocale != ""
	unprefixed := pathname
	if hasPrefix {
		unprefixed = stripLocalePrefix(pathname, prefixLocale)
	}

	decided := false

	if pathname == "/" {
		if canServeUnprefixed {
			rewrite("/" + locale)
		} else {
			redirect("/"+locale, "")
		}
		decided = true
	}

	if !decided && len(rt.pathnames) > 0 {
		// A canonical-template hit with a distinct public alias redirects to
		// the alias so internal paths are never served directly.
		if alias := rt.redirectPathname(unprefixed, locale); alias != "" {
			target := alias
			if !canServeUnprefixed {
				target = joinLocalePath(locale, alias)
			}
			if target != pathname {
				redirect(target, "")
				decided = true
			}
		}

		if !decided {
			if canonical := rt.rewritePathname(unprefixed, locale); canonical != "" {
				switch {
				case hasPrefix && prefixLocale == locale, !hasPrefix && canServeUnprefixed:
					rewrite(joinLocalePath(locale, canonical))
					decided = true
				case !hasPrefix:
					// Public alias reached without its required prefix.
					redirect(joinLocalePath(locale, unprefixed), "")
					decided = true
				}
				// A prefix for a different locale falls through to the
				// generic rules below.
			}
		}
	}

	if !decided {
		if hasPrefix {
			switch {
			case rt.prefix == PrefixNever:
				redirect(unprefixed, "")
			case prefixLocale == locale && hasMatchedDefault && rt.prefix == PrefixAsNeeded:
				redirect(unprefixed, "")
			case prefixLocale == locale && len(rt.domains) > 0:
				best := bestDomain(res.domain, locale, rt.domains)
				if best != nil && res.domain != nil && best.Host != res.domain.Host {
					redirect(unprefixed, best.Host)
				}
			case prefixLocale == locale:
				// Correctly prefixed, nothing to do.
			default:
				redirect(joinLocalePath(locale, unprefixed), "")
			}
		} else {
			target := joinLocalePath(locale, pathname)
			if canServeUnprefixed || (rt.prefix == PrefixAsNeeded && len(rt.domains) > 0) {
				rewrite(target)
			} else {
				redirect(target, "")
			}
		}
	}

	if hasOutdatedCookie {
		d.SetCookie = &http.Cookie{
			Name:     rt.cookieName,
			Value:    locale,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		}
	}

	d.RequestHeader = http.Header{}
	d.RequestHeader.Set(LocaleHeader, locale)

	if rt.alternateLinks && rt.prefix != PrefixNever && len(rt.locales) > 1 {
		d.ResponseHeader = http.Header{}
		d.ResponseHeader.Set("Link", rt.alternateLinksValue(r, res))
	}

	return d
}

// matcherCovers reports whether any configured matcher pattern covers the path.
func (rt *Router) matcherCovers(pathname string) bool {
	for _, re := range rt.matcher {
		if re.MatchString(pathname) {
			return true
		}
	}
	return false
}

// Middleware applies routing decisions around the next handler: rewrites
// mutate the request URL before serving, redirects answer with 307, and
// pass-throughs serve unchanged. The resolved locale is stored in the
// request context for downstream handlers.
func (rt *Router) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := rt.Route(r)

		for key, values := range d.RequestHeader {
			r.Header[key] = values
		}
		for key, values := range d.ResponseHeader {
			w.Header()[key] = values
		}
		if d.SetCookie != nil {
			http.SetCookie(w, d.SetCookie)
		}

		ctx := r.Context()
		if d.Locale != "" {
			ctx = SetLocale(ctx, d.Locale)
		}

		switch d.Kind {
		case KindRedirect:
			target := d.Path
			if d.Host != "" {
				target = requestScheme(r) + "://" + d.Host + d.Path
			}
			http.Redirect(w, r.WithContext(ctx), target, http.StatusTemporaryRedirect)
		case KindRewrite:
			r2 := r.Clone(ctx)
			path, rawQuery, _ := strings.Cut(d.Path, "?")
			r2.URL.Path = path
			r2.URL.RawPath = ""
			r2.URL.RawQuery = rawQuery
			next.ServeHTTP(w, r2)
		default:
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	})
}

func requestScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	return "http"
}
