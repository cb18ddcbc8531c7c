package localeroute

// rewritePathname maps a public request pathname to its canonical internal
// pathname for the given locale. It searches the pathnames map for an entry
// whose locale-specific template structurally matches the (prefix-stripped)
// request path, extracts the params, and formats the canonical template with
// them. Returns "" when no entry matches, which means "no rewrite rule
// applies" rather than an error. Entries are checked in sorted canonical
// order so overlapping templates resolve deterministically.
func (rt *Router) rewritePathname(pathname, locale string) string {
	for _, canonical := range rt.canonicalPaths {
		tmpl := rt.pathnames[canonical].template(locale)
		if tmpl == "" {
			continue
		}

		params, ok := compileTemplate(tmpl).params(pathname)
		if !ok {
			continue
		}
		if len(params) == 0 {
			return canonical
		}
		return formatTemplate(canonical, anyParams(params))
	}
	return ""
}

// redirectPathname detects a request that hit a canonical (internal)
// pathname directly while a distinct localized alias exists for the locale.
// It returns the localized public pathname with params carried over, or ""
// when the request path is not a canonical template hit. This keeps internal
// paths from being served directly when a public alias exists.
func (rt *Router) redirectPathname(pathname, locale string) string {
	for _, canonical := range rt.canonicalPaths {
		tmpl := rt.pathnames[canonical].template(locale)
		if tmpl == "" || tmpl == canonical {
			continue
		}

		params, ok := compileTemplate(canonical).params(pathname)
		if !ok {
			continue
		}
		if len(params) == 0 {
			return tmpl
		}
		return formatTemplate(tmpl, anyParams(params))
	}
	return ""
}

// localizePathname converts a public pathname from one locale's form into
// another's, falling back to the input when no pathname entry matches. Used
// for alternate links and client href construction.
func (rt *Router) localizePathname(pathname, fromLocale, toLocale string) string {
	for _, canonical := range rt.canonicalPaths {
		entry := rt.pathnames[canonical]
		from := entry.template(fromLocale)
		to := entry.template(toLocale)
		if from == "" || to == "" {
			continue
		}

		params, ok := compileTemplate(from).params(pathname)
		if !ok {
			continue
		}
		if len(params) == 0 {
			return to
		}
		return formatTemplate(to, anyParams(params))
	}
	return pathname
}

func anyParams(params map[string]string) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
