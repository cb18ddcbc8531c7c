package localeroute

import "slices"

// bestDomain picks the domain a redirect for the target locale should land
// on. Priority, first match wins:
//
//  1. The current domain, when it serves the locale.
//  2. An alternate domain whose default locale is the target locale.
//  3. An alternate domain whose explicit locale list includes the target.
//  4. The current domain, when it declares no restricted locale list.
//  5. An alternate domain with no restricted locale list.
//
// Returns nil when no domain can serve the locale; callers treat that as
// "no redirect target available". Steps 1-3 require explicit support (the
// locale is the domain default or in its list); an unrestricted domain only
// wins through the fallback steps 4-5.
func bestDomain(current *Domain, locale string, domains []Domain) *Domain {
	if current != nil && current.supportsExplicitly(locale) {
		return current
	}

	isCurrent := func(d *Domain) bool {
		return current != nil && d.Host == current.Host
	}

	for i := range domains {
		d := &domains[i]
		if isCurrent(d) {
			continue
		}
		if d.DefaultLocale == locale {
			return d
		}
	}

	for i := range domains {
		d := &domains[i]
		if isCurrent(d) {
			continue
		}
		if slices.Contains(d.Locales, locale) {
			return d
		}
	}

	if current != nil && len(current.Locales) == 0 {
		return current
	}

	for i := range domains {
		d := &domains[i]
		if isCurrent(d) {
			continue
		}
		if len(d.Locales) == 0 {
			return d
		}
	}

	return nil
}
