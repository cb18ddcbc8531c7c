// Package localeroute is a locale-routing layer for net/http pipelines.
// Given an incoming request it determines the active locale from the path,
// cookie, Accept-Language header, and host, decides whether to rewrite,
// redirect, or pass the request through, and generates locale-aware hrefs
// for client navigation.
//
// The package supports:
//
//   - Locale prefix policies: as-needed (default), always, never.
//   - Domain-based routing with per-host default locales and locale subsets.
//   - Localized pathnames mapping canonical routes such as /about to public
//     per-locale paths such as /ueber-uns, with [param] placeholders.
//   - Locale cookie synchronization and an alternate-links discovery header.
//
// # Usage
//
// Resolve the configuration once at startup; the resulting Router is
// immutable and safe for concurrent use:
//
//	rt, err := localeroute.New(localeroute.Config{
//		Locales:       []string{"en", "de"},
//		DefaultLocale: "en",
//		Pathnames: localeroute.Pathnames{
//			"/about": {Localized: map[string]string{
//				"en": "/about",
//				"de": "/ueber-uns",
//			}},
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := chi.NewRouter()
//	mux.Use(rt.Middleware)
//	mux.Get("/{locale}/about", aboutHandler)
//
//	http.ListenAndServe(":8080", mux)
//
// Downstream handlers read the resolved locale from the request context via
// GetLocale, or from the X-Locale request header when running in a separate
// process.
//
// Localized links are built with Href, which mirrors the server-side
// routing rules so generated links never trigger an extra redirect:
//
//	href := rt.Href(r.Context(), "/news/[articleSlug]-[articleId]",
//		localeroute.WithLocale("de"),
//		localeroute.WithParams(map[string]any{"articleSlug": "launch-party", "articleId": 3}),
//	)
//	// => /de/neuigkeiten/launch-party-3 (with a matching pathnames entry)
//
// # Decisions
//
// Route exposes the raw per-request decision for hosts that apply rewrites
// and redirects themselves. A Decision is a pure value: target path, optional
// host override, cookie refresh, and header mutations. Route never fails;
// unresolvable locale signals fall back to the configured default.
//
// # Configuration
//
// Configuration errors (unknown default locale, malformed domain entries,
// bad matcher patterns) are reported by New at setup time, never at request
// time. Besides plain Go values, configurations can be loaded from the
// environment (LoadConfigFromEnv) or from a YAML routing table
// (LoadConfigFromYAML).
package localeroute
