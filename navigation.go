package localeroute

import (
	"context"
	"net/url"
)

// hrefOptions collects the optional pieces of a client navigation target.
type hrefOptions struct {
	locale string
	params map[string]any
	query  url.Values
}

// HrefOption configures Href.
type HrefOption func(*hrefOptions)

// WithLocale targets an explicit locale instead of the one active in the
// context (or the default locale).
func WithLocale(locale string) HrefOption {
	return func(o *hrefOptions) {
		o.locale = locale
	}
}

// WithParams supplies route params substituted into template placeholders.
// Values are stringified, so numeric params are fine.
func WithParams(params map[string]any) HrefOption {
	return func(o *hrefOptions) {
		o.params = params
	}
}

// WithQuery appends a canonical query string to the generated href.
func WithQuery(query url.Values) HrefOption {
	return func(o *hrefOptions) {
		o.query = query
	}
}

// Href resolves a canonical pathname into the localized href a navigation
// control should render. It mirrors the server-side routing rules so
// generated links never require a further redirect:
//
//  1. The canonical pathname is looked up in the pathnames map for the
//     target locale; absent entries use the pathname as-is.
//  2. Params are substituted into the template.
//  3. The locale prefix is added unless the target locale is the default
//     and the prefix mode is as-needed or never.
//  4. The query mapping, when given, is appended in canonical key order.
//
// The target locale defaults to the locale stored in ctx by Middleware,
// then to the configured default locale.
func (rt *Router) Href(ctx context.Context, pathname string, opts ...HrefOption) string {
	var o hrefOptions
	for _, opt := range opts {
		opt(&o)
	}

	locale := o.locale
	if locale == "" {
		locale = GetLocale(ctx)
	}
	if locale == "" {
		locale = rt.defaultLocale
	}

	tmpl := pathname
	if entry, ok := rt.pathnames[pathname]; ok {
		if t := entry.template(locale); t != "" {
			tmpl = t
		}
	}

	href := formatTemplate(tmpl, o.params)

	if !(locale == rt.defaultLocale && rt.prefix != PrefixAlways) {
		href = joinLocalePath(locale, href)
	}

	if len(o.query) > 0 {
		href = href + "?" + o.query.Encode()
	}

	return href
}
