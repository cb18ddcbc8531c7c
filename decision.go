package localeroute

import "net/http"

// DecisionKind enumerates the possible outcomes of routing one request.
type DecisionKind int

const (
	// KindNext passes the request through unmodified.
	KindNext DecisionKind = iota
	// KindRewrite serves a different internal path without changing the
	// visible URL.
	KindRewrite
	// KindRedirect instructs the client to re-request a different URL.
	KindRedirect
)

func (k DecisionKind) String() string {
	switch k {
	case KindRewrite:
		return "rewrite"
	case KindRedirect:
		return "redirect"
	default:
		return "next"
	}
}

// Decision is the routing outcome for one request, including the side
// effects the caller must apply. It is a plain value so routing can be
// tested without running a handler chain.
type Decision struct {
	Kind DecisionKind

	// Path is the rewrite or redirect target, query string included.
	// Empty for KindNext.
	Path string

	// Host overrides the redirect host for cross-domain redirects.
	Host string

	// Locale is the resolved locale, empty when the request was skipped by
	// the matcher gate.
	Locale string

	// SetCookie carries the locale cookie refresh when the stored value was
	// stale, nil otherwise.
	SetCookie *http.Cookie

	// RequestHeader holds headers to inject into the forwarded request.
	RequestHeader http.Header

	// ResponseHeader holds headers to set on the response, such as the
	// alternate-links discovery header.
	ResponseHeader http.Header
}

// withQuery appends the original query string to a target path so rewrites
// and redirects always preserve it.
func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// joinLocalePath prefixes a rooted path with the locale segment. The root
// path maps to the bare prefix, "/de" rather than "/de/".
func joinLocalePath(locale, path string) string {
	if path == "/" || path == "" {
		return "/" + locale
	}
	return "/" + locale + path
}
