package localeroute

import "context"

// localeContextKey is the key for storing the resolved locale in context.
type localeContextKey struct{}

// SetLocale stores the locale in the context. Middleware calls this for
// every processed request before invoking the next handler.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in the context, or "" when the
// request was not processed by the routing middleware.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
