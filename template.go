package localeroute

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// placeholderPattern matches bracketed placeholders like [articleId] in
// pathname templates. Placeholder names may not contain slashes or brackets.
var placeholderPattern = regexp.MustCompile(`\[([^/\[\]]+)\]`)

// pathTemplate is a compiled pathname template. It holds the ordered
// placeholder names alongside the anchored matcher so that capture groups
// align positionally with names without re-parsing the template string.
type pathTemplate struct {
	raw   string
	names []string
	re    *regexp.Regexp
}

// templateCache stores compiled templates keyed by the raw template string.
// Templates come from configuration, so the cache is bounded by config size.
var templateCache = struct {
	mu sync.RWMutex
	m  map[string]*pathTemplate
}{m: make(map[string]*pathTemplate)}

// compileTemplate returns the compiled form of a pathname template,
// computing it once per distinct template string.
func compileTemplate(raw string) *pathTemplate {
	templateCache.mu.RLock()
	t, ok := templateCache.m[raw]
	templateCache.mu.RUnlock()
	if ok {
		return t
	}

	t = newPathTemplate(raw)

	templateCache.mu.Lock()
	templateCache.m[raw] = t
	templateCache.mu.Unlock()

	return t
}

func newPathTemplate(raw string) *pathTemplate {
	matches := placeholderPattern.FindAllStringSubmatchIndex(raw, -1)

	names := make([]string, 0, len(matches))
	var pattern strings.Builder
	pattern.WriteString("^")

	last := 0
	for _, m := range matches {
		pattern.WriteString(regexp.QuoteMeta(raw[last:m[0]]))
		// Each placeholder captures a run of non-slash characters.
		pattern.WriteString("([^/]+)")
		names = append(names, raw[m[2]:m[3]])
		last = m[1]
	}
	pattern.WriteString(regexp.QuoteMeta(raw[last:]))
	pattern.WriteString("$")

	return &pathTemplate{
		raw:   raw,
		names: names,
		re:    regexp.MustCompile(pattern.String()),
	}
}

// match reports whether the pathname conforms to the template shape.
func (t *pathTemplate) match(pathname string) bool {
	return t.re.MatchString(pathname)
}

// params extracts placeholder values from the pathname. The second return
// value is false when the pathname does not match the template.
func (t *pathTemplate) params(pathname string) (map[string]string, bool) {
	groups := t.re.FindStringSubmatch(pathname)
	if groups == nil {
		return nil, false
	}

	params := make(map[string]string, len(t.names))
	for i, name := range t.names {
		params[name] = groups[i+1]
	}
	return params, true
}

// formatTemplate substitutes params into a pathname template. Values are
// stringified with fmt.Sprint so numeric params format without loss.
// Placeholders with no corresponding param key are left literally in place;
// callers rely on this lenient behavior for partially-known paths.
func formatTemplate(raw string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(raw, "[") {
		return raw
	}

	return placeholderPattern.ReplaceAllStringFunc(raw, func(placeholder string) string {
		name := placeholder[1 : len(placeholder)-1]
		value, ok := params[name]
		if !ok {
			return placeholder
		}
		return fmt.Sprint(value)
	})
}
