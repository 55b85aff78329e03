package wizard

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveProjectName turns a workspace directory name into a .NET project
// name under namespace. The name is lower-cased and split on whitespace;
// each segment gets its first letter upper-cased and the segments are
// joined with dots, e.g. "order service" with namespace "CarMax" becomes
// "CarMax.Order.Service" and "my-app" becomes "CarMax.My-app". A leading
// namespace is dropped once so the prefix is never doubled. An empty
// workspace name yields the namespace alone.
func DeriveProjectName(workspace, namespace string) string {
	namespace = strings.TrimSpace(namespace)
	segments := stripNamespace(strings.Fields(strings.ToLower(workspace)), strings.ToLower(namespace))

	upper := cases.Upper(language.Und)
	parts := make([]string, 0, len(segments)+1)
	if namespace != "" {
		parts = append(parts, namespace)
	}
	for _, s := range segments {
		r, size := utf8.DecodeRuneInString(s)
		parts = append(parts, upper.String(string(r))+s[size:])
	}
	return strings.Join(parts, ".")
}

// stripNamespace removes ns from the front of the lower-cased segments,
// either as a whole first segment or as its dotted prefix.
func stripNamespace(segments []string, ns string) []string {
	if ns == "" || len(segments) == 0 {
		return segments
	}
	first := segments[0]
	switch {
	case first == ns:
		return segments[1:]
	case strings.HasPrefix(first, ns+"."):
		rest := strings.TrimPrefix(first, ns+".")
		if rest == "" {
			return segments[1:]
		}
		return append([]string{rest}, segments[1:]...)
	}
	return segments
}
