// Package token embeds an entity id in a component custom id so a later interaction
// can recover it without server-side state. The format is "<prefix>_<escaped id>".
package token

import "strings"

const delimiter = "_"

var (
	escaper   = strings.NewReplacer("%", "%25", "_", "%5F")
	unescaper = strings.NewReplacer("%25", "%", "%5F", "_")
)

// Encode returns the custom id carrying id under prefix.
func Encode(prefix, id string) string {
	return prefix + delimiter + escaper.Replace(id)
}

// Decode extracts the id from customID when it was encoded with prefix.
func Decode(customID, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(customID, prefix+delimiter)
	if !ok || rest == "" || strings.Contains(rest, delimiter) {
		return "", false
	}
	if !validEscapes(rest) {
		return "", false
	}
	return unescaper.Replace(rest), true
}

func validEscapes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if !strings.HasPrefix(s[i:], "%25") && !strings.HasPrefix(s[i:], "%5F") {
			return false
		}
		i += 2
	}
	return true
}
