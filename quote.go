package pdump

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"
)

// quote wraps s in double quotes and escapes whatever would break the
// single-line guarantee: the delimiter, the escape character, newlines
// as the two-character sequence \n, and any other non-printable rune
// as a hex codepoint escape.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case !unicode.IsPrint(r):
			fmt.Fprintf(&b, `\x{%x}`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

var bareKeyRe = regexp.MustCompile(`^-?\w+$`)

// bareKey reports whether key can render unquoted in a `name: value`
// pair, and returns its bare form. Only identifier-shaped scalars
// qualify.
func bareKey(key any) (string, bool) {
	var s string
	switch Classify(key) {
	case Text:
		s = reflect.ValueOf(key).String()
	case Number:
		s = formatNumber(reflect.ValueOf(key))
	default:
		return "", false
	}
	if !bareKeyRe.MatchString(s) {
		return "", false
	}
	return s, true
}
