package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeClass escapes a class name for use in a selector, following the
// CSSOM serialization rules: "md:p-4" becomes "md\:p-4" and "2xl:p-4"
// becomes "\32 xl\:p-4".
func EscapeClass(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)

	first := rune(-1)
	for i, r := range name {
		if i == 0 {
			first = r
		}
		switch {
		case r == 0:
			b.WriteRune(utf8.RuneError)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && isDigit(r):
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && isDigit(r) && first == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(name) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' || isDigit(r) || isLetter(r):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
