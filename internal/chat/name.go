package chat

import (
	"regexp"
	"strings"
	"unicode"
)

// NameNotFound is shown when a chat has no name.
const NameNotFound = "name not found"

var noPrefixRe = regexp.MustCompile(`\bNo\.[\s\p{Zs}\x{FEFF}]*`)

// isSpace also treats the byte order mark as space, as chat names pasted
// from other apps sometimes carry one.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// RemoveNo strips the first "No." token from a chat name and trims it.
func RemoveNo(name string) string {
	if name == "" {
		return NameNotFound
	}
	if loc := noPrefixRe.FindStringIndex(name); loc != nil {
		name = name[:loc[0]] + name[loc[1]:]
	}
	return strings.TrimFunc(name, isSpace)
}
