package templating

import "strings"

const (
	minDeclarationLen = 5
	whitespace        = " \t\n\v\f\r"
)

// ExtractDeclaration reports whether line is the first
// line of a function definition and, if so, returns the
// matching prototype terminated by ";\n".
//
// This is a line convention, not a C parser: the line
// must start with a non-space character other than '{'
// and end with ")" or ") {", trailing whitespace aside.
// Parameter lists spanning several lines are not
// recognized, and statements such as "if (x)" are
// accepted.
func ExtractDeclaration(line string) (string, bool) {
	if len(line) < minDeclarationLen {
		return "", false
	}

	if strings.ContainsRune(whitespace, rune(line[0])) ||
		line[0] == '{' {
		return "", false
	}

	sig := strings.TrimRight(line, whitespace)
	if strings.HasSuffix(sig, "{") {
		sig = strings.TrimRight(
			sig[:len(sig)-1], whitespace,
		)
	}

	if !strings.HasSuffix(sig, ")") {
		return "", false
	}

	return sig + ";\n", true
}
