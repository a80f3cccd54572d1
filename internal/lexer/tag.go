package lexer

import "regexp"

var (
	endTagRe   = regexp.MustCompile(`^<\s*/\s*([^\s>]+)\s*>\s*$`)
	startTagRe = regexp.MustCompile(`^<\s*([^/\s>][^\s>]*)\s*([^>]*?)\s*>\s*$`)
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// ParseEndTag matches a context-closing line </Name>, tolerating internal
// whitespace. name keeps the original case.
func ParseEndTag(line string) (name string, ok bool) {
	m := endTagRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseStartTag matches a context-opening line <Name args>. args has internal
// whitespace runs collapsed to single spaces.
func ParseStartTag(line string) (name, args string, ok bool) {
	m := startTagRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], CollapseWhitespace(m[2]), true
}

// CollapseWhitespace reduces every whitespace run to a single space.
func CollapseWhitespace(s string) string {
	return spaceRunRe.ReplaceAllString(s, " ")
}
