package lexer

import "strings"

// placeholder temporarily stands in for an escaped quote while scanning.
// Configuration text is expected to never contain this byte.
const placeholder = "\x01"

// SplitValue splits a raw directive value into its ordered elements.
// Quoted elements keep their internal whitespace verbatim; \" inside quotes
// becomes a plain quote. An empty raw value yields an empty, non-nil slice.
func SplitValue(raw string) []string {
	elems := []string{}
	if raw == "" {
		return elems
	}

	s := strings.ReplaceAll(raw, `\"`, placeholder)
	for s != "" {
		if s[0] == '"' {
			rest := s[1:]
			if i := strings.IndexByte(rest, '"'); i >= 0 {
				elems = append(elems, restore(rest[:i]))
				s = skipSpace(rest[i+1:])
				continue
			}
			// Unterminated quote: everything after it is the final element.
			elems = append(elems, restore(rest))
			break
		}
		i := 0
		for i < len(s) && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		elems = append(elems, restore(s[:i]))
		s = skipSpace(s[i:])
	}
	return elems
}

// JoinValue formats elements into the canonical string form: non-empty
// elements joined by single spaces, quoting and escaping any element that
// contains whitespace, a quote, or a backslash. Empty elements are omitted.
func JoinValue(elems []string) string {
	var b strings.Builder
	first := true
	for _, e := range elems {
		if e == "" {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		if strings.ContainsAny(e, " \t\"\\") {
			b.WriteByte('"')
			for i := 0; i < len(e); i++ {
				if e[i] == '"' || e[i] == '\\' {
					b.WriteByte('\\')
				}
				b.WriteByte(e[i])
			}
			b.WriteByte('"')
		} else {
			b.WriteString(e)
		}
	}
	return b.String()
}

func restore(s string) string {
	return strings.ReplaceAll(s, placeholder, `"`)
}

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t")
}
