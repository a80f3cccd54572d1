package lexer

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"aconf/internal/source"
)

// Line is one fully assembled logical line.
type Line struct {
	Text string
	// Num is the 1-based physical line the logical line started on.
	Num int32
}

// LineScanner turns the physical lines of one file into logical lines:
// leading whitespace stripped, backslash continuations joined by a single
// space, trailing whitespace collapsed, blank and comment lines dropped.
// It is a forward-only, single-pass scanner.
type LineScanner struct {
	file *source.File
	off  uint32
	line int32 // physical line number of the next read

	pending      []string
	pendingStart int32
}

// NewLineScanner creates a scanner over the content of f.
func NewLineScanner(f *source.File) *LineScanner {
	return &LineScanner{file: f, line: 0}
}

// Next returns the next logical line. ok is false once the file is exhausted.
func (s *LineScanner) Next() (ln Line, ok bool) {
	for {
		raw, num, more := s.physical()
		if !more {
			// A continuation still pending at EOF is flushed as a final
			// logical line rather than silently dropped.
			if len(s.pending) > 0 {
				parts := s.pending
				s.pending = nil
				text := collapseTrailing(strings.Join(parts, " "))
				if text != "" && text[0] != '#' {
					return Line{Text: text, Num: s.pendingStart}, true
				}
			}
			return Line{}, false
		}

		text := strings.TrimLeft(raw, " \t")
		piece, continued := splitContinuation(text)
		if continued {
			if len(s.pending) == 0 {
				s.pendingStart = num
			}
			s.pending = append(s.pending, piece)
			continue
		}

		start := num
		if len(s.pending) > 0 {
			start = s.pendingStart
		}
		if ln, ok = s.finish(piece, start); ok {
			return ln, true
		}
		// Assembled line was blank or a comment; keep scanning.
	}
}

// finish joins the pending continuation pieces with the final piece, applies
// the trailing-whitespace and comment rules, and resets the accumulator.
func (s *LineScanner) finish(last string, start int32) (Line, bool) {
	parts := append(s.pending, last)
	s.pending = nil
	text := collapseTrailing(strings.Join(parts, " "))
	// Comments are recognised only on the assembled line; a '#' starting a
	// continued run still comments the whole thing out.
	if text == "" || text[0] == '#' {
		return Line{}, false
	}
	return Line{Text: text, Num: start}, true
}

// physical reads one physical line, without its newline.
func (s *LineScanner) physical() (text string, num int32, ok bool) {
	content := s.file.Content
	if int(s.off) >= len(content) {
		return "", 0, false
	}
	s.line++
	start := s.off
	end := start
	for int(end) < len(content) && content[end] != '\n' {
		end++
	}
	text = string(content[start:end])
	if int(end) < len(content) {
		end++ // consume the newline
	}
	s.off = end
	return text, s.line, true
}

// splitContinuation applies the backslash rules: a line ending in a single
// backslash continues onto the next physical line; a line ending in two keeps
// one literal backslash and does not continue.
func splitContinuation(line string) (string, bool) {
	n := len(line)
	if n == 0 || line[n-1] != '\\' {
		return line, false
	}
	if n >= 2 && line[n-2] == '\\' {
		return line[:n-1], false
	}
	return line[:n-1], true
}

// collapseTrailing reduces a trailing whitespace run to a single space.
func collapseTrailing(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	if trimmed == s || trimmed == "" {
		return trimmed
	}
	return trimmed + " "
}

// Off is the byte offset of the next unread physical line, for invariants in
// tests.
func (s *LineScanner) Off() uint32 {
	n, err := safecast.Conv[uint32](len(s.file.Content))
	if err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	if s.off > n {
		return n
	}
	return s.off
}
