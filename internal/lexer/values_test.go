package lexer

import (
	"slices"
	"testing"
)

func TestSplitValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty string gives empty sequence",
			raw:  "",
			want: []string{},
		},
		{
			name: "single bare element",
			raw:  "common",
			want: []string{"common"},
		},
		{
			name: "bare elements split on whitespace runs",
			raw:  "logs/access_log \t common",
			want: []string{"logs/access_log", "common"},
		},
		{
			name: "quoted element keeps internal whitespace",
			raw:  `"%h %l" common`,
			want: []string{"%h %l", "common"},
		},
		{
			name: "escaped quotes inside a quoted element",
			raw:  `"a \"b\" c" d`,
			want: []string{`a "b" c`, "d"},
		},
		{
			name: "escaped quote in a bare element",
			raw:  `a\"b`,
			want: []string{`a"b`},
		},
		{
			name: "unterminated quote takes the rest",
			raw:  `"unclosed rest`,
			want: []string{"unclosed rest"},
		},
		{
			name: "adjacent quoted elements",
			raw:  `"a" "b"`,
			want: []string{"a", "b"},
		},
		{
			name: "empty quoted element",
			raw:  `"" x`,
			want: []string{"", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitValue(tt.raw)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitValue(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestJoinValue(t *testing.T) {
	tests := []struct {
		name  string
		elems []string
		want  string
	}{
		{
			name:  "plain elements joined by spaces",
			elems: []string{"logs/access_log", "common"},
			want:  "logs/access_log common",
		},
		{
			name:  "element with whitespace gets quoted",
			elems: []string{"%h %l", "common"},
			want:  `"%h %l" common`,
		},
		{
			name:  "quote and backslash get escaped",
			elems: []string{`a"b`, `c\d`},
			want:  `"a\"b" "c\\d"`,
		},
		{
			name:  "empty elements are omitted",
			elems: []string{"a", "", "b"},
			want:  "a b",
		},
		{
			name:  "nothing but empties",
			elems: []string{"", ""},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinValue(tt.elems); got != tt.want {
				t.Errorf("JoinValue(%q) = %q, want %q", tt.elems, got, tt.want)
			}
		})
	}
}

// Round trip: format then parse reproduces any sequence without empty strings.
func TestValueRoundTrip(t *testing.T) {
	seqs := [][]string{
		{"a"},
		{"a", "b", "c"},
		{"%h %l", "common"},
		{`with "quotes"`},
		{"tab\there", "plain"},
	}
	for _, elems := range seqs {
		got := SplitValue(JoinValue(elems))
		if !slices.Equal(got, elems) {
			t.Errorf("round trip of %q gave %q", elems, got)
		}
	}
}
