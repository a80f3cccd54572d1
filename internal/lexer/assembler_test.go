package lexer

import (
	"testing"

	"aconf/internal/source"
)

func scanAll(t *testing.T, input string) []Line {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.conf", []byte(input))
	sc := NewLineScanner(fs.Get(id))

	var out []Line
	for ln, ok := sc.Next(); ok; ln, ok = sc.Next() {
		out = append(out, ln)
	}
	return out
}

func TestLineScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Line
	}{
		{
			name:  "plain lines",
			input: "ServerRoot /etc/httpd\nPidFile logs/httpd.pid\n",
			want: []Line{
				{Text: "ServerRoot /etc/httpd", Num: 1},
				{Text: "PidFile logs/httpd.pid", Num: 2},
			},
		},
		{
			name:  "leading whitespace stripped",
			input: "   \t DocumentRoot /srv/www\n",
			want:  []Line{{Text: "DocumentRoot /srv/www", Num: 1}},
		},
		{
			name:  "blank lines and comments dropped",
			input: "\n   \n# a comment\nKeepAlive On\n  # indented comment\n",
			want:  []Line{{Text: "KeepAlive On", Num: 4}},
		},
		{
			name:  "no trailing newline",
			input: "Listen 80",
			want:  []Line{{Text: "Listen 80", Num: 1}},
		},
		{
			name:  "continuation joins with single space",
			input: "CustomLog\\\nlogs/access_log\\\ncommon\n",
			want:  []Line{{Text: "CustomLog logs/access_log common", Num: 1}},
		},
		{
			name:  "space before the backslash is kept",
			input: "CustomLog \\\ncommon\n",
			want:  []Line{{Text: "CustomLog  common", Num: 1}},
		},
		{
			name:  "continuation reports first physical line",
			input: "Listen 80\nAlias\\\n/icons/ /usr/share/icons/\n",
			want: []Line{
				{Text: "Listen 80", Num: 1},
				{Text: "Alias /icons/ /usr/share/icons/", Num: 2},
			},
		},
		{
			name:  "double backslash is a literal, not a continuation",
			input: "Header set X-Path c:\\\\\nListen 80\n",
			want: []Line{
				{Text: "Header set X-Path c:\\", Num: 1},
				{Text: "Listen 80", Num: 2},
			},
		},
		{
			name:  "hash starting a continued run comments out the whole thing",
			input: "#Options\\\nIndexes\n",
			want:  nil,
		},
		{
			name:  "hash inside a continued run is not a comment marker",
			input: "Options\\\n#notacomment\n",
			want:  []Line{{Text: "Options #notacomment", Num: 1}},
		},
		{
			name:  "trailing whitespace collapses to one space",
			input: "Listen 80   \t\n",
			want:  []Line{{Text: "Listen 80 ", Num: 1}},
		},
		{
			name:  "pending continuation flushed at EOF",
			input: "LoadModule\\\nfoo\\",
			want:  []Line{{Text: "LoadModule foo", Num: 1}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitContinuation(t *testing.T) {
	tests := []struct {
		in       string
		out      string
		continued bool
	}{
		{"foo \\", "foo ", true},
		{"foo \\\\", "foo \\", false},
		{"foo", "foo", false},
		{"", "", false},
		{"\\", "", true},
	}
	for _, tt := range tests {
		out, continued := splitContinuation(tt.in)
		if out != tt.out || continued != tt.continued {
			t.Errorf("splitContinuation(%q) = (%q, %v), want (%q, %v)",
				tt.in, out, continued, tt.out, tt.continued)
		}
	}
}
