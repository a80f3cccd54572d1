package diagfmt

import (
	"strings"
	"testing"

	"aconf/internal/conftree"
	"aconf/internal/diag"
	"aconf/internal/source"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("httpd.conf", []byte("<Foo>\n</Bar>\n</Foo>\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.CfgMismatchedEndTag,
		Message:  "end tag </bar> does not match open context <foo>",
		Primary:  source.Pos{File: id, Line: 2},
		Notes: []diag.Note{
			{Pos: source.Pos{File: id, Line: 1}, Msg: "context <foo> opened here"},
		},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowSource: true, ShowNotes: true})

	want := "httpd.conf:2: WARNING CfgMismatchedEndTag: end tag </bar> does not match open context <foo>\n" +
		"    </Bar>\n" +
		"  note: httpd.conf:1: context <foo> opened here\n"
	if sb.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestPrettyNoLine(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.CfgIncludeCycle,
		Message:  "refusing to re-enter /etc/a.conf: include cycle",
		Primary:  source.Pos{Line: source.NoLine},
	})

	var sb strings.Builder
	Pretty(&sb, bag, nil, PrettyOpts{ShowSource: true})

	want := "<input>: WARNING CfgIncludeCycle: refusing to re-enter /etc/a.conf: include cycle\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestTreeDump(t *testing.T) {
	tree := conftree.New()
	listen := tree.NewChild(tree.Root(), "listen")
	tree.Get(listen).SetValue("80")
	vhost := tree.NewChild(tree.Root(), "virtualhost")
	tree.Get(vhost).SetValue("*:80")
	sn := tree.NewChild(vhost, "servername")
	tree.Get(sn).SetValue("www.example.com")
	tree.NewChild(tree.Root(), "keepalive")

	var sb strings.Builder
	Tree(&sb, tree, tree.Root(), TreeOpts{})

	want := strings.Join([]string{
		"root",
		"├── listen 80",
		"├── virtualhost *:80",
		"│   └── servername www.example.com",
		"└── keepalive",
		"",
	}, "\n")
	if sb.String() != want {
		t.Errorf("dump:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestTreeDumpWidthLimit(t *testing.T) {
	tree := conftree.New()
	n := tree.NewChild(tree.Root(), "customlog")
	tree.Get(n).SetValue("/very/long/path/to/the/access_log combined")

	var sb strings.Builder
	Tree(&sb, tree, tree.Root(), TreeOpts{Width: 20})

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		if len([]rune(line)) > 20 {
			t.Errorf("line %q exceeds the width limit", line)
		}
	}
}

func TestTreeDumpShowPos(t *testing.T) {
	tree := conftree.New()
	id := tree.NewChild(tree.Root(), "listen")
	n := tree.Get(id)
	n.SetValue("80")
	n.Filename, n.Line = "httpd.conf", 3

	var sb strings.Builder
	Tree(&sb, tree, tree.Root(), TreeOpts{ShowPos: true})

	if !strings.Contains(sb.String(), "listen 80  (httpd.conf:3)") {
		t.Errorf("dump missing position:\n%s", sb.String())
	}
}
