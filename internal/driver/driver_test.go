package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"aconf/internal/diag"
)

func writeConf(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	target := writeConf(t, dir, "httpd.conf",
		"ServerRoot /etc/httpd\nCustomLog logs/access_log common\n")

	res, err := Parse(target, Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Err != nil {
		t.Fatalf("load: %v", res.Err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("diagnostics: %+v", res.Bag.Items())
	}

	tree := res.Session.Tree()
	id := tree.FindEverywhere(tree.Root(), "customlog")[0]
	if got := tree.Get(id).FirstValueElem(); got != "/etc/httpd/logs/access_log" {
		t.Errorf("resolved element = %q", got)
	}
}

func TestParseMissingTarget(t *testing.T) {
	res, err := Parse(filepath.Join(t.TempDir(), "missing.conf"), Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Err == nil {
		t.Fatal("expected a load error for a missing target")
	}
	if res.Session == nil || res.Bag == nil {
		t.Fatal("session and bag must be set even on load failure")
	}
}

func TestParseWarnUnclosed(t *testing.T) {
	dir := t.TempDir()
	target := writeConf(t, dir, "open.conf", "<VirtualHost *>\n")

	res, err := Parse(target, Options{WarnUnclosed: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.CfgUnclosedContext {
		t.Fatalf("diagnostics = %+v", res.Bag.Items())
	}
}

func TestParseDiagnosticLimit(t *testing.T) {
	dir := t.TempDir()
	target := writeConf(t, dir, "bad.conf", "</a>\n</b>\n</c>\n")

	res, err := Parse(target, Options{MaxDiagnostics: 2})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 2 {
		t.Fatalf("bag holds %d diagnostics, want the cap of 2", res.Bag.Len())
	}
}

func TestParseWithRulesFile(t *testing.T) {
	dir := t.TempDir()
	manifest := writeConf(t, dir, "rules.toml",
		"[[pre]]\nprefix = \"logs/\"\nreplace = \"log/\"\n")
	target := writeConf(t, dir, "httpd.conf",
		"ServerRoot /srv\nErrorLog logs/error_log\n")

	res, err := Parse(target, Options{RulesFile: manifest})
	if err != nil {
		t.Fatal(err)
	}
	tree := res.Session.Tree()
	id := tree.FindEverywhere(tree.Root(), "errorlog")[0]
	if got := tree.Get(id).FirstValueElem(); got != "/srv/log/error_log" {
		t.Errorf("resolved element = %q", got)
	}
}

func TestParseBadRulesFile(t *testing.T) {
	dir := t.TempDir()
	manifest := writeConf(t, dir, "rules.toml", "[[pre]]\nreplace = \"x\"\n")
	target := writeConf(t, dir, "httpd.conf", "Listen 80\n")

	if _, err := Parse(target, Options{RulesFile: manifest}); err == nil {
		t.Fatal("expected an error for an invalid rule manifest")
	}
}

func TestParseMany(t *testing.T) {
	dir := t.TempDir()
	targets := []string{
		writeConf(t, dir, "a.conf", "Listen 80\n"),
		writeConf(t, dir, "b.conf", "Listen 81\nListen 82\n"),
		filepath.Join(dir, "missing.conf"),
	}

	results, err := ParseMany(context.Background(), targets, Options{})
	if err != nil {
		t.Fatalf("ParseMany: %v", err)
	}
	if len(results) != len(targets) {
		t.Fatalf("got %d results, want %d", len(results), len(targets))
	}
	for i, res := range results {
		if res.Target != targets[i] {
			t.Errorf("result %d target = %q, want %q", i, res.Target, targets[i])
		}
	}
	counts := []int{1, 2, 0}
	for i, res := range results {
		tree := res.Session.Tree()
		if n := tree.CountEverywhere(tree.Root(), "listen"); n != counts[i] {
			t.Errorf("target %d listen count = %d, want %d", i, n, counts[i])
		}
	}
	if results[2].Err == nil {
		t.Error("missing target must carry a load error in its result")
	}
}

func TestParseManyEmpty(t *testing.T) {
	results, err := ParseMany(context.Background(), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results for no targets", len(results))
	}
}
