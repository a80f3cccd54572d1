package conftree

import (
	"slices"
	"testing"
)

func TestNewTreeRoot(t *testing.T) {
	tr := New()
	root := tr.Get(tr.Root())
	if root == nil {
		t.Fatal("no root node")
	}
	if root.Name() != RootName {
		t.Errorf("root name = %q, want %q", root.Name(), RootName)
	}
	if root.Parent() != None {
		t.Errorf("root parent = %d, want none", root.Parent())
	}
	if _, ok := root.Value(); ok {
		t.Error("root value should be undefined")
	}
}

func TestNewChildOrderAndBackrefs(t *testing.T) {
	tr := New()
	a := tr.NewChild(tr.Root(), "Alpha")
	b := tr.NewChild(tr.Root(), "BETA")
	c := tr.NewChild(a, "gamma")

	if got := tr.Get(a).Name(); got != "alpha" {
		t.Errorf("name = %q, want lowercased %q", got, "alpha")
	}
	if got := tr.Get(b).Name(); got != "beta" {
		t.Errorf("name = %q, want %q", got, "beta")
	}
	if !slices.Equal(tr.Get(tr.Root()).Children(), []NodeID{a, b}) {
		t.Errorf("root children = %v, want [%d %d]", tr.Get(tr.Root()).Children(), a, b)
	}
	if tr.Get(c).Parent() != a {
		t.Errorf("parent of %d = %d, want %d", c, tr.Get(c).Parent(), a)
	}
}

func TestValueUndefinedVsEmpty(t *testing.T) {
	tr := New()
	id := tr.NewChild(tr.Root(), "custom")
	n := tr.Get(id)

	if _, ok := n.Value(); ok {
		t.Fatal("fresh node should have undefined value")
	}
	if _, ok := n.ValueElems(); ok {
		t.Fatal("fresh node should have undefined elements")
	}

	n.SetValue("")
	if v, ok := n.Value(); !ok || v != "" {
		t.Errorf("Value() = (%q, %v), want (\"\", true)", v, ok)
	}
	elems, ok := n.ValueElems()
	if !ok || len(elems) != 0 {
		t.Errorf("ValueElems() = (%v, %v), want empty defined sequence", elems, ok)
	}

	n.ClearValue()
	if _, ok := n.Value(); ok {
		t.Error("cleared value should be undefined again")
	}
}

func TestSetValueElemsFormatsString(t *testing.T) {
	tr := New()
	id := tr.NewChild(tr.Root(), "customlog")
	n := tr.Get(id)

	n.SetValueElems([]string{"%h %l", "common"})
	if v, _ := n.Value(); v != `"%h %l" common` {
		t.Errorf("string form = %q", v)
	}

	n.SetValue(`logs/access_log common`)
	elems, _ := n.ValueElems()
	if !slices.Equal(elems, []string{"logs/access_log", "common"}) {
		t.Errorf("elements = %q", elems)
	}
}

func TestOrigValueIndependent(t *testing.T) {
	tr := New()
	id := tr.NewChild(tr.Root(), "errorlog")
	n := tr.Get(id)

	n.SetValue("logs/error_log")
	n.SetOrigValue("logs/error_log")
	n.SetFirstValueElem("/srv/logs/error_log")

	if v, _ := n.Value(); v != "/srv/logs/error_log" {
		t.Errorf("live value = %q", v)
	}
	if v, _ := n.OrigValue(); v != "logs/error_log" {
		t.Errorf("orig value = %q, should be untouched", v)
	}
}

func TestRemoveSubtree(t *testing.T) {
	tr := New()
	a := tr.NewChild(tr.Root(), "a")
	b := tr.NewChild(a, "b")
	tr.NewChild(b, "c")
	d := tr.NewChild(tr.Root(), "d")

	tr.RemoveSubtree(a)

	if !slices.Equal(tr.Get(tr.Root()).Children(), []NodeID{d}) {
		t.Errorf("root children after removal = %v, want [%d]", tr.Get(tr.Root()).Children(), d)
	}
	if tr.CountEverywhere(tr.Root(), "b", "c") != 0 {
		t.Error("removed descendants still reachable")
	}
}

func TestWalkPreOrder(t *testing.T) {
	tr := New()
	a := tr.NewChild(tr.Root(), "a")
	b := tr.NewChild(a, "b")
	tr.NewChild(b, "c")
	tr.NewChild(a, "d")
	tr.NewChild(tr.Root(), "e")

	var names []string
	tr.Walk(tr.Root(), func(_ NodeID, n *Node) bool {
		names = append(names, n.Name())
		return true
	})
	want := []string{"root", "a", "b", "c", "d", "e"}
	if !slices.Equal(names, want) {
		t.Errorf("walk order = %v, want %v", names, want)
	}
}
