// Package snapshot serializes a parsed directive tree to disk so a large
// configuration can be reloaded without reparsing. The format is msgpack
// with an explicit schema version; writes are atomic (temp file + rename).
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"aconf/internal/conftree"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// nodeRecord is one flattened tree node. Parent references use the arena's
// 1-based IDs, so document order and structure survive the round trip.
type nodeRecord struct {
	ID     uint32
	Parent uint32
	Name   string

	HasValue   bool
	Value      string
	ValueElems []string

	HasOrig   bool
	Orig      string
	OrigElems []string

	Filename string
	Line     int32
}

type payload struct {
	Schema     uint16
	ServerRoot string
	Nodes      []nodeRecord
}

// Write snapshots the tree (and the recorded server root) to path.
func Write(path string, t *conftree.Tree, serverRoot string) error {
	p := payload{
		Schema:     schemaVersion,
		ServerRoot: serverRoot,
	}
	t.Walk(t.Root(), func(id conftree.NodeID, n *conftree.Node) bool {
		rec := nodeRecord{
			ID:       uint32(id),
			Parent:   uint32(n.Parent()),
			Name:     n.Name(),
			Filename: n.Filename,
			Line:     n.Line,
		}
		if v, ok := n.Value(); ok {
			elems, _ := n.ValueElems()
			rec.HasValue, rec.Value, rec.ValueElems = true, v, elems
		}
		if v, ok := n.OrigValue(); ok {
			elems, _ := n.OrigValueElems()
			rec.HasOrig, rec.Orig, rec.OrigElems = true, v, elems
		}
		p.Nodes = append(p.Nodes, rec)
		return true
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), path)
}

// Read rebuilds a tree from a snapshot written by Write.
func Read(path string) (*conftree.Tree, string, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	if p.Schema != schemaVersion {
		return nil, "", fmt.Errorf("%s: unsupported snapshot schema %d", path, p.Schema)
	}

	t := conftree.New()
	// Records are in pre-order, so every parent appears before its
	// children; rebuilding in order reproduces the original IDs.
	ids := map[uint32]conftree.NodeID{}
	for i, rec := range p.Nodes {
		if i == 0 {
			ids[rec.ID] = t.Root()
			continue
		}
		parent, ok := ids[rec.Parent]
		if !ok {
			return nil, "", fmt.Errorf("%s: node %d references unknown parent %d", path, rec.ID, rec.Parent)
		}
		id := t.NewChild(parent, rec.Name)
		n := t.Get(id)
		n.Filename = rec.Filename
		n.Line = rec.Line
		if rec.HasValue {
			n.SetValue(rec.Value)
		}
		if rec.HasOrig {
			n.SetOrigValue(rec.Orig)
		}
		ids[rec.ID] = id
	}
	return t, p.ServerRoot, nil
}
