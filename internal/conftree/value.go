package conftree

import "aconf/internal/lexer"

// Value holds a directive value in both of its forms: the raw string and the
// ordered element sequence. The two are kept consistent by the constructors
// and by the node setters; a caller that mutates the slice returned by Elems
// in place takes responsibility for the pair drifting apart.
//
// An undefined value is represented by the absence of a *Value, never by a
// partially filled one, so "both defined or neither" holds structurally.
type Value struct {
	str   string
	elems []string
}

// NewValue builds a Value by tokenizing raw.
func NewValue(raw string) *Value {
	return &Value{str: raw, elems: lexer.SplitValue(raw)}
}

// ValueFromElems builds a Value by formatting elems into canonical string
// form. The slice is used as-is, not copied.
func ValueFromElems(elems []string) *Value {
	if elems == nil {
		elems = []string{}
	}
	return &Value{str: lexer.JoinValue(elems), elems: elems}
}

// String returns the raw string form.
func (v *Value) String() string {
	return v.str
}

// Elems returns the live element sequence.
func (v *Value) Elems() []string {
	return v.elems
}

// First returns the first element, or "" if there is none.
func (v *Value) First() string {
	if len(v.elems) == 0 {
		return ""
	}
	return v.elems[0]
}

// SetFirst replaces the first element and regenerates the string form.
func (v *Value) SetFirst(elem string) {
	if len(v.elems) == 0 {
		v.elems = []string{elem}
	} else {
		v.elems[0] = elem
	}
	v.str = lexer.JoinValue(v.elems)
}

// Clone returns an independent copy.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	elems := make([]string, len(v.elems))
	copy(elems, v.elems)
	return &Value{str: v.str, elems: elems}
}
