package jsonparser

import eng "github.com/reoring/jsonparser/internal/engine"

// Node is a read-only handle into an already-parsed document tree. Nodes are
// produced by ReadDocument or FromValue; the zero Node is a JSON null.
type Node struct {
	v *eng.Value
}

// FromValue adapts a tree decoded elsewhere (for example by json.Unmarshal
// with UseNumber) into a Node. Object keys are ordered lexicographically.
func FromValue(v any) (Node, error) {
	ev, err := eng.FromAny(v)
	if err != nil {
		return Node{}, err
	}
	return Node{v: ev}, nil
}

// Kind reports the JSON kind of the node.
func (n Node) Kind() Kind {
	if n.v == nil {
		return KindNull
	}
	return fromValueKind(n.v.Kind)
}

// Bool returns the boolean payload; false for other kinds.
func (n Node) Bool() bool { return n.v != nil && n.v.Bool }

// Text returns the string contents of a string node, or the number literal
// exactly as written in the source for a number node.
func (n Node) Text() string {
	if n.v == nil {
		return ""
	}
	return n.v.Text
}

// Len returns the number of children of an array or object.
func (n Node) Len() int {
	if n.v == nil {
		return 0
	}
	return len(n.v.Items)
}

// Keys returns object keys in document order. The slice must not be modified.
func (n Node) Keys() []string {
	if n.v == nil || n.v.Kind != eng.ValueObject {
		return nil
	}
	return n.v.Keys
}

// Index returns the i-th array element.
func (n Node) Index(i int) (Node, bool) {
	if n.v == nil || n.v.Kind != eng.ValueArray || i < 0 || i >= len(n.v.Items) {
		return Node{}, false
	}
	return Node{v: n.v.Items[i]}, true
}

// Lookup returns the member stored under name.
func (n Node) Lookup(name string) (Node, bool) {
	c, ok := n.v.Lookup(name)
	if !ok {
		return Node{}, false
	}
	return Node{v: c}, true
}

// member returns the i-th object member value.
func (n Node) member(i int) Node { return Node{v: n.v.Items[i]} }
