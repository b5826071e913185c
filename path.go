package jsonparser

import (
	"strconv"
	"strings"

	"github.com/theory/jsonpath/spec"
)

// Segment is one step of descent: a property name or an array index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// Name returns a property segment.
func Name(name string) Segment { return Segment{name: name} }

// Index returns an array index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether the segment is an array index.
func (s Segment) IsIndex() bool { return s.isIndex }

// Name returns the property name; empty for index segments.
func (s Segment) Name() string { return s.name }

// Index returns the array index; -1 for property segments.
func (s Segment) Index() int {
	if !s.isIndex {
		return -1
	}
	return s.index
}

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.name
}

// Path is the ordered list of segments from the document root. The zero Path
// is the root. Paths are values: Field and Index never modify the receiver.
type Path struct {
	segs []Segment
}

// Root returns the empty path.
func Root() Path { return Path{} }

// PathOf builds a path from segments.
func PathOf(segs ...Segment) Path {
	if len(segs) == 0 {
		return Path{}
	}
	return Path{segs: append([]Segment(nil), segs...)}
}

// Field returns a copy of p extended by a property segment.
func (p Path) Field(name string) Path { return p.with(Name(name)) }

// Index returns a copy of p extended by an index segment.
func (p Path) Index(i int) Path { return p.with(Index(i)) }

func (p Path) with(s Segment) Path {
	out := make([]Segment, len(p.segs), len(p.segs)+1)
	copy(out, p.segs)
	return Path{segs: append(out, s)}
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// IsRoot reports whether p is the empty path.
func (p Path) IsRoot() bool { return len(p.segs) == 0 }

// Segments returns a copy of the segments.
func (p Path) Segments() []Segment { return append([]Segment(nil), p.segs...) }

// Equal reports whether p and o address the same position.
func (p Path) Equal(o Path) bool {
	if len(p.segs) != len(o.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != o.segs[i] {
			return false
		}
	}
	return true
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders p as a JSON Pointer (RFC 6901). The root renders as "/".
func (p Path) Pointer() string {
	if len(p.segs) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p.segs {
		b.WriteByte('/')
		if s.isIndex {
			b.WriteString(strconv.Itoa(s.index))
		} else {
			b.WriteString(pointerEscaper.Replace(s.name))
		}
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// JSONPath converts p into an RFC 9535 normalized path.
func (p Path) JSONPath() spec.NormalizedPath {
	np := make(spec.NormalizedPath, 0, len(p.segs))
	for _, s := range p.segs {
		if s.isIndex {
			np = append(np, spec.Index(s.index))
		} else {
			np = append(np, spec.Name(s.name))
		}
	}
	return np
}

// NormalizedPath renders p in normalized JSONPath form, e.g. $['items'][2].
func (p Path) NormalizedPath() string { return p.JSONPath().String() }
