package jsonparser

// ParserContext pairs a node with the path that reached it. It is an
// immutable value; descending produces a new context and leaves the parent
// usable for sibling lookups.
type ParserContext struct {
	node Node
	path Path
}

// NewContext builds a context for node at path. Document is the usual way to
// obtain a root context.
func NewContext(node Node, path Path) ParserContext {
	return ParserContext{node: node, path: path}
}

// Node returns the current node.
func (c ParserContext) Node() Node { return c.node }

// Path returns the path from the document root to the current node.
func (c ParserContext) Path() Path { return c.path }

// Kind returns the JSON kind of the current node.
func (c ParserContext) Kind() Kind { return c.node.Kind() }

// Property descends into the member called name. It reports false both when
// the node is not an object and when the key is absent.
func (c ParserContext) Property(name string) (ParserContext, bool) {
	if c.node.Kind() != KindObject {
		return ParserContext{}, false
	}
	child, ok := c.node.Lookup(name)
	if !ok {
		return ParserContext{}, false
	}
	return ParserContext{node: child, path: c.path.Field(name)}, true
}

// Elements returns a context per child: index segments for arrays, property
// segments in document order for objects, nothing for scalars.
func (c ParserContext) Elements() []ParserContext {
	switch c.node.Kind() {
	case KindArray:
		out := make([]ParserContext, c.node.Len())
		for i := range out {
			child, _ := c.node.Index(i)
			out[i] = ParserContext{node: child, path: c.path.Index(i)}
		}
		return out
	case KindObject:
		keys := c.node.Keys()
		out := make([]ParserContext, len(keys))
		for i, k := range keys {
			out[i] = ParserContext{node: c.node.member(i), path: c.path.Field(k)}
		}
		return out
	default:
		return nil
	}
}
