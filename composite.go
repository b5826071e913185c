package jsonparser

// Document mints the root context for an already-parsed tree and runs p.
func Document[T any](root Node, p Parser[T]) Result[T] {
	return p(ParserContext{node: root})
}

// Prop parses the member called name with p. A missing key, or a node that is
// not an object at all, reports MissingProperty at the current path; errors
// from p carry the member's own path.
func Prop[T any](ctx ParserContext, name string, p Parser[T]) Result[T] {
	child, ok := ctx.Property(name)
	if !ok {
		return LiftError[T](ctx, MissingProperty{Name: name})
	}
	return p(child)
}

// OptionalProp is Prop for members that may be absent; absence yields nil.
// A non-object node still reports MissingProperty, as Prop does.
func OptionalProp[T any](ctx ParserContext, name string, p Parser[T]) Result[*T] {
	if ctx.Kind() != KindObject {
		return LiftError[*T](ctx, MissingProperty{Name: name})
	}
	child, ok := ctx.Property(name)
	if !ok {
		return Ok[*T](nil)
	}
	return Map(p(child), func(v T) *T { return &v })
}

// Nullable accepts null as nil and otherwise defers to p.
func Nullable[T any](p Parser[T]) Parser[*T] {
	return func(ctx ParserContext) Result[*T] {
		if ctx.Kind() == KindNull {
			return Ok[*T](nil)
		}
		return Map(p(ctx), func(v T) *T { return &v })
	}
}

// PropOf binds Prop to a fixed name, for use where a Parser is expected.
func PropOf[T any](name string, p Parser[T]) Parser[T] {
	return func(ctx ParserContext) Result[T] { return Prop(ctx, name, p) }
}

// List parses every element of an array with elem. All elements are parsed;
// their errors accumulate in array order.
func List[T any](elem Parser[T]) Parser[[]T] {
	return func(ctx ParserContext) Result[[]T] {
		if r, ok := expectKind(ctx, KindArray); !ok {
			return LiftError[[]T](ctx, r)
		}
		children := ctx.Elements()
		rs := make([]Result[T], len(children))
		for i, c := range children {
			rs[i] = elem(c)
		}
		return Sequence(rs)
	}
}

// Entry is one member of an object parsed by Entries.
type Entry[T any] struct {
	Key   string
	Value T
}

// Entries parses every member of an object with p, in document order, and
// accumulates the errors of all members.
func Entries[T any](p Parser[T]) Parser[[]Entry[T]] {
	return func(ctx ParserContext) Result[[]Entry[T]] {
		if r, ok := expectKind(ctx, KindObject); !ok {
			return LiftError[[]Entry[T]](ctx, r)
		}
		keys := ctx.Node().Keys()
		children := ctx.Elements()
		rs := make([]Result[Entry[T]], len(children))
		for i, c := range children {
			key := keys[i]
			rs[i] = Map(p(c), func(v T) Entry[T] { return Entry[T]{Key: key, Value: v} })
		}
		return Sequence(rs)
	}
}

// tupleElements checks that ctx is an array of exactly arity elements.
// A wrong length is reported once at the array's path and no element is
// parsed.
func tupleElements(ctx ParserContext, arity int) ([]ParserContext, Reason) {
	if r, ok := expectKind(ctx, KindArray); !ok {
		return nil, r
	}
	if n := ctx.Node().Len(); n != arity {
		return nil, UnexpectedType{Expected: KindArray, Actual: KindArray, Arity: arity, Length: n}
	}
	return ctx.Elements(), nil
}

// Tuple2 parses a two-element array, reporting errors of both positions.
func Tuple2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(ctx ParserContext) Result[Pair[A, B]] {
		els, r := tupleElements(ctx, 2)
		if r != nil {
			return LiftError[Pair[A, B]](ctx, r)
		}
		return Combine(pa(els[0]), pb(els[1]))
	}
}

// Tuple3 parses a three-element array, reporting errors of every position.
func Tuple3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return func(ctx ParserContext) Result[Triple[A, B, C]] {
		els, r := tupleElements(ctx, 3)
		if r != nil {
			return LiftError[Triple[A, B, C]](ctx, r)
		}
		return Combine3(pa(els[0]), pb(els[1]), pc(els[2]))
	}
}
