package jsonparser

// Composition rules:
//
//   - Bind sequences dependent steps and stops at the first failure.
//   - Combine joins independent steps and keeps every error, left to right.
//
// Use Bind only when the next step needs the previous value to decide what to
// parse or what to validate against; use Combine everywhere else so one parse
// reports as many problems as possible.

// Pair is the value of two combined results.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value of three combined results.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the value of four combined results.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Map transforms a success value and passes errors through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.IsOk() {
		return fail[U](r)
	}
	return Ok(f(r.value))
}

// Bind runs f on the value of r. When r failed, f is never called and the
// failure is returned untouched.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.IsOk() {
		return fail[U](r)
	}
	return f(r.value)
}

// Combine pairs two independent results. If either failed, the result holds
// the errors of a followed by those of b and any success value is dropped.
func Combine[A, B any](a Result[A], b Result[B]) Result[Pair[A, B]] {
	if errs := concat(a.errs, b.errs); len(errs) > 0 {
		return Result[Pair[A, B]]{errs: errs}
	}
	return Ok(Pair[A, B]{First: a.value, Second: b.value})
}

// Combine3 is Combine for three independent results.
func Combine3[A, B, C any](a Result[A], b Result[B], c Result[C]) Result[Triple[A, B, C]] {
	if errs := concat(a.errs, b.errs, c.errs); len(errs) > 0 {
		return Result[Triple[A, B, C]]{errs: errs}
	}
	return Ok(Triple[A, B, C]{First: a.value, Second: b.value, Third: c.value})
}

// Combine4 is Combine for four independent results.
func Combine4[A, B, C, D any](a Result[A], b Result[B], c Result[C], d Result[D]) Result[Quad[A, B, C, D]] {
	if errs := concat(a.errs, b.errs, c.errs, d.errs); len(errs) > 0 {
		return Result[Quad[A, B, C, D]]{errs: errs}
	}
	return Ok(Quad[A, B, C, D]{First: a.value, Second: b.value, Third: c.value, Fourth: d.value})
}

// Map2 combines two independent results and builds a value from them.
func Map2[A, B, R any](a Result[A], b Result[B], f func(A, B) R) Result[R] {
	return Map(Combine(a, b), func(p Pair[A, B]) R { return f(p.First, p.Second) })
}

// Map3 combines three independent results and builds a value from them.
func Map3[A, B, C, R any](a Result[A], b Result[B], c Result[C], f func(A, B, C) R) Result[R] {
	return Map(Combine3(a, b, c), func(t Triple[A, B, C]) R { return f(t.First, t.Second, t.Third) })
}

// Map4 combines four independent results and builds a value from them.
func Map4[A, B, C, D, R any](a Result[A], b Result[B], c Result[C], d Result[D], f func(A, B, C, D) R) Result[R] {
	return Map(Combine4(a, b, c, d), func(q Quad[A, B, C, D]) R { return f(q.First, q.Second, q.Third, q.Fourth) })
}

// Sequence collects independent results in order, accumulating the errors of
// every failed element.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	var errs Errors
	for _, r := range rs {
		errs = append(errs, r.errs...)
	}
	if len(errs) > 0 {
		return Result[[]T]{errs: errs}
	}
	out := make([]T, len(rs))
	for i, r := range rs {
		out[i] = r.value
	}
	return Ok(out)
}

// MapParser lifts f over the output of p.
func MapParser[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(ctx ParserContext) Result[U] { return Map(p(ctx), f) }
}

// Refine runs check on the value produced by p, at the same context. check is
// skipped when p fails.
func Refine[T any](p Parser[T], check func(ParserContext, T) Result[T]) Parser[T] {
	return func(ctx ParserContext) Result[T] {
		return Bind(p(ctx), func(v T) Result[T] { return check(ctx, v) })
	}
}

func concat(lists ...Errors) Errors {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	out := make(Errors, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
