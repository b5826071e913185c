package jsonparser

import "fmt"

// Result is either a parsed value or a non-empty, ordered list of errors.
type Result[T any] struct {
	value T
	errs  Errors
}

// Parser extracts a T from the node addressed by a ParserContext.
type Parser[T any] func(ParserContext) Result[T]

// Ok wraps a successfully parsed value.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Fail builds a failed result. At least one error is required; an empty list
// is a programming error and panics.
func Fail[T any](errs ...PathedError) Result[T] {
	if len(errs) == 0 {
		panic("jsonparser: Fail requires at least one error")
	}
	return Result[T]{errs: append(Errors(nil), errs...)}
}

// LiftError fails with reason located at the path of ctx. It is the only
// place a path is attached to a reason.
func LiftError[T any](ctx ParserContext, reason Reason) Result[T] {
	return Result[T]{errs: Errors{{Path: ctx.Path(), Reason: reason}}}
}

// UserErrorf fails with a formatted UserError at the path of ctx.
func UserErrorf[T any](ctx ParserContext, format string, args ...any) Result[T] {
	return LiftError[T](ctx, UserError{Text: fmt.Sprintf(format, args...)})
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return len(r.errs) == 0 }

// Value returns the parsed value and true on success.
func (r Result[T]) Value() (T, bool) {
	if len(r.errs) > 0 {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Errors returns the errors of a failed result in discovery order.
func (r Result[T]) Errors() Errors { return r.errs }

// Unwrap converts the result into Go's (value, error) convention. The error
// is of type Errors.
func (r Result[T]) Unwrap() (T, error) {
	if len(r.errs) > 0 {
		var zero T
		return zero, r.errs
	}
	return r.value, nil
}

// fail re-types a failed result without touching its errors.
func fail[U, T any](r Result[T]) Result[U] { return Result[U]{errs: r.errs} }
