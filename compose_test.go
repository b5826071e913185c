package jsonparser_test

import (
	"testing"

	jp "github.com/reoring/jsonparser"
)

func TestBind_SkipsContinuationOnFailure(t *testing.T) {
	n := doc(t, `{"a": "x"}`)
	called := false
	r := jp.Document(n, func(ctx jp.ParserContext) jp.Result[int32] {
		return jp.Bind(jp.Prop(ctx, "a", jp.Int32), func(v int32) jp.Result[int32] {
			called = true
			return jp.Ok(v)
		})
	})
	if called {
		t.Fatalf("continuation must not run after a failure")
	}
	expectErrors(t, r, at("/a", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindString}))
}

func TestBind_FeedsValueForward(t *testing.T) {
	// "value" is validated against the already parsed "limit"
	p := func(ctx jp.ParserContext) jp.Result[int32] {
		return jp.Bind(jp.Prop(ctx, "limit", jp.Int32), func(limit int32) jp.Result[int32] {
			return jp.Prop(ctx, "value", jp.Refine(jp.Int32, func(c jp.ParserContext, v int32) jp.Result[int32] {
				if v > limit {
					return jp.UserErrorf[int32](c, "must be at most %d", limit)
				}
				return jp.Ok(v)
			}))
		})
	}
	expectValue(t, jp.Document(doc(t, `{"limit":10,"value":3}`), p), int32(3))
	expectErrors(t, jp.Document(doc(t, `{"limit":10,"value":30}`), p),
		at("/value", jp.UserError{Text: "must be at most 10"}))
}

func TestCombine_KeepsErrorsLeftToRight(t *testing.T) {
	n := doc(t, `{"a": true, "b": "s"}`)
	r := jp.Document(n, func(ctx jp.ParserContext) jp.Result[jp.Pair[string, int32]] {
		return jp.Combine(jp.Prop(ctx, "a", jp.String), jp.Prop(ctx, "b", jp.Int32))
	})
	expectErrors(t, r,
		at("/a", jp.UnexpectedType{Expected: jp.KindString, Actual: jp.KindBool}),
		at("/b", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindString}),
	)

	r2 := jp.Document(n, func(ctx jp.ParserContext) jp.Result[jp.Pair[int32, string]] {
		return jp.Combine(jp.Prop(ctx, "b", jp.Int32), jp.Prop(ctx, "a", jp.String))
	})
	expectErrors(t, r2,
		at("/b", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindString}),
		at("/a", jp.UnexpectedType{Expected: jp.KindString, Actual: jp.KindBool}),
	)
}

func TestCombine_OneSideFails(t *testing.T) {
	n := doc(t, `{"a": "ok"}`)
	r := jp.Document(n, func(ctx jp.ParserContext) jp.Result[jp.Pair[string, bool]] {
		return jp.Combine(jp.Prop(ctx, "a", jp.String), jp.Prop(ctx, "b", jp.Bool))
	})
	expectErrors(t, r, at("/", jp.MissingProperty{Name: "b"}))
}

func TestCombine_KeepsRepeatedErrors(t *testing.T) {
	n := doc(t, `{}`)
	r := jp.Document(n, func(ctx jp.ParserContext) jp.Result[jp.Pair[string, string]] {
		a := jp.Prop(ctx, "a", jp.String)
		return jp.Combine(a, a)
	})
	expectErrors(t, r, at("/", jp.MissingProperty{Name: "a"}), at("/", jp.MissingProperty{Name: "a"}))
}

func TestCombine4(t *testing.T) {
	p := func(ctx jp.ParserContext) jp.Result[jp.Quad[string, int32, bool, jp.UnitValue]] {
		return jp.Combine4(
			jp.Prop(ctx, "s", jp.String),
			jp.Prop(ctx, "i", jp.Int32),
			jp.Prop(ctx, "b", jp.Bool),
			jp.Prop(ctx, "u", jp.Unit),
		)
	}
	expectValue(t, jp.Document(doc(t, `{"s":"x","i":1,"b":false,"u":null}`), p),
		jp.Quad[string, int32, bool, jp.UnitValue]{First: "x", Second: 1})
	expectErrors(t, jp.Document(doc(t, `{"s":1,"b":false,"u":0}`), p),
		at("/s", jp.UnexpectedType{Expected: jp.KindString, Actual: jp.KindNumber}),
		at("/", jp.MissingProperty{Name: "i"}),
		at("/u", jp.UnexpectedType{Expected: jp.KindNull, Actual: jp.KindNumber}),
	)
}

func TestMap4(t *testing.T) {
	p := func(ctx jp.ParserContext) jp.Result[string] {
		return jp.Map4(
			jp.Prop(ctx, "a", jp.String),
			jp.Prop(ctx, "b", jp.String),
			jp.Prop(ctx, "c", jp.String),
			jp.Prop(ctx, "d", jp.String),
			func(a, b, c, d string) string { return a + b + c + d },
		)
	}
	expectValue(t, jp.Document(doc(t, `{"a":"w","b":"x","c":"y","d":"z"}`), p), "wxyz")
}

func TestMap_PassesErrorsThrough(t *testing.T) {
	called := false
	r := jp.Map(jp.Document(doc(t, `"s"`), jp.Int32), func(v int32) int64 {
		called = true
		return int64(v)
	})
	if called {
		t.Fatalf("map function ran on a failed result")
	}
	expectErrors(t, r, at("/", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindString}))
}

func TestMapParser(t *testing.T) {
	p := jp.MapParser(jp.String, func(s string) int { return len(s) })
	expectValue(t, jp.Document(doc(t, `"hello"`), p), 5)
}

func TestParsingIsRepeatable(t *testing.T) {
	n := doc(t, `[1, "x", 3]`)
	p := jp.List(jp.Int32)
	first := jp.Document(n, p).Errors()
	second := jp.Document(n, p).Errors()
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one error per run, got %v and %v", first, second)
	}
	if !first[0].Path.Equal(second[0].Path) || first[0].Reason != second[0].Reason {
		t.Fatalf("runs differ: %v vs %v", first, second)
	}
}

func TestSequence(t *testing.T) {
	rs := []jp.Result[int]{jp.Ok(1), jp.Ok(2)}
	v, ok := jp.Sequence(rs).Value()
	if !ok || len(v) != 2 || v[1] != 2 {
		t.Fatalf("got %v", v)
	}
	v, ok = jp.Sequence[int](nil).Value()
	if !ok || len(v) != 0 {
		t.Fatalf("empty sequence should succeed, got %v", v)
	}
}

func TestFail(t *testing.T) {
	e := jp.PathedError{Path: jp.Root().Field("x"), Reason: jp.UserError{Text: "bad"}}
	r := jp.Fail[int](e)
	expectErrors(t, r, at("/x", jp.UserError{Text: "bad"}))

	defer func() {
		if recover() == nil {
			t.Fatalf("Fail with no errors should panic")
		}
	}()
	_ = jp.Fail[int]()
}

func TestUnwrap(t *testing.T) {
	v, err := jp.Document(doc(t, `7`), jp.Int32).Unwrap()
	if err != nil || v != 7 {
		t.Fatalf("got %v, %v", v, err)
	}
	_, err = jp.Document(doc(t, `{}`), jp.PropOf("a", jp.Int32)).Unwrap()
	errs, ok := jp.AsErrors(err)
	if !ok || len(errs) != 1 || errs[0].Reason.Code() != jp.CodeMissingProperty {
		t.Fatalf("expected Errors, got %v", err)
	}
}
