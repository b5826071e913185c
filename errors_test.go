package jsonparser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	jp "github.com/reoring/jsonparser"
)

func TestReasonMessages(t *testing.T) {
	cases := []struct {
		reason jp.Reason
		code   string
		want   string
	}{
		{jp.MissingProperty{Name: "id"}, jp.CodeMissingProperty, "id"},
		{jp.UnexpectedType{Expected: jp.KindString, Actual: jp.KindNumber}, jp.CodeUnexpectedType, "string"},
		{jp.UnexpectedType{Expected: jp.KindArray, Actual: jp.KindArray, Arity: 2, Length: 5}, jp.CodeUnexpectedType, "5"},
		{jp.ValueOutOfRange{Target: jp.TargetInt32, Raw: "1e3"}, jp.CodeValueOutOfRange, "1e3"},
		{jp.UserError{Text: "too short"}, jp.CodeUserError, "too short"},
	}
	for _, c := range cases {
		if c.reason.Code() != c.code {
			t.Fatalf("%#v: code = %s, want %s", c.reason, c.reason.Code(), c.code)
		}
		if !strings.Contains(c.reason.Message(), c.want) {
			t.Fatalf("%#v: message %q does not mention %q", c.reason, c.reason.Message(), c.want)
		}
	}
}

func TestReasonParams(t *testing.T) {
	p := jp.UnexpectedType{Expected: jp.KindArray, Actual: jp.KindArray, Arity: 3, Length: 1}.Params()
	if p["arity"] != 3 || p["length"] != 1 || p["expected"] != "array" {
		t.Fatalf("unexpected params %v", p)
	}
	if _, ok := (jp.UnexpectedType{Expected: jp.KindBool, Actual: jp.KindNull}).Params()["arity"]; ok {
		t.Fatalf("arity must be omitted for plain type mismatches")
	}
}

func TestPathedError_Error(t *testing.T) {
	e := jp.PathedError{Path: jp.Root().Field("a").Index(0), Reason: jp.UserError{Text: "bad"}}
	if got := e.Error(); got != "/a/0: bad" {
		t.Fatalf("got %q", got)
	}
}

func TestErrors_Error(t *testing.T) {
	errs := jp.Errors{
		{Path: jp.Root().Field("a"), Reason: jp.MissingProperty{Name: "x"}},
		{Path: jp.Root().Field("b"), Reason: jp.UserError{Text: "y"}},
		{Path: jp.Root(), Reason: jp.UserError{Text: "z"}},
		{Path: jp.Root().Index(4), Reason: jp.UserError{Text: "w"}},
	}
	want := "missing_property at /a; user_error at /b; user_error at /; ... (total 4)"
	if got := errs.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := errs[:1].Error(); got != "missing_property at /a" {
		t.Fatalf("got %q", got)
	}
}

func TestAsErrors_Wrapped(t *testing.T) {
	errs := jp.Errors{{Path: jp.Root(), Reason: jp.UserError{Text: "x"}}}
	wrapped := fmt.Errorf("handler: %w", errs)
	got, ok := jp.AsErrors(wrapped)
	if !ok || len(got) != 1 {
		t.Fatalf("AsErrors failed on wrapped error")
	}
	if _, ok := jp.AsErrors(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Errors")
	}
	if _, ok := jp.AsErrors(nil); ok {
		t.Fatalf("nil is not Errors")
	}
}

func TestAppendErrors(t *testing.T) {
	a := jp.PathedError{Path: jp.Root(), Reason: jp.UserError{Text: "a"}}
	b := jp.PathedError{Path: jp.Root(), Reason: jp.UserError{Text: "b"}}
	base := jp.Errors{a}
	out := jp.AppendErrors(base, b, a)
	if len(out) != 3 || out[1].Reason != b.Reason || out[2].Reason != a.Reason {
		t.Fatalf("unexpected %v", out)
	}
	if len(base) != 1 {
		t.Fatalf("AppendErrors modified its input")
	}
}
