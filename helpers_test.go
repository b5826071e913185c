package jsonparser_test

import (
	"context"
	"testing"

	jp "github.com/reoring/jsonparser"
)

func doc(t *testing.T, js string) jp.Node {
	t.Helper()
	n, err := jp.ReadDocument(context.Background(), jp.JSONBytes([]byte(js)))
	if err != nil {
		t.Fatalf("read %q: %v", js, err)
	}
	return n
}

type wantErr struct {
	path   string
	reason jp.Reason
}

func at(path string, reason jp.Reason) wantErr { return wantErr{path: path, reason: reason} }

func expectErrors[T any](t *testing.T, r jp.Result[T], wants ...wantErr) {
	t.Helper()
	if r.IsOk() {
		v, _ := r.Value()
		t.Fatalf("expected %d errors, got success %v", len(wants), v)
	}
	errs := r.Errors()
	if len(errs) != len(wants) {
		t.Fatalf("expected %d errors, got %d: %v", len(wants), len(errs), errs)
	}
	for i, w := range wants {
		if got := errs[i].Path.Pointer(); got != w.path {
			t.Fatalf("error %d: path = %q, want %q (%v)", i, got, w.path, errs)
		}
		if errs[i].Reason != w.reason {
			t.Fatalf("error %d: reason = %#v, want %#v", i, errs[i].Reason, w.reason)
		}
	}
}

func expectValue[T comparable](t *testing.T, r jp.Result[T], want T) {
	t.Helper()
	v, ok := r.Value()
	if !ok {
		t.Fatalf("expected %v, got errors %v", want, r.Errors())
	}
	if v != want {
		t.Fatalf("got %v, want %v", v, want)
	}
}
