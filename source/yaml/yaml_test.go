package yaml_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	eng "github.com/reoring/jsonparser/internal/engine"
	yamlsrc "github.com/reoring/jsonparser/source/yaml"
)

func kinds(t *testing.T, ts eng.TokenSource) []eng.Kind {
	t.Helper()
	var out []eng.Kind
	for {
		tok, err := ts.NextToken()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("next token: %v", err)
		}
		out = append(out, tok.Kind)
	}
}

func TestNewReader_ExpandsAliases(t *testing.T) {
	ts, err := yamlsrc.NewReader(strings.NewReader("base: &b {x: 1}\nuse: *b\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// { base { x 1 } use { x 1 } }
	if got := kinds(t, ts); len(got) != 12 {
		t.Fatalf("expected 12 tokens, got %d", len(got))
	}
}

// nestedAliases builds a document in which every level repeats the previous
// one nine times, so its expansion grows by a factor of nine per level.
func nestedAliases(levels int) string {
	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		ref := fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&b, "l%d: &l%d [%s]\n", i, i, strings.Repeat(ref+", ", 8)+ref)
	}
	return b.String()
}

func TestNewReader_RejectsAliasBlowup(t *testing.T) {
	in := nestedAliases(6)
	if len(in) > 400 {
		t.Fatalf("input unexpectedly large: %d bytes", len(in))
	}
	_, err := yamlsrc.NewReader(strings.NewReader(in))
	if !errors.Is(err, yamlsrc.ErrAliasExpansion) {
		t.Fatalf("expected ErrAliasExpansion, got %v", err)
	}
}

func TestNewReader_SmallAliasTreeFits(t *testing.T) {
	if _, err := yamlsrc.NewReader(strings.NewReader(nestedAliases(1))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
