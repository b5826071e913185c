// Package yaml reads a single YAML document with gopkg.in/yaml.v3 and replays
// it as JSON tokens. Scalars keep their source text, so numbers written in
// JSON syntax reach the parsers digit for digit.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/jsonparser/internal/engine"
	"github.com/reoring/jsonparser/source/gojson"
)

var (
	// ErrMultipleDocuments is returned when the input holds more than one document.
	ErrMultipleDocuments = errors.New("yaml: expected a single document")
	// ErrAliasExpansion is returned when aliases expand a document far past
	// the size of its source text.
	ErrAliasExpansion = errors.New("yaml: alias expansion exceeds the token budget")
)

// A document may replay at most minTokenBudget tokens plus tokensPerByte
// tokens for every byte read. Documents without aliases stay well below it.
const (
	minTokenBudget = 1024
	tokensPerByte  = 16
)

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// NewReader decodes one YAML document from r.
func NewReader(r io.Reader) (eng.TokenSource, error) {
	cr := &countingReader{r: r}
	dec := yaml.NewDecoder(cr)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrMultipleDocuments
	}
	w := &walker{budget: minTokenBudget + tokensPerByte*cr.n}
	if err := w.node(&doc, 0); err != nil {
		return nil, err
	}
	return &eng.SliceSource{Tokens: w.tokens}, nil
}

// maxAliasDepth stops alias cycles (a: &x [*x]) from recursing forever.
const maxAliasDepth = 10000

type walker struct {
	tokens []eng.Token
	budget int64
}

func (w *walker) emit(t eng.Token) { w.tokens = append(w.tokens, t) }

func (w *walker) node(n *yaml.Node, depth int) error {
	if depth > maxAliasDepth {
		return fmt.Errorf("yaml: line %d: nesting too deep", n.Line)
	}
	if int64(len(w.tokens)) > w.budget {
		return fmt.Errorf("yaml: line %d: %w", n.Line, ErrAliasExpansion)
	}
	off := int64(-1)
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			w.emit(eng.Token{Kind: eng.KindNull, Offset: off})
			return nil
		}
		return w.node(n.Content[0], depth+1)
	case yaml.AliasNode:
		return w.node(n.Alias, depth+1)
	case yaml.SequenceNode:
		w.emit(eng.Token{Kind: eng.KindBeginArray, Offset: off})
		for _, c := range n.Content {
			if err := w.node(c, depth+1); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndArray, Offset: off})
		return nil
	case yaml.MappingNode:
		w.emit(eng.Token{Kind: eng.KindBeginObject, Offset: off})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: line %d: mapping keys must be scalars", k.Line)
			}
			w.emit(eng.Token{Kind: eng.KindKey, String: k.Value, Offset: off})
			if err := w.node(n.Content[i+1], depth+1); err != nil {
				return err
			}
		}
		w.emit(eng.Token{Kind: eng.KindEndObject, Offset: off})
		return nil
	case yaml.ScalarNode:
		t, err := scalar(n)
		if err != nil {
			return err
		}
		w.emit(t)
		return nil
	default:
		return fmt.Errorf("yaml: line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func scalar(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1}, nil
	case "!!int", "!!float":
		text, err := numberText(n)
		if err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindNumber, Number: text, Offset: -1}, nil
	default:
		return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
	}
}

// numberText keeps literals already in JSON syntax and normalizes YAML-only
// spellings (0x1F, 1_000, 0o17).
func numberText(n *yaml.Node) (string, error) {
	if gojson.IsNumberLiteral(n.Value) {
		return n.Value, nil
	}
	if n.ShortTag() == "!!int" {
		var i int64
		if err := n.Decode(&i); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return "", fmt.Errorf("yaml: line %d: %w", n.Line, err)
		}
		return strconv.FormatUint(u, 10), nil
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return "", fmt.Errorf("yaml: line %d: %w", n.Line, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("yaml: line %d: %q has no JSON number form", n.Line, n.Value)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
