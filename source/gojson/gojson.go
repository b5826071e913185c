// Package gojson tokenizes JSON with goccy/go-json. It backs the default
// driver of the root package.
//
// The go-json token stream skips separators without checking them, so input
// is validated as a whole before it is tokenized. The validation uses
// encoding/json: go-json's Valid accepts truncated literals such as nul and
// leading zeros, and rejects numbers beyond float64 range.
package gojson

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/jsonparser/internal/engine"
)

type frame struct {
	object    bool
	expectKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
	err   error
}

// ErrInvalidJSON is returned for input that is not a single well-formed JSON value.
var ErrInvalidJSON = errors.New("gojson: invalid JSON")

// NewReader reads r fully and returns an engine.TokenSource over it.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(b)
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource {
	if !stdjson.Valid(b) {
		return &source{err: invalid(b)}
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &source{dec: dec}
}

// invalid describes why b is rejected, using the decoder's own diagnostics.
func invalid(b []byte) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return io.ErrUnexpectedEOF
	}
	var discard any
	if err := stdjson.Unmarshal(b, &discard); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return ErrInvalidJSON
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	off := s.dec.InputOffset()
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{object: true, expectKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: off}, nil
		case '[':
			s.stack = append(s.stack, frame{})
			return eng.Token{Kind: eng.KindBeginArray, Offset: off}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: off}, nil
		default:
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: off}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].object && s.stack[n-1].expectKey {
			s.stack[n-1].expectKey = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: off}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: off}, nil
	case j.Number:
		s.valueDone()
		// the literal aliases the decoder buffer
		return eng.Token{Kind: eng.KindNumber, Number: strings.Clone(string(v)), Offset: off}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: off}, nil
	default:
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: off}, nil
	}
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].object {
		s.stack[n-1].expectKey = true
	}
}

func (s *source) Location() int64 {
	if s.dec == nil {
		return -1
	}
	return s.dec.InputOffset()
}

// IsNumberLiteral reports whether text is a JSON number literal.
func IsNumberLiteral(text string) bool {
	if text == "" {
		return false
	}
	if c := text[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return stdjson.Valid([]byte(text))
}
