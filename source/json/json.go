// Package json tokenizes JSON with encoding/json. It is the reference driver
// used to cross-check the default go-json tokenizer.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	eng "github.com/reoring/jsonparser/internal/engine"
)

type frame struct {
	object    bool
	expectKey bool
}

type source struct {
	dec   *json.Decoder
	stack []frame
	last  int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, last: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.last = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{object: true, expectKey: true})
			return eng.Token{Kind: eng.KindBeginObject, Offset: s.last}, nil
		case '[':
			s.stack = append(s.stack, frame{})
			return eng.Token{Kind: eng.KindBeginArray, Offset: s.last}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: s.last}, nil
		default:
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: s.last}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].object && s.stack[n-1].expectKey {
			s.stack[n-1].expectKey = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: s.last}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: s.last}, nil
	case json.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: s.last}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: s.last}, nil
	default:
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: s.last}, nil
	}
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

// valueDone re-arms key expectation once an object member value is complete.
func (s *source) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].object {
		s.stack[n-1].expectKey = true
	}
}

func (s *source) Location() int64 { return s.last }
