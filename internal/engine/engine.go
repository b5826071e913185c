package engine

import (
	"context"
	"errors"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string // raw literal as written in the input
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrUnexpectedToken reports a token stream that does not describe a single value.
var ErrUnexpectedToken = errors.New("engine: unexpected token")

// ErrTrailingData reports tokens left over after the root value.
var ErrTrailingData = errors.New("engine: trailing data after document")

// cancelCheckEvery bounds how often the builder polls the context.
const cancelCheckEvery = 1024

type builder struct {
	ctx context.Context
	src TokenSource
	n   int
}

func (b *builder) next() (Token, error) {
	b.n++
	if b.n%cancelCheckEvery == 0 {
		if err := b.ctx.Err(); err != nil {
			return Token{}, err
		}
	}
	return b.src.NextToken()
}

// Decode builds a Value tree from the token source. Exactly one root value is
// expected; trailing tokens are reported as ErrTrailingData.
func Decode(ctx context.Context, src TokenSource) (*Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := &builder{ctx: ctx, src: src}
	tok, err := b.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := b.value(tok)
	if err != nil {
		return nil, err
	}
	if _, err := b.next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

func (b *builder) value(tok Token) (*Value, error) {
	switch tok.Kind {
	case KindBeginObject:
		return b.object()
	case KindBeginArray:
		return b.array()
	case KindString:
		return &Value{Kind: ValueString, Text: tok.String}, nil
	case KindNumber:
		return &Value{Kind: ValueNumber, Text: tok.Number}, nil
	case KindBool:
		return &Value{Kind: ValueBool, Bool: tok.Bool}, nil
	case KindNull:
		return &Value{Kind: ValueNull}, nil
	default:
		return nil, ErrUnexpectedToken
	}
}

func (b *builder) object() (*Value, error) {
	obj := &Value{Kind: ValueObject}
	for {
		tok, err := b.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndObject {
			return obj, nil
		}
		if tok.Kind != KindKey {
			return nil, ErrUnexpectedToken
		}
		vt, err := b.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		v, err := b.value(vt)
		if err != nil {
			return nil, err
		}
		obj.set(tok.String, v)
	}
}

func (b *builder) array() (*Value, error) {
	arr := &Value{Kind: ValueArray}
	for {
		tok, err := b.next()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := b.value(tok)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, v)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// SliceSource replays a pre-built token list. Readers that materialise their
// own tree (YAML) emit tokens through it so enforcement applies uniformly.
type SliceSource struct {
	Tokens []Token
	pos    int
}

func (s *SliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.Tokens) {
		return Token{}, io.EOF
	}
	t := s.Tokens[s.pos]
	s.pos++
	return t, nil
}

func (s *SliceSource) Location() int64 {
	if s.pos == 0 || s.pos > len(s.Tokens) {
		return -1
	}
	return s.Tokens[s.pos-1].Offset
}
