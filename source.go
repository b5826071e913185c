package jsonparser

import (
	"bytes"
	"io"
	"sync"

	eng "github.com/reoring/jsonparser/internal/engine"
	"github.com/reoring/jsonparser/source/gojson"
	stdjson "github.com/reoring/jsonparser/source/json"
	yamlsrc "github.com/reoring/jsonparser/source/yaml"
)

// TokenKind enumerates JSON token kinds produced by a Source. Values mirror
// the internal engine kinds one for one.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in the input stream. Number holds the literal as
// written so that no precision is lost before a parser sees it. Offset is the
// byte position when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string
	Number string
	Bool   bool
	Offset int64
}

// Source is a document reader. NextToken returns io.EOF after the last token.
// Implement it to plug a tokenizer of your own into ReadDocument.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source. The default is backed by
// goccy/go-json and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json driver.
func UseDefaultJSONDriver() { SetJSONDriver(goJSONDriver{}) }

// StdJSONDriver returns a driver backed by encoding/json. Unlike the default
// driver it tokenizes a reader incrementally instead of buffering it first.
func StdJSONDriver() JSONDriver { return stdJSONDriver{} }

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return &engineSource{inner: gojson.NewReader(r)} }
func (goJSONDriver) NewBytes(b []byte) Source     { return &engineSource{inner: gojson.NewBytes(b)} }
func (goJSONDriver) Name() string                 { return "go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) NewReader(r io.Reader) Source { return &engineSource{inner: stdjson.NewReader(r)} }
func (stdJSONDriver) NewBytes(b []byte) Source     { return &engineSource{inner: stdjson.NewBytes(b)} }
func (stdJSONDriver) Name() string                 { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// YAMLBytes reads a single YAML document. Decoding happens eagerly; a
// malformed document surfaces as an error from the first NextToken call.
func YAMLBytes(b []byte) Source { return YAMLReader(bytes.NewReader(b)) }

// YAMLReader is YAMLBytes for an io.Reader.
func YAMLReader(r io.Reader) Source {
	ts, err := yamlsrc.NewReader(r)
	if err != nil {
		return &errSource{err: err}
	}
	return &engineSource{inner: ts}
}

type errSource struct{ err error }

func (s *errSource) NextToken() (Token, error) { return Token{}, s.err }
func (s *errSource) Location() int64           { return -1 }

// engineSource exposes an internal token source through the public Source
// interface.
type engineSource struct {
	inner eng.TokenSource
}

func (s *engineSource) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}

func (s *engineSource) Location() int64 { return s.inner.Location() }

// engineTokens is the reverse adapter used by ReadDocument.
type engineTokens struct{ inner Source }

func (a *engineTokens) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: eng.Kind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}

func (a *engineTokens) Location() int64 { return a.inner.Location() }

func toEngine(s Source) eng.TokenSource {
	if es, ok := s.(*engineSource); ok {
		return es.inner
	}
	return &engineTokens{inner: s}
}
