package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls how repeated object keys are treated.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// Issue codes raised by enforcement.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
)

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// Warn receives non-fatal issues (DupWarn). Nil drops them.
	Warn func(Issue)
}

// Issue is a reader-level problem located by JSON Pointer. Data holds the
// fields a message catalog needs to render Code ("key", "max").
type Issue struct {
	Code    string
	Path    string
	Message string
	Data    map[string]string
}

// IssueError is a fatal enforcement violation.
type IssueError struct{ Issue }

func (e IssueError) Error() string { return e.Path + ": " + e.Message }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind       containerKind
	keys       map[string]struct{}
	path       string
	nextIndex  int
	pendingKey string
}

// WrapWithEnforcement returns a TokenSource that enforces duplicate key policy,
// maximum nesting depth, and maximum consumed bytes.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	if opt.OnDuplicate == DupIgnore && opt.MaxDepth == 0 && opt.MaxBytes == 0 {
		return inner
	}
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		path := e.childPath()
		f := frame{kind: kindArray, path: path}
		if tok.Kind == KindBeginObject {
			f = frame{kind: kindObject, keys: make(map[string]struct{}), path: path}
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, IssueError{Issue{
				Code:    CodeMaxDepth,
				Path:    pointerOrRoot(path),
				Message: "max depth exceeded",
				Data:    map[string]string{"max": strconv.Itoa(e.opt.MaxDepth)},
			}}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		e.valueDone()
	case KindKey:
		if n := len(e.stack); n > 0 && e.stack[n-1].kind == kindObject {
			top := &e.stack[n-1]
			if _, ok := top.keys[tok.String]; ok && e.opt.OnDuplicate != DupIgnore {
				is := Issue{
					Code:    CodeDuplicateKey,
					Path:    joinPointer(top.path, tok.String),
					Message: "key '" + tok.String + "' duplicated",
					Data:    map[string]string{"key": tok.String},
				}
				if e.opt.OnDuplicate == DupError {
					return Token{}, IssueError{is}
				}
				if e.opt.Warn != nil {
					e.opt.Warn(is)
				}
			}
			top.keys[tok.String] = struct{}{}
			top.pendingKey = tok.String
		}
	default:
		e.childPath()
		e.valueDone()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, IssueError{Issue{
				Code:    CodeTruncated,
				Path:    "/",
				Message: "max bytes exceeded",
				Data:    map[string]string{"max": strconv.FormatInt(e.opt.MaxBytes, 10)},
			}}
		}
	}
	return tok, nil
}

// childPath returns the pointer of the value that starts at the current token
// and advances the array index of the enclosing container.
func (e *enforcingTokenSource) childPath() string {
	if len(e.stack) == 0 {
		return ""
	}
	top := &e.stack[len(e.stack)-1]
	if top.kind == kindArray {
		p := joinPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return joinPointer(top.path, top.pendingKey)
}

func (e *enforcingTokenSource) valueDone() {
	if n := len(e.stack); n > 0 && e.stack[n-1].kind == kindObject {
		e.stack[n-1].pendingKey = ""
	}
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
