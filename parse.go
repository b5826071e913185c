package jsonparser

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/jsonparser/i18n"
	eng "github.com/reoring/jsonparser/internal/engine"
)

// ErrMaxBytes is returned when a reader exceeds ParseOpt.MaxBytes.
var ErrMaxBytes = errors.New("jsonparser: max bytes exceeded")

// ReadError is an enforcement violation found while reading a document, such
// as a duplicate key under Strictness Error or a nesting depth over MaxDepth.
type ReadError struct {
	Code    string
	Path    string // JSON Pointer
	Message string
}

func (e *ReadError) Error() string { return e.Code + " at " + e.Path + ": " + e.Message }

// ReadDocument consumes src and builds the document tree. Failures here are
// reader failures (malformed input, enforcement limits, cancellation) and are
// returned as plain errors, never as Errors. Enforcement violations can be
// extracted with errors.As into *ReadError.
func ReadDocument(ctx context.Context, src Source, opts ...ParseOpt) (Node, error) {
	opt := lastOpt(opts)
	ts := eng.WrapWithEnforcement(toEngine(src), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		Warn:        warnSink(opt.OnWarning),
	})
	v, err := eng.Decode(ctx, ts)
	if err != nil {
		var ie eng.IssueError
		if errors.As(err, &ie) {
			re := &ReadError{Code: ie.Code, Path: ie.Path, Message: issueMessage(ie.Issue)}
			if ie.Code == eng.CodeTruncated {
				return Node{}, fmt.Errorf("%w: %w", ErrMaxBytes, re)
			}
			return Node{}, fmt.Errorf("jsonparser: read document: %w", re)
		}
		return Node{}, fmt.Errorf("jsonparser: read document: %w", err)
	}
	return Node{v: v}, nil
}

// ParseFrom reads a document from src and runs p on it. Parse failures are
// returned as Errors; reader failures are returned as they are.
func ParseFrom[T any](ctx context.Context, p Parser[T], src Source, opts ...ParseOpt) (T, error) {
	root, err := ReadDocument(ctx, src, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Document(root, p).Unwrap()
}

// ParseBytes is ParseFrom over a JSON byte slice using the current driver.
func ParseBytes[T any](ctx context.Context, p Parser[T], data []byte, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		var zero T
		return zero, ErrMaxBytes
	}
	return ParseFrom(ctx, p, JSONBytes(data), opts...)
}

// StreamParse reads JSON from r. When MaxBytes is set the input is capped up
// front so an oversized body is never buffered in full.
func StreamParse[T any](ctx context.Context, p Parser[T], r io.Reader, opts ...ParseOpt) (T, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			var zero T
			return zero, fmt.Errorf("jsonparser: read input: %w", err)
		}
		return ParseBytes(ctx, p, data, opts...)
	}
	return ParseFrom(ctx, p, JSONReader(r), opts...)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

func warnSink(f func(Warning)) func(eng.Issue) {
	if f == nil {
		return nil
	}
	return func(is eng.Issue) { f(Warning{Code: is.Code, Path: is.Path, Message: issueMessage(is)}) }
}

func issueMessage(is eng.Issue) string { return i18n.T(is.Code, is.Data) }
