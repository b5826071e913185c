// Package middleware parses HTTP request bodies with a jsonparser.Parser and
// answers with structured errors when the body does not fit.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	j "github.com/goccy/go-json"

	jp "github.com/reoring/jsonparser"
	"github.com/reoring/jsonparser/i18n"
)

// ctxKeyValue is a typed context key for storing a parsed T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyValue[T any] struct{}

// ContextWithValue attaches a parsed value to the context.
func ContextWithValue[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyValue[T]{}, v)
}

// ValueFromContext retrieves the value stored by Parse.
func ValueFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyValue[T]{}).(T)
	return v, ok
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries.
// Duplicate keys are errors, nesting is capped at 64 and bodies at 1 MiB.
func DefaultParseOpt() jp.ParseOpt {
	return jp.ParseOpt{
		Strictness: jp.Strictness{OnDuplicateKey: jp.Error},
		MaxDepth:   64,
		MaxBytes:   1 << 20,
	}
}

// ErrorItem is one entry of the 422 response body.
type ErrorItem struct {
	Path     string         `json:"path"`
	JSONPath string         `json:"jsonpath"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Params   map[string]any `json:"params,omitempty"`
}

// ErrorPayload shapes parse errors for JSON responses.
func ErrorPayload(errs jp.Errors) map[string]any {
	items := make([]ErrorItem, 0, len(errs))
	for _, e := range errs {
		items = append(items, ErrorItem{
			Path:     e.Path.Pointer(),
			JSONPath: e.Path.NormalizedPath(),
			Code:     e.Reason.Code(),
			Message:  e.Reason.Message(),
			Params:   e.Reason.Params(),
		})
	}
	return map[string]any{"errors": items}
}

// Parse decodes the request body with p before calling next. The parsed value
// is available to next through ValueFromContext. A body that parses but does
// not fit p is answered with 422 and ErrorPayload; unreadable bodies get 400
// and oversized ones 413. The last opt wins; DefaultParseOpt applies when
// none is given.
func Parse[T any](p jp.Parser[T], log *slog.Logger, opts ...jp.ParseOpt) func(http.Handler) http.Handler {
	opt := DefaultParseOpt()
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := decode(r, p, opt)
			if err != nil {
				status := statusFor(err)
				log.Info("request body rejected",
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"error", err,
				)
				if errs, ok := jp.AsErrors(err); ok {
					writeJSON(w, status, ErrorPayload(errs))
					return
				}
				writeJSON(w, status, readErrorPayload(err, opt.MaxBytes))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v)))
		})
	}
}

func decode[T any](r *http.Request, p jp.Parser[T], opt jp.ParseOpt) (T, error) {
	if r.Body == nil {
		var zero T
		return zero, fmt.Errorf("middleware: empty body: %w", io.ErrUnexpectedEOF)
	}
	defer r.Body.Close()
	if !isYAML(r.Header.Get("Content-Type")) {
		return jp.StreamParse(r.Context(), p, r.Body, opt)
	}
	body := io.Reader(r.Body)
	if opt.MaxBytes > 0 {
		body = io.LimitReader(r.Body, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("middleware: read body: %w", err)
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		var zero T
		return zero, jp.ErrMaxBytes
	}
	return jp.ParseFrom(r.Context(), p, jp.YAMLBytes(data), opt)
}

func isYAML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return true
	}
	return false
}

func statusFor(err error) int {
	if _, ok := jp.AsErrors(err); ok {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, jp.ErrMaxBytes) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func readErrorPayload(err error, maxBytes int64) map[string]any {
	var re *jp.ReadError
	if errors.As(err, &re) {
		return map[string]any{"error": map[string]string{"code": re.Code, "path": re.Path, "message": re.Message}}
	}
	if errors.Is(err, jp.ErrMaxBytes) {
		msg := i18n.T("truncated", map[string]string{"max": strconv.FormatInt(maxBytes, 10)})
		return map[string]any{"error": map[string]string{"code": "truncated", "message": msg}}
	}
	return map[string]any{"error": map[string]string{"code": "parse_error", "message": i18n.T("parse_error", nil)}}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	j.NewEncoder(w).Encode(body)
}
