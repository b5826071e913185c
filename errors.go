package jsonparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/jsonparser/i18n"
)

// Error codes, one per Reason variant.
const (
	CodeMissingProperty = "missing_property"
	CodeUnexpectedType  = "unexpected_type"
	CodeValueOutOfRange = "value_out_of_range"
	CodeUserError       = "user_error"
)

// Reason describes why a parse step failed. The set of variants is closed;
// UserError carries caller-defined failures.
type Reason interface {
	Code() string
	// Message renders the reason with the active i18n translator.
	Message() string
	// Params exposes the structured fields of the reason.
	Params() map[string]any
	isReason()
}

// MissingProperty reports a required object key that is absent, or a lookup
// on a node that is not an object.
type MissingProperty struct {
	Name string
}

func (MissingProperty) Code() string { return CodeMissingProperty }
func (r MissingProperty) Message() string {
	return i18n.T(CodeMissingProperty, map[string]string{"name": r.Name})
}
func (r MissingProperty) Params() map[string]any { return map[string]any{"name": r.Name} }
func (MissingProperty) isReason()                {}

// UnexpectedType reports a node whose kind does not match the parser. Arity
// and Length are set only for tuples whose array length is wrong.
type UnexpectedType struct {
	Expected Kind
	Actual   Kind
	Arity    int
	Length   int
}

func (UnexpectedType) Code() string { return CodeUnexpectedType }
func (r UnexpectedType) Message() string {
	if r.Arity > 0 {
		return i18n.T("unexpected_length", map[string]string{
			"arity":  strconv.Itoa(r.Arity),
			"length": strconv.Itoa(r.Length),
		})
	}
	return i18n.T(CodeUnexpectedType, map[string]string{
		"expected": r.Expected.String(),
		"actual":   r.Actual.String(),
	})
}
func (r UnexpectedType) Params() map[string]any {
	m := map[string]any{"expected": r.Expected.String(), "actual": r.Actual.String()}
	if r.Arity > 0 {
		m["arity"] = r.Arity
		m["length"] = r.Length
	}
	return m
}
func (UnexpectedType) isReason() {}

// ValueOutOfRange reports a number that the target type cannot represent.
type ValueOutOfRange struct {
	Target string
	Raw    string
}

func (ValueOutOfRange) Code() string { return CodeValueOutOfRange }
func (r ValueOutOfRange) Message() string {
	return i18n.T(CodeValueOutOfRange, map[string]string{"target": r.Target, "raw": r.Raw})
}
func (r ValueOutOfRange) Params() map[string]any {
	return map[string]any{"target": r.Target, "raw": r.Raw}
}
func (ValueOutOfRange) isReason() {}

// UserError carries a domain-specific validation failure.
type UserError struct {
	Text string
}

func (UserError) Code() string             { return CodeUserError }
func (r UserError) Message() string        { return r.Text }
func (r UserError) Params() map[string]any { return map[string]any{"message": r.Text} }
func (UserError) isReason()                {}

// PathedError is a Reason located at the path where it was detected.
type PathedError struct {
	Path   Path
	Reason Reason
}

func (e PathedError) Error() string {
	return e.Path.Pointer() + ": " + e.Reason.Message()
}

// Errors is an ordered collection of PathedError that implements error.
type Errors []PathedError

// Error summarizes the first few errors.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(errs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", errs[i].Reason.Code(), errs[i].Path.Pointer())
	}
	if len(errs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(errs))
	}
	return b.String()
}

// AppendErrors concatenates error lists in order. Repeated errors are kept.
func AppendErrors(dst Errors, more ...PathedError) Errors {
	if len(more) == 0 {
		return dst
	}
	out := make(Errors, 0, len(dst)+len(more))
	out = append(out, dst...)
	return append(out, more...)
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
