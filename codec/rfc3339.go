// Package codec holds parsers for values that travel as JSON strings but
// have a richer Go type.
package codec

import (
	"time"

	jp "github.com/reoring/jsonparser"
)

// TimeRFC3339 parses an RFC3339 string into a time.Time. A string in any
// other layout reports a UserError at the string's path.
func TimeRFC3339(ctx jp.ParserContext) jp.Result[time.Time] {
	return jp.Bind(jp.String(ctx), func(s string) jp.Result[time.Time] {
		t, err := parseRFC3339(s)
		if err != nil {
			return jp.UserErrorf[time.Time](ctx, "invalid RFC3339 time '%s'", s)
		}
		return jp.Ok(t)
	})
}

// Duration parses a Go duration string such as "1h30m".
func Duration(ctx jp.ParserContext) jp.Result[time.Duration] {
	return jp.Bind(jp.String(ctx), func(s string) jp.Result[time.Duration] {
		d, err := time.ParseDuration(s)
		if err != nil {
			return jp.UserErrorf[time.Duration](ctx, "invalid duration '%s'", s)
		}
		return jp.Ok(d)
	})
}

// FormatRFC3339 renders t in the canonical form accepted by TimeRFC3339.
func FormatRFC3339(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
