package jsonparser

import (
	"sort"
	"strings"
)

// Union dispatches on the string stored under tagProp. The tag must parse
// before a case can be chosen, so a missing or mistyped tag stops the parse;
// an unknown tag reports a UserError at the tag's path. The chosen case runs
// against the whole object.
func Union[T any](tagProp string, cases map[string]Parser[T]) Parser[T] {
	known := make([]string, 0, len(cases))
	for k := range cases {
		known = append(known, k)
	}
	sort.Strings(known)
	return func(ctx ParserContext) Result[T] {
		return Bind(Prop(ctx, tagProp, String), func(tag string) Result[T] {
			p, ok := cases[tag]
			if !ok {
				tagCtx, _ := ctx.Property(tagProp)
				return UserErrorf[T](tagCtx, "unknown %s '%s' (expected one of: %s)", tagProp, tag, strings.Join(known, ", "))
			}
			return p(ctx)
		})
	}
}
