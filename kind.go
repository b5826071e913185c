package jsonparser

import eng "github.com/reoring/jsonparser/internal/engine"

// Kind is the runtime shape of a JSON node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func fromValueKind(k eng.ValueKind) Kind {
	switch k {
	case eng.ValueBool:
		return KindBool
	case eng.ValueNumber:
		return KindNumber
	case eng.ValueString:
		return KindString
	case eng.ValueArray:
		return KindArray
	case eng.ValueObject:
		return KindObject
	default:
		return KindNull
	}
}
