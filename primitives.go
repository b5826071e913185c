package jsonparser

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Target type names reported by ValueOutOfRange.
const (
	TargetInt32   = "int32"
	TargetInt64   = "int64"
	TargetFloat64 = "float64"
	TargetDecimal = "decimal"
)

// UnitValue is the value produced by Unit.
type UnitValue = struct{}

func expectKind(ctx ParserContext, k Kind) (Reason, bool) {
	if actual := ctx.Kind(); actual != k {
		return UnexpectedType{Expected: k, Actual: actual}, false
	}
	return nil, true
}

// Unit accepts a JSON null.
func Unit(ctx ParserContext) Result[UnitValue] {
	if r, ok := expectKind(ctx, KindNull); !ok {
		return LiftError[UnitValue](ctx, r)
	}
	return Ok(UnitValue{})
}

// Bool accepts true or false.
func Bool(ctx ParserContext) Result[bool] {
	if r, ok := expectKind(ctx, KindBool); !ok {
		return LiftError[bool](ctx, r)
	}
	return Ok(ctx.Node().Bool())
}

// String accepts a JSON string and yields its contents.
func String(ctx ParserContext) Result[string] {
	if r, ok := expectKind(ctx, KindString); !ok {
		return LiftError[string](ctx, r)
	}
	return Ok(ctx.Node().Text())
}

// Int32 accepts a number written as a base-10 integer within the int32
// range. Fractions, exponents and overflow report ValueOutOfRange.
func Int32(ctx ParserContext) Result[int32] {
	if r, ok := expectKind(ctx, KindNumber); !ok {
		return LiftError[int32](ctx, r)
	}
	raw := ctx.Node().Text()
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return LiftError[int32](ctx, ValueOutOfRange{Target: TargetInt32, Raw: raw})
	}
	return Ok(int32(n))
}

// Int64 is Int32 for the int64 range.
func Int64(ctx ParserContext) Result[int64] {
	if r, ok := expectKind(ctx, KindNumber); !ok {
		return LiftError[int64](ctx, r)
	}
	raw := ctx.Node().Text()
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return LiftError[int64](ctx, ValueOutOfRange{Target: TargetInt64, Raw: raw})
	}
	return Ok(n)
}

// Float64 accepts any number that is finite as a float64. Precision beyond
// float64 is rounded; use Decimal to keep every digit.
func Float64(ctx ParserContext) Result[float64] {
	if r, ok := expectKind(ctx, KindNumber); !ok {
		return LiftError[float64](ctx, r)
	}
	raw := ctx.Node().Text()
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return LiftError[float64](ctx, ValueOutOfRange{Target: TargetFloat64, Raw: raw})
	}
	return Ok(f)
}

// Decimal accepts a number and keeps every significant digit of its literal.
func Decimal(ctx ParserContext) Result[decimal.Decimal] {
	if r, ok := expectKind(ctx, KindNumber); !ok {
		return LiftError[decimal.Decimal](ctx, r)
	}
	raw := ctx.Node().Text()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return LiftError[decimal.Decimal](ctx, ValueOutOfRange{Target: TargetDecimal, Raw: raw})
	}
	return Ok(d)
}
