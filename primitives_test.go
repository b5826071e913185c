package jsonparser_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	jp "github.com/reoring/jsonparser"
)

func TestBool(t *testing.T) {
	expectValue(t, jp.Document(doc(t, `true`), jp.Bool), true)
	expectValue(t, jp.Document(doc(t, `false`), jp.Bool), false)
	expectErrors(t, jp.Document(doc(t, `"true"`), jp.Bool),
		at("/", jp.UnexpectedType{Expected: jp.KindBool, Actual: jp.KindString}))
}

func TestUnit(t *testing.T) {
	expectValue(t, jp.Document(doc(t, `null`), jp.Unit), jp.UnitValue{})
	expectErrors(t, jp.Document(doc(t, `0`), jp.Unit),
		at("/", jp.UnexpectedType{Expected: jp.KindNull, Actual: jp.KindNumber}))
}

func TestString(t *testing.T) {
	expectValue(t, jp.Document(doc(t, `"héllo"`), jp.String), "héllo")
	expectErrors(t, jp.Document(doc(t, `[]`), jp.String),
		at("/", jp.UnexpectedType{Expected: jp.KindString, Actual: jp.KindArray}))
}

func TestInt32(t *testing.T) {
	cases := []struct {
		in   string
		want int32
	}{
		{`2147483647`, 2147483647},
		{`-2147483648`, -2147483648},
		{`0`, 0},
		{`-0`, 0},
	}
	for _, tc := range cases {
		expectValue(t, jp.Document(doc(t, tc.in), jp.Int32), tc.want)
	}
}

func TestInt32_OutOfRange(t *testing.T) {
	for _, in := range []string{`2147483648`, `-2147483649`, `1.5`, `1e2`, `99999999999999999999`} {
		expectErrors(t, jp.Document(doc(t, in), jp.Int32),
			at("/", jp.ValueOutOfRange{Target: jp.TargetInt32, Raw: in}))
	}
}

func TestInt32_WrongKind(t *testing.T) {
	expectErrors(t, jp.Document(doc(t, `"12"`), jp.Int32),
		at("/", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindString}))
}

func TestInt64(t *testing.T) {
	expectValue(t, jp.Document(doc(t, `9223372036854775807`), jp.Int64), int64(9223372036854775807))
	expectErrors(t, jp.Document(doc(t, `9223372036854775808`), jp.Int64),
		at("/", jp.ValueOutOfRange{Target: jp.TargetInt64, Raw: "9223372036854775808"}))
}

func TestFloat64(t *testing.T) {
	expectValue(t, jp.Document(doc(t, `1.25e2`), jp.Float64), 125.0)
	expectErrors(t, jp.Document(doc(t, `1e400`), jp.Float64),
		at("/", jp.ValueOutOfRange{Target: jp.TargetFloat64, Raw: "1e400"}))
	expectErrors(t, jp.Document(doc(t, `true`), jp.Float64),
		at("/", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindBool}))
}

func TestDecimal_KeepsEveryDigit(t *testing.T) {
	for _, in := range []string{
		`0.1111111111111111111111111111`,
		`12345678901234567890.123456789`,
		`-3.14159265358979323846264338327950288`,
	} {
		r := jp.Document(doc(t, in), jp.Decimal)
		d, ok := r.Value()
		if !ok {
			t.Fatalf("decimal %s: %v", in, r.Errors())
		}
		if d.String() != in {
			t.Fatalf("decimal round trip: got %s, want %s", d.String(), in)
		}
	}
}

func TestDecimal_BeyondFloat64(t *testing.T) {
	r, err := jp.ParseBytes(context.Background(), jp.Decimal, []byte(`1e400`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Equal(decimal.New(1, 400)) {
		t.Fatalf("got %s", r)
	}
}

func TestDecimal_WrongKind(t *testing.T) {
	expectErrors(t, jp.Document(doc(t, `{}`), jp.Decimal),
		at("/", jp.UnexpectedType{Expected: jp.KindNumber, Actual: jp.KindObject}))
}
