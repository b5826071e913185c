// Package jsonparser extracts strongly typed values from a JSON document and
// reports every structural or type problem it finds, each located by the
// path (object keys and array indices) where it occurred.
//
// A parser is a function from a ParserContext (a node plus its path) to a
// Result. Primitive parsers (Unit, Bool, Int32, Int64, Float64, Decimal,
// String) check a single node. Composite parsers (Prop, OptionalProp, List,
// Entries, Tuple2, Tuple3, Union) descend into children and fold their
// results back together.
//
// Two composition rules decide what happens after a failure:
//
//   - Bind sequences a step that depends on an earlier value. It stops at the
//     first failure and never runs the continuation.
//   - Combine (and Map2..Map4, List, tuples) joins independent steps. Every
//     branch runs and all errors are kept, left to right.
//
// Typical usage:
//
//	type Point struct{ X, Y int32 }
//
//	func point(ctx jsonparser.ParserContext) jsonparser.Result[Point] {
//		return jsonparser.Map2(
//			jsonparser.Prop(ctx, "x", jsonparser.Int32),
//			jsonparser.Prop(ctx, "y", jsonparser.Int32),
//			func(x, y int32) Point { return Point{X: x, Y: y} },
//		)
//	}
//
//	p, err := jsonparser.ParseBytes(ctx, point, data)
//	if errs, ok := jsonparser.AsErrors(err); ok {
//		for _, e := range errs {
//			fmt.Println(e) // "/x: expected number, got string"
//		}
//	}
//
// Documents are read by a pluggable Source: JSON through goccy/go-json by
// default (encoding/json via StdJSONDriver), or YAML through YAMLBytes.
// Already decoded Go values can be adapted with FromValue.
package jsonparser
