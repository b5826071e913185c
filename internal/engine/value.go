package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ValueKind is the runtime shape of a decoded node.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueNumber
	ValueString
	ValueArray
	ValueObject
)

// Value is a read-only document node. Objects keep keys in document order.
// A Value must not be mutated once Decode or FromAny has returned it.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Text  string // string contents, or the raw number literal
	Keys  []string
	Items []*Value // array elements, or object values parallel to Keys
	index map[string]int
}

// Lookup returns the value stored under key for objects.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v == nil || v.Kind != ValueObject {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.Items[i], true
}

// set appends key or, for a repeated key, replaces the earlier value in place.
func (v *Value) set(key string, item *Value) {
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if i, ok := v.index[key]; ok {
		v.Items[i] = item
		return
	}
	v.index[key] = len(v.Keys)
	v.Keys = append(v.Keys, key)
	v.Items = append(v.Items, item)
}

// FromAny converts an already-decoded Go tree into a Value. Map keys are
// ordered lexicographically since Go maps carry no order.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return &Value{Kind: ValueNull}, nil
	case bool:
		return &Value{Kind: ValueBool, Bool: t}, nil
	case string:
		return &Value{Kind: ValueString, Text: t}, nil
	case json.Number:
		return &Value{Kind: ValueNumber, Text: string(t)}, nil
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, fmt.Errorf("engine: %v is not a JSON number", t)
		}
		return &Value{Kind: ValueNumber, Text: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case float32:
		return FromAny(float64(t))
	case int:
		return &Value{Kind: ValueNumber, Text: strconv.Itoa(t)}, nil
	case int32:
		return &Value{Kind: ValueNumber, Text: strconv.FormatInt(int64(t), 10)}, nil
	case int64:
		return &Value{Kind: ValueNumber, Text: strconv.FormatInt(t, 10)}, nil
	case uint64:
		return &Value{Kind: ValueNumber, Text: strconv.FormatUint(t, 10)}, nil
	case []any:
		arr := &Value{Kind: ValueArray, Items: make([]*Value, 0, len(t))}
		for i, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Items = append(arr.Items, ev)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := &Value{Kind: ValueObject}
		for _, k := range keys {
			ev, err := FromAny(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj.set(k, ev)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("engine: unsupported value of type %T", x)
	}
}
