package pdump

import "reflect"

// Kind classifies a value for formatting dispatch.
type Kind int

const (
	// Nothing is the absence of a value (an untyped nil).
	Nothing Kind = iota
	// Text is any string-kinded value. Rendered quoted and escaped.
	Text
	// Number covers booleans, integers, floats, and complex numbers.
	// Rendered in plain form, never quoted.
	Number
	// Sequence covers slices and arrays. Expanded element by element
	// until MaxDepth.
	Sequence
	// Mapping covers maps. Expanded entry by entry until MaxDepth.
	Mapping
	// Object covers structs and pointers to structs: values with a type
	// identity that may carry their own text conversion.
	Object
	// Reference is everything else: funcs, channels, non-struct
	// pointers. Always rendered opaque, never expanded.
	Reference
)

var kindNames = map[Kind]string{
	Nothing:   "nothing",
	Text:      "text",
	Number:    "number",
	Sequence:  "sequence",
	Mapping:   "mapping",
	Object:    "object",
	Reference: "reference",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Classify reports the Kind of value. It is total: anything that does
// not match a more specific kind is a Reference, so classification
// never fails regardless of input shape.
func Classify(value any) Kind {
	if value == nil {
		return Nothing
	}
	return classify(reflect.ValueOf(value))
}

func classify(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Invalid:
		return Nothing
	case reflect.String:
		return Text
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		return Mapping
	case reflect.Struct:
		return Object
	case reflect.Pointer:
		if rv.Type().Elem().Kind() == reflect.Struct {
			return Object
		}
		return Reference
	default:
		return Reference
	}
}
