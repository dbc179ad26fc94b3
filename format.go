package pdump

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Format renders a single value at the given depth. Dispatch is an
// exhaustive switch over [Classify]; a caller-installed entry in
// [Dumper.Formatters] wins over the default for its kind.
func (d *Dumper) Format(depth int, value any) string {
	kind := Classify(value)
	if fn := d.Formatters[kind]; fn != nil {
		return fn(d, depth, value)
	}
	switch kind {
	case Nothing:
		return "nil"
	case Text:
		return quote(reflect.ValueOf(value).String())
	case Number:
		return formatNumber(reflect.ValueOf(value))
	case Sequence:
		return d.formatSequence(depth, reflect.ValueOf(value))
	case Mapping:
		return d.formatMapping(depth, reflect.ValueOf(value))
	case Object:
		return d.formatObject(value)
	default:
		return formatOpaque(reflect.ValueOf(value))
	}
}

func (d *Dumper) formatSequence(depth int, rv reflect.Value) string {
	if depth >= d.MaxDepth {
		return formatOpaque(rv)
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return "[ " + d.dumpAsList(depth+1, elems) + " ]"
}

func (d *Dumper) formatMapping(depth int, rv reflect.Value) string {
	if depth >= d.MaxDepth {
		return formatOpaque(rv)
	}
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, d.formatPair(depth+1, iter.Key().Interface(), iter.Value().Interface()))
	}
	// Go maps iterate in random order; sort the rendered pairs so a
	// dump is a pure function of its inputs. Sorting rendered text
	// rather than raw keys keeps key ordering free of user code: a
	// key's own String method must never run here.
	sort.Strings(pairs)
	return "{ " + strings.Join(truncateItems(pairs, d.MaxElements), ", ") + " }"
}

// formatObject renders a struct or pointer to struct. Objects are
// never decomposed into fields and never depth-limited. Without
// StringifyObjects the rendering must not invoke the object's own
// String or Error method.
func (d *Dumper) formatObject(value any) string {
	rv := reflect.ValueOf(value)
	if d.StringifyObjects && !(rv.Kind() == reflect.Pointer && rv.IsNil()) {
		if s, ok := textConversion(value); ok {
			return s
		}
	}
	return formatOpaque(rv)
}

// formatNumber renders a numeric scalar from its underlying kind.
// Going through reflect rather than %v keeps named numeric types with
// their own String method on the plain, conversion-free path.
func formatNumber(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64)
	default:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	}
}

// textConversion returns the value's own text rendering, if it has
// one. Calling it runs user code; only StringifyObjects paths may.
func textConversion(value any) (string, bool) {
	switch v := value.(type) {
	case fmt.Stringer:
		return v.String(), true
	case error:
		return v.Error(), true
	}
	return "", false
}

// formatOpaque renders a value without descending into it: the type
// name plus an identity token when the value has one.
func formatOpaque(rv reflect.Value) string {
	t := rv.Type().String()
	if p := identity(rv); p != 0 {
		return fmt.Sprintf("%s(0x%x)", t, p)
	}
	return t
}

func identity(rv reflect.Value) uintptr {
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.Pointer()
	}
	return 0
}
