package pdump

import (
	"strings"
)

// Default limits applied by [New].
const (
	DefaultMaxElements = 6
	DefaultMaxDepth    = 2
)

// FormatFunc renders one value at the given depth. Install one per
// [Kind] in [Dumper.Formatters] to override the default rendering.
// The func may call [Dumper.Format] to recurse into nested values.
type FormatFunc func(d *Dumper, depth int, value any) string

// Dumper holds the tunables for a dump. A Dumper is read-only while
// dumping, so a single instance may be shared freely across
// goroutines as long as no caller mutates it.
type Dumper struct {
	// MaxLength caps the total output length. 0 means no cap.
	MaxLength int `yaml:"max_length"`
	// MaxElements caps how many elements of a sequence, or entries of
	// a mapping, are rendered before the ellipsis marker.
	MaxElements int `yaml:"max_elements"`
	// MaxDepth bounds recursion into sequences and mappings. A nested
	// sequence or mapping at MaxDepth is rendered opaque, not
	// expanded. This is the only defense against self-referential
	// structures; there is no cycle detection.
	MaxDepth int `yaml:"max_depth"`
	// StringifyObjects uses an object's own String or Error method for
	// rendering. Off by default: describing a value for diagnostics
	// should not trigger arbitrary user code.
	StringifyObjects bool `yaml:"stringify_objects"`
	// PairsDetection renders the top-level arguments as key/value
	// pairs when they look like an even list of simple keys.
	PairsDetection bool `yaml:"pairs_detection"`

	// Formatters overrides rendering per [Kind]. Nil entries fall
	// through to the defaults.
	Formatters map[Kind]FormatFunc `yaml:"-"`
}

// New returns a Dumper with the default limits: at most
// [DefaultMaxElements] elements per level, [DefaultMaxDepth] levels of
// nesting, no length cap, objects rendered safely, no pairs detection.
func New() *Dumper {
	return &Dumper{
		MaxElements: DefaultMaxElements,
		MaxDepth:    DefaultMaxDepth,
	}
}

var defaultDumper = New()

// Dump renders values with the default Dumper.
func Dump(values ...any) string { return defaultDumper.Dump(values...) }

// Dump renders values as a single bounded line. Output is capped three
// ways: MaxDepth bounds nesting, MaxElements bounds items per level,
// and MaxLength bounds the final string.
func (d *Dumper) Dump(values ...any) string {
	var out string
	if d.PairsDetection && looksLikePairs(values) {
		out = d.dumpAsPairs(0, values)
	} else {
		out = d.dumpAsList(0, values)
	}
	return capLength(out, d.MaxLength)
}

func (d *Dumper) dumpAsList(depth int, values []any) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = d.Format(depth, v)
	}
	return strings.Join(truncateItems(items, d.MaxElements), ", ")
}

func (d *Dumper) dumpAsPairs(depth int, values []any) string {
	pairs := make([]string, 0, (len(values)+1)/2)
	for i := 0; i < len(values); i += 2 {
		var v any
		if i+1 < len(values) {
			v = values[i+1]
		}
		pairs = append(pairs, d.formatPair(depth, values[i], v))
	}
	return strings.Join(truncateItems(pairs, d.MaxElements), ", ")
}

// formatPair renders one key/value pair. Identifier-shaped keys read
// as `name: value`; anything else is rendered like a value and joined
// with `=>` so the key stays unambiguous.
func (d *Dumper) formatPair(depth int, key, value any) string {
	v := d.Format(depth, value)
	if k, ok := bareKey(key); ok {
		return k + ": " + v
	}
	return d.Format(depth, key) + " => " + v
}

// looksLikePairs reports whether values reads as alternating key/value
// pairs: an even count with a simple scalar at every key position.
func looksLikePairs(values []any) bool {
	if len(values) == 0 || len(values)%2 != 0 {
		return false
	}
	for i := 0; i < len(values); i += 2 {
		switch Classify(values[i]) {
		case Text, Number:
		default:
			return false
		}
	}
	return true
}
