// Package pdump renders arbitrary values as compact, single-line,
// bounded diagnostic strings.
//
// The output trades fidelity for boundedness: every dump terminates in
// bounded time with bounded size no matter how deep, wide, or
// self-referential the input is. It is meant for log messages,
// warnings, and assertion failures, not for serialization.
//
//	pdump.Dump([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	// [ 1, 2, 3, 4, 5, 6, ... ]
//
// # Bounding
//
// Three independent caps bound the output:
//
//   - [Dumper.MaxDepth] — sequences and mappings nested this deep are
//     rendered opaque (type name plus identity token) instead of
//     expanded. Depth bounding is the only defense against
//     self-reference; there is deliberately no cycle detection, so a
//     structurally repeated value is rendered each time it appears.
//   - [Dumper.MaxElements] — at most this many elements or pairs per
//     level, then a "..." marker.
//   - [Dumper.MaxLength] — the final string is clipped to this display
//     width, marker included.
//
// # Value Kinds
//
// [Classify] sorts every value into exactly one [Kind]: nil values,
// text, numbers (including booleans), sequences, mappings, objects
// (structs and pointers to structs), and opaque references (funcs,
// channels, other pointers). Classification is total: nothing is
// unformattable, so dumping never fails.
//
// Strings are quoted and escaped onto a single line: newlines become
// the literal two characters \n and other non-printables become
// \x{HH} escapes. Objects are rendered safely by default — type name
// and identity only, without calling the value's own String or Error
// method. Set [Dumper.StringifyObjects] to opt into the value's own
// text conversion, side effects and all.
//
// # Configuration
//
// A [Dumper] is plain data, immutable during a dump, and safe to share
// across goroutines. [New] applies the defaults; [ParseConfig] builds
// one from a YAML document and validates the limits, returning
// [ErrInvalidConfig] otherwise.
//
// # Pairs Detection
//
// With [Dumper.PairsDetection] enabled, a top-level argument list that
// looks like alternating keys and values — even count, simple scalar
// at each key position — reads as named arguments:
//
//	d.Dump("foo", "bar") // foo: "bar"
//
// # Custom Formatters
//
// [Dumper.Formatters] is a per-[Kind] strategy table. An installed
// [FormatFunc] replaces the default rendering for its kind and may
// call [Dumper.Format] to recurse.
//
// # Reporting
//
// [Reporter] forwards dumps to an [log/slog.Logger]: [Reporter.Warn]
// logs, [Reporter.Error] wraps the dump in an error for the caller to
// raise, and [Reporter.Show] / [Reporter.ShowOne] log and return their
// input unchanged for inline taps inside expressions. [Dumper.Attr]
// yields a lazy slog attribute that only formats when the record is
// actually emitted.
package pdump
