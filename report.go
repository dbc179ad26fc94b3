package pdump

import (
	"errors"
	"log/slog"
)

// Reporter routes dumps into a warning or error channel. It owns a
// long-lived Dumper and logger instead of touching process-wide
// state; zero fields fall back to the package defaults.
type Reporter struct {
	Dumper *Dumper
	Log    *slog.Logger
}

// NewReporter returns a Reporter using d and log. Either may be nil:
// a nil Dumper means the default limits, a nil logger means
// [slog.Default].
func NewReporter(d *Dumper, log *slog.Logger) *Reporter {
	return &Reporter{Dumper: d, Log: log}
}

func (r *Reporter) dumper() *Dumper {
	if r.Dumper != nil {
		return r.Dumper
	}
	return defaultDumper
}

func (r *Reporter) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// Warn dumps values and logs the result at Warn level.
func (r *Reporter) Warn(values ...any) {
	r.logger().Warn(r.dumper().Dump(values...))
}

// Error dumps values and returns the result as an error for the
// caller to raise. Only the message text is the dump; propagation
// stays with the caller.
func (r *Reporter) Error(values ...any) error {
	return errors.New(r.dumper().Dump(values...))
}

// Show logs the dump of values and returns them unchanged, so a call
// can be dropped into the middle of an expression as a diagnostic tap:
//
//	return process(r.Show(input...)...)
func (r *Reporter) Show(values ...any) []any {
	r.Warn(values...)
	return values
}

// ShowOne is Show for a single value.
func (r *Reporter) ShowOne(value any) any {
	r.Warn(value)
	return value
}

type lazyDump struct {
	d      *Dumper
	values []any
}

func (l lazyDump) LogValue() slog.Value {
	return slog.StringValue(l.d.Dump(l.values...))
}

// Attr returns an slog attribute whose value is the dump of values,
// computed lazily: if the record is discarded by level or handler, no
// formatting work happens.
func (d *Dumper) Attr(key string, values ...any) slog.Attr {
	return slog.Any(key, lazyDump{d: d, values: values})
}
