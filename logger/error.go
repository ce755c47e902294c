package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error is later logged
// through a handler built by NewErrorHandler, the pairs show up as attributes of the
// record. errors.Is and errors.As see through the annotation. Returns nil if err is nil.
//
//	return AnnotateError(ErrOutOfOrder, "index", i)
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	record := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	record.Add(args...)

	attrs := make([]slog.Attr, 0, record.NumAttrs())

	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

// Attrs returns the attributes attached to err (or to an error it wraps) by AnnotateError.
func Attrs(err error) []slog.Attr {
	var ae *annotatedError
	if errors.As(err, &ae) {
		return ae.attrs
	}

	return nil
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

var _ error = (*annotatedError)(nil)

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

// errorHandler decorates another handler, expanding the attributes of annotated
// errors found in a record.
type errorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorHandler)(nil)

// NewErrorHandler wraps inner so that errors created by AnnotateError contribute
// their attributes to the records they are logged in.
func NewErrorHandler(inner slog.Handler) slog.Handler {
	return &errorHandler{inner: inner}
}

func (h *errorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *errorHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		base     []slog.Attr
		extra    []slog.Attr
		expanded bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			var ae *annotatedError
			if errors.As(err, &ae) {
				base = append(base, slog.Any(attr.Key, ae.err))
				extra = append(extra, ae.attrs...)
				expanded = true

				return true
			}
		}

		base = append(base, attr)

		return true
	})

	if !expanded {
		return h.inner.Handle(ctx, record)
	}

	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	out.AddAttrs(base...)
	out.AddAttrs(extra...)

	return h.inner.Handle(ctx, out)
}

func (h *errorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *errorHandler) WithGroup(name string) slog.Handler {
	return &errorHandler{inner: h.inner.WithGroup(name)}
}
