package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyBase holds the state shared by both pretty handlers: options, the
// output writer guarded by mu, and the attributes and group prefix added
// through WithAttrs and WithGroup.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix string
	attrs  []slog.Attr
}

func (b prettyBase) enabled(level slog.Level) bool {
	threshold := slog.LevelInfo
	if b.opts.Level != nil {
		threshold = b.opts.Level.Level()
	}

	return level >= threshold
}

// replace applies the configured ReplaceAttr hook to a top-level attribute.
func (b prettyBase) replace(a slog.Attr) slog.Attr {
	if b.opts.ReplaceAttr == nil {
		return a
	}

	return b.opts.ReplaceAttr(nil, a)
}

// flatten resolves a into (key, value) pairs, expanding groups and
// slog.LogValuer implementations into dotted keys.
func (b prettyBase) flatten(prefix string, a slog.Attr, emit func(string, slog.Value)) {
	a.Value = a.Value.Resolve()

	// ReplaceAttr returns the empty Attr to drop a field.
	if a.Key == "" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			b.flatten(key, ga, emit)
		}

		return
	}

	emit(key, a.Value)
}

func (b prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	scoped := make([]slog.Attr, 0, len(b.attrs)+len(attrs))
	scoped = append(scoped, b.attrs...)

	for _, a := range attrs {
		if b.prefix != "" {
			a = slog.Attr{Key: b.prefix + "." + a.Key, Value: a.Value}
		}

		scoped = append(scoped, a)
	}

	b.attrs = scoped

	return b
}

func (b prettyBase) withGroup(name string) prettyBase {
	if name == "" {
		return b
	}

	if b.prefix != "" {
		b.prefix += "." + name
	} else {
		b.prefix = name
	}

	return b
}

func (b prettyBase) write(buf *bytes.Buffer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf.WriteByte('\n')

	_, err := b.w.Write(buf.Bytes())

	return err
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	prettyBase
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		prettyBase: prettyBase{opts: *opts, mu: &sync.Mutex{}, w: w},
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeAttr(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(
				slog.SourceKey,
				src.File+":"+strconv.Itoa(src.Line),
			))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.flatten(h.prefix, a, func(key string, v slog.Value) {
			h.writePair(buf, key, v)
		})

		return true
	})

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{prettyBase: h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{prettyBase: h.withGroup(name)}
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	h.flatten("", a, func(key string, v slog.Value) {
		h.writePair(buf, key, v)
	})
}

func (h *prettyTextHandler) writePair(
	buf *bytes.Buffer,
	key string,
	v slog.Value,
) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	writeColorValue(buf, v)
}

// writeColorValue writes v without quoting, colored by kind.
func writeColorValue(buf *bytes.Buffer, v slog.Value) {
	color, text := colorCyan, v.String()

	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		color = colorYellow

		if v.Kind() == slog.KindFloat64 {
			text = strconv.FormatFloat(v.Float64(), 'g', -1, 64)
		}

	case slog.KindBool:
		color = colorRed
		if v.Bool() {
			color = colorGreen
		}

	case slog.KindDuration:
		color = colorMagenta

	case slog.KindTime:
		color = colorBlue

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			switch {
			case level >= slog.LevelError:
				color = colorRed
			case level >= slog.LevelWarn:
				color = colorYellow
			case level >= slog.LevelInfo:
				color = colorGreen
			default:
				color = colorBlue
			}

			text = strings.ToUpper(Level(level).String())
		}
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(colorReset)
}

// prettyJSONHandler implements a pretty-printed JSON handler for log messages.
type prettyJSONHandler struct {
	prettyBase
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		prettyBase: prettyBase{opts: *opts, mu: &sync.Mutex{}, w: w},
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	first := true

	field := func(key string, v slog.Value) {
		if !first {
			buf.WriteString(",\n")
		}

		first = false

		buf.WriteString("  ")
		buf.WriteString(colorGray)
		buf.WriteString(key)
		buf.WriteString(colorReset)
		buf.WriteString(": ")

		writeColorValue(buf, v)
	}

	buf.WriteString("{\n")

	if !r.Time.IsZero() {
		h.flatten("", h.replace(slog.Time(slog.TimeKey, r.Time)), field)
	}

	field(slog.LevelKey, slog.AnyValue(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			field(slog.SourceKey, slog.StringValue(
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	field(slog.MessageKey, slog.StringValue(r.Message))

	for _, a := range h.attrs {
		h.flatten("", a, field)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.flatten(h.prefix, a, field)

		return true
	})

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{prettyBase: h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{prettyBase: h.withGroup(name)}
}
