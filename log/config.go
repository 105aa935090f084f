package log

import (
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// levelNames lists the defined levels from least to most severe.
var levelNames = []struct {
	level Level
	name  string
}{
	{LevelTrace, "trace"},
	{LevelDebug, "debug"},
	{LevelInfo, "info"},
	{LevelWarn, "warn"},
	{LevelError, "error"},
}

// String returns the lower-case name of a defined level, or the slog
// representation with offset for any other value.
func (l Level) String() string {
	for _, n := range levelNames {
		if n.level == l {
			return n.name
		}
	}

	return strings.ToLower(slog.Level(l).String())
}

// Levels returns an iterator over the names of all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range levelNames {
			if !yield(n.name) {
				return
			}
		}
	}
}

// ParseLevel parses the name of a log level, case-insensitively. Names
// other than "trace" may carry a "+" or "-" integer offset as accepted by
// [slog.Level.UnmarshalText]. Unrecognized text yields [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

// formatNames lists the defined formats in display order.
var formatNames = []struct {
	format Format
	name   string
}{
	{FormatJSON, "json"},
	{FormatText, "text"},
}

// String returns the name of the format.
func (f Format) String() string {
	for _, n := range formatNames {
		if n.format == f {
			return n.name
		}
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Formats returns an iterator over the names of all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range formatNames {
			if !yield(n.name) {
				return
			}
		}
	}
}

// ParseFormat parses "json" or "text", case-insensitively. Unrecognized
// text yields [DefaultFormat].
func ParseFormat(s string) Format {
	s = strings.TrimSpace(s)
	for _, n := range formatNames {
		if strings.EqualFold(n.name, s) {
			return n.format
		}
	}

	return DefaultFormat
}

// FormatTime formats a timestamp for output. An empty result omits the
// timestamp.
type FormatTime func(time.Time) string

// Defaults used by [WithDefaults].
const (
	DefaultTimeLayout = time.RFC3339
	DefaultCaller     = false
	DefaultPretty     = true
)

// config holds the configuration options for a Logger.
type config struct {
	mutex      *sync.RWMutex
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// makeConfig creates a config with defaults applied, overridden by opts.
func makeConfig(w io.Writer, opts ...Option) config {
	c := config{mutex: &sync.RWMutex{}}

	return apply(apply(c, WithDefaults(w)), opts...)
}

// clone copies c with a separate mutex and applies opts to the copy.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

// lock acquires the write lock of c, creating the mutex first if c is a zero
// value, and returns the function that releases it.
func (c *config) lock() (unlock func()) {
	if c.mutex == nil {
		c.mutex = &sync.RWMutex{}

		return func() {}
	}

	c.mutex.Lock()

	return c.mutex.Unlock
}

// rlock acquires the read lock of c if it has one and returns the function
// that releases it.
func (c config) rlock() (unlock func()) {
	if c.mutex == nil {
		return func() {}
	}

	c.mutex.RLock()

	return c.mutex.RUnlock
}

// handlerOptions builds the slog options shared by every handler variant.
func (c config) handlerOptions() *slog.HandlerOptions {
	formatTime := c.formatTime
	if formatTime == nil {
		formatTime = makeFormatTimeFunc(DefaultTimeLayout)
	}

	return &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch v := a.Value.Any().(type) {
			case time.Time:
				if a.Key != slog.TimeKey {
					break
				}

				s := formatTime(v)
				if s == "" {
					return slog.Attr{}
				}

				a.Value = slog.StringValue(s)

			case slog.Level:
				// TRACE rather than DEBUG-4.
				if a.Key == slog.LevelKey {
					a.Value = slog.StringValue(strings.ToUpper(Level(v).String()))
				}
			}

			return a
		},
	}
}

// handler creates a slog.Handler for c with opts applied on top.
func (c config) handler(opts ...Option) slog.Handler {
	c = apply(c, opts...)

	out := c.output
	if out == nil {
		out = io.Discard
	}

	ho := c.handlerOptions()

	switch c.format {
	case FormatJSON:
		if c.pretty {
			return newPrettyJSONHandler(out, ho)
		}

		return slog.NewJSONHandler(out, ho)

	case FormatText:
		if c.pretty {
			return newPrettyTextHandler(out, ho)
		}

		return slog.NewTextHandler(out, ho)

	default:
		return slog.DiscardHandler
	}
}

// update returns an Option that applies set to the config while holding its
// write lock.
func update(set func(*config)) Option {
	return func(c config) config {
		defer c.lock()()

		set(&c)

		return c
	}
}

// WithDefaults sets output to w ([io.Discard] if nil) and every other value
// to its default: [DefaultTimeLayout], [DefaultLevel], [DefaultFormat],
// [DefaultCaller] and [DefaultPretty].
func WithDefaults(w io.Writer) Option {
	if w == nil {
		w = io.Discard
	}

	return update(func(c *config) {
		c.output = w
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty
	})
}

// WithOutput sets the destination of log messages. A nil writer discards
// them.
func WithOutput(w io.Writer) Option {
	if w == nil {
		w = io.Discard
	}

	return update(func(c *config) { c.output = w })
}

// WithLevel sets the minimum level of messages written.
func WithLevel(level Level) Option {
	return update(func(c *config) { c.level = level })
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return update(func(c *config) { c.format = format })
}

// WithTimeLayout sets the timestamp layout: a named layout from the [time]
// package ("RFC3339", "Kitchen", ...) matched ignoring case and punctuation,
// or a literal layout passed to [time.Time.Format]. An empty layout or
// "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return update(func(c *config) { c.formatTime = format })
}

// WithCaller includes the source location of each log call.
func WithCaller(enable bool) Option {
	return update(func(c *config) { c.caller = enable })
}

// WithPretty colorizes output. Text output drops quoting and colors keys;
// JSON output is indented across multiple lines.
func WithPretty(enable bool) Option {
	return update(func(c *config) { c.pretty = enable })
}

// timeLayout maps normalized layout names to layouts.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"timeonly":    time.TimeOnly,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"ms":          time.StampMilli,
	"us":          time.StampMicro,
	"ns":          time.StampNano,
	"none":        "",
}

// layoutKey normalizes a layout name to lower-case letters and digits.
func layoutKey(layout string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))
}

func makeFormatTimeFunc(layout string) FormatTime {
	key := layoutKey(layout)

	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if key == "" || layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
