package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rpnsheet/log"
)

// logFormat configures the logger format as a side effect of parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}" help:"Set log level (${enum})."`
	Format     logFormat `default:"json"    enum:"json,text"       help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                        help:"Set timestamp format."`
	Caller     bool      `default:"false"                          help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                           help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	var levels []string
	for level := range log.Levels() {
		levels = append(levels, level)
	}

	return kong.Vars{"logLevelEnum": strings.Join(levels, ",")}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logging flag, including those without a text
// unmarshaler.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logging flags found in args before kong parses them, so the
// logger is configured regardless of flag position. Scanning stops at "--".
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return
		}

		name, negated := strings.CutPrefix(args[i], "--no-log-")
		if !negated {
			var ok bool
			if name, ok = strings.CutPrefix(args[i], "--log-"); !ok {
				continue
			}
		}

		name, value, assigned := strings.Cut(name, "=")

		// value consumes the following argument when not given with "=".
		next := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		switch {
		case name == "level" && !negated:
			_ = f.Level.UnmarshalText([]byte(next()))

		case name == "format" && !negated:
			_ = f.Format.UnmarshalText([]byte(next()))

		case name == "pretty":
			if v, ok := scanBool(value, assigned, negated); ok {
				f.Pretty = v
				log.Config(log.WithPretty(v))
			}

		case name == "caller":
			if v, ok := scanBool(value, assigned, negated); ok {
				f.Caller = v
				log.Config(log.WithCaller(v))
			}
		}
	}
}

// scanBool returns the value of a boolean flag. Only an explicit "=value" is
// parsed; a bare flag is true, or false with the "no-" prefix.
func scanBool(value string, assigned, negated bool) (bool, bool) {
	v := true

	if assigned {
		var err error
		if v, err = strconv.ParseBool(value); err != nil {
			return false, false
		}
	}

	return v != negated, true
}
