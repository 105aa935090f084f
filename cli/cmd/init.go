package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, flagValues(ktx),
		yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrYAMLMarshal.Wrap(err))
	}

	err = os.WriteFile(confPath, data, 0o600)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// flagValues returns the current value of every application-level flag in
// declaration order, skipping help, version, profiling and unset flags.
func flagValues(ktx *kong.Context) yaml.MapSlice {
	prefixIgnore := []string{"help", "version", profile.Tag}

	var values yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v, ok := configValue(ktx.FlagValue(flag)); ok {
			values = append(values, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return values
}

// configValue converts a flag value to a YAML scalar. Empty strings and nil
// are omitted; types YAML cannot represent directly are written as text.
func configValue(val any) (any, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false

	case string:
		return v, v != ""

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, true

	case fmt.Stringer:
		return v.String(), true

	default:
		return fmt.Sprint(v), true
	}
}
