package table

import (
	"iter"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format is a grid interchange format.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatYAML
	FormatTable
)

// DefaultFormat is used when no format is given or can be inferred.
const DefaultFormat = FormatCSV

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTable:
		return "table"
	default:
		return "unknown"
	}
}

// Formats returns an iterator over all formats.
func Formats() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		for _, f := range []Format{FormatCSV, FormatJSON, FormatYAML, FormatTable} {
			if !yield(f) {
				return
			}
		}
	}
}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}

	if name == "yml" {
		return FormatYAML, nil
	}

	return DefaultFormat, ErrUnsupportedFormat.With(slog.String("format", s))
}

// FormatFromPath infers the format from the extension of path, returning
// [DefaultFormat] for unknown extensions and for "-".
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".txt":
		return FormatTable
	default:
		return DefaultFormat
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}
