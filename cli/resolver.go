package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that reads a YAML config file:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Top-level keys name flags. Nested mappings are joined to their parent key
// with "-", so both of these set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Keys may be written with "_" in place of "-". Command-line flags override
// config file values. An empty file is an empty configuration.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over flattened YAML keys.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	return nil, nil //nolint:nilnil
}

// flatten stores the scalars of m under their "-" joined key paths.
func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := value.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = configScalar(value)
	}
}

// configScalar converts a decoded YAML value to the form kong maps onto
// flags. Numbers become text so kong parses them with the flag's own type.
func configScalar(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(configScalar(item))
		}

		return strings.Join(items, ",")
	default:
		return v
	}
}
