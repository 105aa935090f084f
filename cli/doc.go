// Package cli contains the command line interface for rpnsheet.
//
// # Usage
//
// Evaluate a grid read from a file or stdin and write the results:
//
//	rpnsheet eval sheet.csv -o result.csv
//	rpnsheet < sheet.csv
//	rpnsheet eval -O table sheet.yaml
//
// Report failing cells, or evaluate expressions interactively:
//
//	rpnsheet check sheet.json
//	rpnsheet repl sheet.csv
//
// Use --version (-v) to print the program version and authors.
//
// # Configuration
//
// Flag defaults are read from config.yaml (and config.yaml.json) in the
// user configuration directory. Keys are flag names, with "_" accepted in
// place of "-", and nested mappings joined with "-":
//
//	marker: "#N/A"
//	log:
//	  level: debug
//
// The init command writes the current flag values to that file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: the pprof
//     subdirectory of the user cache directory)
package cli
