// Package profile provides optional runtime profiling for rpnsheet.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Start] always returns a no-op [Stopper], [Modes] is
// empty and [Enabled] is false.
//
// With the tag, the rpnsheet command gains --pprof-mode and --pprof-dir:
//
//	rpnsheet --pprof-mode cpu eval big.csv -o /dev/null
//	go tool pprof -http=: ~/.cache/rpnsheet/pprof/cpu.pprof
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace.
package profile
