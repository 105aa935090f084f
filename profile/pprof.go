//go:build pprof

package profile

import (
	"maps"
	"slices"

	"github.com/pkg/profile"
)

// Enabled reports whether profiling support is compiled in.
const Enabled = true

var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the supported profile modes in sorted order.
func Modes() []string {
	return slices.Sorted(maps.Keys(modes))
}

func start(c config) Stopper {
	fn, ok := modes[c.mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn, profile.NoShutdownHook}

	if c.dir != "" {
		opts = append(opts, profile.ProfilePath(c.dir))
	}

	if c.quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
