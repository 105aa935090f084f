package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

type config struct {
	mode  string
	dir   string
	quiet bool
}

// Option configures a profiling session.
type Option func(config) config

// WithMode selects the profile mode. An empty or unknown mode disables
// profiling.
func WithMode(mode string) Option {
	return func(c config) config {
		c.mode = mode

		return c
	}
}

// WithDir sets the directory profile files are written to.
func WithDir(dir string) Option {
	return func(c config) config {
		c.dir = dir

		return c
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(c config) config {
		c.quiet = quiet

		return c
	}
}

// Start begins profiling as configured by opts. Stop is always safe to call
// on the result, including when profiling is disabled.
func Start(opts ...Option) Stopper {
	var c config

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	if !Enabled || c.mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
