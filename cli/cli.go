package cli

import (
	"context"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rpnsheet/cli/cmd"
	"github.com/ardnew/rpnsheet/pkg"
	"github.com/ardnew/rpnsheet/sheet"
)

// CLI is the top-level command-line interface for rpnsheet.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`

	Marker   string `default:"${marker}"   help:"Text written in place of cells that fail to evaluate." short:"m"`
	MaxDepth int    `default:"${maxDepth}" help:"Maximum depth of a chain of cell references."`

	Init  cmd.Init  `cmd:"" help:"Initialize configuration file"`
	Check cmd.Check `cmd:"" help:"Report cells that fail to evaluate"`
	Repl  cmd.Repl  `cmd:"" help:"Evaluate postfix expressions interactively"`

	Eval cmd.Eval `cmd:"" default:"withargs" help:"Evaluate every cell of a grid"`
}

// vars returns the interpolation variables of every flag default and enum.
func (c *CLI) vars(config, cache string) kong.Vars {
	return kong.Vars{
		cmd.ConfigIdentifier: config,
		cmd.CacheIdentifier:  cache,
		"marker":             sheet.DefaultMarker,
		"maxDepth":           strconv.Itoa(sheet.DefaultMaxDepth),
		"version":            pkg.VersionInfo(),
	}.
		CloneWith(c.Log.vars()).
		CloneWith(c.Pprof.vars())
}

// Run executes the rpnsheet CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Log flags are applied before parsing so that parse errors are already
	// reported in the requested format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath),
		cli.vars(configFilePath, cacheDir()),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSettings(ctx, cmd.Settings{
		Marker:   cli.Marker,
		MaxDepth: cli.MaxDepth,
	})

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
