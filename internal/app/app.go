package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/appconf/internal/cli"
	"github.com/vk/appconf/internal/config"
	"github.com/vk/appconf/internal/ctxlog"
	"github.com/vk/appconf/internal/fileconf"
	"github.com/vk/appconf/internal/schema"
)

// ObserverFunc receives the new value of an attribute after a config merge
// applied it.
type ObserverFunc func(val cty.Value)

// Options holds everything needed to construct an Application.
type Options struct {
	// Name of the application; also the logger name. Default "application".
	Name string
	// Description printed at the beginning of the help. Default
	// "This is an application.".
	Description string
	// Version string. Default "0.0".
	Version string
	// LogLevel is the initial log level ordinal (10,20,30,40,50). The zero
	// value selects the default, LevelWarn; level 0 (everything) can still
	// be set later through Application.log_level.
	LogLevel int
	// Classes whose configurable attributes are exposed on the command line
	// and in help text. The application's own class is always prepended.
	Classes []*schema.Class
	// Aliases maps short command-line names to dotted Class.attribute
	// targets. When nil, the default {"log_level": "Application.log_level"}
	// table is used.
	Aliases map[string]string
	// Flags maps bare --name switches to prebuilt config fragments.
	Flags map[string]cli.Flag
	// OutW receives help, description, and version text. Default os.Stdout.
	OutW io.Writer
	// LogW receives the log stream. Default os.Stderr.
	LogW io.Writer
}

// Application owns the merged process configuration: a registry of
// configurable classes, alias and flag tables, the staged config, and the
// application logger. It is constructed exactly once at startup and passed
// by reference to anything that needs it; there is no hidden global.
type Application struct {
	name        string
	description string
	version     string

	classes *schema.Registry
	aliases map[string]string
	flags   map[string]cli.Flag

	config config.Config

	outW io.Writer
	logW io.Writer

	log          *slog.Logger
	logLevel     *slog.LevelVar
	levelOrdinal int

	observers map[string][]ObserverFunc
}

// applicationClass is the application's own configurable schema, always kept
// at index 0 of the class registry.
func applicationClass() *schema.Class {
	return &schema.Class{
		Name: "Application",
		Traits: []schema.Trait{{
			Name:    "log_level",
			Type:    cty.Number,
			Help:    "Set the log level (0,10,20,30,40,50).",
			Default: cty.NumberIntVal(LevelWarn),
		}},
	}
}

// New constructs an Application. The flag table is validated eagerly: every
// entry must carry a config fragment and a help string, and a violation is a
// construction error naming the offending key. Alias targets, in contrast,
// are only resolved when alias help is printed.
func New(opts Options) (*Application, error) {
	if opts.Name == "" {
		opts.Name = "application"
	}
	if opts.Description == "" {
		opts.Description = "This is an application."
	}
	if opts.Version == "" {
		opts.Version = "0.0"
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = LevelWarn
	}
	if !validLevel(opts.LogLevel) {
		return nil, fmt.Errorf("invalid log level %d: want one of 0,10,20,30,40,50", opts.LogLevel)
	}
	if opts.OutW == nil {
		opts.OutW = os.Stdout
	}
	if opts.LogW == nil {
		opts.LogW = os.Stderr
	}

	aliases := opts.Aliases
	if aliases == nil {
		aliases = map[string]string{"log_level": "Application.log_level"}
	}

	for _, name := range slices.Sorted(maps.Keys(opts.Flags)) {
		flag := opts.Flags[name]
		if flag.Config == nil {
			return nil, fmt.Errorf("bad flag %q: missing config fragment", name)
		}
		if flag.Help == "" {
			return nil, fmt.Errorf("bad flag %q: missing help text", name)
		}
	}

	a := &Application{
		name:         opts.Name,
		description:  opts.Description,
		version:      opts.Version,
		classes:      schema.NewRegistry(opts.Classes...),
		aliases:      aliases,
		flags:        opts.Flags,
		config:       config.New(),
		outW:         opts.OutW,
		logW:         opts.LogW,
		levelOrdinal: opts.LogLevel,
		observers:    make(map[string][]ObserverFunc),
	}
	a.classes.PushFront(applicationClass())
	a.initLogging()

	// Live binding: any later set of Application.log_level retargets the
	// logger's level, not just the construction-time read.
	a.OnChange("Application", "log_level", func(val cty.Value) {
		var level int
		if err := gocty.FromCtyValue(val, &level); err != nil {
			a.log.Warn("ignoring non-integer log_level", "error", err)
			return
		}
		a.SetLogLevel(level)
	})

	return a, nil
}

// OnChange registers an observer for a specific Class.attribute. Observers
// fire after a config merge applies a value to that attribute.
func (a *Application) OnChange(class, attr string, fn ObserverFunc) {
	key := class + "." + attr
	a.observers[key] = append(a.observers[key], fn)
}

func (a *Application) notify(class, attr string, val cty.Value) {
	for _, fn := range a.observers[class+"."+attr] {
		fn(val)
	}
}

// UpdateConfig merges cfg into the application's persistent configuration
// and applies every recognized Class.attribute to its registered class,
// firing change observers. The stored config is the deep merge of the prior
// config and the incoming one; the incoming object is not retained.
func (a *Application) UpdateConfig(cfg config.Config) error {
	merged := a.config.Clone()
	merged.Merge(cfg)
	a.config = merged
	return a.applyConfig(cfg)
}

// applyConfig walks the incoming config, type-checks each attribute that
// belongs to a registered class, stores the converted value, and notifies
// observers. Sections and attributes the registry does not know are kept in
// the merged config but otherwise ignored.
func (a *Application) applyConfig(cfg config.Config) error {
	for className, raw := range cfg {
		section, ok := raw.(config.Config)
		if !ok {
			a.log.Debug("ignoring top-level config value", "key", className)
			continue
		}
		cls, ok := a.classes.ByName(className)
		if !ok {
			a.log.Debug("config section for unregistered class", "class", className)
			continue
		}
		for attrName, staged := range section {
			val, ok := staged.(cty.Value)
			if !ok {
				a.log.Debug("ignoring nested config section", "class", className, "attribute", attrName)
				continue
			}
			trait, ok := cls.Trait(attrName)
			if !ok {
				a.log.Debug("not a configurable attribute", "class", className, "attribute", attrName)
				continue
			}
			converted, err := convert.Convert(val, trait.Type)
			if err != nil {
				return fmt.Errorf("cannot set %s.%s: %w", className, attrName, err)
			}
			a.config.Section(className)[attrName] = converted
			a.notify(className, attrName, converted)
		}
	}
	return nil
}

// ParseCommandLine parses an argument list, defaulting to the process's own
// arguments. A -h/--help or --version token anywhere prints the requested
// text and returns a *cli.ExitError with code 1; everything else is handed
// to the key-value loader and merged in.
func (a *Application) ParseCommandLine(ctx context.Context, args []string) error {
	if args == nil {
		args = os.Args[1:]
	}

	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {
		a.PrintDescription()
		if err := a.PrintHelp(); err != nil {
			return err
		}
		return &cli.ExitError{Code: 1, Message: "help requested"}
	}
	if slices.Contains(args, "--version") {
		a.PrintVersion()
		return &cli.ExitError{Code: 1, Message: "version requested"}
	}

	loader := cli.NewLoader(args, a.aliases, a.flags)
	cfg, err := loader.Load(ctxlog.WithLogger(ctx, a.log))
	if err != nil {
		return err
	}
	return a.UpdateConfig(cfg)
}

// LoadConfigFile loads a config file by filename and optional search path
// and merges it in. A missing file propagates as an fs.ErrNotExist-wrapped
// error, untranslated.
func (a *Application) LoadConfigFile(ctx context.Context, filename string, searchPath ...string) error {
	loader := fileconf.NewLoader(filename, searchPath...)
	cfg, err := loader.Load(ctxlog.WithLogger(ctx, a.log))
	if err != nil {
		return err
	}
	return a.UpdateConfig(cfg)
}

// Name returns the application name.
func (a *Application) Name() string { return a.name }

// Version returns the version string.
func (a *Application) Version() string { return a.version }

// Config returns the merged configuration. Callers must not mutate it.
func (a *Application) Config() config.Config { return a.config }

// Classes returns the registry of configurable classes.
func (a *Application) Classes() *schema.Registry { return a.classes }

// Logger returns the application logger.
func (a *Application) Logger() *slog.Logger { return a.log }
