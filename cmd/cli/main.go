package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/appconf/internal/app"
	"github.com/vk/appconf/internal/cli"
	"github.com/vk/appconf/internal/config"
	"github.com/vk/appconf/internal/schema"
)

// configFileEnv names an optional config file loaded before the command line
// is parsed, so command-line settings take precedence over file settings.
const configFileEnv = "APPCONF_CONFIG_FILE"

// main is the entrypoint for the appconf demo application.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			// Help and version requests have already written their output.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	debug := config.New()
	debug.SetAttr("Application.log_level", cty.NumberIntVal(app.LevelDebug))

	application, err := app.New(app.Options{
		Name:        "appconf-demo",
		Description: "A demo of the configurable application base.",
		Version:     "0.1.0",
		Classes: []*schema.Class{{
			Name:        "Server",
			Description: "A demo network server.",
			Traits: []schema.Trait{
				{Name: "host", Type: cty.String, Help: "Hostname to bind to.", Default: cty.StringVal("localhost")},
				{Name: "port", Type: cty.Number, Help: "Port to listen on.", Default: cty.NumberIntVal(8080)},
				{Name: "tags", Type: cty.List(cty.String), Help: "Free-form labels attached to the server."},
			},
		}},
		Aliases: map[string]string{
			"log_level": "Application.log_level",
			"host":      "Server.host",
			"port":      "Server.port",
		},
		Flags: map[string]cli.Flag{
			"debug": {Config: debug, Help: "set log level to DEBUG (10)"},
		},
		OutW: outW,
		LogW: outW,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if filename := os.Getenv(configFileEnv); filename != "" {
		if err := application.LoadConfigFile(ctx, filename); err != nil {
			return err
		}
	}
	if err := application.ParseCommandLine(ctx, args); err != nil {
		return err
	}

	application.Logger().Info("configuration assembled",
		"classes", application.Classes().Len(),
		"log_level", application.LogLevel(),
	)
	return nil
}
