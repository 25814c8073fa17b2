package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/appconf/internal/config"
	"github.com/vk/appconf/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Flag is a zero-argument command-line switch bound to a pre-built
// configuration fragment that is merged verbatim when the flag is present.
type Flag struct {
	Config config.Config
	Help   string
}

// Loader parses key-value command-line arguments into a config.Config.
//
// Recognized token forms:
//   - "--name":       looked up in the flag table, fragment merged verbatim
//   - "Class.attr=v": a fully qualified attribute assignment
//   - "alias=v":      a short name resolved through the alias table
//
// Values are parsed as constrained typed expressions (literals, lists,
// objects); anything that does not evaluate as one is taken as a plain
// string.
type Loader struct {
	args    []string
	aliases map[string]string
	flags   map[string]Flag
}

// NewLoader creates a command-line loader over the given argument list and
// alias/flag tables.
func NewLoader(args []string, aliases map[string]string, flags map[string]Flag) *Loader {
	return &Loader{args: args, aliases: aliases, flags: flags}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context) (config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("command-line loader started", "args", len(l.args))

	cfg := config.New()
	for _, tok := range l.args {
		if name, ok := strings.CutPrefix(tok, "--"); ok {
			if strings.Contains(name, "=") {
				return nil, fmt.Errorf("flags take no value: %q", tok)
			}
			flag, ok := l.flags[name]
			if !ok {
				return nil, fmt.Errorf("unrecognized flag: --%s", name)
			}
			cfg.Merge(flag.Config.Clone())
			logger.Debug("applied flag fragment", "flag", name)
			continue
		}

		name, raw, found := strings.Cut(tok, "=")
		if !found {
			return nil, fmt.Errorf("expected name=value or --flag, got %q", tok)
		}

		target := name
		if !strings.Contains(name, ".") {
			resolved, ok := l.aliases[name]
			if !ok {
				return nil, fmt.Errorf("unrecognized alias: %q", name)
			}
			target = resolved
		}
		if !strings.Contains(target, ".") {
			return nil, fmt.Errorf("invalid assignment target %q: want Class.attribute", target)
		}

		val, err := ParseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", target, err)
		}
		cfg.SetAttr(target, val)
		logger.Debug("staged attribute", "target", target)
	}
	return cfg, nil
}
