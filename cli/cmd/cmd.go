package cmd

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/sval/tmpl"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the output writer bound to the kong.Context stored in ctx,
// or os.Stdout if none was stored.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource reads the contents of the file at path, or all of stdin when
// path is "-".
func readSource(path string) (string, error) {
	if path == stdinSource {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", ErrReadTemplate.Wrap(err).
				With(slog.String("source", "stdin"))
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrReadTemplate.Wrap(err).
			With(slog.String("source", path))
	}

	return string(data), nil
}

// evalConfig holds the evaluation flags shared by the render and repl
// commands.
type evalConfig struct {
	Context    []string          `help:"YAML context file(s) defining template variables"  name:"context" short:"c" type:"existingfile"`
	Ext        map[string]string `help:"Additional string variables as name=value pairs"  name:"ext"     short:"e"`
	OpenDelim  string            `help:"Opening expression delimiter"                      name:"open"    default:"{"`
	CloseDelim string            `help:"Closing expression delimiter"                      name:"close"   default:"}"`
	Sandbox    bool              `help:"Hide built-in globals not named by --allow"`
	Allow      []string          `help:"Built-in globals visible under --sandbox"`
	Timeout    time.Duration     `help:"Advisory per-expression execution bound"`
	UnsafeEval bool              `help:"Skip the interrupt watchdog for trusted templates"`
}

// vars loads and merges the YAML context files in order; entries from later
// files override earlier ones.
func (c *evalConfig) vars() (map[string]any, error) {
	merged := make(map[string]any)

	for _, path := range c.Context {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, ErrLoadContext.Wrap(err).
				With(slog.String("path", path))
		}

		var vars map[string]any

		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, ErrLoadContext.Wrap(err).
				With(slog.String("path", path))
		}

		maps.Copy(merged, vars)
	}

	return merged, nil
}

// options converts the evaluation flags to template render options.
func (c *evalConfig) options() []tmpl.Option {
	opts := []tmpl.Option{
		tmpl.WithDelimiters(c.OpenDelim, c.CloseDelim),
	}

	if len(c.Ext) > 0 {
		ext := make(map[string]any, len(c.Ext))
		for name, value := range c.Ext {
			ext[name] = value
		}

		opts = append(opts, tmpl.WithExtensions(ext))
	}

	if c.Sandbox {
		opts = append(opts, tmpl.WithSandbox(true))
	}

	if len(c.Allow) > 0 {
		opts = append(opts, tmpl.WithAllowedGlobals(c.Allow...))
	}

	if c.Timeout > 0 {
		opts = append(opts, tmpl.WithTimeout(c.Timeout))
	}

	if c.UnsafeEval {
		opts = append(opts, tmpl.WithUnsafeEval(true))
	}

	return opts
}
