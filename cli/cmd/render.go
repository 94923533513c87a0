package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/sval/tmpl"
)

// Render evaluates a template and writes the result to stdout.
//
// The template text is taken from the positional argument, the --file flag,
// or stdin, in that order of preference.
type Render struct {
	Eval evalConfig `embed:""`

	Template string `arg:"" help:"Template text (reads stdin if omitted)" name:"template" optional:""`
	File     string `       help:"Read template from file or '-' for stdin"                            short:"f"`
	Raw      bool   `       help:"Return the typed value of a single-region template"                  short:"r"`
	Output   string `       help:"Output encoding"                                         short:"o"   default:"text" enum:"text,json,yaml"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	text, err := r.source()
	if err != nil {
		return err
	}

	vars, err := r.Eval.vars()
	if err != nil {
		return err
	}

	opts := r.Eval.options()
	if r.Raw {
		opts = append(opts, tmpl.WithRawValues(true))
	}

	result, err := tmpl.Render(ctx, text, vars, opts...)
	if err != nil {
		return err
	}

	return writeResult(stdout(ctx), result, r.Output)
}

// source resolves the template text from the configured inputs.
func (r *Render) source() (string, error) {
	switch {
	case r.File != "":
		return readSource(r.File)

	case r.Template != "":
		return r.Template, nil

	default:
		return readSource(stdinSource)
	}
}

// writeResult encodes result to w using the named encoding.
func writeResult(w io.Writer, result any, encoding string) error {
	switch encoding {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err).
				With(slog.String("type", fmt.Sprintf("%T", result)))
		}

		_, err = fmt.Fprintln(w, string(data))

		return err

	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err).
				With(slog.String("type", fmt.Sprintf("%T", result)))
		}

		_, err = fmt.Fprint(w, string(data))

		return err

	default:
		_, err := fmt.Fprintln(w, formatResult(result))

		return err
	}
}

// formatResult renders a raw value for plain-text output.
func formatResult(result any) string {
	switch v := result.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
