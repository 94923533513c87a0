package tmpl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/sval/log"
)

// DefaultOpenDelim and DefaultCloseDelim are the marker pair used when
// no delimiters option is given.
const (
	DefaultOpenDelim  = "{"
	DefaultCloseDelim = "}"
)

// config holds the per-render configuration. All fields are fixed for
// the duration of one render call; concurrent calls never share state.
type config struct {
	open       string
	close      string
	ext        map[string]any
	allowed    []string
	processEnv []string
	timeout    time.Duration
	raw        bool
	sandbox    bool
	unsafeEval bool
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

func withDefaults() config {
	return config{
		open:  DefaultOpenDelim,
		close: DefaultCloseDelim,
	}
}

// WithDelimiters returns a functional option that sets the literal
// open/close marker pair bounding expression regions.
func WithDelimiters(open, close string) Option {
	return func(c config) config {
		c.open = open
		c.close = close

		return c
	}
}

// WithExtensions returns a functional option that merges ext over the
// base context; extension entries win on name collision.
func WithExtensions(ext map[string]any) Option {
	return func(c config) config {
		c.ext = ext

		return c
	}
}

// WithRawValues returns a functional option that enables raw-value
// rendering: when the whole trimmed template is exactly one delimited
// region, Render returns the computed value with its type preserved
// instead of a substituted string.
func WithRawValues(enable bool) Option {
	return func(c config) config {
		c.raw = enable

		return c
	}
}

// WithSandbox returns a functional option that selects the restricted
// trust policy: expressions see only the bound context names and the
// allow-listed globals, and resolving any other ambient name is a
// run-time failure.
func WithSandbox(enable bool) Option {
	return func(c config) config {
		c.sandbox = enable

		return c
	}
}

// WithAllowedGlobals returns a functional option naming built-in
// globals that remain visible under the restricted policy.
func WithAllowedGlobals(names ...string) Option {
	return func(c config) config {
		c.allowed = append(c.allowed, names...)

		return c
	}
}

// WithTimeout returns a functional option that bounds each region's
// execution. The bound is advisory: the runtime is interrupted between
// statements, so a blocking native call can overrun it.
func WithTimeout(d time.Duration) Option {
	return func(c config) config {
		c.timeout = d

		return c
	}
}

// WithUnsafeEval returns a functional option selecting a faster, less
// isolated execution path for trusted templates only: the interrupt
// watchdog is skipped and no timeout is enforced.
func WithUnsafeEval(enable bool) Option {
	return func(c config) config {
		c.unsafeEval = enable

		return c
	}
}

// WithProcessEnv returns a functional option that sets the "KEY=VALUE"
// entries backing the built-in env() global. A nil slice means the
// current process environment.
func WithProcessEnv(env []string) Option {
	return func(c config) config {
		c.processEnv = env

		return c
	}
}

// Render evaluates every delimited region of text against vars and
// returns the substituted string. With [WithRawValues] enabled and the
// whole trimmed text being exactly one region, the region's computed
// value is returned instead, with its type preserved.
//
// Expression failures never propagate: each failed region substitutes
// the inline "[Error: ...]" marker (which in raw mode is also the
// returned value). The only error Render itself returns is delimiter
// misconfiguration.
func Render(
	ctx context.Context,
	text string,
	vars map[string]any,
	opts ...Option,
) (any, error) {
	cfg := apply(withDefaults(), opts...)

	m, err := newMatcher(cfg.open, cfg.close)
	if err != nil {
		return nil, err
	}

	bound := merge(vars, cfg.ext)

	if cfg.raw {
		if src, ok := m.matchWhole(text); ok {
			return projectRaw(cfg.evaluate(ctx, src, bound)), nil
		}
	}

	return cfg.substitute(ctx, text, m, bound), nil
}

// RenderString is Render restricted to string mode: raw-value
// rendering is disabled regardless of options.
func RenderString(
	ctx context.Context,
	text string,
	vars map[string]any,
	opts ...Option,
) (string, error) {
	result, err := Render(
		ctx, text, vars, append(opts, WithRawValues(false))...,
	)
	if err != nil {
		return "", err
	}

	s, _ := result.(string)

	return s, nil
}

// RenderOutcome evaluates a single-region template and returns the
// tagged outcome before projection, so callers can distinguish a
// failure from a legitimately computed string. The whole trimmed text
// must be exactly one delimited region.
func RenderOutcome(
	ctx context.Context,
	text string,
	vars map[string]any,
	opts ...Option,
) (Outcome, error) {
	cfg := apply(withDefaults(), opts...)

	m, err := newMatcher(cfg.open, cfg.close)
	if err != nil {
		return Outcome{}, err
	}

	src, ok := m.matchWhole(text)
	if !ok {
		return Outcome{}, ErrNotSingleRegion.With(
			slog.String("open", cfg.open),
			slog.String("close", cfg.close),
		)
	}

	o := cfg.evaluate(ctx, src, merge(vars, cfg.ext))
	if o.err != nil {
		return Outcome{Err: o.err}, nil
	}

	return Outcome{Value: projectRaw(o)}, nil
}

// substitute replaces every delimited region of text with its
// projected string. Literal text outside the regions is preserved
// byte for byte, and a failed region never aborts the remaining ones.
func (c config) substitute(
	ctx context.Context,
	text string,
	m *matcher,
	bound binding,
) string {
	regions := m.findAll(text)
	if len(regions) == 0 {
		return text
	}

	var sb strings.Builder

	last := 0

	for _, r := range regions {
		sb.WriteString(text[last:r.start])
		sb.WriteString(projectString(c.evaluate(ctx, r.expr, bound)))
		last = r.end
	}

	sb.WriteString(text[last:])

	return sb.String()
}

// evaluate runs one expression region through the classify, compile,
// execute pipeline.
func (c config) evaluate(
	ctx context.Context,
	src string,
	bound binding,
) outcome {
	shape := classify(src)

	log.DebugContext(ctx, "evaluate region",
		slog.String("shape", shape.String()),
		slog.String("source", src),
	)

	unit, err := compileUnit(src, shape, bound.names)
	if err != nil {
		return outcome{err: err}
	}

	return c.execute(ctx, unit, bound)
}
