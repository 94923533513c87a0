package cmd

import (
	"context"

	"github.com/ardnew/sval/cli/cmd/repl"
)

// Repl starts an interactive expression evaluator over the loaded context.
type Repl struct {
	Eval evalConfig `embed:""`

	History string `help:"History file path" default:"${cache}/history"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	vars, err := r.Eval.vars()
	if err != nil {
		return err
	}

	return repl.Run(ctx, repl.Config{
		Vars:        vars,
		Options:     r.Eval.options(),
		OpenDelim:   r.Eval.OpenDelim,
		CloseDelim:  r.Eval.CloseDelim,
		HistoryPath: r.History,
	})
}
