package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/sval/pkg"
)

// Version prints version information.
type Version struct {
	Long bool `help:"Include the program name" short:"l"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	if v.Long {
		_, err := fmt.Fprintln(stdout(ctx), pkg.Name, pkg.Version)

		return err
	}

	_, err := fmt.Fprintln(stdout(ctx), pkg.Version)

	return err
}
