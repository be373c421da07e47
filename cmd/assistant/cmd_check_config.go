package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/spboyer/assistant/internal/projectconfig"
	"github.com/spboyer/assistant/internal/validation"
)

func newCheckConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config [config-file]",
		Short: "Validate an .assistant.yaml file",
		Long: `Validate a configuration file against the assistant config schema.

With no argument, the .assistant.yaml that would be used from the current
directory is checked. Reports every schema violation and exits non-zero if
there are any.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return checkConfigCommandE(cmd.OutOrStdout(), path)
		},
	}
}

func checkConfigCommandE(w io.Writer, path string) error {
	if path == "" {
		found, err := projectconfig.Find(".")
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(w, "No %s found, defaults are in use\n", projectconfig.FileName) //nolint:errcheck
				return nil
			}
			return err
		}
		path = found
	}

	errs, err := validation.ValidateConfigFile(path)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		fmt.Fprintf(w, "❌ %s\n", path) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n", e) //nolint:errcheck
		}
		return fmt.Errorf("%s has %d schema error(s)", path, len(errs))
	}

	cfg, err := projectconfig.LoadFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "❌ %s\n  %v\n", path, err) //nolint:errcheck
		return err
	}

	fmt.Fprintf(w, "✅ %s is valid\n", path) //nolint:errcheck
	return nil
}
