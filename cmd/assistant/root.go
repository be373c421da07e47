package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/spboyer/assistant/internal/collector"
	"github.com/spboyer/assistant/internal/projectconfig"
	"github.com/spboyer/assistant/internal/prompt"
	"github.com/spboyer/assistant/internal/session"
	"github.com/spboyer/assistant/internal/summary"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var (
		seed       uint64
		outputDir  string
		accessible bool
	)

	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "A small personal assistant that gets to know you",
		Long: `assistant asks your name, your age and a few random questions about
your favorite things, prints a personalized summary, and can save it
together with a 1-5 rating to a timestamped text file.

Settings can be placed in a .assistant.yaml file in the working directory
or any of its parents.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return assistantCommandE(cmd, seed, outputDir, accessible)
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for choosing the optional questions (0 picks one from the clock)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to save summaries in (overrides .assistant.yaml)")

	cmd.Flags().BoolVar(&accessible, "accessible", false, "Ask questions with plain screen-reader friendly forms")

	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newCheckConfigCommand())

	return cmd
}

func assistantCommandE(cmd *cobra.Command, seed uint64, outputDir string, accessible bool) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := cfg.OutputDir
	if outputDir != "" {
		dir = outputDir
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Debug("Starting session", "seed", seed, "outputDir", dir, "config", cfg.Path)

	out := cmd.OutOrStdout()
	var p prompt.Prompter
	if accessible {
		p = prompt.NewTerminal(cmd.InOrStdin(), out).WithAccessible(true)
	} else {
		p = prompt.ForReader(cmd.InOrStdin(), out)
	}

	driver := session.New(session.Options{
		Out:       out,
		Prompter:  p,
		Chooser:   collector.NewRandomChooser(seed).WithBounds(cfg.MinOptional(), cfg.MaxOptional()),
		Presenter: summary.Presenter{Greeting: cfg.Greeting},
		Persister: summary.NewPersister(dir),
	})

	if err := driver.Run(cmd.Context()); err != nil {
		return &SessionError{Err: err}
	}
	return nil
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
