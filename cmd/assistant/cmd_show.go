package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/spboyer/assistant/internal/summary"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <summary-file>",
		Short: "Print a saved summary",
		Long: `Read a summary file written by assistant and print its fields and rating
as an aligned table. Fails if the file is not a summary written by assistant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCommandE(cmd.OutOrStdout(), args[0])
		},
	}
}

func showCommandE(w io.Writer, path string) error {
	set, rating, err := summary.ParseFile(path)
	if err != nil {
		return err
	}

	labels := make([]string, 0, set.Len()+1)
	for _, key := range set.Keys() {
		labels = append(labels, summary.Label(key))
	}
	labels = append(labels, "Rating")

	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l))
	}

	fmt.Fprintf(w, "%s\n\n", path) //nolint:errcheck
	for i, e := range set.Entries() {
		fmt.Fprintf(w, "  %s  %s\n", padRight(labels[i], width), e.Value) //nolint:errcheck
	}
	fmt.Fprintf(w, "  %s  %s\n", padRight("Rating", width), stars(rating)) //nolint:errcheck
	return nil
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func stars(r summary.Rating) string {
	filled := int(r)
	return fmt.Sprintf("%s%s %d/%d", strings.Repeat("★", filled), strings.Repeat("☆", summary.MaxRating-filled), r, summary.MaxRating)
}
