package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/md-notes/mdnotes/internal/note"
)

func newSearchCmd() *cobra.Command {
	var (
		tagOnly bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes by content or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			repo, err := openRepository()
			if err != nil {
				return err
			}

			var matches []string
			if tagOnly {
				matches, err = repo.SearchTags(query)
			} else {
				matches, err = repo.Search(query)
			}
			if err != nil {
				return err
			}

			if format == "json" {
				return outputJSON(cmd, matches)
			}

			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No notes found for: %q\n", query)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d notes:\n", len(matches))
			for _, filename := range matches {
				title := filename
				if content, err := repo.Read(filename); err == nil {
					title = note.TitleFromContent(content)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n    %s\n", title, filename)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tagOnly, "tag-only", "T", false, "Search only in tags")
	cmd.Flags().StringVar(&format, "format", "plain", "Output format: plain or json")

	return cmd
}
