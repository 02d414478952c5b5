package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/md-notes/mdnotes/internal/editor"
)

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <pattern>",
		Short: "Open a note in your editor",
		Long:  "Open a note by filename or partial filename match in $EDITOR. Prints the note content when no editor can be launched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			repo, err := openRepository()
			if err != nil {
				return err
			}

			matches, err := repo.Find(pattern)
			if err != nil {
				return err
			}

			switch len(matches) {
			case 0:
				return fmt.Errorf("note not found: %s", pattern)
			case 1:
				// fall through below
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Multiple matches found:")
				for _, match := range matches {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", match)
				}
				return nil
			}

			filename := matches[0]
			path, err := repo.Open(filename)
			if err != nil {
				return err
			}

			if err := editor.Launch(path); err != nil {
				content, readErr := repo.Read(filename)
				if readErr != nil {
					return readErr
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opened: %s\n", filename)
			return nil
		},
	}

	return cmd
}
