package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <pattern>",
		Short: "Delete a note",
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

			// Confirmation prompt
			if !force {
				reader := bufio.NewReader(os.Stdin)
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete '%s'? (y/N) ", filename)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			if err := repo.Delete(filename); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", filename)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
