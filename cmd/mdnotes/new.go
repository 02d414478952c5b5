package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "new <title>...",
		Short: "Create a new note",
		Long:  "Create a new note. Title words starting with # become tags.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			repo, err := openRepository()
			if err != nil {
				return err
			}

			created, err := repo.Create(title, content)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created note: %s\n", created.Filename)
			fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", created.Path)
			if len(created.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Tags: %s\n", strings.Join(created.Tags, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Initial note content")

	return cmd
}
