package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/md-notes/mdnotes/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server exposing note operations over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			server := mcp.NewServer(repo)
			return server.Run(context.Background())
		},
	}

	return cmd
}
