package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/md-notes/mdnotes/internal/config"
	"github.com/md-notes/mdnotes/internal/logger"
	"github.com/md-notes/mdnotes/internal/repository"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "mdnotes",
	Short:   "mdnotes - A simple markdown note manager",
	Long:    "mdnotes keeps markdown notes in a single directory and lets you create, list, search, open, and delete them.",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newMCPCmd())
}

func newLogger() *logger.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return logger.NewWithLevel(os.Stderr, level)
}

func openRepository() (*repository.Repository, error) {
	return repository.New(config.GetNotesDir(), newLogger())
}
