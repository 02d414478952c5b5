package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/md-notes/mdnotes/internal/repository"
)

func newListCmd() *cobra.Command {
	var (
		tagFilter string
		recent    int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			summaries, err := repo.List()
			if err != nil {
				return err
			}

			// Presentation sorts by modification time; the repository itself
			// reports directory-listing order.
			sort.SliceStable(summaries, func(i, j int) bool {
				return summaries[i].ModifiedAt.After(summaries[j].ModifiedAt)
			})

			if tagFilter != "" {
				summaries = filterByTags(summaries, splitTags(tagFilter))
			}
			if recent > 0 && recent < len(summaries) {
				summaries = summaries[:recent]
			}

			switch format {
			case "json":
				return outputJSON(cmd, summariesToOutput(summaries))
			case "table":
				if len(summaries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
					return nil
				}
				outputListTable(cmd, summaries)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&tagFilter, "tag", "t", "", "Filter by tags (comma-separated)")
	cmd.Flags().IntVarP(&recent, "recent", "r", 0, "Show only the N most recent notes")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type listOutputEntry struct {
	Filename   string   `json:"filename"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags,omitempty"`
	Size       int64    `json:"size"`
	ModifiedAt string   `json:"modifiedAt"`
}

func summariesToOutput(summaries []repository.Summary) []listOutputEntry {
	output := make([]listOutputEntry, 0, len(summaries))
	for _, s := range summaries {
		output = append(output, listOutputEntry{
			Filename:   s.Filename,
			Title:      s.Title,
			Tags:       s.Tags,
			Size:       s.Size,
			ModifiedAt: s.ModifiedAt.Format(time.RFC3339),
		})
	}
	return output
}

func outputJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func splitTags(csv string) []string {
	var tags []string
	for _, tag := range strings.Split(csv, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func filterByTags(summaries []repository.Summary, wanted []string) []repository.Summary {
	filtered := summaries[:0]
	for _, s := range summaries {
		if hasAnyTag(s.Tags, wanted) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func hasAnyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, tag := range tags {
			if tag == w {
				return true
			}
		}
	}
	return false
}

func getTerminalWidth() int {
	// Try to get terminal width from stdout
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

func outputListTable(cmd *cobra.Command, summaries []repository.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	// Filename and date widths are fixed; the title column absorbs whatever
	// terminal width is left.
	termWidth := getTerminalWidth()
	titleWidth := termWidth - filenameWidth(summaries) - 16 - 20 - 12
	if titleWidth < 15 {
		titleWidth = 15
	}

	t.AppendHeader(table.Row{"Title", "Tags", "File", "Modified"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			runewidth.Truncate(s.Title, titleWidth, "..."),
			runewidth.Truncate(strings.Join(s.Tags, ", "), 16, "..."),
			s.Filename,
			s.ModifiedAt.Format("2006-01-02 15:04"),
		})
	}

	t.Render()
}

func filenameWidth(summaries []repository.Summary) int {
	width := 10
	for _, s := range summaries {
		if w := runewidth.StringWidth(s.Filename); w > width {
			width = w
		}
	}
	return width
}
