package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/md-notes/mdnotes/internal/repository"
)

func newStatsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics about your notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			stats, err := repo.Stats()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, statsToOutput(stats))
			case "table":
				if stats.Count == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
					return nil
				}
				outputStatsTable(cmd, stats)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type statsOutput struct {
	Count     int            `json:"count"`
	TotalSize int64          `json:"totalSize"`
	Oldest    string         `json:"oldest,omitempty"`
	Newest    string         `json:"newest,omitempty"`
	TagCounts map[string]int `json:"tagCounts,omitempty"`
}

func statsToOutput(stats *repository.Stats) statsOutput {
	output := statsOutput{
		Count:     stats.Count,
		TotalSize: stats.TotalSize,
		TagCounts: stats.TagCounts,
	}
	if stats.Oldest != nil {
		output.Oldest = stats.Oldest.Filename
	}
	if stats.Newest != nil {
		output.Newest = stats.Newest.Filename
	}
	return output
}

func outputStatsTable(cmd *cobra.Command, stats *repository.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"Total notes", stats.Count})
	t.AppendRow(table.Row{"Total size", fmt.Sprintf("%.1f KB", float64(stats.TotalSize)/1024)})
	if stats.Oldest != nil {
		t.AppendRow(table.Row{"Oldest note", fmt.Sprintf("%s (%s)", stats.Oldest.Filename, stats.Oldest.ModifiedAt.Format(time.DateOnly))})
	}
	if stats.Newest != nil {
		t.AppendRow(table.Row{"Newest note", fmt.Sprintf("%s (%s)", stats.Newest.Filename, stats.Newest.ModifiedAt.Format(time.DateOnly))})
	}
	t.Render()

	if len(stats.TagCounts) == 0 {
		return
	}

	type tagCount struct {
		tag   string
		count int
	}
	counts := make([]tagCount, 0, len(stats.TagCounts))
	for tag, count := range stats.TagCounts {
		counts = append(counts, tagCount{tag, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].tag < counts[j].tag
	})

	fmt.Fprintf(cmd.OutOrStdout(), "\nTags (%d unique):\n", len(counts))
	for _, c := range counts {
		fmt.Fprintf(cmd.OutOrStdout(), "  #%s: %d notes\n", c.tag, c.count)
	}
}
