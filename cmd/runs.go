package cmd

import (
	"fmt"
	"strings"

	"github.com/rizve/percepta/internal/store"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect past analysis runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryAnalysisEvents(cmd.Context(), store.QueryOpts{
			Limit: limit,
			Kind:  kind,
		})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No analysis runs recorded yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-18s  %-36s  %s\n",
			"ID", "Timestamp", "Kind", "Dataset", "Rows")
		fmt.Println(strings.Repeat("─", 92))

		for _, e := range events {
			ds := e.DatasetID
			if ds == "" {
				ds = "(file)"
			}
			fmt.Printf("%-5d  %-19s  %-18s  %-36s  %d\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Kind,
				ds,
				e.Rows,
			)
		}
		return nil
	},
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	runsListCmd.Flags().StringP("kind", "k", "", "Filter by analysis kind (e.g. visual-scores)")

	runsCmd.AddCommand(runsListCmd)
}
