package cmd

import (
	"fmt"

	"github.com/rizve/percepta/internal/dataset"
	"github.com/rizve/percepta/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "percepta",
	Short: "Accessibility survey analyzer",
	Long: "Percepta — batch analyzer for the visual (Ishihara) and auditory " +
		"accessibility surveys: scoring, classification, cross-tabs, and charts.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PERCEPTA_DB env var)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(visualCmd)
	rootCmd.AddCommand(audioCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PERCEPTA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadTable resolves the response table for an analysis command: the
// --file flag wins, otherwise the most recently imported dataset of the
// given survey kind. The returned dataset ID is empty for file input.
func loadTable(cmd *cobra.Command, survey string) (*dataset.Table, string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		t, err := dataset.Load(path)
		if err != nil {
			return nil, "", err
		}
		return t, "", nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return nil, "", err
	}
	defer s.Close()

	ctx := cmd.Context()
	meta, err := s.DatasetRepo().LatestDataset(ctx, survey)
	if err != nil {
		return nil, "", fmt.Errorf("look up latest dataset: %w", err)
	}
	if meta == nil {
		return nil, "", fmt.Errorf("no %s dataset imported yet; run `percepta import --survey %s <file>` or pass --file", survey, survey)
	}

	t, err := s.DatasetRepo().LoadTable(ctx, meta.ID)
	if err != nil {
		return nil, "", fmt.Errorf("load dataset %s: %w", meta.ID, err)
	}
	return t, meta.ID, nil
}

// recordRun appends an analysis event for one command run. Recording is
// best effort; a storage failure must not fail the analysis itself.
func recordRun(cmd *cobra.Command, kind, datasetID string, rows int, output string) {
	s, err := openStore(cmd)
	if err != nil {
		return
	}
	defer s.Close()

	_ = s.EventRepo().AppendAnalysisEvent(cmd.Context(), store.AnalysisEventData{
		DatasetID: datasetID,
		Kind:      kind,
		Rows:      rows,
		Output:    output,
	})
}
