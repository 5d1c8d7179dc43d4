package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rizve/percepta/internal/dataset"
	"github.com/rizve/percepta/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Import a survey spreadsheet into the local store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		survey, _ := cmd.Flags().GetString("survey")
		name, _ := cmd.Flags().GetString("name")

		if survey != "visual" && survey != "auditory" {
			return fmt.Errorf("invalid --survey %q (want visual or auditory)", survey)
		}

		path := args[0]
		t, err := dataset.Load(path)
		if err != nil {
			return err
		}
		if name == "" {
			name = filepath.Base(path)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		meta := store.DatasetMeta{
			ID:         uuid.NewString(),
			Name:       name,
			Survey:     survey,
			Source:     path,
			RowCount:   t.Len(),
			ImportedAt: time.Now().UTC(),
		}
		if err := s.DatasetRepo().SaveDataset(cmd.Context(), meta, t); err != nil {
			return fmt.Errorf("save dataset: %w", err)
		}

		fmt.Printf("Imported %d rows from %s as %s dataset %s\n", t.Len(), path, survey, meta.ID)
		return nil
	},
}

func init() {
	importCmd.Flags().String("survey", "visual", "Survey kind: visual or auditory")
	importCmd.Flags().String("name", "", "Dataset name (defaults to the file name)")
}
