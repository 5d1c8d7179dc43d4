package cmd

import (
	"fmt"
	"strconv"

	"github.com/rizve/percepta/internal/analysis"
	"github.com/rizve/percepta/internal/report"
	"github.com/spf13/cobra"
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Analyze the auditory survey",
}

var audioDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Good/bad audio device split",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := analysis.NewAuditory()
		t, datasetID, err := loadTable(cmd, "auditory")
		if err != nil {
			return err
		}

		rows := a.DeviceSplit(t)

		tbl := report.Table{
			Title:   "Audio Device Quality",
			Columns: []string{"Device Band", "Participants", "Percent"},
			Note:    "Responses without a numeric rating are excluded.",
		}
		for _, r := range rows {
			tbl.AddRow(r.Band, strconv.Itoa(r.N), report.Pct(r.Percent))
		}

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "audio-devices", datasetID, t.Len(), out)
		return nil
	},
}

var audioAccuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Per-case accuracy with playback condition",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := analysis.NewAuditory()
		t, datasetID, err := loadTable(cmd, "auditory")
		if err != nil {
			return err
		}

		rows := a.CaseAccuracies(t, analysis.AudioCaseOrder)

		tbl := report.Table{
			Title:   "Auditory Case Accuracy",
			Columns: []string{"Case", "Condition", "Correct", "Responses", "Percent"},
		}
		for _, r := range rows {
			tbl.AddRow(r.Case, r.Condition,
				strconv.Itoa(r.Correct), strconv.Itoa(r.Total), report.Pct(r.Percent))
		}

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "audio-accuracy", datasetID, t.Len(), out)
		return nil
	},
}

var audioNoiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Perceived noise-level counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := analysis.NewAuditory()
		t, datasetID, err := loadTable(cmd, "auditory")
		if err != nil {
			return err
		}

		rows := a.NoiseLevels(t)

		tbl := report.Table{
			Title:   "Perceived Noise Levels",
			Columns: []string{"Noise Level", "Participants"},
		}
		for _, r := range rows {
			tbl.AddRow(r.Label, strconv.Itoa(r.Count))
		}

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "audio-noise", datasetID, t.Len(), out)
		return nil
	},
}

func init() {
	audioCmd.PersistentFlags().String("file", "", "Analyze a spreadsheet directly instead of the latest imported dataset")

	audioCmd.AddCommand(audioDevicesCmd)
	audioCmd.AddCommand(audioAccuracyCmd)
	audioCmd.AddCommand(audioNoiseCmd)
}
