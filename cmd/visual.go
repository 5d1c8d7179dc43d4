package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rizve/percepta/internal/analysis"
	"github.com/rizve/percepta/internal/annotate"
	"github.com/rizve/percepta/internal/chart"
	"github.com/rizve/percepta/internal/llm"
	"github.com/rizve/percepta/internal/report"
	"github.com/rizve/percepta/internal/scoring"
	"github.com/spf13/cobra"
)

var visualCmd = &cobra.Command{
	Use:   "visual",
	Short: "Analyze the visual (Ishihara) survey",
}

// buildVisual applies the --key/--cases override files on top of the
// default plate key and case table.
func buildVisual(cmd *cobra.Command) (*analysis.Visual, error) {
	v := analysis.NewVisual()

	if path, _ := cmd.Flags().GetString("key"); path != "" {
		key, err := scoring.LoadAnswerKey(path)
		if err != nil {
			return nil, fmt.Errorf("load answer key: %w", err)
		}
		v.Key = key
	}
	if path, _ := cmd.Flags().GetString("cases"); path != "" {
		cases, err := scoring.LoadCaseTable(path)
		if err != nil {
			return nil, fmt.Errorf("load case table: %w", err)
		}
		v.Cases = cases
	}
	return v, nil
}

var visualScoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Score distribution with classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildVisual(cmd)
		if err != nil {
			return err
		}
		t, datasetID, err := loadTable(cmd, "visual")
		if err != nil {
			return err
		}

		buckets := v.ScoreDistribution(t)

		tbl := report.Table{
			Title:   "Ishihara Score Distribution",
			Columns: []string{"Score", "Participants", "Classification"},
		}
		for _, b := range buckets {
			tbl.AddRow(strconv.Itoa(b.Score), strconv.Itoa(b.N), string(b.Class))
		}
		tbl.AddRow("Total", strconv.Itoa(t.Len()), "")

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "visual-scores", datasetID, t.Len(), out)
		return nil
	},
}

var visualCasesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Option A/B counts for Cases 1-5 by classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildVisual(cmd)
		if err != nil {
			return err
		}
		t, datasetID, err := loadTable(cmd, "visual")
		if err != nil {
			return err
		}

		rows := v.CaseOptionCounts(t, analysis.VisualCaseColumns)

		tbl := report.Table{
			Title:   "Interface Case Preferences",
			Columns: []string{"Case", "Group", "Option A", "Option B"},
		}
		for _, r := range rows {
			tbl.AddRow(r.Case, string(r.Group), strconv.Itoa(r.OptionA), strconv.Itoa(r.OptionB))
		}

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "visual-cases", datasetID, t.Len(), out)
		return nil
	},
}

var visualAccuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Percent correct for the color-dependent cases by classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildVisual(cmd)
		if err != nil {
			return err
		}
		t, datasetID, err := loadTable(cmd, "visual")
		if err != nil {
			return err
		}

		rows := v.CaseAccuracies(t, analysis.VisualCorrectOrder)

		withReasons, _ := cmd.Flags().GetBool("annotate")
		if withReasons {
			if err := annotateRows(cmd, rows); err != nil {
				fmt.Fprintln(os.Stderr, "annotation skipped:", err)
			}
		}

		tbl := report.Table{
			Title:   "Correct Answers per Case",
			Columns: []string{"Case", "Group", "Correct", "Total", "Percent"},
		}
		if withReasons {
			tbl.Columns = append(tbl.Columns, "Likely Reason")
		}
		for _, r := range rows {
			cells := []string{
				r.Case, string(r.Group),
				strconv.Itoa(r.Correct), strconv.Itoa(r.Total),
				report.Pct(r.Percent),
			}
			if withReasons {
				cells = append(cells, r.Reason)
			}
			tbl.AddRow(cells...)
		}

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "visual-accuracy", datasetID, t.Len(), out)
		return nil
	},
}

// annotateRows fills the Reason column using the configured LLM
// provider. Rows share one reason per case.
func annotateRows(cmd *cobra.Command, rows []analysis.CaseAccuracyRow) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	svc := annotate.NewService(provider, annotate.DefaultConfig())
	reasons, err := svc.Annotate(ctx, rows)
	if err != nil {
		return err
	}

	for i := range rows {
		rows[i].Reason = reasons[rows[i].Case]
	}
	return nil
}

var visualDifficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Mean difficulty rating per classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := buildVisual(cmd)
		if err != nil {
			return err
		}
		t, datasetID, err := loadTable(cmd, "visual")
		if err != nil {
			return err
		}

		rows := v.DifficultyByGroup(t, analysis.DifficultyColumn)

		tbl := report.Table{
			Title:   "Perceived Difficulty",
			Columns: []string{"Group", "Participants", "Avg Difficulty"},
			Note:    "Averages skip non-numeric ratings.",
		}
		for _, r := range rows {
			tbl.AddRow(string(r.Group), strconv.Itoa(r.Participants),
				strconv.FormatFloat(r.AvgDifficulty, 'f', 2, 64))
		}

		out := tbl.Render()
		fmt.Print(out)
		recordRun(cmd, "visual-difficulty", datasetID, t.Len(), out)
		return nil
	},
}

var visualChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the classification pie or case-accuracy bar chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		out, _ := cmd.Flags().GetString("out")

		v, err := buildVisual(cmd)
		if err != nil {
			return err
		}
		t, datasetID, err := loadTable(cmd, "visual")
		if err != nil {
			return err
		}

		switch kind {
		case "pie":
			var slices []chart.Slice
			for _, c := range v.ClassCounts(t) {
				slices = append(slices, chart.Slice{Label: string(c.Class), Value: float64(c.N)})
			}
			err = chart.WriteFile(out, func(w io.Writer) error {
				return chart.RenderPie(w, "Likely Color Blind vs Normal Vision", slices)
			})
		case "bar":
			var bars []chart.Bar
			for _, r := range v.CaseAccuracies(t, analysis.VisualCorrectOrder) {
				hex := chart.HexNormalVision
				if r.Group.Code() == "LCB" {
					hex = chart.HexLikelyColorBlind
				}
				bars = append(bars, chart.Bar{
					Label: fmt.Sprintf("%s %s", r.Case, r.Group.Code()),
					Value: float64(r.Correct),
					Hex:   hex,
				})
			}
			err = chart.WriteFile(out, func(w io.Writer) error {
				return chart.RenderBars(w, "Correct Answers per Case", bars)
			})
		default:
			return fmt.Errorf("invalid --kind %q (want pie or bar)", kind)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s chart to %s\n", kind, out)
		recordRun(cmd, "visual-chart-"+kind, datasetID, t.Len(), out)
		return nil
	},
}

func init() {
	visualCmd.PersistentFlags().String("file", "", "Analyze a spreadsheet directly instead of the latest imported dataset")
	visualCmd.PersistentFlags().String("key", "", "JSON file overriding the plate answer key")
	visualCmd.PersistentFlags().String("cases", "", "JSON file overriding the case answer table")

	visualAccuracyCmd.Flags().Bool("annotate", false, "Add an LLM-generated likely-reason column")
	visualChartCmd.Flags().String("kind", "pie", "Chart kind: pie or bar")
	visualChartCmd.Flags().String("out", "chart.png", "Output PNG path")

	visualCmd.AddCommand(visualScoresCmd)
	visualCmd.AddCommand(visualCasesCmd)
	visualCmd.AddCommand(visualAccuracyCmd)
	visualCmd.AddCommand(visualDifficultyCmd)
	visualCmd.AddCommand(visualChartCmd)
}
