// Package annotate generates the interpretation column of the
// case-accuracy table: a short likely-reason note per case, produced by
// an LLM from the computed accuracy numbers. The thesis maintained this
// column by hand; here it is optional and only runs when a provider is
// configured.
package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/rizve/percepta/internal/analysis"
	"github.com/rizve/percepta/internal/llm"
)

// Config holds annotation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for annotation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Service produces likely-reason annotations for accuracy tables.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an annotation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// annotationOutput is the raw LLM response.
type annotationOutput struct {
	Annotations []struct {
		Case   string `json:"case"`
		Reason string `json:"reason"`
	} `json:"annotations"`
}

const systemPrompt = `You are a survey data analyst summarizing accessibility test results.
Each test case was shown to two participant groups: Likely Color Blind (LCB) and Normal Vision (NV).
For every case you are given the percent of each group that chose the correct option.
Explain, in one short sentence per case, the most likely reason for the observed gap
(for example reliance on red-green contrast, or the presence of color-independent cues).
Do not restate the numbers.`

const userTemplate = `Annotate these cases:
{{range .}}
- {{.Case}}: LCB {{printf "%.1f" .LCB}}% correct, NV {{printf "%.1f" .NV}}% correct
{{- end}}
`

// caseStat is one case's numbers as presented to the LLM.
type caseStat struct {
	Case string
	LCB  float64
	NV   float64
}

var userTmpl = template.Must(template.New("annotate").Parse(userTemplate))

// Annotate returns a case→reason map for the given accuracy rows. The
// rows come in (case, group) pairs; both groups' percentages are folded
// into one prompt line per case.
func (s *Service) Annotate(ctx context.Context, rows []analysis.CaseAccuracyRow) (map[string]string, error) {
	ctx = llm.WithPurpose(ctx, "annotation")

	stats := foldStats(rows)
	if len(stats) == 0 {
		return map[string]string{}, nil
	}

	var buf bytes.Buffer
	if err := userTmpl.Execute(&buf, stats); err != nil {
		return nil, fmt.Errorf("build annotation prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      AnnotationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM annotation failed: %w", err)
	}

	var raw annotationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse annotation response: %w", err)
	}

	out := make(map[string]string, len(raw.Annotations))
	for _, a := range raw.Annotations {
		out[a.Case] = a.Reason
	}
	return out, nil
}

// foldStats collapses per-group rows into one stat per case, preserving
// input case order.
func foldStats(rows []analysis.CaseAccuracyRow) []caseStat {
	index := map[string]int{}
	var stats []caseStat
	for _, r := range rows {
		i, ok := index[r.Case]
		if !ok {
			i = len(stats)
			index[r.Case] = i
			stats = append(stats, caseStat{Case: r.Case})
		}
		if r.Group.Code() == "LCB" {
			stats[i].LCB = r.Percent
		} else {
			stats[i].NV = r.Percent
		}
	}
	return stats
}
