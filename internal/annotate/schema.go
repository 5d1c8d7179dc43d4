package annotate

import "github.com/rizve/percepta/internal/llm"

// AnnotationSchema defines the JSON schema for case-annotation responses:
// one short likely-reason string per analyzed case.
var AnnotationSchema = &llm.Schema{
	Name:        "case-annotations",
	Description: "Likely reasons for the accuracy gap between groups on each test case",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"annotations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"case": map[string]any{
							"type":        "string",
							"description": "The case identifier exactly as given in the input",
						},
						"reason": map[string]any{
							"type":        "string",
							"description": "One short sentence explaining the likely cause of the observed accuracy pattern",
						},
					},
					"required":             []any{"case", "reason"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"annotations"},
		"additionalProperties": false,
	},
}
