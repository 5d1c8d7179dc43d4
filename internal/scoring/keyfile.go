package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// keyFileSchema constrains answer-key and case-table override files:
// a flat JSON object of column name → expected string value.
var keyFileSchema = map[string]any{
	"type":          "object",
	"minProperties": 1,
	"additionalProperties": map[string]any{
		"type":      "string",
		"minLength": 1,
	},
}

// LoadAnswerKey reads an AnswerKey override from a JSON file.
func LoadAnswerKey(path string) (AnswerKey, error) {
	m, err := loadKeyFile(path)
	if err != nil {
		return nil, err
	}
	return AnswerKey(m), nil
}

// LoadCaseTable reads a CaseTable override from a JSON file.
func LoadCaseTable(path string) (CaseTable, error) {
	m, err := loadKeyFile(path)
	if err != nil {
		return nil, err
	}
	return CaseTable(m), nil
}

func loadKeyFile(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON: %w", path, err)
	}

	compiled, err := compileKeyFileSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func compileKeyFileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://key-file.json", keyFileSchema); err != nil {
		return nil, fmt.Errorf("add key file schema: %w", err)
	}
	compiled, err := c.Compile("schema://key-file.json")
	if err != nil {
		return nil, fmt.Errorf("compile key file schema: %w", err)
	}
	return compiled, nil
}
