// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rizve/percepta/ent/analysisevent"
	"github.com/rizve/percepta/ent/dataset"
	"github.com/rizve/percepta/ent/llmrequestevent"
	"github.com/rizve/percepta/ent/participantrow"
	"github.com/rizve/percepta/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescDatasetID is the schema descriptor for dataset_id field.
	analysiseventDescDatasetID := analysiseventFields[0].Descriptor()
	// analysisevent.DefaultDatasetID holds the default value on creation for the dataset_id field.
	analysisevent.DefaultDatasetID = analysiseventDescDatasetID.Default.(string)
	// analysiseventDescKind is the schema descriptor for kind field.
	analysiseventDescKind := analysiseventFields[1].Descriptor()
	// analysisevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	analysisevent.KindValidator = analysiseventDescKind.Validators[0].(func(string) error)
	// analysiseventDescRows is the schema descriptor for rows field.
	analysiseventDescRows := analysiseventFields[2].Descriptor()
	// analysisevent.DefaultRows holds the default value on creation for the rows field.
	analysisevent.DefaultRows = analysiseventDescRows.Default.(int)
	// analysiseventDescOutput is the schema descriptor for output field.
	analysiseventDescOutput := analysiseventFields[3].Descriptor()
	// analysisevent.DefaultOutput holds the default value on creation for the output field.
	analysisevent.DefaultOutput = analysiseventDescOutput.Default.(string)
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescName is the schema descriptor for name field.
	datasetDescName := datasetFields[1].Descriptor()
	// dataset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dataset.NameValidator = datasetDescName.Validators[0].(func(string) error)
	// datasetDescSurvey is the schema descriptor for survey field.
	datasetDescSurvey := datasetFields[2].Descriptor()
	// dataset.SurveyValidator is a validator for the "survey" field. It is called by the builders before save.
	dataset.SurveyValidator = datasetDescSurvey.Validators[0].(func(string) error)
	// datasetDescSource is the schema descriptor for source field.
	datasetDescSource := datasetFields[3].Descriptor()
	// dataset.DefaultSource holds the default value on creation for the source field.
	dataset.DefaultSource = datasetDescSource.Default.(string)
	// datasetDescRowCount is the schema descriptor for row_count field.
	datasetDescRowCount := datasetFields[4].Descriptor()
	// dataset.DefaultRowCount holds the default value on creation for the row_count field.
	dataset.DefaultRowCount = datasetDescRowCount.Default.(int)
	// datasetDescImportedAt is the schema descriptor for imported_at field.
	datasetDescImportedAt := datasetFields[5].Descriptor()
	// dataset.DefaultImportedAt holds the default value on creation for the imported_at field.
	dataset.DefaultImportedAt = datasetDescImportedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	participantrowFields := schema.ParticipantRow{}.Fields()
	_ = participantrowFields
	// participantrowDescDatasetID is the schema descriptor for dataset_id field.
	participantrowDescDatasetID := participantrowFields[0].Descriptor()
	// participantrow.DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	participantrow.DatasetIDValidator = participantrowDescDatasetID.Validators[0].(func(string) error)
}
