// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rizve/percepta/ent/participantrow"
)

// ParticipantRow is the model entity for the ParticipantRow schema.
type ParticipantRow struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Links to Dataset
	DatasetID string `json:"dataset_id,omitempty"`
	// Zero-based position within the spreadsheet
	RowIndex int `json:"row_index,omitempty"`
	// Column name to raw cell text; missing cells are absent keys
	Cells        map[string]string `json:"cells,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParticipantRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case participantrow.FieldCells:
			values[i] = new([]byte)
		case participantrow.FieldID, participantrow.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case participantrow.FieldDatasetID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParticipantRow fields.
func (_m *ParticipantRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case participantrow.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case participantrow.FieldDatasetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value.Valid {
				_m.DatasetID = value.String
			}
		case participantrow.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case participantrow.FieldCells:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cells", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cells); err != nil {
					return fmt.Errorf("unmarshal field cells: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParticipantRow.
// This includes values selected through modifiers, order, etc.
func (_m *ParticipantRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParticipantRow.
// Note that you need to call ParticipantRow.Unwrap() before calling this method if this ParticipantRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParticipantRow) Update() *ParticipantRowUpdateOne {
	return NewParticipantRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParticipantRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParticipantRow) Unwrap() *ParticipantRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParticipantRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParticipantRow) String() string {
	var builder strings.Builder
	builder.WriteString("ParticipantRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dataset_id=")
	builder.WriteString(_m.DatasetID)
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("cells=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cells))
	builder.WriteByte(')')
	return builder.String()
}

// ParticipantRows is a parsable slice of ParticipantRow.
type ParticipantRows []*ParticipantRow
