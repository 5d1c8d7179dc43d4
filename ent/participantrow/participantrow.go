// Code generated by ent, DO NOT EDIT.

package participantrow

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the participantrow type in the database.
	Label = "participant_row"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDatasetID holds the string denoting the dataset_id field in the database.
	FieldDatasetID = "dataset_id"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldCells holds the string denoting the cells field in the database.
	FieldCells = "cells"
	// Table holds the table name of the participantrow in the database.
	Table = "participant_rows"
)

// Columns holds all SQL columns for participantrow fields.
var Columns = []string{
	FieldID,
	FieldDatasetID,
	FieldRowIndex,
	FieldCells,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DatasetIDValidator is a validator for the "dataset_id" field. It is called by the builders before save.
	DatasetIDValidator func(string) error
)

// OrderOption defines the ordering options for the ParticipantRow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDatasetID orders the results by the dataset_id field.
func ByDatasetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetID, opts...).ToFunc()
}

// ByRowIndex orders the results by the row_index field.
func ByRowIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowIndex, opts...).ToFunc()
}
