// Code generated by ent, DO NOT EDIT.

package participantrow

import (
	"entgo.io/ent/dialect/sql"
	"github.com/rizve/percepta/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldLTE(FieldID, id))
}

// DatasetID applies equality check predicate on the "dataset_id" field. It's identical to DatasetIDEQ.
func DatasetID(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEQ(FieldDatasetID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEQ(FieldRowIndex, v))
}

// DatasetIDEQ applies the EQ predicate on the "dataset_id" field.
func DatasetIDEQ(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEQ(FieldDatasetID, v))
}

// DatasetIDNEQ applies the NEQ predicate on the "dataset_id" field.
func DatasetIDNEQ(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldNEQ(FieldDatasetID, v))
}

// DatasetIDIn applies the In predicate on the "dataset_id" field.
func DatasetIDIn(vs ...string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldIn(FieldDatasetID, vs...))
}

// DatasetIDNotIn applies the NotIn predicate on the "dataset_id" field.
func DatasetIDNotIn(vs ...string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldNotIn(FieldDatasetID, vs...))
}

// DatasetIDGT applies the GT predicate on the "dataset_id" field.
func DatasetIDGT(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldGT(FieldDatasetID, v))
}

// DatasetIDGTE applies the GTE predicate on the "dataset_id" field.
func DatasetIDGTE(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldGTE(FieldDatasetID, v))
}

// DatasetIDLT applies the LT predicate on the "dataset_id" field.
func DatasetIDLT(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldLT(FieldDatasetID, v))
}

// DatasetIDLTE applies the LTE predicate on the "dataset_id" field.
func DatasetIDLTE(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldLTE(FieldDatasetID, v))
}

// DatasetIDContains applies the Contains predicate on the "dataset_id" field.
func DatasetIDContains(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldContains(FieldDatasetID, v))
}

// DatasetIDHasPrefix applies the HasPrefix predicate on the "dataset_id" field.
func DatasetIDHasPrefix(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldHasPrefix(FieldDatasetID, v))
}

// DatasetIDHasSuffix applies the HasSuffix predicate on the "dataset_id" field.
func DatasetIDHasSuffix(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldHasSuffix(FieldDatasetID, v))
}

// DatasetIDEqualFold applies the EqualFold predicate on the "dataset_id" field.
func DatasetIDEqualFold(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEqualFold(FieldDatasetID, v))
}

// DatasetIDContainsFold applies the ContainsFold predicate on the "dataset_id" field.
func DatasetIDContainsFold(v string) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldContainsFold(FieldDatasetID, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.FieldLTE(FieldRowIndex, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParticipantRow) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParticipantRow) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParticipantRow) predicate.ParticipantRow {
	return predicate.ParticipantRow(sql.NotPredicates(p))
}
