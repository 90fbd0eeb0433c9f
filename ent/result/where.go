// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bigfive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUpdatedAt, v))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTestID, v))
}

// Lang applies equality check predicate on the "lang" field. It's identical to LangEQ.
func Lang(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldLang, v))
}

// Invalid applies equality check predicate on the "invalid" field. It's identical to InvalidEQ.
func Invalid(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldInvalid, v))
}

// TimeElapsed applies equality check predicate on the "time_elapsed" field. It's identical to TimeElapsedEQ.
func TimeElapsed(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTimeElapsed, v))
}

// DateStamp applies equality check predicate on the "date_stamp" field. It's identical to DateStampEQ.
func DateStamp(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldDateStamp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldUpdatedAt, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDGT applies the GT predicate on the "test_id" field.
func TestIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTestID, v))
}

// TestIDGTE applies the GTE predicate on the "test_id" field.
func TestIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTestID, v))
}

// TestIDLT applies the LT predicate on the "test_id" field.
func TestIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTestID, v))
}

// TestIDLTE applies the LTE predicate on the "test_id" field.
func TestIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTestID, v))
}

// TestIDContains applies the Contains predicate on the "test_id" field.
func TestIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldTestID, v))
}

// TestIDHasPrefix applies the HasPrefix predicate on the "test_id" field.
func TestIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldTestID, v))
}

// TestIDHasSuffix applies the HasSuffix predicate on the "test_id" field.
func TestIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldTestID, v))
}

// TestIDEqualFold applies the EqualFold predicate on the "test_id" field.
func TestIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldTestID, v))
}

// TestIDContainsFold applies the ContainsFold predicate on the "test_id" field.
func TestIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldTestID, v))
}

// LangEQ applies the EQ predicate on the "lang" field.
func LangEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldLang, v))
}

// LangNEQ applies the NEQ predicate on the "lang" field.
func LangNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldLang, v))
}

// LangIn applies the In predicate on the "lang" field.
func LangIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldLang, vs...))
}

// LangNotIn applies the NotIn predicate on the "lang" field.
func LangNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldLang, vs...))
}

// LangGT applies the GT predicate on the "lang" field.
func LangGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldLang, v))
}

// LangGTE applies the GTE predicate on the "lang" field.
func LangGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldLang, v))
}

// LangLT applies the LT predicate on the "lang" field.
func LangLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldLang, v))
}

// LangLTE applies the LTE predicate on the "lang" field.
func LangLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldLang, v))
}

// LangContains applies the Contains predicate on the "lang" field.
func LangContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldLang, v))
}

// LangHasPrefix applies the HasPrefix predicate on the "lang" field.
func LangHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldLang, v))
}

// LangHasSuffix applies the HasSuffix predicate on the "lang" field.
func LangHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldLang, v))
}

// LangIsNil applies the IsNil predicate on the "lang" field.
func LangIsNil() predicate.Result {
	return predicate.Result(sql.FieldIsNull(FieldLang))
}

// LangNotNil applies the NotNil predicate on the "lang" field.
func LangNotNil() predicate.Result {
	return predicate.Result(sql.FieldNotNull(FieldLang))
}

// LangEqualFold applies the EqualFold predicate on the "lang" field.
func LangEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldLang, v))
}

// LangContainsFold applies the ContainsFold predicate on the "lang" field.
func LangContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldLang, v))
}

// InvalidEQ applies the EQ predicate on the "invalid" field.
func InvalidEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldInvalid, v))
}

// InvalidNEQ applies the NEQ predicate on the "invalid" field.
func InvalidNEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldInvalid, v))
}

// TimeElapsedEQ applies the EQ predicate on the "time_elapsed" field.
func TimeElapsedEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTimeElapsed, v))
}

// TimeElapsedNEQ applies the NEQ predicate on the "time_elapsed" field.
func TimeElapsedNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTimeElapsed, v))
}

// TimeElapsedIn applies the In predicate on the "time_elapsed" field.
func TimeElapsedIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTimeElapsed, vs...))
}

// TimeElapsedNotIn applies the NotIn predicate on the "time_elapsed" field.
func TimeElapsedNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTimeElapsed, vs...))
}

// TimeElapsedGT applies the GT predicate on the "time_elapsed" field.
func TimeElapsedGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTimeElapsed, v))
}

// TimeElapsedGTE applies the GTE predicate on the "time_elapsed" field.
func TimeElapsedGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTimeElapsed, v))
}

// TimeElapsedLT applies the LT predicate on the "time_elapsed" field.
func TimeElapsedLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTimeElapsed, v))
}

// TimeElapsedLTE applies the LTE predicate on the "time_elapsed" field.
func TimeElapsedLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTimeElapsed, v))
}

// DateStampEQ applies the EQ predicate on the "date_stamp" field.
func DateStampEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldDateStamp, v))
}

// DateStampNEQ applies the NEQ predicate on the "date_stamp" field.
func DateStampNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldDateStamp, v))
}

// DateStampIn applies the In predicate on the "date_stamp" field.
func DateStampIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldDateStamp, vs...))
}

// DateStampNotIn applies the NotIn predicate on the "date_stamp" field.
func DateStampNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldDateStamp, vs...))
}

// DateStampGT applies the GT predicate on the "date_stamp" field.
func DateStampGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldDateStamp, v))
}

// DateStampGTE applies the GTE predicate on the "date_stamp" field.
func DateStampGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldDateStamp, v))
}

// DateStampLT applies the LT predicate on the "date_stamp" field.
func DateStampLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldDateStamp, v))
}

// DateStampLTE applies the LTE predicate on the "date_stamp" field.
func DateStampLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldDateStamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}
