package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestEncodeDecodeOptions_PreservesOrder(t *testing.T) {
	opts := []Option{{Key: "b", Value: "No"}, {Key: "a", Value: "Yes"}}

	raw, err := EncodeOptions(opts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b","value":"No"},{"id":"a","value":"Yes"}]`, string(raw))

	got, degraded := DecodeOptions(raw)
	assert.False(t, degraded)
	assert.Equal(t, opts, got)
}

func TestEncodeOptions_EmptyIsNull(t *testing.T) {
	raw, err := EncodeOptions(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	got, degraded := DecodeOptions(nil)
	assert.Nil(t, got)
	assert.False(t, degraded)

	got, degraded = DecodeOptions(datatypes.JSON("null"))
	assert.Nil(t, got)
	assert.False(t, degraded)
}

func TestDecodeOptions_LegacyStringArray(t *testing.T) {
	got, degraded := DecodeOptions(datatypes.JSON(`["Red","Green"]`))
	assert.True(t, degraded)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestToRows_Positions(t *testing.T) {
	rows, err := ToRows(7, []QuestionDTO{
		{Key: "q1", Title: "Name", Type: QuestionTypeText},
		{Key: "q2", Title: "Pick", Type: QuestionTypeDropdown, Options: []Option{{Key: "o1", Value: "Red"}}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(7), rows[1].FormID)
	assert.Equal(t, 0, rows[0].Position)
	assert.Equal(t, 1, rows[1].Position)
	assert.Nil(t, rows[0].Options)
	assert.JSONEq(t, `[{"id":"o1","value":"Red"}]`, string(rows[1].Options))
}

func TestAssemble_Normalized(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := Form{ID: 3, Title: "Survey", SchemaVersion: SchemaNormalized, CreatedAt: created}
	rows := []Question{
		{ID: 90, FormID: 3, QuestionKey: "q1", Title: "Rate us", Type: QuestionTypeLinearScale, MinValue: intPtr(1), MaxValue: intPtr(5)},
		{ID: 91, FormID: 3, QuestionKey: "q2", Title: "Pick", Type: "radio", Options: datatypes.JSON(`["x"]`)},
	}

	out, err := Assemble(f, rows)
	require.NoError(t, err)
	assert.Equal(t, uint(3), out.Form.ID)
	assert.Equal(t, created, out.Form.CreatedAt)
	require.Len(t, out.Form.Questions, 2)
	assert.Nil(t, out.Form.Questions[0].Options)
	assert.Equal(t, 5, *out.Form.Questions[0].MaxValue)
	assert.Equal(t, QuestionTypeSingleChoice, out.Form.Questions[1].Type)
	assert.Equal(t, []Option{}, out.Form.Questions[1].Options)
	assert.Equal(t, []string{"q2"}, out.Degraded)
}

func TestAssemble_NoQuestionsIsEmptyList(t *testing.T) {
	out, err := Assemble(Form{ID: 1, Title: "T", SchemaVersion: SchemaNormalized}, nil)
	require.NoError(t, err)
	assert.NotNil(t, out.Form.Questions)
	assert.Empty(t, out.Form.Questions)
}

func TestAssemble_Legacy(t *testing.T) {
	f := Form{
		ID:            4,
		Title:         "Old",
		SchemaVersion: SchemaLegacy,
		Fields: datatypes.JSON(`[
			{"id":"q1","title":"Color","type":"checkbox","options":[{"id":"r","value":"Red"}]},
			"garbage",
			{"id":"q2","title":"Size","type":"dropdown","options":["S","M"]}
		]`),
	}

	out, err := Assemble(f, []Question{{QuestionKey: "ignored"}})
	require.NoError(t, err)
	require.Len(t, out.Form.Questions, 2)
	assert.Equal(t, "q1", out.Form.Questions[0].Key)
	assert.Equal(t, QuestionTypeMultiChoice, out.Form.Questions[0].Type)
	assert.Equal(t, []Option{{Key: "r", Value: "Red"}}, out.Form.Questions[0].Options)
	assert.Equal(t, []Option{}, out.Form.Questions[1].Options)
	assert.Equal(t, []string{"fields[1]", "q2"}, out.Degraded)
}

func TestAssemble_LegacyUnreadableFields(t *testing.T) {
	out, err := Assemble(Form{ID: 5, Title: "Old", SchemaVersion: SchemaLegacy, Fields: datatypes.JSON(`{"not":"a list"}`)}, nil)
	require.NoError(t, err)
	assert.Empty(t, out.Form.Questions)
	assert.Equal(t, []string{"fields"}, out.Degraded)
}

func TestAssemble_UnknownSchema(t *testing.T) {
	_, err := Assemble(Form{ID: 6, SchemaVersion: 9}, nil)
	assert.EqualError(t, err, "form 6 has unknown schema version 9")
}
