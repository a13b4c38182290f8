package form

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// EncodeOptions serializes an ordered option list into the options column.
// An empty list is stored as NULL.
func EncodeOptions(opts []Option) (datatypes.JSON, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// DecodeOptions parses the options column. A NULL column yields nil. A
// column in any other shape than [{id, value}] (the older bare string array
// in particular) yields an empty list and degraded=true instead of an error.
func DecodeOptions(raw datatypes.JSON) (opts []Option, degraded bool) {
	if isNullJSON(raw) {
		return nil, false
	}
	if err := json.Unmarshal(raw, &opts); err != nil {
		return []Option{}, true
	}
	if opts == nil {
		opts = []Option{}
	}
	return opts, false
}

// ToRows maps a normalized question list onto storage rows for formID,
// keeping the submission order in Position.
func ToRows(formID uint, questions []QuestionDTO) ([]Question, error) {
	rows := make([]Question, 0, len(questions))
	for i, q := range questions {
		opts, err := EncodeOptions(q.Options)
		if err != nil {
			return nil, fmt.Errorf("encode options of question %q: %w", q.Key, err)
		}
		rows = append(rows, Question{
			FormID:      formID,
			QuestionKey: q.Key,
			Position:    i,
			Title:       q.Title,
			Type:        q.Type,
			Required:    q.Required,
			Options:     opts,
			MinValue:    q.MinValue,
			MaxValue:    q.MaxValue,
			MinLabel:    q.MinLabel,
			MaxLabel:    q.MaxLabel,
		})
	}
	return rows, nil
}

// Assembly is the result of turning stored rows back into an aggregate.
// Degraded lists the questions whose stored payload could not be read in
// full.
type Assembly struct {
	Form     FormAggregate
	Degraded []string
}

type assembler func(f Form, rows []Question) Assembly

var assemblers = map[int]assembler{
	SchemaLegacy:     assembleLegacy,
	SchemaNormalized: assembleNormalized,
}

// Assemble picks the assembler of the form's stored schema generation. rows
// must be the form's question rows ordered by position; they are ignored for
// legacy forms.
func Assemble(f Form, rows []Question) (Assembly, error) {
	fn, ok := assemblers[f.SchemaVersion]
	if !ok {
		return Assembly{}, fmt.Errorf("form %d has unknown schema version %d", f.ID, f.SchemaVersion)
	}
	return fn(f, rows), nil
}

func newAggregate(f Form, capacity int) FormAggregate {
	return FormAggregate{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		Questions:   make([]QuestionDTO, 0, capacity),
	}
}

func assembleNormalized(f Form, rows []Question) Assembly {
	out := Assembly{Form: newAggregate(f, len(rows))}
	for _, row := range rows {
		opts, degraded := DecodeOptions(row.Options)
		if degraded {
			out.Degraded = append(out.Degraded, row.QuestionKey)
		}
		out.Form.Questions = append(out.Form.Questions, QuestionDTO{
			Key:      row.QuestionKey,
			Title:    row.Title,
			Type:     normalizeStoredType(row.Type),
			Required: row.Required,
			Options:  opts,
			MinValue: row.MinValue,
			MaxValue: row.MaxValue,
			MinLabel: row.MinLabel,
			MaxLabel: row.MaxLabel,
		})
	}
	return out
}

// legacyField is one element of the forms.fields array. Options stay raw so
// a bad option payload only degrades that field.
type legacyField struct {
	Key      string          `json:"id"`
	Title    string          `json:"title"`
	Type     string          `json:"type"`
	Required bool            `json:"required"`
	Options  json.RawMessage `json:"options"`
	MinValue *int            `json:"min_value"`
	MaxValue *int            `json:"max_value"`
	MinLabel *string         `json:"min_label"`
	MaxLabel *string         `json:"max_label"`
}

func assembleLegacy(f Form, _ []Question) Assembly {
	var elems []json.RawMessage
	if !isNullJSON(f.Fields) {
		if err := json.Unmarshal(f.Fields, &elems); err != nil {
			return Assembly{Form: newAggregate(f, 0), Degraded: []string{"fields"}}
		}
	}

	out := Assembly{Form: newAggregate(f, len(elems))}
	for i, elem := range elems {
		var lf legacyField
		if err := json.Unmarshal(elem, &lf); err != nil {
			out.Degraded = append(out.Degraded, fmt.Sprintf("fields[%d]", i))
			continue
		}
		opts, degraded := DecodeOptions(datatypes.JSON(lf.Options))
		if degraded {
			out.Degraded = append(out.Degraded, lf.Key)
		}
		out.Form.Questions = append(out.Form.Questions, QuestionDTO{
			Key:      lf.Key,
			Title:    lf.Title,
			Type:     normalizeStoredType(QuestionType(lf.Type)),
			Required: lf.Required,
			Options:  opts,
			MinValue: lf.MinValue,
			MaxValue: lf.MaxValue,
			MinLabel: lf.MinLabel,
			MaxLabel: lf.MaxLabel,
		})
	}
	return out
}

func isNullJSON(raw []byte) bool {
	s := string(raw)
	return len(raw) == 0 || s == "null"
}
