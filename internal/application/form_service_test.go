package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-platform/internal/domain/form"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/internal/repository/mock"
	"github.com/linskybing/forms-platform/internal/testutils"
	"github.com/linskybing/forms-platform/pkg/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupFormServiceMocks(t *testing.T) (*FormService, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	mockForm.EXPECT().WithTx(gomock.Any()).Return(mockForm).AnyTimes()

	repos := repository.NewFromParts(testutils.NewSQLiteDB(t), mockForm, nil)
	return NewFormService(repos, nil), mockForm
}

func textInput(title string, keys ...string) form.FormInput {
	in := form.FormInput{Title: title, Questions: []form.QuestionDTO{}}
	for _, k := range keys {
		in.Questions = append(in.Questions, form.QuestionDTO{Key: k, Title: k, Type: form.QuestionTypeText})
	}
	return in
}

// --------------------- Create ---------------------
func TestCreate_InvalidInputNeverTouchesStore(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.Create(context.Background(), form.FormInput{Title: "T", Questions: []form.QuestionDTO{
		{Key: "q1", Title: "Pick", Type: form.QuestionTypeDropdown},
	}})
	assert.True(t, fault.Is(err, fault.KindValidation))
}

func TestCreate_QuestionInsertFailure(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().CreateForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		f.ID = 10
		return nil
	})
	mockForm.EXPECT().InsertQuestions(gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Create(context.Background(), textInput("Survey", "q1"))
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.KindPersistence))
	assert.Equal(t, "failed to create form", fault.MessageOf(err, ""))
}

func TestCreate_DuplicateKeyIsConflict(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().CreateForm(gomock.Any()).Return(nil)
	mockForm.EXPECT().InsertQuestions(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), textInput("Survey", "q1"))
	assert.True(t, fault.Is(err, fault.KindConflict))
}

func TestCreate_WritesPositions(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().CreateForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Equal(t, form.SchemaNormalized, f.SchemaVersion)
		f.ID = 4
		return nil
	})
	mockForm.EXPECT().InsertQuestions(gomock.Any()).DoAndReturn(func(rows []form.Question) error {
		require.Len(t, rows, 2)
		assert.Equal(t, "b", rows[0].QuestionKey)
		assert.Equal(t, 0, rows[0].Position)
		assert.Equal(t, 1, rows[1].Position)
		assert.Equal(t, uint(4), rows[1].FormID)
		return nil
	})
	mockForm.EXPECT().GetForm(uint(4)).Return(form.Form{ID: 4, Title: "Survey", SchemaVersion: form.SchemaNormalized}, nil)
	mockForm.EXPECT().ListQuestions(uint(4)).Return([]form.Question{
		{ID: 1, FormID: 4, QuestionKey: "b", Title: "b", Type: form.QuestionTypeText},
		{ID: 2, FormID: 4, QuestionKey: "a", Title: "a", Type: form.QuestionTypeText, Position: 1},
	}, nil)

	out, err := svc.Create(context.Background(), textInput("Survey", "b", "a"))
	require.NoError(t, err)
	assert.Equal(t, uint(4), out.ID)
	require.Len(t, out.Questions, 2)
	assert.Equal(t, "b", out.Questions[0].Key)
}

// --------------------- Get / List ---------------------
func TestGet_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetForm(uint(9)).Return(form.Form{}, fault.ErrNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.True(t, fault.Is(err, fault.KindNotFound))
	assert.Equal(t, "Form not found", fault.MessageOf(err, ""))
}

func TestGet_LegacyFormSkipsQuestionRows(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetForm(uint(2)).Return(form.Form{
		ID:            2,
		Title:         "Old",
		SchemaVersion: form.SchemaLegacy,
		Fields:        datatypes.JSON(`[{"id":"q1","title":"Pick","type":"radio","options":[{"id":"a","value":"A"}]}]`),
	}, nil)

	out, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, out.Questions, 1)
	assert.Equal(t, form.QuestionTypeSingleChoice, out.Questions[0].Type)
}

func TestGet_UnknownSchemaIsPersistence(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetForm(uint(3)).Return(form.Form{ID: 3, SchemaVersion: 7}, nil)

	_, err := svc.Get(context.Background(), 3)
	assert.True(t, fault.Is(err, fault.KindPersistence))
}

func TestList_BatchesQuestionQuery(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().ListForms().Return([]form.Form{
		{ID: 3, Title: "C", SchemaVersion: form.SchemaNormalized},
		{ID: 2, Title: "B", SchemaVersion: form.SchemaLegacy},
		{ID: 1, Title: "A", SchemaVersion: form.SchemaNormalized},
	}, nil)
	mockForm.EXPECT().ListQuestions(uint(3), uint(1)).Return([]form.Question{
		{FormID: 1, QuestionKey: "a1", Title: "a1", Type: form.QuestionTypeText},
		{FormID: 3, QuestionKey: "c1", Title: "c1", Type: form.QuestionTypeText},
		{FormID: 3, QuestionKey: "c2", Title: "c2", Type: form.QuestionTypeText, Position: 1},
	}, nil).Times(1)

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Len(t, out[0].Questions, 2)
	assert.Empty(t, out[1].Questions)
	assert.NotNil(t, out[1].Questions)
	assert.Equal(t, "a1", out[2].Questions[0].Key)
}

func TestList_StoreErrorIsPersistence(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().ListForms().Return(nil, errors.New("connection reset"))

	_, err := svc.List(context.Background())
	assert.True(t, fault.Is(err, fault.KindPersistence))
}

// --------------------- Replace ---------------------
func TestReplace_NotFoundStopsBeforeQuestions(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().UpdateForm(uint(5), "Survey", nil).Return(false, nil)

	_, err := svc.Replace(context.Background(), 5, textInput("Survey", "q1"))
	assert.True(t, fault.Is(err, fault.KindNotFound))
}

func TestReplace_DeleteFailure(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().UpdateForm(uint(5), "Survey", nil).Return(true, nil)
	mockForm.EXPECT().DeleteQuestions(uint(5)).Return(errors.New("lock timeout"))

	_, err := svc.Replace(context.Background(), 5, textInput("Survey", "q1"))
	assert.True(t, fault.Is(err, fault.KindPersistence))
}

// --------------------- Delete ---------------------
func TestDelete_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().DeleteQuestions(uint(8)).Return(nil)
	mockForm.EXPECT().DeleteForm(uint(8)).Return(false, nil)

	err := svc.Delete(context.Background(), 8)
	assert.True(t, fault.Is(err, fault.KindNotFound))
}

func TestDelete_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	gomock.InOrder(
		mockForm.EXPECT().DeleteQuestions(uint(8)).Return(nil),
		mockForm.EXPECT().DeleteForm(uint(8)).Return(true, nil),
	)

	assert.NoError(t, svc.Delete(context.Background(), 8))
}
