package service

import (
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService(t *testing.T, gen *fakeGenerator) (*QuizService, *repository.QuizResultRepository, *model.User) {
	t.Helper()
	db := newTestDB(t)
	user := seedUser(t, db, "asha@example.com", "secret")
	results := repository.NewQuizResultRepository(db)
	return NewQuizService(gen, results, nil), results, user
}

func TestQuizService_EvaluateEmptyAnswersSkipsModel(t *testing.T) {
	gen := &fakeGenerator{reply: `{"suggestion": "Science"}`}
	svc, results, user := newQuizService(t, gen)
	ctx := context.Background()

	for _, answers := range []string{``, `null`, `{}`, `[]`, `""`, `"   "`, ` { } `} {
		_, err := svc.EvaluateAnswers(ctx, user.ID, model.QuizGeneral, json.RawMessage(answers))
		assert.ErrorIs(t, err, util.ErrValidation, "answers %q", answers)
	}
	assert.Equal(t, 0, gen.calls)

	rows, err := results.ListByUser(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQuizService_EvaluateGeneralPersists(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure!\n```json\n{\"suggestion\": \"Science\", \"reason\": \"You love experiments\"}\n```"}
	svc, results, user := newQuizService(t, gen)
	ctx := context.Background()

	answers := json.RawMessage(`{"q1": "Physics",  "q2": "Building things"}`)
	eval, err := svc.EvaluateAnswers(ctx, user.ID, model.QuizGeneral, answers)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], `{"q1":"Physics","q2":"Building things"}`)

	payload, ok := eval.Payload().(GeneralSuggestionPayload)
	require.True(t, ok)
	assert.Equal(t, "Science", payload.Suggestion)
	assert.Equal(t, "You love experiments", payload.Reason)

	rows, err := results.ListByUser(ctx, user.ID, model.QuizGeneral)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, eval.ResultID, rows[0].ID)
	assert.Equal(t, "Science", rows[0].Suggestion)
	assert.JSONEq(t, string(answers), string(rows[0].Answers))
}

func TestQuizService_EvaluateSubjectPayload(t *testing.T) {
	gen := &fakeGenerator{reply: `{"primary_suggestion": "Doctor", "primary_reason": "Biology",
		"alternate_suggestions": [{"career": "Pharmacist", "reason": "Chemistry"}]}`}
	svc, _, user := newQuizService(t, gen)

	eval, err := svc.EvaluateAnswers(context.Background(), user.ID, model.QuizScienceBiology, json.RawMessage(`["a", "b"]`))
	require.NoError(t, err)

	payload, ok := eval.Payload().(SubjectSuggestionPayload)
	require.True(t, ok)
	assert.Equal(t, "Doctor", payload.PrimarySuggestion)
	require.Len(t, payload.AlternateSuggestions, 1)
	assert.Equal(t, "Pharmacist", payload.AlternateSuggestions[0].Career)
}

func TestQuizService_EvaluateFailuresPersistNothing(t *testing.T) {
	cases := map[string]*fakeGenerator{
		"model error":                    {err: errors.New("upstream down")},
		"no json":                        {reply: "I am not sure what to suggest."},
		"unbalanced json":                {reply: `{"suggestion": "Arts"`},
		"unescaped quotes":               {reply: `{"primary_suggestion": "Arts", "primary_reason": "He said "wow" about {"note": 1}}`},
		"invalid outer with valid inner": {reply: `{"primary_suggestion": Arts, "details": {"note": 1}}`},
	}
	for name, gen := range cases {
		t.Run(name, func(t *testing.T) {
			svc, results, user := newQuizService(t, gen)
			ctx := context.Background()

			_, err := svc.EvaluateAnswers(ctx, user.ID, model.QuizArts, json.RawMessage(`{"q1": "History"}`))
			assert.ErrorIs(t, err, util.ErrEvaluation)
			assert.Equal(t, 500, util.StatusCode(err))
			assert.Equal(t, EvaluationFailedMessage, util.UserMessage(err))

			rows, err := results.ListByUser(ctx, user.ID, "")
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestQuizService_UnknownVariant(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, user := newQuizService(t, gen)

	_, err := svc.EvaluateAnswers(context.Background(), user.ID, "12th_music", json.RawMessage(`{"q": 1}`))
	assert.ErrorIs(t, err, util.ErrValidation)
	_, err = svc.GenerateQuestions(context.Background(), "12th_music")
	assert.ErrorIs(t, err, util.ErrValidation)
	_, err = svc.ListResults(context.Background(), user.ID, "12th_music")
	assert.ErrorIs(t, err, util.ErrValidation)
	assert.Equal(t, 0, gen.calls)
}

func TestQuizService_GenerateQuestions(t *testing.T) {
	t.Run("model failure yields empty list", func(t *testing.T) {
		svc, _, _ := newQuizService(t, &fakeGenerator{err: errors.New("timeout")})
		questions, err := svc.GenerateQuestions(context.Background(), model.QuizCommerce)
		require.NoError(t, err)
		assert.NotNil(t, questions)
		assert.Empty(t, questions)
	})

	t.Run("unparseable output yields empty list", func(t *testing.T) {
		svc, _, _ := newQuizService(t, &fakeGenerator{reply: "Here you go: question one..."})
		questions, err := svc.GenerateQuestions(context.Background(), model.QuizGeneral)
		require.NoError(t, err)
		assert.Empty(t, questions)
	})

	t.Run("cached after first generation", func(t *testing.T) {
		gen := &fakeGenerator{reply: `[{"question": "Pick one", "options": ["a", "b", "c", "d"]}]`}
		svc, _, _ := newQuizService(t, gen)
		svc.Cache = &memoryQuestionCache{}
		ctx := context.Background()

		first, err := svc.GenerateQuestions(ctx, model.QuizScienceMaths)
		require.NoError(t, err)
		second, err := svc.GenerateQuestions(ctx, model.QuizScienceMaths)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, second, 1)
		assert.Equal(t, 1, gen.calls)
	})
}

func TestQuizService_ListResults(t *testing.T) {
	gen := &fakeGenerator{reply: `{"suggestion": "Commerce", "reason": "Likes trade"}`}
	svc, _, user := newQuizService(t, gen)
	ctx := context.Background()

	_, err := svc.EvaluateAnswers(ctx, user.ID, model.QuizGeneral, json.RawMessage(`{"q1": "a"}`))
	require.NoError(t, err)

	gen.reply = `{"primary_suggestion": "Chartered Accountant", "primary_reason": "Numbers",
		"alternate_suggestions": [{"career": "Economist", "reason": "Markets"}]}`
	_, err = svc.EvaluateAnswers(ctx, user.ID, model.QuizCommerce, json.RawMessage(`{"q1": "b"}`))
	require.NoError(t, err)

	all, err := svc.ListResults(ctx, user.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, model.QuizCommerce, all[0].QuizType)
	assert.Equal(t, "Economist", all[0].AlternateSuggestions[0].Career)
	assert.Equal(t, model.QuizGeneral, all[1].QuizType)
	assert.Empty(t, all[1].AlternateSuggestions)

	filtered, err := svc.ListResults(ctx, user.ID, string(model.QuizGeneral))
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Commerce", filtered[0].Suggestion)
	assert.JSONEq(t, `{"q1": "a"}`, string(filtered[0].Answers))

	other, err := svc.ListResults(ctx, user.ID+100, "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestFailurePayload(t *testing.T) {
	general, ok := FailurePayload(ShapeGeneral).(GeneralSuggestionPayload)
	require.True(t, ok)
	assert.Equal(t, EvaluationFailedMessage, general.Suggestion)

	subject, ok := FailurePayload(ShapeSubject).(SubjectSuggestionPayload)
	require.True(t, ok)
	assert.Equal(t, EvaluationFailedMessage, subject.PrimarySuggestion)
}
