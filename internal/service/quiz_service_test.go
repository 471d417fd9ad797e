package service

import (
	"testing"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionsWithAnswers(answers ...int) []model.QuizQuestion {
	questions := make([]model.QuizQuestion, len(answers))
	for i, a := range answers {
		questions[i] = model.QuizQuestion{Position: i, Options: []string{"a", "b", "c", "d"}, AnswerIndex: a}
	}
	return questions
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name           string
		answerKey      []int
		submitted      []int
		wantCorrect    int
		wantTotal      int
		wantPercentage int
	}{
		{
			name:           "all correct",
			answerKey:      []int{0, 1, 2},
			submitted:      []int{0, 1, 2},
			wantCorrect:    3,
			wantTotal:      3,
			wantPercentage: 100,
		},
		{
			name:           "all wrong",
			answerKey:      []int{0, 1, 2},
			submitted:      []int{3, 3, 3},
			wantCorrect:    0,
			wantTotal:      3,
			wantPercentage: 0,
		},
		{
			name:           "short submission counts missing as wrong",
			answerKey:      []int{0, 1, 2, 3},
			submitted:      []int{0},
			wantCorrect:    1,
			wantTotal:      4,
			wantPercentage: 25,
		},
		{
			name:           "surplus answers ignored",
			answerKey:      []int{2},
			submitted:      []int{2, 0, 1, 3},
			wantCorrect:    1,
			wantTotal:      1,
			wantPercentage: 100,
		},
		{
			name:           "empty submission",
			answerKey:      []int{0, 1},
			submitted:      nil,
			wantCorrect:    0,
			wantTotal:      2,
			wantPercentage: 0,
		},
		{
			name:           "empty quiz",
			answerKey:      nil,
			submitted:      []int{0, 1},
			wantCorrect:    0,
			wantTotal:      0,
			wantPercentage: 0,
		},
		{
			name:           "one third rounds down",
			answerKey:      []int{0, 0, 0},
			submitted:      []int{0, 9, 9},
			wantCorrect:    1,
			wantTotal:      3,
			wantPercentage: 33,
		},
		{
			name:           "two thirds rounds up",
			answerKey:      []int{0, 0, 0},
			submitted:      []int{0, 0, 9},
			wantCorrect:    2,
			wantTotal:      3,
			wantPercentage: 67,
		},
		{
			name:           "half rounds up",
			answerKey:      []int{0, 0, 0, 0, 0, 0, 0, 0},
			submitted:      []int{0, 0, 0, 9, 9, 9, 9, 9},
			wantCorrect:    3,
			wantTotal:      8,
			wantPercentage: 38,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			correct, total, percentage := ScoreQuiz(questionsWithAnswers(tc.answerKey...), tc.submitted)
			assert.Equal(t, tc.wantCorrect, correct)
			assert.Equal(t, tc.wantTotal, total)
			assert.Equal(t, tc.wantPercentage, percentage)

			assert.GreaterOrEqual(t, percentage, 0)
			assert.LessOrEqual(t, percentage, 100)
		})
	}
}

func TestGetQuiz(t *testing.T) {
	db := newTestDB(t)
	createQuiz(t, db, "math", 1, 0, 2)

	svc := NewQuizService(repository.NewQuizRepository(db), nil)

	t.Run("hides answers by default", func(t *testing.T) {
		view, err := svc.GetQuiz("math", false)
		require.NoError(t, err)
		assert.Equal(t, "math", view.Subject)
		require.Len(t, view.Questions, 3)
		for _, q := range view.Questions {
			assert.Nil(t, q.AnswerIndex)
			assert.NotEmpty(t, q.Options)
		}
	})

	t.Run("reveal mode includes answer indices", func(t *testing.T) {
		view, err := svc.GetQuiz("math", true)
		require.NoError(t, err)
		require.Len(t, view.Questions, 3)
		require.NotNil(t, view.Questions[0].AnswerIndex)
		assert.Equal(t, 1, *view.Questions[0].AnswerIndex)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := svc.GetQuiz("history", false)
		var appErr *util.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, util.CodeNotFound, appErr.Code)
	})
}

func TestGetDefinitionPreservesQuestionOrder(t *testing.T) {
	db := newTestDB(t)
	quiz := createQuiz(t, db, "spelling", 3, 1, 0, 2)

	svc := NewQuizService(repository.NewQuizRepository(db), nil)

	def, err := svc.GetDefinition(quiz.ID)
	require.NoError(t, err)
	require.Len(t, def.Questions, 4)
	for i, q := range def.Questions {
		assert.Equal(t, i, q.Position)
	}
}
