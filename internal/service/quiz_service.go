package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/util"
	"kidquiz_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const quizCacheTTL = 5 * time.Minute

type QuizService struct {
	QuizRepo *repository.QuizRepository
	Redis    *redis.Client
}

func NewQuizService(quizRepo *repository.QuizRepository, rdb *redis.Client) *QuizService {
	return &QuizService{
		QuizRepo: quizRepo,
		Redis:    rdb,
	}
}

type QuestionView struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex *int     `json:"answerIndex,omitempty"`
}

type QuizView struct {
	ID        uint           `json:"id"`
	Subject   string         `json:"subject"`
	Questions []QuestionView `json:"questions"`
}

// GetQuiz returns the quiz for a subject. Answer indices are included only in
// reveal mode; the answer-hidden view is cached in redis since quiz
// definitions are immutable at runtime.
func (s *QuizService) GetQuiz(subject string, reveal bool) (*QuizView, error) {
	if !reveal {
		if cached := s.cachedView(subject); cached != nil {
			return cached, nil
		}
	}

	quiz, err := s.QuizRepo.FindBySubject(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("Quiz not found")
		}
		return nil, err
	}

	view := buildView(quiz, reveal)
	if !reveal {
		s.storeView(subject, view)
	}
	return view, nil
}

// GetDefinition loads a full quiz including answer keys for scoring.
func (s *QuizService) GetDefinition(quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("Quiz not found")
		}
		return nil, err
	}
	return quiz, nil
}

func buildView(quiz *model.Quiz, reveal bool) *QuizView {
	questions := make([]QuestionView, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuestionView{Question: q.Text, Options: q.Options}
		if reveal {
			idx := q.AnswerIndex
			questions[i].AnswerIndex = &idx
		}
	}
	return &QuizView{ID: quiz.ID, Subject: quiz.Subject, Questions: questions}
}

func (s *QuizService) cachedView(subject string) *QuizView {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), quizCacheKey(subject)).Bytes()
	if err != nil {
		return nil
	}
	var view QuizView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil
	}
	return &view
}

func (s *QuizService) storeView(subject string, view *QuizView) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), quizCacheKey(subject), data, quizCacheTTL).Err(); err != nil {
		logger.Log.Warn("Failed to cache quiz view", zap.String("subject", subject), zap.Error(err))
	}
}

func quizCacheKey(subject string) string {
	return "quiz:view:" + subject
}

// ScoreQuiz compares submitted answers against the quiz's answer key.
// Questions beyond the end of the submission count as wrong; surplus answers
// are ignored. Pure and deterministic.
func ScoreQuiz(questions []model.QuizQuestion, answers []int) (correct, total, percentage int) {
	total = len(questions)
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.AnswerIndex {
			correct++
		}
	}
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return correct, total, percentage
}
