package service

import (
	"math"
	"time"

	"kidquiz_backend/internal/repository"
)

// RecentAttemptLimit caps the attempt list in the parent summary.
const RecentAttemptLimit = 5

// ProgressService aggregates the attempt ledger into the parent-facing view.
type ProgressService struct {
	AttemptRepo *repository.AttemptRepository
}

func NewProgressService(attemptRepo *repository.AttemptRepository) *ProgressService {
	return &ProgressService{AttemptRepo: attemptRepo}
}

type AttemptView struct {
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Timestamp  time.Time `json:"timestamp"`
	QuizID     uint      `json:"quizId"`
}

type ChildSummary struct {
	TotalQuizzes int64         `json:"totalQuizzes"`
	AverageScore int           `json:"averageScore"`
	LastAttempts []AttemptView `json:"lastAttempts"`
}

// Summary computes the aggregate over the child's whole history: the average
// spans every attempt ever recorded, not just the recent window.
func (s *ProgressService) Summary(userID uint) (*ChildSummary, error) {
	total, err := s.AttemptRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	sumScore, sumTotal, err := s.AttemptRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}

	averageScore := 0
	if sumTotal > 0 {
		averageScore = int(math.Round(float64(sumScore) / float64(sumTotal) * 100))
	}

	attempts, err := s.AttemptRepo.FindRecentByUser(userID, RecentAttemptLimit)
	if err != nil {
		return nil, err
	}

	views := make([]AttemptView, len(attempts))
	for i, a := range attempts {
		views[i] = AttemptView{
			Score:      a.Score,
			Total:      a.Total,
			Percentage: a.Percentage,
			Timestamp:  a.CreatedAt,
			QuizID:     a.QuizID,
		}
	}

	return &ChildSummary{
		TotalQuizzes: total,
		AverageScore: averageScore,
		LastAttempts: views,
	}, nil
}
