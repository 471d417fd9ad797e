package repository

import (
	"kidquiz_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Create appends one ledger row. Attempts are never updated or deleted.
func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindRecentByUser(userID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// SumByUser returns the score and total sums across the user's whole history.
func (r *AttemptRepository) SumByUser(userID uint) (sumScore int64, sumTotal int64, err error) {
	row := struct {
		SumScore int64
		SumTotal int64
	}{}
	err = r.DB.Model(&model.QuizAttempt{}).
		Select("COALESCE(SUM(score),0) AS sum_score, COALESCE(SUM(total),0) AS sum_total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	return row.SumScore, row.SumTotal, err
}
