package repository

import (
	"kidquiz_backend/internal/model"

	"gorm.io/gorm"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

func (r *RewardRepository) Create(reward *model.Reward) error {
	return r.DB.Create(reward).Error
}

func (r *RewardRepository) FindByUserID(userID uint) (*model.Reward, error) {
	var reward model.Reward
	err := r.DB.Where("user_id = ?", userID).First(&reward).Error
	return &reward, err
}

func (r *RewardRepository) Update(reward *model.Reward) error {
	return r.DB.Save(reward).Error
}
