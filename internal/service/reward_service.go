package service

import (
	"errors"
	"math/rand"
	"sync"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/util"

	"gorm.io/gorm"
)

// RewardService reads reward state and handles spin consumption. Spin
// *banking* lives in the progression engine; this side only spends it.
type RewardService struct {
	RewardRepo *repository.RewardRepository
	UserRepo   *repository.UserRepository
	rand       *rand.Rand
	mu         sync.Mutex
}

func NewRewardService(rewardRepo *repository.RewardRepository, userRepo *repository.UserRepository, rng *rand.Rand) *RewardService {
	return &RewardService{
		RewardRepo: rewardRepo,
		UserRepo:   userRepo,
		rand:       rng,
	}
}

// GetRewards returns the reward view for a kid, defaulting to a fresh state
// when no record exists yet.
func (s *RewardService) GetRewards(targetID uint) (*RewardView, error) {
	user, err := s.UserRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("Not found")
		}
		return nil, err
	}
	if user.Role != model.Kid {
		return nil, util.NotFoundError("Not found")
	}

	reward, err := s.RewardRepo.FindByUserID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RewardView{PetStage: 1, Stickers: []string{}, SpinAvailable: false}, nil
		}
		return nil, err
	}

	stickers := reward.Stickers
	if stickers == nil {
		stickers = []string{}
	}
	return &RewardView{
		PetStage:      reward.PetStage,
		Stickers:      stickers,
		SpinAvailable: reward.SpinAvailable,
	}, nil
}

type SpinResult struct {
	Prize   string     `json:"prize"`
	Rewards RewardView `json:"rewards"`
}

// Spin consumes a banked spin: one wheel turn picks a pool sticker, which
// joins the collection when not already owned, and the flag clears.
func (s *RewardService) Spin(targetID uint) (*SpinResult, error) {
	user, err := s.UserRepo.FindByID(targetID)
	if err != nil || user.Role != model.Kid {
		return nil, util.NotFoundError("Not found")
	}

	reward, err := s.RewardRepo.FindByUserID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ValidationError("No spin available")
		}
		return nil, err
	}
	if !reward.SpinAvailable {
		return nil, util.ValidationError("No spin available")
	}

	s.mu.Lock()
	prize := StickerPool[s.rand.Intn(len(StickerPool))]
	s.mu.Unlock()

	owned := false
	for _, sticker := range reward.Stickers {
		if sticker == prize {
			owned = true
			break
		}
	}
	if !owned {
		reward.Stickers = append(reward.Stickers, prize)
	}
	reward.SpinAvailable = false

	if err := s.RewardRepo.Update(reward); err != nil {
		return nil, err
	}

	return &SpinResult{
		Prize: prize,
		Rewards: RewardView{
			PetStage:      reward.PetStage,
			Stickers:      reward.Stickers,
			SpinAvailable: reward.SpinAvailable,
		},
	}, nil
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
}

func (s *RewardService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopKidsByXP(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		leaderboard[i] = LeaderboardEntry{
			Rank:     i + 1,
			Username: user.Username,
			XP:       user.XP,
			Level:    user.Level,
		}
	}
	return leaderboard, nil
}
