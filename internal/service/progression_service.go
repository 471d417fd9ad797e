package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/util"
	"kidquiz_backend/pkg/monitoring"

	"gorm.io/gorm"
)

const (
	// XPPerCorrect is the XP awarded per correctly answered question.
	XPPerCorrect = 10
	// LevelXP is the XP span of a single level.
	LevelXP = 100
	// SpinScoreThreshold is the percentage at or above which a submission
	// banks a spin even without a level gain.
	SpinScoreThreshold = 80
)

// StickerPool is the fixed set of sticker identifiers handed out on level
// gains. Repeats are allowed only once the whole pool is owned.
var StickerPool = []string{
	"star", "rocket", "panda", "unicorn", "trophy",
	"lightbulb", "rainbow", "book", "medal", "smile",
}

// LevelForXP derives the level from cumulative XP. Level is never stored
// independently of this rule.
func LevelForXP(xp int) int {
	level := xp/LevelXP + 1
	if level < 1 {
		level = 1
	}
	return level
}

// ProgressionService applies a scored attempt to a kid's cumulative state:
// the attempt ledger row, XP/level/badges on the account, and the reward
// record (pet stage, stickers, spin flag). All three writes happen in one
// database transaction. Sticker selection uses an injected seedable source
// so tests can pin the outcome.
type ProgressionService struct {
	DB   *gorm.DB
	rand *rand.Rand
	mu   sync.Mutex
}

func NewProgressionService(db *gorm.DB, rng *rand.Rand) *ProgressionService {
	return &ProgressionService{DB: db, rand: rng}
}

type RewardView struct {
	PetStage      int      `json:"petStage"`
	Stickers      []string `json:"stickers"`
	SpinAvailable bool     `json:"spinAvailable"`
}

type SubmitResult struct {
	Correct   int        `json:"correct"`
	Total     int        `json:"total"`
	XPAwarded int        `json:"xpAwarded"`
	NewLevel  int        `json:"newLevel"`
	NewBadges []string   `json:"newBadges"`
	Rewards   RewardView `json:"rewards"`
}

// ApplyAttempt records one submission and recomputes the derived state.
// Badges are only ever awarded for levels newly crossed by this call, so a
// replay of an already-reached level never re-awards anything.
func (s *ProgressionService) ApplyAttempt(userID uint, quiz *model.Quiz, correct, total, percentage int) (*SubmitResult, error) {
	result := &SubmitResult{
		Correct:   correct,
		Total:     total,
		NewBadges: []string{},
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NotFoundError("User not found")
			}
			return err
		}
		if user.Role != model.Kid {
			return util.NotFoundError("User not found")
		}

		attempt := &model.QuizAttempt{
			UserID:     userID,
			QuizID:     quiz.ID,
			Score:      correct,
			Total:      total,
			Percentage: percentage,
		}
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		xpAwarded := correct * XPPerCorrect
		user.XP += xpAwarded

		oldLevel := user.Level
		newLevel := LevelForXP(user.XP)
		if newLevel > oldLevel {
			for lvl := oldLevel + 1; lvl <= newLevel; lvl++ {
				badge := fmt.Sprintf("Level %d Achiever", lvl)
				user.Badges = append(user.Badges, badge)
				result.NewBadges = append(result.NewBadges, badge)
			}
			user.Level = newLevel
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		reward, err := s.loadOrInitReward(tx, userID)
		if err != nil {
			return err
		}

		if newLevel > oldLevel {
			// Pet grows on every even-level boundary crossed.
			reward.PetStage += newLevel/2 - oldLevel/2

			for i := 0; i < newLevel-oldLevel; i++ {
				reward.Stickers = append(reward.Stickers, s.pickSticker(reward.Stickers))
			}
			reward.SpinAvailable = true
		}
		if percentage >= SpinScoreThreshold {
			reward.SpinAvailable = true
		}

		if err := tx.Save(reward).Error; err != nil {
			return err
		}

		result.XPAwarded = xpAwarded
		result.NewLevel = user.Level
		result.Rewards = RewardView{
			PetStage:      reward.PetStage,
			Stickers:      reward.Stickers,
			SpinAvailable: reward.SpinAvailable,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(quiz.Subject).Inc()
	monitoring.XPAwarded.Add(float64(result.XPAwarded))

	return result, nil
}

func (s *ProgressionService) loadOrInitReward(tx *gorm.DB, userID uint) (*model.Reward, error) {
	var reward model.Reward
	err := tx.Where("user_id = ?", userID).First(&reward).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		reward = model.Reward{UserID: userID, PetStage: 1, Stickers: []string{}}
		if err := tx.Create(&reward).Error; err != nil {
			return nil, err
		}
		return &reward, nil
	}
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// pickSticker draws uniformly among pool items not yet owned, falling back to
// the full pool when the collection is complete.
func (s *ProgressionService) pickSticker(owned []string) string {
	ownedSet := make(map[string]bool, len(owned))
	for _, sticker := range owned {
		ownedSet[sticker] = true
	}

	candidates := make([]string, 0, len(StickerPool))
	for _, sticker := range StickerPool {
		if !ownedSet[sticker] {
			candidates = append(candidates, sticker)
		}
	}
	if len(candidates) == 0 {
		candidates = StickerPool
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rand.Intn(len(candidates))]
}
