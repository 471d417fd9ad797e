package service

import (
	"testing"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRewardService(db *gorm.DB) *RewardService {
	return NewRewardService(repository.NewRewardRepository(db), repository.NewUserRepository(db), newTestRand())
}

func TestGetRewards(t *testing.T) {
	db := newTestDB(t)
	svc := newRewardService(db)

	kid := createUser(t, db, "mia", model.Kid, 0)
	parent := createUser(t, db, "dad", model.Parent, 0)

	t.Run("defaults when no record exists", func(t *testing.T) {
		view, err := svc.GetRewards(kid.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, view.PetStage)
		assert.Empty(t, view.Stickers)
		assert.False(t, view.SpinAvailable)
	})

	t.Run("existing record returned as-is", func(t *testing.T) {
		require.NoError(t, db.Create(&model.Reward{UserID: kid.ID, PetStage: 3, Stickers: []string{"star", "panda"}, SpinAvailable: true}).Error)

		view, err := svc.GetRewards(kid.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, view.PetStage)
		assert.Equal(t, []string{"star", "panda"}, view.Stickers)
		assert.True(t, view.SpinAvailable)
	})

	t.Run("parent target is not found", func(t *testing.T) {
		_, err := svc.GetRewards(parent.ID)
		var appErr *util.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, util.CodeNotFound, appErr.Code)
	})
}

func TestSpin(t *testing.T) {
	db := newTestDB(t)
	svc := newRewardService(db)

	kid := createUser(t, db, "leo", model.Kid, 0)
	require.NoError(t, db.Create(&model.Reward{UserID: kid.ID, PetStage: 2, Stickers: []string{}, SpinAvailable: true}).Error)

	result, err := svc.Spin(kid.ID)
	require.NoError(t, err)

	assert.Contains(t, StickerPool, result.Prize)
	assert.False(t, result.Rewards.SpinAvailable)
	assert.Contains(t, result.Rewards.Stickers, result.Prize)

	var stored model.Reward
	require.NoError(t, db.Where("user_id = ?", kid.ID).First(&stored).Error)
	assert.False(t, stored.SpinAvailable)

	// The spin was consumed; a second turn needs a new one banked.
	_, err = svc.Spin(kid.ID)
	var appErr *util.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, util.CodeValidation, appErr.Code)
}

func TestSpin_WithoutRewardState(t *testing.T) {
	db := newTestDB(t)
	svc := newRewardService(db)

	kid := createUser(t, db, "ava", model.Kid, 0)

	_, err := svc.Spin(kid.ID)
	var appErr *util.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, util.CodeValidation, appErr.Code)
}

func TestLeaderboard(t *testing.T) {
	db := newTestDB(t)
	svc := newRewardService(db)

	createUser(t, db, "mia", model.Kid, 250)
	createUser(t, db, "leo", model.Kid, 40)
	createUser(t, db, "ava", model.Kid, 120)
	createUser(t, db, "dad", model.Parent, 9000)

	entries, err := svc.Leaderboard(10)
	require.NoError(t, err)

	require.Len(t, entries, 3, "parents never rank")
	assert.Equal(t, "mia", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "ava", entries[1].Username)
	assert.Equal(t, "leo", entries[2].Username)
	assert.Equal(t, 3, entries[2].Rank)
}
