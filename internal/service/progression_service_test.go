package service

import (
	"testing"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{1000, 11},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, LevelForXP(tc.xp), "xp=%d", tc.xp)
	}
}

func assertInStickerPool(t *testing.T, stickers []string) {
	t.Helper()
	pool := make(map[string]bool, len(StickerPool))
	for _, s := range StickerPool {
		pool[s] = true
	}
	for _, s := range stickers {
		assert.True(t, pool[s], "sticker %q not in pool", s)
	}
}

func TestApplyAttempt_NoLevelGain(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "mia", model.Kid, 0)
	quiz := createQuiz(t, db, "math", 0, 1, 2)

	svc := NewProgressionService(db, newTestRand())

	// 3 of 3 correct on a brand new account: 30 XP, still level 1.
	result, err := svc.ApplyAttempt(kid.ID, quiz, 3, 3, 100)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Correct)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 30, result.XPAwarded)
	assert.Equal(t, 1, result.NewLevel)
	assert.Empty(t, result.NewBadges)
	assert.Equal(t, 1, result.Rewards.PetStage)
	assert.Empty(t, result.Rewards.Stickers)
	// Perfect score banks a spin even without a level gain.
	assert.True(t, result.Rewards.SpinAvailable)

	var stored model.User
	require.NoError(t, db.First(&stored, kid.ID).Error)
	assert.Equal(t, 30, stored.XP)
	assert.Equal(t, 1, stored.Level)

	var attempts []model.QuizAttempt
	require.NoError(t, db.Where("user_id = ?", kid.ID).Find(&attempts).Error)
	require.Len(t, attempts, 1)
	assert.Equal(t, 3, attempts[0].Score)
	assert.Equal(t, 100, attempts[0].Percentage)
}

func TestApplyAttempt_LevelUp(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "leo", model.Kid, 90)
	quiz := createQuiz(t, db, "math", 0, 1, 2, 3)

	svc := NewProgressionService(db, newTestRand())

	result, err := svc.ApplyAttempt(kid.ID, quiz, 2, 4, 50)
	require.NoError(t, err)

	assert.Equal(t, 20, result.XPAwarded)
	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, []string{"Level 2 Achiever"}, result.NewBadges)
	// floor(2/2) - floor(1/2) = 1 even boundary crossed.
	assert.Equal(t, 2, result.Rewards.PetStage)
	require.Len(t, result.Rewards.Stickers, 1)
	assertInStickerPool(t, result.Rewards.Stickers)
	assert.True(t, result.Rewards.SpinAvailable)

	var stored model.User
	require.NoError(t, db.First(&stored, kid.ID).Error)
	assert.Equal(t, 110, stored.XP)
	assert.Equal(t, 2, stored.Level)
	assert.Equal(t, []string{"Level 2 Achiever"}, stored.Badges)
}

func TestApplyAttempt_MultiLevelJump(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "ava", model.Kid, 0)
	quiz := createQuiz(t, db, "mega", 0)

	svc := NewProgressionService(db, newTestRand())

	// 25 correct answers jump straight from level 1 to level 3.
	result, err := svc.ApplyAttempt(kid.ID, quiz, 25, 25, 100)
	require.NoError(t, err)

	assert.Equal(t, 250, result.XPAwarded)
	assert.Equal(t, 3, result.NewLevel)
	assert.Equal(t, []string{"Level 2 Achiever", "Level 3 Achiever"}, result.NewBadges)
	assert.Equal(t, 2, result.Rewards.PetStage)
	require.Len(t, result.Rewards.Stickers, 2)
	assert.NotEqual(t, result.Rewards.Stickers[0], result.Rewards.Stickers[1],
		"unowned pool stickers must not repeat")
	assertInStickerPool(t, result.Rewards.Stickers)
	assert.True(t, result.Rewards.SpinAvailable)
}

func TestApplyAttempt_NoBadgeReplay(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "sam", model.Kid, 110)
	kid.Badges = []string{"Level 2 Achiever"}
	require.NoError(t, db.Save(kid).Error)
	require.NoError(t, db.Create(&model.Reward{UserID: kid.ID, PetStage: 2, Stickers: []string{"star"}}).Error)

	quiz := createQuiz(t, db, "math", 0, 1, 2)
	svc := NewProgressionService(db, newTestRand())

	// Stays inside level 2: no badge, no pet growth, no sticker, no spin.
	result, err := svc.ApplyAttempt(kid.ID, quiz, 1, 3, 33)
	require.NoError(t, err)

	assert.Equal(t, 2, result.NewLevel)
	assert.Empty(t, result.NewBadges)
	assert.Equal(t, 2, result.Rewards.PetStage)
	assert.Equal(t, []string{"star"}, result.Rewards.Stickers)
	assert.False(t, result.Rewards.SpinAvailable)

	var stored model.User
	require.NoError(t, db.First(&stored, kid.ID).Error)
	assert.Equal(t, []string{"Level 2 Achiever"}, stored.Badges)
}

func TestApplyAttempt_SpinOnHighScoreOnly(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "zoe", model.Kid, 0)
	quiz := createQuiz(t, db, "math", 0, 1, 2, 3, 0)

	svc := NewProgressionService(db, newTestRand())

	result, err := svc.ApplyAttempt(kid.ID, quiz, 4, 5, 80)
	require.NoError(t, err)

	assert.Equal(t, 1, result.NewLevel)
	assert.Empty(t, result.NewBadges)
	assert.True(t, result.Rewards.SpinAvailable)
}

func TestApplyAttempt_StickerRepeatOnlyWhenPoolExhausted(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "nia", model.Kid, 90)
	owned := make([]string, len(StickerPool))
	copy(owned, StickerPool)
	require.NoError(t, db.Create(&model.Reward{UserID: kid.ID, PetStage: 5, Stickers: owned}).Error)

	quiz := createQuiz(t, db, "math", 0)
	svc := NewProgressionService(db, newTestRand())

	result, err := svc.ApplyAttempt(kid.ID, quiz, 1, 1, 100)
	require.NoError(t, err)

	require.Len(t, result.Rewards.Stickers, len(StickerPool)+1)
	assertInStickerPool(t, result.Rewards.Stickers)
}

func TestApplyAttempt_LazyRewardInit(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "kai", model.Kid, 0)
	quiz := createQuiz(t, db, "math", 0)

	svc := NewProgressionService(db, newTestRand())

	_, err := svc.ApplyAttempt(kid.ID, quiz, 0, 1, 0)
	require.NoError(t, err)

	var reward model.Reward
	require.NoError(t, db.Where("user_id = ?", kid.ID).First(&reward).Error)
	assert.Equal(t, 1, reward.PetStage)
	assert.Empty(t, reward.Stickers)
	assert.False(t, reward.SpinAvailable)
}

func TestApplyAttempt_RejectsMissingOrNonKid(t *testing.T) {
	db := newTestDB(t)
	parent := createUser(t, db, "dad", model.Parent, 0)
	quiz := createQuiz(t, db, "math", 0)

	svc := NewProgressionService(db, newTestRand())

	for _, userID := range []uint{parent.ID, 9999} {
		_, err := svc.ApplyAttempt(userID, quiz, 1, 1, 100)
		var appErr *util.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, util.CodeNotFound, appErr.Code)
	}

	// The transaction rolled back: nothing reached the ledger.
	var count int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyAttempt_RepeatedCallsAccumulate(t *testing.T) {
	db := newTestDB(t)
	kid := createUser(t, db, "eli", model.Kid, 0)
	quiz := createQuiz(t, db, "math", 0, 1, 2)

	svc := NewProgressionService(db, newTestRand())

	// Four perfect 3-question runs: 120 XP, one level crossed on the fourth.
	var last *SubmitResult
	for i := 0; i < 4; i++ {
		result, err := svc.ApplyAttempt(kid.ID, quiz, 3, 3, 100)
		require.NoError(t, err)
		last = result
	}

	assert.Equal(t, 2, last.NewLevel)
	assert.Equal(t, []string{"Level 2 Achiever"}, last.NewBadges)

	var stored model.User
	require.NoError(t, db.First(&stored, kid.ID).Error)
	assert.Equal(t, 120, stored.XP)
	assert.Equal(t, []string{"Level 2 Achiever"}, stored.Badges)

	var count int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Where("user_id = ?", kid.ID).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}
