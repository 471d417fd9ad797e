package service

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.Reward{},
	))

	return db
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func createUser(t *testing.T, db *gorm.DB, username string, role model.UserRole, xp int) *model.User {
	t.Helper()

	user := &model.User{
		Username: username,
		Password: "not-a-real-hash",
		Role:     role,
		XP:       xp,
		Level:    LevelForXP(xp),
		Badges:   []string{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createQuiz(t *testing.T, db *gorm.DB, subject string, answerIndices ...int) *model.Quiz {
	t.Helper()

	quiz := &model.Quiz{Subject: subject}
	for i, answer := range answerIndices {
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Position:    i,
			Text:        fmt.Sprintf("question %d", i+1),
			Options:     []string{"a", "b", "c", "d"},
			AnswerIndex: answer,
		})
	}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}
