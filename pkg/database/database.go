package database

import (
	"fmt"
	"log"

	"kidquiz_backend/internal/config"
	"kidquiz_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.Reward{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认测验（种子脚本缺省时保证可用）
	var count int64
	db.Model(&model.Quiz{}).Count(&count)
	if count == 0 {
		defaultQuizzes := []model.Quiz{
			{
				Subject: "math",
				Questions: []model.QuizQuestion{
					{Position: 0, Text: "What is 3 + 4?", Options: []string{"5", "6", "7", "8"}, AnswerIndex: 2},
					{Position: 1, Text: "What is 9 - 5?", Options: []string{"4", "3", "5", "6"}, AnswerIndex: 0},
					{Position: 2, Text: "What is 2 x 6?", Options: []string{"10", "12", "14"}, AnswerIndex: 1},
				},
			},
			{
				Subject: "spelling",
				Questions: []model.QuizQuestion{
					{Position: 0, Text: "Which word is spelled correctly?", Options: []string{"frend", "friend", "freind"}, AnswerIndex: 1},
					{Position: 1, Text: "Which word is spelled correctly?", Options: []string{"because", "becuase", "becasue"}, AnswerIndex: 0},
				},
			},
		}
		for _, q := range defaultQuizzes {
			db.Create(&q)
		}
	}

	return db, nil
}
