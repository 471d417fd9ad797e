package model

// QuizAttempt is an append-only ledger row: one record per submission,
// never updated or deleted. CreatedAt is the attempt timestamp.
type QuizAttempt struct {
	BaseModel
	UserID     uint `gorm:"index;not null" json:"userId"`
	QuizID     uint `gorm:"index;not null" json:"quizId"`
	Score      int  `gorm:"not null" json:"score"`
	Total      int  `gorm:"not null" json:"total"`
	Percentage int  `gorm:"not null" json:"percentage"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
