package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Subject   string         `gorm:"size:100;uniqueIndex;not null" json:"subject"`
	Questions []QuizQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizQuestion struct {
	BaseModel
	QuizID      uint     `gorm:"index;not null" json:"-"`
	Position    int      `gorm:"not null" json:"-"` // question order within the quiz
	Text        string   `gorm:"type:text;not null" json:"question"`
	Options     []string `gorm:"serializer:json;type:text" json:"options"`
	AnswerIndex int      `gorm:"not null" json:"answerIndex"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
