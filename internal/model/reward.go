package model

// Reward is the per-kid gamification side state. At most one row per user,
// created at kid signup and lazily on first progression if missing.
type Reward struct {
	BaseModel
	UserID        uint     `gorm:"uniqueIndex;not null" json:"userId"`
	PetStage      int      `gorm:"default:1" json:"petStage"`
	Stickers      []string `gorm:"serializer:json;type:text" json:"stickers"`
	SpinAvailable bool     `gorm:"default:false" json:"spinAvailable"`
}

func (Reward) TableName() string {
	return "rewards"
}
