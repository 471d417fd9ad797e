package model

type UserRole string

const (
	Kid    UserRole = "kid"
	Parent UserRole = "parent"
)

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:varchar(10);not null" json:"role"`
	XP       int      `gorm:"default:0" json:"xp"`
	Level    int      `gorm:"default:1" json:"level"` // always xp/100+1, recomputed on every award
	Avatar   string   `gorm:"size:255" json:"avatar,omitempty"`
	Badges   []string `gorm:"serializer:json;type:text" json:"badges"`
	Children []*User  `gorm:"many2many:parent_children;joinForeignKey:ParentID;joinReferences:ChildID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
