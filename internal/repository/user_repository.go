package repository

import (
	"kidquiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) FindTopKidsByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.Kid).Order("xp DESC").Limit(limit).Find(&users).Error
	return users, err
}

// ChildIDs returns the ids linked to a parent account. Authorization decisions
// run over this list, so it is loaded fresh on every gated request.
func (r *UserRepository) ChildIDs(parentID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Table("parent_children").
		Where("parent_id = ?", parentID).
		Pluck("child_id", &ids).Error
	return ids, err
}

func (r *UserRepository) AddChild(parent *model.User, child *model.User) error {
	return r.DB.Model(parent).Association("Children").Append(child)
}
