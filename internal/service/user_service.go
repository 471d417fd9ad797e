package service

import (
	"errors"

	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// AuthorizeTarget loads whatever account state the access policy needs and
// runs it for the caller against the target id.
func (s *UserService) AuthorizeTarget(claims *util.Claims, targetID uint) error {
	var childIDs []uint
	if claims.Role == model.Parent {
		ids, err := s.UserRepo.ChildIDs(claims.UserID)
		if err != nil {
			return err
		}
		childIDs = ids
	}

	if !CanAccessAccount(claims.Role, claims.UserID, targetID, childIDs) {
		return util.ForbiddenError()
	}
	return nil
}

type KidProfile struct {
	XP     int      `json:"xp"`
	Level  int      `json:"level"`
	Badges []string `json:"badges"`
}

// GetKidProfile returns the dashboard view of a kid account.
func (s *UserService) GetKidProfile(targetID uint) (*KidProfile, error) {
	user, err := s.UserRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("Not found")
		}
		return nil, err
	}
	if user.Role != model.Kid {
		return nil, util.NotFoundError("Not found")
	}

	badges := user.Badges
	if badges == nil {
		badges = []string{}
	}
	return &KidProfile{XP: user.XP, Level: user.Level, Badges: badges}, nil
}

// LinkChild attaches an existing account to the calling parent's child list.
// The target must exist; its role is not constrained.
func (s *UserService) LinkChild(parentID uint, childUsername string) (*model.User, error) {
	parent, err := s.UserRepo.FindByID(parentID)
	if err != nil {
		return nil, err
	}

	child, err := s.UserRepo.FindByUsername(childUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("Account not found")
		}
		return nil, err
	}
	if child.ID == parent.ID {
		return nil, util.ValidationError("Cannot link an account to itself")
	}

	if err := s.UserRepo.AddChild(parent, child); err != nil {
		return nil, err
	}
	return child, nil
}
