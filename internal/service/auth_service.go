package service

import (
	"errors"

	"kidquiz_backend/internal/config"
	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo   *repository.UserRepository
	RewardRepo *repository.RewardRepository
	Cfg        *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rewardRepo *repository.RewardRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:   userRepo,
		RewardRepo: rewardRepo,
		Cfg:        cfg,
	}
}

// Signup creates an account and, for kids, provisions the reward record.
// Handles are matched case-sensitively and exactly.
func (s *AuthService) Signup(username, password string, role model.UserRole) (*model.User, string, error) {
	_, err := s.UserRepo.FindByUsername(username)
	if err == nil {
		return nil, "", util.UsernameTakenError()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
		Level:    1,
		Badges:   []string{},
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	if role == model.Kid {
		reward := &model.Reward{UserID: user.ID, PetStage: 1, Stickers: []string{}}
		if err := s.RewardRepo.Create(reward); err != nil {
			return nil, "", err
		}
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords produce
// the same error so handles cannot be enumerated.
func (s *AuthService) Login(username, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, "", util.AuthInvalidError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.AuthInvalidError()
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
