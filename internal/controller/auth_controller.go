package controller

import (
	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/service"
	"kidquiz_backend/internal/util"
	"kidquiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=kid parent"`
}

type accountView struct {
	ID       uint           `json:"id"`
	Username string         `json:"username"`
	Role     model.UserRole `json:"role"`
	XP       int            `json:"xp"`
	Level    int            `json:"level"`
	Badges   []string       `json:"badges"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  accountView `json:"user"`
}

func toAccountView(user *model.User) accountView {
	badges := user.Badges
	if badges == nil {
		badges = []string{}
	}
	return accountView{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		XP:       user.XP,
		Level:    user.Level,
		Badges:   badges,
	}
}

// Signup godoc
// @Summary Create an account
// @Description Registers a kid or parent account and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "signup payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /api/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid input")
		return
	}

	user, token, err := c.AuthService.Signup(req.Username, req.Password, model.UserRole(req.Role))
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	logger.Log.Info("account created",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	util.Created(ctx, authResponse{Token: token, User: toAccountView(user)})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Authenticate
// @Description Verifies credentials and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid input")
		return
	}

	user, token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	logger.Log.Info("login",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	util.Success(ctx, authResponse{Token: token, User: toAccountView(user)})
}
