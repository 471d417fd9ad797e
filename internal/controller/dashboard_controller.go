package controller

import (
	"kidquiz_backend/internal/service"
	"kidquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	UserService   *service.UserService
	RewardService *service.RewardService
}

func NewDashboardController(userService *service.UserService, rewardService *service.RewardService) *DashboardController {
	return &DashboardController{
		UserService:   userService,
		RewardService: rewardService,
	}
}

// GetDashboard godoc
// @Summary Fetch a kid's dashboard
// @Description Returns xp, level and badges. Kids see themselves; parents see linked children.
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "kid account id"
// @Success 200 {object} service.KidProfile
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/dashboard/{id} [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	targetID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.AuthorizeTarget(claims, targetID); err != nil {
		util.Fail(ctx, err)
		return
	}

	profile, err := c.UserService.GetKidProfile(targetID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// GetLeaderboard godoc
// @Summary Top kids by XP
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/leaderboard [get]
func (c *DashboardController) GetLeaderboard(ctx *gin.Context) {
	leaderboard, err := c.RewardService.Leaderboard(10)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"leaderboard": leaderboard})
}
