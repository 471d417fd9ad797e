package controller

import (
	"kidquiz_backend/internal/model"
	"kidquiz_backend/internal/service"
	"kidquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RewardController struct {
	UserService   *service.UserService
	RewardService *service.RewardService
}

func NewRewardController(userService *service.UserService, rewardService *service.RewardService) *RewardController {
	return &RewardController{
		UserService:   userService,
		RewardService: rewardService,
	}
}

// GetRewards godoc
// @Summary Fetch reward state for a kid
// @Description Pet stage, stickers and spin flag; defaults when no record exists yet
// @Tags rewards
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "kid account id"
// @Success 200 {object} service.RewardView
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/rewards/{id} [get]
func (c *RewardController) GetRewards(ctx *gin.Context) {
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

	rewards, err := c.RewardService.GetRewards(targetID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, rewards)
}

// Spin godoc
// @Summary Spend a banked spin
// @Description Consumes the spin flag and turns the wheel for a prize
// @Tags rewards
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "kid account id"
// @Success 200 {object} service.SpinResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/rewards/{id}/spin [post]
func (c *RewardController) Spin(ctx *gin.Context) {
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

	// Spins are personal: only the kid who banked it may spend it.
	if claims.Role != model.Kid || claims.UserID != targetID {
		util.Forbidden(ctx)
		return
	}

	result, err := c.RewardService.Spin(targetID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, result)
}
