package controller

import (
	"kidquiz_backend/internal/service"
	"kidquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ParentController struct {
	UserService     *service.UserService
	ProgressService *service.ProgressService
}

func NewParentController(userService *service.UserService, progressService *service.ProgressService) *ParentController {
	return &ParentController{
		UserService:     userService,
		ProgressService: progressService,
	}
}

// GetChildSummary godoc
// @Summary Aggregate progress for a linked child
// @Description Attempt count, running average over all history, and the five most recent attempts
// @Tags parent
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "child account id"
// @Success 200 {object} service.ChildSummary
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Router /api/parent/{id} [get]
func (c *ParentController) GetChildSummary(ctx *gin.Context) {
	childID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.AuthorizeTarget(claims, childID); err != nil {
		util.Fail(ctx, err)
		return
	}

	summary, err := c.ProgressService.Summary(childID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// swagger:model LinkChildRequest
type LinkChildRequest struct {
	Username string `json:"username" binding:"required"`
}

// LinkChild godoc
// @Summary Link an existing account as a child
// @Tags parent
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body LinkChildRequest true "child username"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/parent/children [post]
func (c *ParentController) LinkChild(ctx *gin.Context) {
	var req LinkChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid input")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	child, err := c.UserService.LinkChild(claims.UserID, req.Username)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"childId": child.ID, "username": child.Username})
}
