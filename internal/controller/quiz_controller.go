package controller

import (
	"strings"

	"kidquiz_backend/internal/service"
	"kidquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService        *service.QuizService
	ProgressionService *service.ProgressionService
}

func NewQuizController(quizService *service.QuizService, progressionService *service.ProgressionService) *QuizController {
	return &QuizController{
		QuizService:        quizService,
		ProgressionService: progressionService,
	}
}

// GetQuiz godoc
// @Summary Fetch a quiz by subject
// @Description Returns quiz questions; answer indices only with revealAnswers=true
// @Tags quiz
// @Produce json
// @Param subject path string true "quiz subject"
// @Param revealAnswers query bool false "include answer indices"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quiz/{subject} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	subject := ctx.Param("subject")
	reveal := strings.EqualFold(ctx.Query("revealAnswers"), "true")

	quiz, err := c.QuizService.GetQuiz(subject, reveal)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"quiz": quiz})
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	QuizID  uint   `json:"quizId" binding:"required"`
	Answers *[]int `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores the submission, records the attempt and applies XP/level/badge/reward progression
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "submission payload"
// @Success 201 {object} service.SubmitResult
// @Failure 400 {object} util.ErrorResponse
// @Failure 403 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/submit-quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid input")
		return
	}

	// Kids submit only for themselves.
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	quiz, err := c.QuizService.GetDefinition(req.QuizID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	correct, total, percentage := service.ScoreQuiz(quiz.Questions, *req.Answers)

	result, err := c.ProgressionService.ApplyAttempt(req.UserID, quiz, correct, total, percentage)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Created(ctx, result)
}
