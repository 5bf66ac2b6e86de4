package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AssessmentController exposes the risk assessment wizard: questionnaire,
// per-answer saves, submission, and the scored result.
type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// Questionnaire godoc
// @Summary Current questionnaire state
// @Description Returns the applicable questions with any saved answers and progress counts
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.QuestionnaireResponse}
// @Router /api/assessment/questionnaire [get]
func (c *AssessmentController) Questionnaire(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	q, err := c.AssessmentService.Questionnaire(claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// SaveAnswer godoc
// @Summary Save a single answer
// @Tags assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SaveAnswerRequest true "Answer payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/assessment/answers [put]
func (c *AssessmentController) SaveAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AssessmentService.SaveAnswer(claims.OrgID, req); err != nil {
		if err == util.ErrUnknownQuestion {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Submit godoc
// @Summary Submit the assessment for scoring
// @Description Scores the saved answers, generates the action plan, and advances onboarding
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.RiskAssessment}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	assessment, err := c.AssessmentService.Submit(claims.OrgID)
	if err != nil {
		if err == util.ErrAssessmentNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessment)
}

// Result godoc
// @Summary Scored assessment result
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.RiskAssessment}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/assessment/result [get]
func (c *AssessmentController) Result(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	assessment, err := c.AssessmentService.Result(claims.OrgID)
	if err != nil {
		switch err {
		case util.ErrAssessmentNotFound:
			util.NotFound(ctx)
		case util.ErrAssessmentNotComplete:
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, assessment)
}
