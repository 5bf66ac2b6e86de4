package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActionPlanController struct {
	ActionPlanService *service.ActionPlanService
}

func NewActionPlanController(actionPlanService *service.ActionPlanService) *ActionPlanController {
	return &ActionPlanController{ActionPlanService: actionPlanService}
}

// List godoc
// @Summary Remediation plan items
// @Description Lists plan items ordered worst-first, with completion state
// @Tags action-plan
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ActionPlanItem}
// @Router /api/action-plan [get]
func (c *ActionPlanController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	items, err := c.ActionPlanService.List(claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// SetCompleted godoc
// @Summary Toggle a plan item's completion
// @Tags action-plan
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Plan item ID"
// @Param body body service.PlanItemUpdateRequest true "Completion payload"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/action-plan/{id} [patch]
func (c *ActionPlanController) SetCompleted(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	itemID := util.MustParseUint(ctx.Param("id"))
	if itemID == 0 {
		util.BadRequest(ctx, "Invalid plan item id")
		return
	}

	var req service.PlanItemUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ActionPlanService.SetCompleted(claims.OrgID, itemID, req.Completed); err != nil {
		if err == gorm.ErrRecordNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
