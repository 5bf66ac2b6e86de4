package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Summary godoc
// @Summary Compliance dashboard summary
// @Description Aggregates assessment, plan, document, and team state for the dashboard
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardSummary}
// @Failure 402 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	summary, err := c.DashboardService.Summary(ctx.Request.Context(), claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
