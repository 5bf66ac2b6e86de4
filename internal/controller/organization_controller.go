package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OrganizationController covers the org profile and onboarding progression,
// plus the admin-only listing and subscription override.
type OrganizationController struct {
	OrgService *service.OrganizationService
}

func NewOrganizationController(orgService *service.OrganizationService) *OrganizationController {
	return &OrganizationController{OrgService: orgService}
}

// Get godoc
// @Summary Organization profile
// @Tags organization
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Organization}
// @Router /api/organization [get]
func (c *OrganizationController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	org, err := c.OrgService.Get(claims.OrgID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, org)
}

// UpdateProfile godoc
// @Summary Update organization profile
// @Description Saves the practice profile and advances onboarding past the profile step
// @Tags organization
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.OrganizationProfileRequest true "Profile payload"
// @Success 200 {object} util.Response{data=model.Organization}
// @Failure 400 {object} util.Response
// @Router /api/organization/profile [put]
func (c *OrganizationController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.OrganizationProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	org, err := c.OrgService.UpdateProfile(claims.OrgID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, org)
}

// ListOrganizations godoc
// @Summary List organizations
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/organizations [get]
func (c *OrganizationController) ListOrganizations(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	orgs, total, err := c.OrgService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  orgs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// SetSubscription godoc
// @Summary Override an organization's subscription status
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Organization ID"
// @Param body body service.SubscriptionUpdateRequest true "Subscription payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/admin/organizations/{id}/subscription [put]
func (c *OrganizationController) SetSubscription(ctx *gin.Context) {
	orgID := util.MustParseUint(ctx.Param("id"))
	if orgID == 0 {
		util.BadRequest(ctx, "Invalid organization id")
		return
	}

	var req service.SubscriptionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.OrgService.SetSubscriptionStatus(orgID, req.Status); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
