package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController serves public marketing content and its admin CRUD.
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// Testimonials godoc
// @Summary Published testimonials
// @Tags content
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Testimonial}
// @Router /api/content/testimonials [get]
func (c *ContentController) Testimonials(ctx *gin.Context) {
	list, err := c.ContentService.PublishedTestimonials()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Plans godoc
// @Summary Active pricing plans
// @Tags content
// @Produce json
// @Success 200 {object} util.Response{data=[]model.PricingPlan}
// @Router /api/content/plans [get]
func (c *ContentController) Plans(ctx *gin.Context) {
	list, err := c.ContentService.ActivePlans()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// AdminTestimonials godoc
// @Summary All testimonials including unpublished
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Testimonial}
// @Router /api/admin/content/testimonials [get]
func (c *ContentController) AdminTestimonials(ctx *gin.Context) {
	list, err := c.ContentService.AllTestimonials()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// CreateTestimonial godoc
// @Summary Create a testimonial
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.TestimonialRequest true "Testimonial payload"
// @Success 201 {object} util.Response{data=model.Testimonial}
// @Router /api/admin/content/testimonials [post]
func (c *ContentController) CreateTestimonial(ctx *gin.Context) {
	var req service.TestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.ContentService.CreateTestimonial(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, t)
}

// UpdateTestimonial godoc
// @Summary Update a testimonial
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Testimonial ID"
// @Param body body service.TestimonialRequest true "Testimonial payload"
// @Success 200 {object} util.Response{data=model.Testimonial}
// @Router /api/admin/content/testimonials/{id} [put]
func (c *ContentController) UpdateTestimonial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "Invalid testimonial id")
		return
	}

	var req service.TestimonialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.ContentService.UpdateTestimonial(id, req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, t)
}

// DeleteTestimonial godoc
// @Summary Delete a testimonial
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Testimonial ID"
// @Success 200 {object} util.Response
// @Router /api/admin/content/testimonials/{id} [delete]
func (c *ContentController) DeleteTestimonial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "Invalid testimonial id")
		return
	}

	if err := c.ContentService.DeleteTestimonial(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AdminPlans godoc
// @Summary All pricing plans including inactive
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.PricingPlan}
// @Router /api/admin/content/plans [get]
func (c *ContentController) AdminPlans(ctx *gin.Context) {
	list, err := c.ContentService.AllPlans()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// CreatePlan godoc
// @Summary Create a pricing plan
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.PricingPlanRequest true "Plan payload"
// @Success 201 {object} util.Response{data=model.PricingPlan}
// @Router /api/admin/content/plans [post]
func (c *ContentController) CreatePlan(ctx *gin.Context) {
	var req service.PricingPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.ContentService.CreatePlan(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

// UpdatePlan godoc
// @Summary Update a pricing plan
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Plan ID"
// @Param body body service.PricingPlanRequest true "Plan payload"
// @Success 200 {object} util.Response{data=model.PricingPlan}
// @Router /api/admin/content/plans/{id} [put]
func (c *ContentController) UpdatePlan(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "Invalid plan id")
		return
	}

	var req service.PricingPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.ContentService.UpdatePlan(id, req)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, p)
}
