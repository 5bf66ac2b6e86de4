package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TeamController manages organization members and staff invitations.
type TeamController struct {
	InvitationService *service.InvitationService
}

func NewTeamController(invitationService *service.InvitationService) *TeamController {
	return &TeamController{InvitationService: invitationService}
}

// Members godoc
// @Summary Organization members
// @Tags team
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.TeamMember}
// @Router /api/team/members [get]
func (c *TeamController) Members(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	members, err := c.InvitationService.TeamMembers(claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, members)
}

// Invite godoc
// @Summary Invite a staff member
// @Tags team
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.InviteStaffRequest true "Invitation payload"
// @Success 201 {object} util.Response{data=model.StaffInvitation}
// @Failure 409 {object} util.Response
// @Router /api/team/invitations [post]
func (c *TeamController) Invite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.InviteStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inv, err := c.InvitationService.Invite(claims.OrgID, req)
	if err != nil {
		if err == util.ErrEmailRegistered {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, inv)
}

// Invitations godoc
// @Summary List invitations
// @Tags team
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StaffInvitation}
// @Router /api/team/invitations [get]
func (c *TeamController) Invitations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	invs, err := c.InvitationService.List(claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, invs)
}

// Revoke godoc
// @Summary Revoke a pending invitation
// @Tags team
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Invitation ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/team/invitations/{id} [delete]
func (c *TeamController) Revoke(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	invID := util.MustParseUint(ctx.Param("id"))
	if invID == 0 {
		util.BadRequest(ctx, "Invalid invitation id")
		return
	}

	if err := c.InvitationService.Revoke(claims.OrgID, invID); err != nil {
		if err == util.ErrInvitationNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
