package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login, and signup via invitation.
type AuthController struct {
	AuthService       *service.AuthService
	InvitationService *service.InvitationService
	OrgService        *service.OrganizationService
}

func NewAuthController(authService *service.AuthService, invitationService *service.InvitationService, orgService *service.OrganizationService) *AuthController {
	return &AuthController{
		AuthService:       authService,
		InvitationService: invitationService,
		OrgService:        orgService,
	}
}

// Register godoc
// @Summary Register a new organization
// @Description Creates an organization with a trial subscription and its owner account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Registration payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req)
	if err != nil {
		if err == util.ErrEmailRegistered {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"token": token, "user": user})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// AcceptInvitation godoc
// @Summary Accept a staff invitation
// @Description Redeems an invitation token and creates the staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.AcceptInvitationRequest true "Invitation acceptance payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 410 {object} util.Response
// @Router /api/auth/invitations/accept [post]
func (c *AuthController) AcceptInvitation(ctx *gin.Context) {
	var req service.AcceptInvitationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.InvitationService.Accept(req)
	if err != nil {
		switch err {
		case util.ErrInvitationNotFound:
			util.NotFound(ctx)
		case util.ErrInvitationExpired:
			util.Error(ctx, http.StatusGone, err.Error())
		case util.ErrEmailRegistered:
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, err := util.GenerateJWT(user, c.AuthService.Cfg.JWT.Secret, c.AuthService.Cfg.JWT.ExpireTime)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"token": token, "user": user})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	org, err := c.OrgService.Get(user.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"user": user, "organization": org})
}
