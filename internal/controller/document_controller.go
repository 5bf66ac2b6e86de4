package controller

import (
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DocumentController exposes the derived document checklist and the
// generation/download flow backed by the external document service.
type DocumentController struct {
	DocumentService *service.DocumentService
}

func NewDocumentController(documentService *service.DocumentService) *DocumentController {
	return &DocumentController{DocumentService: documentService}
}

// Requirements godoc
// @Summary Document checklist
// @Description Derives which policy documents the organization needs from its answers
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.DocumentRequirement}
// @Router /api/documents/requirements [get]
func (c *DocumentController) Requirements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	reqs, err := c.DocumentService.Requirements(claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reqs)
}

type GenerateDocumentRequest struct {
	DocumentType string `json:"documentType" binding:"required"`
}

// Generate godoc
// @Summary Generate a policy document
// @Tags documents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateDocumentRequest true "Document type"
// @Success 200 {object} util.Response{data=model.GeneratedDocument}
// @Failure 400 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/documents/generate [post]
func (c *DocumentController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req GenerateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	doc, err := c.DocumentService.Generate(ctx.Request.Context(), claims.OrgID, req.DocumentType)
	if err != nil {
		if err == util.ErrDocumentNotFound {
			util.BadRequest(ctx, "Unknown document type")
			return
		}
		util.Error(ctx, http.StatusBadGateway, "Document generation failed")
		return
	}
	util.Success(ctx, doc)
}

// List godoc
// @Summary Generated documents
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.GeneratedDocument}
// @Router /api/documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	docs, err := c.DocumentService.List(claims.OrgID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, docs)
}

// Download godoc
// @Summary Download a generated document
// @Tags documents
// @Produce text/markdown
// @Security ApiKeyAuth
// @Param id path int true "Document ID"
// @Success 200 {string} string "Document content"
// @Failure 404 {object} util.Response
// @Router /api/documents/{id}/download [get]
func (c *DocumentController) Download(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	docID := util.MustParseUint(ctx.Param("id"))
	if docID == 0 {
		util.BadRequest(ctx, "Invalid document id")
		return
	}

	doc, reader, err := c.DocumentService.Download(ctx.Request.Context(), claims.OrgID, docID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Disposition", "attachment; filename=\""+doc.DocumentType+".md\"")
	ctx.Header("Content-Type", util.MimeMarkdown)
	ctx.Status(http.StatusOK)
	io.Copy(ctx.Writer, reader)
}
