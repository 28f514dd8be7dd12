package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/actions"
	"doclens/api/dto"
	"doclens/api/middleware"
)

// CreateDocumentHandler godoc
// @Summary      Save an extracted document
// @Tags         documents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      actions.CreateDocumentInput  true  "document metadata and extracted text"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /documents [post]
func CreateDocumentHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in actions.CreateDocumentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		writeResult(c, acts.CreateDocument(c.Request.Context(), middleware.OwnerID(c), in))
	}
}

// ListDocumentsHandler godoc
// @Summary      List the caller's documents, newest first
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.EnvelopeDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /documents [get]
func ListDocumentsHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResult(c, acts.ListDocuments(c.Request.Context(), middleware.OwnerID(c)))
	}
}

// GetDocumentHandler godoc
// @Summary      Fetch one of the caller's documents
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "document id"
// @Success      200  {object}  dto.EnvelopeDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /documents/{id} [get]
func GetDocumentHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResult(c, acts.GetDocument(c.Request.Context(), middleware.OwnerID(c), c.Param("id")))
	}
}

// CreateDemoDocumentHandler godoc
// @Summary      Seed a sample document for the caller
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.EnvelopeDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /documents/demo [post]
func CreateDemoDocumentHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResult(c, acts.CreateDemoDocument(c.Request.Context(), middleware.OwnerID(c)))
	}
}

// SaveSummaryHandler godoc
// @Summary      Save a generated summary under its document
// @Tags         summaries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "document id"
// @Param        body  body      actions.SaveSummaryInput true  "summary to keep"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Router       /documents/{id}/summaries [post]
func SaveSummaryHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in actions.SaveSummaryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		writeResult(c, acts.SaveSummary(c.Request.Context(), middleware.OwnerID(c), c.Param("id"), in))
	}
}

// ListDocumentSummariesHandler godoc
// @Summary      List saved summaries for one document
// @Tags         summaries
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "document id"
// @Success      200  {object}  dto.EnvelopeDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /documents/{id}/summaries [get]
func ListDocumentSummariesHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResult(c, acts.ListDocumentSummaries(c.Request.Context(), middleware.OwnerID(c), c.Param("id")))
	}
}

// ListSummariesHandler godoc
// @Summary      List the caller's saved summary history, newest first
// @Tags         summaries
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.EnvelopeDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /summaries [get]
func ListSummariesHandler(acts *actions.Actions) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResult(c, acts.ListSummaries(c.Request.Context(), middleware.OwnerID(c)))
	}
}
