package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"doclens/actions"
	"doclens/api/dto"
	"doclens/flows"
)

// flowContext bounds every AI flow call so a stuck model request cannot
// hold the connection past the processing budget.
func flowContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}

// SummarizeHandler godoc
// @Summary      Generate an audience-specific summary
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.SummarizeInput  true  "document text, audience and language"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/summarize [post]
func SummarizeHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.SummarizeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.GenerateSummary(ctx, in))
	}
}

// ChatHandler godoc
// @Summary      Answer a question about a document
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.ChatInput  true  "document text and user question"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/chat [post]
func ChatHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.ChatInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.Chat(ctx, in))
	}
}

// MindMapHandler godoc
// @Summary      Build a hierarchical mind map of a document
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.MindMapInput  true  "document text"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/mind-map [post]
func MindMapHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.MindMapInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.GenerateMindMap(ctx, in))
	}
}

// ToneHandler godoc
// @Summary      Analyze sentiment, tone and writing style
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.ToneInput  true  "document text"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/tone [post]
func ToneHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.ToneInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.AnalyzeTone(ctx, in))
	}
}

// AudioSummaryHandler godoc
// @Summary      Speak a summary as a WAV data URI
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.AudioSummaryInput  true  "text to speak"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/audio-summary [post]
func AudioSummaryHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.AudioSummaryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.GenerateAudioSummary(ctx, in))
	}
}

// SuggestedQuestionsHandler godoc
// @Summary      Suggest questions a reader could ask about a document
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.SuggestedQuestionsInput  true  "document text"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/suggested-questions [post]
func SuggestedQuestionsHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.SuggestedQuestionsInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.GenerateSuggestedQuestions(ctx, in))
	}
}

// CompareHandler godoc
// @Summary      Compare two documents
// @Tags         flows
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      flows.CompareInput  true  "two documents to compare"
// @Success      200   {object}  dto.EnvelopeDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /flows/compare [post]
func CompareHandler(acts *actions.Actions, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in flows.CompareInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		ctx, cancel := flowContext(c, timeout)
		defer cancel()
		writeResult(c, acts.CompareDocuments(ctx, in))
	}
}
