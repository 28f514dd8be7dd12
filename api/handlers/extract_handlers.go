package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/actions"
	"doclens/api/dto"
	"doclens/logger"
)

// ExtractTextHandler godoc
// @Summary      Extract plain text from an uploaded document
// @Description  Accepts a PDF or DOCX file as multipart form data and returns the extracted plain text.
// @Tags         extract
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF or DOCX file, at most 150 MB"
// @Success      200   {object}  dto.ExtractTextResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      413   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /extract-text [post]
func ExtractTextHandler(acts *actions.Actions, maxFileSizeBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "no file provided"})
			return
		}

		// A file of exactly the limit is accepted; one byte over is not.
		if fileHeader.Size > maxFileSizeBytes {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponseDTO{
				Error: "file exceeds the maximum allowed size",
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Log.Errorf("open uploaded file: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to read uploaded file"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorf("read uploaded file: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed to read uploaded file"})
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		res := acts.ExtractText(data, mimeType)
		if !res.Success {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: res.Error})
			return
		}

		text, _ := res.Data.(string)
		c.JSON(http.StatusOK, dto.ExtractTextResponseDTO{
			Success:  true,
			Text:     text,
			FileName: fileHeader.Filename,
			FileType: mimeType,
			FileSize: fileHeader.Size,
		})
	}
}
