package dto

// ErrorResponseDTO is the shared error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"unsupported file type"`
}

// ExtractTextResponseDTO is returned by the extract-text endpoint on
// success.
type ExtractTextResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	Text     string `json:"text"`
	FileName string `json:"fileName" example:"report.pdf"`
	FileType string `json:"fileType" example:"application/pdf"`
	FileSize int64  `json:"fileSize" example:"204800"`
}

// EnvelopeDTO documents the uniform action envelope for swagger.
type EnvelopeDTO struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty" example:"Document not found."`
}
