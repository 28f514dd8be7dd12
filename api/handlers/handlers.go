package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/actions"
)

// writeResult maps an action envelope onto the HTTP response. Failed
// envelopes keep HTTP 200 for flow endpoints so clients read the
// envelope uniformly; handlers that need specific status codes handle
// errors before calling this.
func writeResult(c *gin.Context, res actions.Result) {
	c.JSON(http.StatusOK, res)
}
