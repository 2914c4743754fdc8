package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrResp is the error body shared by every endpoint.
type ErrResp struct {
	Error string `json:"error"`
}

// OK sends 200 JSON with the given body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with an error message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: msg})
}

// NotFound sends 404 with an error message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrResp{Error: msg})
}

// InternalError sends 500 with a generic message. Details are never
// echoed back to the caller; log them server-side instead.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: "Internal server error"})
}
