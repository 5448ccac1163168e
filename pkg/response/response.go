package response

import (
	"errors"
	"net/http"

	pkgErrors "tour-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes the payload as-is with status 200. Payload shapes are owned by
// the delivery presenters so existing chat clients keep working.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error response. HTTPError controls the status code;
// anything else is a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, StatusResp{Status: "error", Message: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, StatusResp{Status: "error", Message: "Internal server error"})
}

// PanicError writes a 500 response for recovered panics.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, StatusResp{Status: "error", Message: "Internal server error"})
}
