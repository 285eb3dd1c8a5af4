package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudlens/console/internal/view"
	"github.com/fraudlens/console/pkg/constants"
	"github.com/fraudlens/console/pkg/errors"
)

func requestID(c *gin.Context) string {
	if id, ok := c.Request.Context().Value(constants.ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// SendSuccess writes a 200 success envelope.
func SendSuccess(c *gin.Context, data interface{}, notices ...view.Notice) {
	c.JSON(http.StatusOK, SuccessResponse(data, requestID(c)).WithNotices(notices...))
}

// SendError writes a failure envelope with the error's HTTP status.
func SendError(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	c.JSON(appErr.Status, ErrorResponse(appErr, requestID(c)))
}
