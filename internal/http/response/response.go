package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error     APIError `json:"error"`
	Path      string   `json:"path"`
	Timestamp string   `json:"timestamp"`
}

// RespondError writes err with the status its code maps to.
func RespondError(c *gin.Context, err error) {
	status, code := Status(err)
	RespondErrorStatus(c, status, code, err)
}

func RespondErrorStatus(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError && code == "internal" {
		msg = http.StatusText(status)
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
		Path:      c.Request.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
