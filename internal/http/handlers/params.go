package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/academics-backend/internal/platform/apierr"
)

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierr.InvalidParam(name, raw)
	}
	return id, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.InvalidBody(err)
	}
	return nil
}
