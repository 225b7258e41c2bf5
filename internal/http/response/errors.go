package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/apierr"
)

// Status maps an error onto an HTTP status and a machine-readable code.
func Status(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}
	var ae *apierr.Error
	if errors.As(err, &ae) {
		status := ae.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		return status, ae.Code
	}

	code := academics.CodeOf(err)
	switch code {
	case academics.CodeNotFound:
		return http.StatusNotFound, string(code)
	case academics.CodeConstraintViolation:
		return http.StatusConflict, string(code)
	case academics.CodeValidation:
		return http.StatusBadRequest, string(code)
	case academics.CodeAggregateFailure:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, string(code)
		}
		return http.StatusBadGateway, string(code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "timeout"
	}
	if code == "" {
		code = academics.CodeInternal
	}
	return http.StatusInternalServerError, string(code)
}
