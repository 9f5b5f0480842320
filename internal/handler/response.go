package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/softcafe/clinic-admin-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// WriteError maps an application error onto its HTTP status. Anything
// without a recognized code is an unexpected failure: it surfaces as 500
// and the cause is logged, since the response body never carries it.
func WriteError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		status := httpStatus(appErr.Code)
		if status == http.StatusInternalServerError {
			logUnexpected(c, err)
		}
		c.JSON(status, NewErrorResponse(appErr.Message))
		return
	}

	logUnexpected(c, err)
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

func logUnexpected(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("request_id")).
		Msg("request failed")
}

func httpStatus(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrInvalidArgument, apperrors.ErrInvalidRange:
		return http.StatusBadRequest
	case apperrors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
