package handler

import (
	"errors"
	"net/http"

	"github.com/DishankChauhan/ChainImpact/internal/model"
	"github.com/gin-gonic/gin"
)

// SuccessResponse writes the common success envelope.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the common error envelope.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// FailWith maps a lifecycle error onto an HTTP status and writes the
// error envelope. Errors are surfaced verbatim; nothing is retried or
// swallowed here.
func FailWith(c *gin.Context, err error) {
	ErrorResponse(c, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrCampaignNotFound),
		errors.Is(err, model.ErrInvalidMilestoneIndex),
		errors.Is(err, model.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrMilestoneNotCompleted),
		errors.Is(err, model.ErrMilestoneAlreadyReleased),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrAccountExists),
		errors.Is(err, model.ErrMilestoneLimitReached):
		return http.StatusConflict
	case errors.Is(err, model.ErrAmountOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
