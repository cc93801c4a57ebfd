package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortDomainError maps use case sentinels onto the API error taxonomy:
// absent referenced entities are 404, malformed input 400, business-rule
// violations 409, authorization failures 403.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, commands.ErrRequestNotFound),
		errors.Is(err, queries.ErrUserNotFound),
		errors.Is(err, queries.ErrItemNotFound),
		errors.Is(err, queries.ErrBookingNotFound),
		errors.Is(err, queries.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	case errors.Is(err, commands.ErrInvalidUser),
		errors.Is(err, commands.ErrInvalidItem),
		errors.Is(err, commands.ErrInvalidItemRequest),
		errors.Is(err, commands.ErrInvalidBookingPeriod),
		errors.Is(err, commands.ErrInvalidComment),
		errors.Is(err, booking.ErrUnknownStateFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)

	case errors.Is(err, commands.ErrDuplicateEmail),
		errors.Is(err, commands.ErrItemUnavailable),
		errors.Is(err, commands.ErrBookingConflict),
		errors.Is(err, commands.ErrBookingDecided):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflict", nil)

	case errors.Is(err, commands.ErrItemEditNotOwner),
		errors.Is(err, commands.ErrApprovalNotOwner),
		errors.Is(err, commands.ErrCommentNotEligible),
		errors.Is(err, queries.ErrBookingAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
