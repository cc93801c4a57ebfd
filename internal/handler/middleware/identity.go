package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerUserIDHeader carries the caller's user id. The gateway in front of
// this service authenticates; this process trusts the header value.
const SharerUserIDHeader = "X-Sharer-User-Id"

const userIDKey = "user_id"

var errMissingIdentity = errs.New("missing or invalid sharer user id header")

// RequireIdentity rejects requests without a well-formed X-Sharer-User-Id
// header before they reach any use case.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerUserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header is required", nil)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header must be a UUID", nil)
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
