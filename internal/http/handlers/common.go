package handlers

import (
	"net/http"
	"strconv"

	"backend/internal/domain"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// PathID parses the :id path param, responding 400 on garbage.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

// AuthedUser pulls the caller out of the context; aborts with 401 if absent.
func AuthedUser(c *gin.Context) (domain.RequestContext, bool) {
	ctx, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return domain.RequestContext{}, false
	}
	return ctx, true
}
