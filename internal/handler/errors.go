package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nshtkum/perplexchecker/internal/service"
)

// respondError maps a service error to an HTTP response, surfacing the
// error kind so the UI can pick a recovery path (retry, fix key, wait)
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{
		"error":      svcErr.Message,
		"error_kind": string(svcErr.Kind),
	}
	if svcErr.Status != 0 {
		body["upstream_status"] = svcErr.Status
	}

	c.JSON(statusForKind(svcErr.Kind), body)
}

func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindInvalidArgument:
		return http.StatusBadRequest
	case service.KindAuthError:
		return http.StatusUnauthorized
	case service.KindRateLimited:
		return http.StatusTooManyRequests
	case service.KindNetworkTimeout:
		return http.StatusGatewayTimeout
	case service.KindNetworkError, service.KindRemoteError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
