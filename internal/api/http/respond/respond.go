// Package respond переводит ошибки юзкейса в HTTP-ответы.
package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"phiCalc/internal/domain"
)

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Status: неизвестный вид — 404, неверные параметры — 400, остальное — 500.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownKind):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error пишет ошибку с подходящим статусом; клиентские ошибки логируются как warn.
func Error(ctx *gin.Context, log *slog.Logger, msg string, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error(msg, "error", err)
	} else {
		log.Warn(msg, "error", err)
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
