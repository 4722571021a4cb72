package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/service"
	"gorm.io/gorm"
)

// respondError maps service-layer errors onto HTTP statuses: validation
// failures to 400, missing records to 404, AI parse failures to 422, an
// unconfigured AI client to 503, everything else to 500.
func respondError(ctx *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Msg})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "resource not found"})
		return
	}
	var perr *service.ParseError
	if errors.As(err, &perr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: perr.Error()})
		return
	}
	if errors.Is(err, service.ErrGeminiUnconfigured) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "AI service is not configured"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}
