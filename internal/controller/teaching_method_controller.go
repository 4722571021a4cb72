package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/service"
	"github.com/rs/zerolog/log"
)

type TeachingMethodController struct {
	teachingMethodService service.TeachingMethodService
}

func NewTeachingMethodController(teachingMethodService service.TeachingMethodService) *TeachingMethodController {
	return &TeachingMethodController{teachingMethodService: teachingMethodService}
}

// GetMethods godoc
// @Summary Teaching methods for a subject and learning style
// @Description Looks up stored methods; falls back to general methods, then seeds samples when none exist.
// @Tags Teaching Methods
// @Produce json
// @Param subject query string true "Subject"
// @Param learning_style query string true "Learning style"
// @Success 200 {array} dto.TeachingMethodResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teaching-methods [get]
func (c *TeachingMethodController) GetMethods(ctx *gin.Context) {
	subject := ctx.Query("subject")
	style := ctx.Query("learning_style")
	if subject == "" || style == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "subject and learning_style query parameters are required"})
		return
	}

	methods, err := c.teachingMethodService.GetMethods(subject, style)
	if err != nil {
		log.Error().Err(err).Msg("GetMethods failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, methods)
}
