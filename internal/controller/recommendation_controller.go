package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/service"
	"github.com/rs/zerolog/log"
)

type RecommendationController struct {
	recommendationService service.RecommendationService
}

func NewRecommendationController(recommendationService service.RecommendationService) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// GetRecommendations godoc
// @Summary AI learning recommendations for a student
// @Description Sends the student's test history to the AI and returns parsed per-subject recommendations.
// @Tags Recommendations
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.RecommendationsResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Student has no test results"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "AI response could not be parsed"
// @Failure 503 {object} dto.ErrorResponse "AI service is not configured"
// @Router /students/{id}/recommendations [post]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	recs, err := c.recommendationService.GetRecommendations(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		log.Warn().Err(err).Str("student_id", ctx.Param("id")).Msg("GetRecommendations failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, recs)
}
