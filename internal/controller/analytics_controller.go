package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/service"
	"github.com/rs/zerolog/log"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetClassAnalytics godoc
// @Summary Class-wide analytics
// @Description Returns the cached class aggregate, computing it on first access.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.ClassAnalyticsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics [get]
func (c *AnalyticsController) GetClassAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.GetClassAnalytics()
	if err != nil {
		log.Error().Err(err).Msg("GetClassAnalytics failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}

// RefreshClassAnalytics godoc
// @Summary Recompute class analytics
// @Description Recomputes the aggregate from all students and replaces the cache.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.ClassAnalyticsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/refresh [post]
func (c *AnalyticsController) RefreshClassAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.RefreshClassAnalytics()
	if err != nil {
		log.Error().Err(err).Msg("RefreshClassAnalytics failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}

// GetDashboard godoc
// @Summary Teacher dashboard
// @Description Class aggregate plus one row per student, highest risk first.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.DashboardDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.analyticsService.GetDashboard()
	if err != nil {
		log.Error().Err(err).Msg("GetDashboard failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

// RecordIntervention godoc
// @Summary Record an effective intervention
// @Tags Analytics
// @Accept json
// @Produce json
// @Param intervention body dto.InterventionDTO true "Intervention name"
// @Success 200 {object} dto.ClassAnalyticsDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analytics/interventions [post]
func (c *AnalyticsController) RecordIntervention(ctx *gin.Context) {
	var req dto.InterventionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	analytics, err := c.analyticsService.RecordIntervention(req.Name)
	if err != nil {
		log.Error().Err(err).Msg("RecordIntervention failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
