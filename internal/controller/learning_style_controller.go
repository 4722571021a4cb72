package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/service"
	"github.com/rs/zerolog/log"
)

type LearningStyleController struct {
	learningStyleService service.LearningStyleService
}

func NewLearningStyleController(learningStyleService service.LearningStyleService) *LearningStyleController {
	return &LearningStyleController{learningStyleService: learningStyleService}
}

// GetQuiz godoc
// @Summary Learning style quiz
// @Description Returns an AI-generated quiz, or the built-in quiz when the AI is unavailable.
// @Tags Learning Style
// @Produce json
// @Success 200 {array} model.QuizQuestion
// @Failure 500 {object} dto.ErrorResponse
// @Router /learning-style-quiz [get]
func (c *LearningStyleController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.learningStyleService.GetQuiz(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("GetQuiz failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// EvaluateQuiz godoc
// @Summary Evaluate learning style quiz answers
// @Description Tallies answered styles; a tie resolves to Multimodal.
// @Tags Learning Style
// @Accept json
// @Produce json
// @Param answers body dto.QuizEvaluateDTO true "Chosen styles, one per question"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /learning-style-quiz/evaluate [post]
func (c *LearningStyleController) EvaluateQuiz(ctx *gin.Context) {
	var req dto.QuizEvaluateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, c.learningStyleService.EvaluateQuiz(req))
}
