package service

import (
	"testing"

	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/stretchr/testify/assert"
)

func evaluate(answers ...string) dto.QuizResultDTO {
	svc := &learningStyleService{}
	return svc.EvaluateQuiz(dto.QuizEvaluateDTO{Answers: answers})
}

func TestEvaluateQuizClearMajority(t *testing.T) {
	result := evaluate(
		model.StyleVisual,
		model.StyleVisual,
		model.StyleVisual,
		model.StyleAuditory,
		model.StyleKinesthetic,
	)

	assert.Equal(t, model.StyleVisual, result.DominantStyle)
	assert.Equal(t, 3, result.Counts[model.StyleVisual])
	assert.Equal(t, 1, result.Counts[model.StyleAuditory])
	assert.Equal(t, 0, result.Counts[model.StyleReadingWriting])
}

func TestEvaluateQuizTieResolvesToMultimodal(t *testing.T) {
	result := evaluate(
		model.StyleVisual,
		model.StyleVisual,
		model.StyleAuditory,
		model.StyleAuditory,
		model.StyleKinesthetic,
	)

	assert.Equal(t, model.StyleMultimodal, result.DominantStyle)
}

func TestEvaluateQuizAllMultimodalAnswers(t *testing.T) {
	result := evaluate(model.StyleMultimodal, model.StyleMultimodal)

	assert.Equal(t, model.StyleMultimodal, result.DominantStyle)
	assert.Equal(t, 2, result.Counts[model.StyleMultimodal])
}

func TestEvaluateQuizMultimodalPluralityWins(t *testing.T) {
	result := evaluate(
		model.StyleMultimodal,
		model.StyleMultimodal,
		model.StyleMultimodal,
		model.StyleVisual,
		model.StyleVisual,
	)

	assert.Equal(t, model.StyleMultimodal, result.DominantStyle)
	assert.Equal(t, 3, result.Counts[model.StyleMultimodal])
	assert.Equal(t, 2, result.Counts[model.StyleVisual])
}

func TestEvaluateQuizSingleAnswer(t *testing.T) {
	result := evaluate(model.StyleKinesthetic)

	assert.Equal(t, model.StyleKinesthetic, result.DominantStyle)
}

func TestEvaluateQuizCountsCoverEveryStyle(t *testing.T) {
	result := evaluate(model.StyleVisual)

	for _, style := range model.LearningStyles {
		_, ok := result.Counts[style]
		assert.True(t, ok, "missing count for %s", style)
	}
}

func TestStaticQuizOptionsUseKnownStyles(t *testing.T) {
	valid := make(map[string]bool)
	for _, s := range model.LearningStyles {
		valid[s] = true
	}
	for _, q := range staticQuiz {
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Options)
		for _, opt := range q.Options {
			assert.True(t, valid[opt.Style], "question %d has unknown style %q", q.ID, opt.Style)
		}
	}
}
