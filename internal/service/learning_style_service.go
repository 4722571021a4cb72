package service

import (
	"context"
	"errors"

	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/rs/zerolog/log"
)

// staticQuiz is the built-in learning-style quiz, served when the AI is
// unavailable so the endpoint never depends on an API key.
var staticQuiz = []model.QuizQuestion{
	{
		ID:       1,
		Question: "When learning something new, you prefer to:",
		Options: []model.QuizOption{
			{Text: "See diagrams, charts, or demonstrations", Style: model.StyleVisual},
			{Text: "Listen to an explanation", Style: model.StyleAuditory},
			{Text: "Read written instructions", Style: model.StyleReadingWriting},
			{Text: "Try it out yourself", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:       2,
		Question: "When trying to remember something, you most easily recall:",
		Options: []model.QuizOption{
			{Text: "Images and pictures of what you saw", Style: model.StyleVisual},
			{Text: "Conversations and sounds you heard", Style: model.StyleAuditory},
			{Text: "Notes and lists you wrote down", Style: model.StyleReadingWriting},
			{Text: "Things you did and practiced", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:       3,
		Question: "When solving a difficult problem, you tend to:",
		Options: []model.QuizOption{
			{Text: "Sketch it out or visualize it", Style: model.StyleVisual},
			{Text: "Talk it through out loud", Style: model.StyleAuditory},
			{Text: "Write down the steps", Style: model.StyleReadingWriting},
			{Text: "Use physical objects or move around", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:       4,
		Question: "In class, you learn best when the teacher:",
		Options: []model.QuizOption{
			{Text: "Uses slides, videos, and the whiteboard", Style: model.StyleVisual},
			{Text: "Lectures and leads discussions", Style: model.StyleAuditory},
			{Text: "Hands out readings and worksheets", Style: model.StyleReadingWriting},
			{Text: "Runs experiments and hands-on activities", Style: model.StyleKinesthetic},
		},
	},
	{
		ID:       5,
		Question: "When giving someone directions, you would rather:",
		Options: []model.QuizOption{
			{Text: "Draw them a map", Style: model.StyleVisual},
			{Text: "Tell them the route", Style: model.StyleAuditory},
			{Text: "Write the directions down", Style: model.StyleReadingWriting},
			{Text: "Walk with them part of the way", Style: model.StyleKinesthetic},
		},
	},
}

type LearningStyleService interface {
	// GetQuiz returns an AI-generated quiz, falling back to the built-in
	// bank when the AI is unconfigured or returns an unusable response.
	GetQuiz(ctx context.Context) ([]model.QuizQuestion, error)
	EvaluateQuiz(req dto.QuizEvaluateDTO) dto.QuizResultDTO
}

type learningStyleService struct {
	llm GeminiLLMService
}

func NewLearningStyleService(llm GeminiLLMService) LearningStyleService {
	return &learningStyleService{llm: llm}
}

func (s *learningStyleService) GetQuiz(ctx context.Context) ([]model.QuizQuestion, error) {
	questions, err := s.llm.GenerateLearningStyleQuiz(ctx)
	if err != nil {
		var perr *ParseError
		if errors.Is(err, ErrGeminiUnconfigured) || errors.As(err, &perr) {
			log.Warn().Err(err).Msg("Falling back to built-in learning style quiz")
			return staticQuiz, nil
		}
		return nil, err
	}
	if len(questions) == 0 {
		log.Warn().Msg("AI returned an empty quiz; falling back to built-in bank")
		return staticQuiz, nil
	}
	return questions, nil
}

// EvaluateQuiz tallies the chosen styles and returns the dominant one.
// Multimodal answers count like any other style; a tie at the top resolves
// to Multimodal.
func (s *learningStyleService) EvaluateQuiz(req dto.QuizEvaluateDTO) dto.QuizResultDTO {
	counts := make(map[string]int, len(model.LearningStyles))
	for _, style := range model.LearningStyles {
		counts[style] = 0
	}
	for _, answer := range req.Answers {
		counts[answer]++
	}

	dominant := model.StyleMultimodal
	best := 0
	tied := false
	for _, style := range model.LearningStyles {
		switch {
		case counts[style] > best:
			best = counts[style]
			dominant = style
			tied = false
		case counts[style] == best && best > 0:
			tied = true
		}
	}
	if tied {
		dominant = model.StyleMultimodal
	}

	return dto.QuizResultDTO{DominantStyle: dominant, Counts: counts}
}
