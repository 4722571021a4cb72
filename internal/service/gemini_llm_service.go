package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Wallabies/config"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrGeminiUnconfigured is returned when no API key was provided. Callers
// with a local fallback (the quiz bank) may recover from it.
var ErrGeminiUnconfigured = errors.New("gemini client not initialized")

type GeminiLLMService interface {
	GenerateRecommendations(ctx context.Context, studentName string, results []model.TestResult) ([]model.LearningRecommendation, error)
	GenerateLearningStyleQuiz(ctx context.Context) ([]model.QuizQuestion, error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (GeminiLLMService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	gm := client.GenerativeModel(cfg.Gemini.Model)
	return &geminiLLMService{client: gm, cfg: cfg}, nil
}

// GenerateRecommendations asks the model for per-subject learning
// recommendations and parses the embedded JSON payload. Network and quota
// errors are returned verbatim; parse failures come back as *ParseError.
func (s *geminiLLMService) GenerateRecommendations(ctx context.Context, studentName string, results []model.TestResult) ([]model.LearningRecommendation, error) {
	if s.client == nil {
		return nil, ErrGeminiUnconfigured
	}

	raw, err := s.generateText(ctx, buildRecommendationPrompt(studentName, results))
	if err != nil {
		log.Error().Err(err).Str("student", studentName).Msg("Gemini API error during recommendation generation")
		return nil, err
	}

	recs, err := ExtractRecommendations(raw)
	if err != nil {
		log.Warn().Err(err).Str("student", studentName).Msg("Failed to parse recommendations from Gemini response")
		return nil, err
	}
	return recs, nil
}

// GenerateLearningStyleQuiz asks the model for a short learning-style quiz.
func (s *geminiLLMService) GenerateLearningStyleQuiz(ctx context.Context) ([]model.QuizQuestion, error) {
	if s.client == nil {
		return nil, ErrGeminiUnconfigured
	}

	raw, err := s.generateText(ctx, buildQuizPrompt())
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during quiz generation")
		return nil, err
	}

	questions, err := ExtractQuizQuestions(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to parse quiz questions from Gemini response")
		return nil, err
	}
	return questions, nil
}

func (s *geminiLLMService) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

func buildRecommendationPrompt(studentName string, results []model.TestResult) string {
	var b strings.Builder
	b.WriteString("As an educational AI assistant, analyze the following test results for student ")
	b.WriteString(studentName)
	b.WriteString(":\n\n")

	for _, r := range results {
		fmt.Fprintf(&b, "Subject: %s\nScore: %d/%d\nPercentage: %d%%\n\n",
			r.Subject, r.Score, r.TotalPossible, int(math.Round(r.Percentage())))
	}

	b.WriteString(`For each subject where the student scored below 70%, provide:
1. The most suitable learning style (Visual, Auditory, Reading/Writing, Kinesthetic, or Multimodal)
2. Three specific learning techniques tailored to their performance
3. Two recommended resources or tools
4. Areas of strength within the subject
5. Areas that need improvement
6. Remedial approaches and the fundamental concepts that need reinforcement

Format your response as JSON with the following structure for each subject:
{
  "recommendations": [
    {
      "subject": "subject name",
      "learningStyle": "recommended learning style",
      "techniques": ["technique1", "technique2", "technique3"],
      "resources": ["resource1", "resource2"],
      "strengths": ["strength1", "strength2"],
      "weaknesses": ["weakness1", "weakness2"],
      "remedialApproaches": ["approach1"],
      "conceptualGaps": ["gap1"],
      "estimatedTimeToImprove": 4
    }
  ]
}

Only include subjects where improvement is needed (below 70%). Ensure the response is valid JSON.`)
	return b.String()
}

func buildQuizPrompt() string {
	return `Create a learning style assessment quiz with 5 multiple-choice questions.
Each question describes a learning situation; each option maps to exactly one
learning style out of: Visual, Auditory, Reading/Writing, Kinesthetic, Multimodal.

Format your response as JSON:
{
  "questions": [
    {
      "id": 1,
      "question": "question text",
      "options": [
        {"text": "option text", "style": "Visual"}
      ]
    }
  ]
}

Give every question four options with distinct styles. Ensure the response is valid JSON.`
}
