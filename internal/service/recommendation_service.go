package service

import (
	"context"

	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/repository"
	"github.com/rs/zerolog/log"
)

type RecommendationService interface {
	// GetRecommendations asks the AI for learning recommendations based on
	// the student's full test history.
	GetRecommendations(ctx context.Context, studentID string) (*dto.RecommendationsResponseDTO, error)
}

type recommendationService struct {
	studentRepo repository.StudentRepository
	llm         GeminiLLMService
}

func NewRecommendationService(studentRepo repository.StudentRepository, llm GeminiLLMService) RecommendationService {
	return &recommendationService{studentRepo: studentRepo, llm: llm}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, studentID string) (*dto.RecommendationsResponseDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}
	if len(student.TestResults) == 0 {
		return nil, &ValidationError{Msg: "student has no test results to analyze"}
	}

	recs, err := s.llm.GenerateRecommendations(ctx, student.Name, student.TestResults)
	if err != nil {
		return nil, err
	}
	log.Info().Str("student_id", studentID).Int("recommendations", len(recs)).Msg("Recommendations generated")

	return &dto.RecommendationsResponseDTO{
		StudentID:       student.ID,
		Recommendations: recs,
	}, nil
}
