package service

import (
	"encoding/json"
	"fmt"

	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/lshigami/Wallabies/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type TeachingMethodService interface {
	// GetMethods resolves methods for a subject and learning style, falling
	// back to general methods, then seeding samples when the store is empty.
	GetMethods(subject, learningStyle string) ([]dto.TeachingMethodResponseDTO, error)
}

type teachingMethodService struct {
	methodRepo repository.TeachingMethodRepository
}

func NewTeachingMethodService(methodRepo repository.TeachingMethodRepository) TeachingMethodService {
	return &teachingMethodService{methodRepo: methodRepo}
}

func (s *teachingMethodService) GetMethods(subject, learningStyle string) ([]dto.TeachingMethodResponseDTO, error) {
	methods, err := s.methodRepo.FindBySubjectAndStyle(subject, learningStyle)
	if err != nil {
		return nil, fmt.Errorf("failed to query teaching methods: %w", err)
	}

	if len(methods) == 0 {
		methods, err = s.methodRepo.FindGeneralByStyle(learningStyle)
		if err != nil {
			return nil, fmt.Errorf("failed to query general teaching methods: %w", err)
		}
	}

	if len(methods) == 0 {
		methods, err = s.seedMethods(subject, learningStyle)
		if err != nil {
			return nil, err
		}
	}

	return toTeachingMethodDTOs(methods)
}

// seedMethods generates sample methods for an unseen subject/style pair and
// persists them so later queries hit the store.
func (s *teachingMethodService) seedMethods(subject, learningStyle string) ([]model.TeachingMethod, error) {
	methods, err := sampleMethods(subject, learningStyle)
	if err != nil {
		return nil, err
	}
	if err := s.methodRepo.CreateBatch(methods); err != nil {
		return nil, fmt.Errorf("failed to seed teaching methods: %w", err)
	}
	log.Info().Str("subject", subject).Str("learning_style", learningStyle).Int("count", len(methods)).Msg("Seeded sample teaching methods")
	return methods, nil
}

func sampleMethods(subject, learningStyle string) ([]model.TeachingMethod, error) {
	specs := []struct {
		name        string
		description string
		steps       []string
		resources   []string
		benefits    []string
		effect      int
		timeReq     int
	}{
		{
			name:        fmt.Sprintf("Guided Practice for %s", subject),
			description: fmt.Sprintf("Structured practice sessions for %s tailored to %s learners, moving from worked examples to independent work.", subject, learningStyle),
			steps: []string{
				"Review a fully worked example together",
				"Solve a similar problem with teacher prompts",
				"Complete two problems independently",
				"Discuss mistakes and misconceptions",
			},
			resources: []string{"Worked example bank", "Practice worksheets"},
			benefits:  []string{"Builds confidence gradually", "Surfaces misconceptions early"},
			effect:    8,
			timeReq:   30,
		},
		{
			name:        fmt.Sprintf("Concept Mapping in %s", subject),
			description: fmt.Sprintf("Students build concept maps connecting %s topics, which suits %s learners by making structure explicit.", subject, learningStyle),
			steps: []string{
				"List the key concepts of the unit",
				"Draw connections between related concepts",
				"Label each connection with the relationship",
				"Present the map to a peer",
			},
			resources: []string{"Concept mapping software", "Poster paper and markers"},
			benefits:  []string{"Reveals gaps in understanding", "Strengthens retention through organization"},
			effect:    7,
			timeReq:   45,
		},
		{
			name:        "Spaced Review Sessions",
			description: fmt.Sprintf("Short, repeated review sessions spread over days rather than one long session, applicable across subjects for %s learners.", learningStyle),
			steps: []string{
				"Schedule three 15-minute reviews across a week",
				"Start each session recalling prior material from memory",
				"Check recall against notes and correct errors",
			},
			resources: []string{"Flashcard deck", "Review schedule template"},
			benefits:  []string{"Improves long-term retention", "Reduces cramming and anxiety"},
			effect:    9,
			timeReq:   15,
		},
	}

	methods := make([]model.TeachingMethod, 0, len(specs))
	for i, spec := range specs {
		m := model.TeachingMethod{
			Name:          spec.name,
			Description:   spec.description,
			Effectiveness: spec.effect,
			TimeRequired:  spec.timeReq,
			Subject:       subject,
			LearningStyle: learningStyle,
			// The spaced review method is subject-agnostic.
			IsGeneral: i == len(specs)-1,
		}
		for _, col := range []struct {
			dst *datatypes.JSON
			src []string
		}{
			{&m.Steps, spec.steps},
			{&m.Resources, spec.resources},
			{&m.Benefits, spec.benefits},
		} {
			raw, err := json.Marshal(col.src)
			if err != nil {
				return nil, fmt.Errorf("failed to encode teaching method list: %w", err)
			}
			*col.dst = datatypes.JSON(raw)
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func toTeachingMethodDTOs(methods []model.TeachingMethod) ([]dto.TeachingMethodResponseDTO, error) {
	out := make([]dto.TeachingMethodResponseDTO, 0, len(methods))
	for _, m := range methods {
		d := dto.TeachingMethodResponseDTO{
			ID:            m.ID,
			Name:          m.Name,
			Description:   m.Description,
			Effectiveness: m.Effectiveness,
			TimeRequired:  m.TimeRequired,
			Subject:       m.Subject,
			LearningStyle: m.LearningStyle,
			IsGeneral:     m.IsGeneral,
		}
		for _, col := range []struct {
			src datatypes.JSON
			dst *[]string
		}{
			{m.Steps, &d.Steps},
			{m.Resources, &d.Resources},
			{m.Benefits, &d.Benefits},
		} {
			if len(col.src) == 0 {
				*col.dst = []string{}
				continue
			}
			if err := json.Unmarshal(col.src, col.dst); err != nil {
				return nil, fmt.Errorf("failed to decode teaching method list: %w", err)
			}
		}
		out = append(out, d)
	}
	return out, nil
}
