package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/lshigami/Wallabies/config"
	"github.com/lshigami/Wallabies/internal/analytics"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/lshigami/Wallabies/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type AnalyticsService interface {
	// GetClassAnalytics returns the cached aggregate, recomputing when no
	// cache exists yet.
	GetClassAnalytics() (*dto.ClassAnalyticsDTO, error)
	RefreshClassAnalytics() (*dto.ClassAnalyticsDTO, error)
	GetDashboard() (*dto.DashboardDTO, error)
	RecordIntervention(name string) (*dto.ClassAnalyticsDTO, error)
}

type analyticsService struct {
	studentRepo   repository.StudentRepository
	analyticsRepo repository.AnalyticsRepository
	policy        analytics.Policy
}

func NewAnalyticsService(studentRepo repository.StudentRepository, analyticsRepo repository.AnalyticsRepository, cfg *config.Config) AnalyticsService {
	policy := analytics.DefaultPolicy()
	if cfg.Analytics.LowScorePercent > 0 {
		policy.LowScorePercent = cfg.Analytics.LowScorePercent
	}
	if cfg.Analytics.MinLowScores > 0 {
		policy.MinLowScores = cfg.Analytics.MinLowScores
	}
	return &analyticsService{studentRepo: studentRepo, analyticsRepo: analyticsRepo, policy: policy}
}

func (s *analyticsService) GetClassAnalytics() (*dto.ClassAnalyticsDTO, error) {
	cached, err := s.analyticsRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load class analytics: %w", err)
	}
	if cached != nil {
		return toAnalyticsDTO(cached)
	}
	return s.RefreshClassAnalytics()
}

// RefreshClassAnalytics recomputes the aggregate from the full student
// collection and replaces the cached row. Stored interventions and teaching
// approaches survive the refresh.
func (s *analyticsService) RefreshClassAnalytics() (*dto.ClassAnalyticsDTO, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	overrides, err := s.loadOverrides()
	if err != nil {
		return nil, err
	}

	result := analytics.Aggregate(students, s.policy, overrides)
	row, err := toAnalyticsModel(result)
	if err != nil {
		return nil, err
	}
	if err := s.analyticsRepo.Save(row); err != nil {
		return nil, fmt.Errorf("failed to save class analytics: %w", err)
	}
	log.Info().
		Int("total_students", result.TotalStudents).
		Int("slow_learner_pct", result.SlowLearnerPercentage).
		Msg("Class analytics refreshed")
	return toAnalyticsDTO(row)
}

// GetDashboard returns the class aggregate plus one row per student,
// highest risk first.
func (s *analyticsService) GetDashboard() (*dto.DashboardDTO, error) {
	summary, err := s.GetClassAnalytics()
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	rows := make([]dto.DashboardRowDTO, 0, len(students))
	for _, st := range students {
		risk := analytics.ClassifyRisk(st)
		row := dto.DashboardRowDTO{
			StudentID: st.ID,
			Name:      st.Name,
			RiskLevel: string(risk),
			Subjects:  subjectsOf(st.TestResults),
		}
		for _, t := range st.TestResults {
			if t.Percentage() < s.policy.LowScorePercent {
				row.LowScoreCount++
			}
		}
		if st.ProgressMetrics != nil {
			rate := st.ProgressMetrics.ImprovementRate
			row.ImprovementRate = &rate
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return analytics.RiskLevel(rows[i].RiskLevel).Weight() > analytics.RiskLevel(rows[j].RiskLevel).Weight()
	})

	return &dto.DashboardDTO{Analytics: *summary, Students: rows}, nil
}

// RecordIntervention appends an intervention to the stored list so it
// survives future refreshes.
func (s *analyticsService) RecordIntervention(name string) (*dto.ClassAnalyticsDTO, error) {
	if _, err := s.GetClassAnalytics(); err != nil {
		return nil, err
	}
	cached, err := s.analyticsRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load class analytics: %w", err)
	}

	var interventions []string
	if len(cached.MostEffectiveInterventions) > 0 {
		if err := json.Unmarshal(cached.MostEffectiveInterventions, &interventions); err != nil {
			return nil, fmt.Errorf("failed to decode interventions: %w", err)
		}
	}
	for _, existing := range interventions {
		if existing == name {
			return toAnalyticsDTO(cached)
		}
	}
	interventions = append(interventions, name)

	raw, err := json.Marshal(interventions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode interventions: %w", err)
	}
	cached.MostEffectiveInterventions = datatypes.JSON(raw)
	cached.UpdatedAt = time.Now()
	if err := s.analyticsRepo.Save(cached); err != nil {
		return nil, fmt.Errorf("failed to save class analytics: %w", err)
	}
	log.Info().Str("intervention", name).Msg("Intervention recorded")
	return toAnalyticsDTO(cached)
}

func (s *analyticsService) loadOverrides() (analytics.Overrides, error) {
	var overrides analytics.Overrides
	cached, err := s.analyticsRepo.Load()
	if err != nil {
		return overrides, fmt.Errorf("failed to load class analytics: %w", err)
	}
	if cached == nil {
		return overrides, nil
	}
	if len(cached.MostEffectiveInterventions) > 0 {
		if err := json.Unmarshal(cached.MostEffectiveInterventions, &overrides.Interventions); err != nil {
			return overrides, fmt.Errorf("failed to decode interventions: %w", err)
		}
	}
	if len(cached.RecommendedTeachingApproaches) > 0 {
		if err := json.Unmarshal(cached.RecommendedTeachingApproaches, &overrides.TeachingApproaches); err != nil {
			return overrides, fmt.Errorf("failed to decode teaching approaches: %w", err)
		}
	}
	return overrides, nil
}

func subjectsOf(results []model.TestResult) []string {
	var subjects []string
	seen := make(map[string]bool)
	for _, t := range results {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			subjects = append(subjects, t.Subject)
		}
	}
	return subjects
}

func toAnalyticsModel(result analytics.Result) (*model.ClassAnalytics, error) {
	row := model.ClassAnalytics{
		TotalStudents:         result.TotalStudents,
		SlowLearnerPercentage: result.SlowLearnerPercentage,
		AverageImprovement:    result.AverageImprovement,
		UpdatedAt:             time.Now(),
	}
	for _, col := range []struct {
		dst *datatypes.JSON
		src []string
	}{
		{&row.MostChallengedSubjects, result.MostChallengedSubjects},
		{&row.MostEffectiveInterventions, result.MostEffectiveInterventions},
		{&row.RecommendedTeachingApproaches, result.RecommendedTeachingApproaches},
	} {
		raw, err := json.Marshal(col.src)
		if err != nil {
			return nil, fmt.Errorf("failed to encode analytics list: %w", err)
		}
		*col.dst = datatypes.JSON(raw)
	}
	return &row, nil
}

func toAnalyticsDTO(row *model.ClassAnalytics) (*dto.ClassAnalyticsDTO, error) {
	out := dto.ClassAnalyticsDTO{
		TotalStudents:         row.TotalStudents,
		SlowLearnerPercentage: row.SlowLearnerPercentage,
		AverageImprovement:    row.AverageImprovement,
		UpdatedAt:             row.UpdatedAt,
	}
	for _, col := range []struct {
		src datatypes.JSON
		dst *[]string
	}{
		{row.MostChallengedSubjects, &out.MostChallengedSubjects},
		{row.MostEffectiveInterventions, &out.MostEffectiveInterventions},
		{row.RecommendedTeachingApproaches, &out.RecommendedTeachingApproaches},
	} {
		if len(col.src) == 0 {
			*col.dst = []string{}
			continue
		}
		if err := json.Unmarshal(col.src, col.dst); err != nil {
			return nil, fmt.Errorf("failed to decode analytics list: %w", err)
		}
	}
	return &out, nil
}
