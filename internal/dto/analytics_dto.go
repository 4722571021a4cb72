package dto

import "time"

type ClassAnalyticsDTO struct {
	TotalStudents                 int       `json:"total_students"`
	SlowLearnerPercentage         int       `json:"slow_learner_percentage"`
	AverageImprovement            float64   `json:"average_improvement"`
	MostChallengedSubjects        []string  `json:"most_challenged_subjects"`
	MostEffectiveInterventions    []string  `json:"most_effective_interventions"`
	RecommendedTeachingApproaches []string  `json:"recommended_teaching_approaches"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// DashboardRowDTO is one student line of the teacher dashboard, ordered by
// risk so attention lands on the most urgent students first.
type DashboardRowDTO struct {
	StudentID       string   `json:"student_id"`
	Name            string   `json:"name"`
	RiskLevel       string   `json:"risk_level"`
	ImprovementRate *float64 `json:"improvement_rate,omitempty"`
	LowScoreCount   int      `json:"low_score_count"`
	Subjects        []string `json:"subjects"`
}

type DashboardDTO struct {
	Analytics ClassAnalyticsDTO `json:"analytics"`
	Students  []DashboardRowDTO `json:"students"`
}
