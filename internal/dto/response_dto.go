package dto

import (
	"time"

	"github.com/lshigami/Wallabies/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type TestResultResponseDTO struct {
	ID              uint               `json:"id"`
	Subject         string             `json:"subject"`
	Score           int                `json:"score"`
	TotalPossible   int                `json:"total_possible"`
	Percentage      float64            `json:"percentage"`
	AttemptDate     *time.Time         `json:"attempt_date,omitempty"`
	TimeSpent       *int               `json:"time_spent,omitempty"`
	MistakePatterns []string           `json:"mistake_patterns,omitempty"`
	TopicBreakdown  map[string]float64 `json:"topic_breakdown,omitempty"`
}

type BehavioralMetricsResponseDTO struct {
	ClassParticipation   int     `json:"class_participation"`
	PeerCollaboration    int     `json:"peer_collaboration"`
	FrustrationTolerance int     `json:"frustration_tolerance"`
	MotivationLevel      int     `json:"motivation_level"`
	AnxietyLevel         int     `json:"anxiety_level"`
	HomeworkCompletion   int     `json:"homework_completion"`
	AttentionSpan        int     `json:"attention_span"`
	Notes                *string `json:"notes,omitempty"`
}

type MilestoneResponseDTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TargetDate   time.Time  `json:"target_date"`
	AchievedDate *time.Time `json:"achieved_date,omitempty"`
	IsAchieved   bool       `json:"is_achieved"`
	IsOverdue    bool       `json:"is_overdue"`
}

type ProgressMetricsResponseDTO struct {
	StartDate        time.Time              `json:"start_date"`
	CurrentDate      time.Time              `json:"current_date"`
	InitialScore     float64                `json:"initial_score"`
	CurrentScore     float64                `json:"current_score"`
	ImprovementRate  float64                `json:"improvement_rate"`
	ConsistencyScore int                    `json:"consistency_score"`
	Milestones       []MilestoneResponseDTO `json:"milestones,omitempty"`
}

type StudentResponseDTO struct {
	ID                string                        `json:"id"`
	Name              string                        `json:"name"`
	Grade             *string                       `json:"grade,omitempty"`
	Age               *int                          `json:"age,omitempty"`
	LearningStyle     *string                       `json:"learning_style,omitempty"`
	TestResults       []TestResultResponseDTO       `json:"test_results,omitempty"`
	BehavioralMetrics *BehavioralMetricsResponseDTO `json:"behavioral_metrics,omitempty"`
	ProgressMetrics   *ProgressMetricsResponseDTO   `json:"progress_metrics,omitempty"`
	CreatedAt         time.Time                     `json:"created_at"`
}

type StudentSummaryDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Grade         *string   `json:"grade,omitempty"`
	LearningStyle *string   `json:"learning_style,omitempty"`
	TestCount     int       `json:"test_count"`
	RiskLevel     string    `json:"risk_level"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProgressReportDTO is the per-student progress view: per-subject
// improvement plus milestone status with the derived overdue flag.
type ProgressReportDTO struct {
	StudentID           string                 `json:"student_id"`
	Name                string                 `json:"name"`
	SubjectImprovements map[string]float64     `json:"subject_improvements"`
	ImprovementRate     *float64               `json:"improvement_rate,omitempty"`
	ConsistencyScore    *int                   `json:"consistency_score,omitempty"`
	Milestones          []MilestoneResponseDTO `json:"milestones,omitempty"`
}

type RecommendationsResponseDTO struct {
	StudentID       string                         `json:"student_id"`
	Recommendations []model.LearningRecommendation `json:"recommendations"`
}

type TeachingMethodResponseDTO struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Steps         []string `json:"steps"`
	Resources     []string `json:"resources"`
	Benefits      []string `json:"benefits"`
	Effectiveness int      `json:"effectiveness"`
	TimeRequired  int      `json:"time_required"`
	Subject       string   `json:"subject"`
	LearningStyle string   `json:"learning_style"`
	IsGeneral     bool     `json:"is_general"`
}

// QuizResultDTO is the evaluated learning-style quiz outcome.
type QuizResultDTO struct {
	DominantStyle string         `json:"dominant_style"`
	Counts        map[string]int `json:"counts"`
}
