package dto

import "time"

// TestResultDTO is one graded attempt inside an assessment submission.
// score <= total_possible is checked in the service; binding tags cannot
// compare fields.
type TestResultDTO struct {
	Subject         string             `json:"subject" binding:"required"`
	Score           int                `json:"score" binding:"min=0"`
	TotalPossible   int                `json:"total_possible" binding:"required,gt=0"`
	AttemptDate     *time.Time         `json:"attempt_date,omitempty"`
	TimeSpent       *int               `json:"time_spent,omitempty" binding:"omitempty,min=0"`
	MistakePatterns []string           `json:"mistake_patterns,omitempty"`
	TopicBreakdown  map[string]float64 `json:"topic_breakdown,omitempty"`
}

// BehavioralMetricsDTO carries one observation snapshot. Ranges mirror the
// declared scales; out-of-range submissions are rejected at this boundary
// so the pure analytics never see them.
type BehavioralMetricsDTO struct {
	ClassParticipation   int     `json:"class_participation" binding:"required,min=1,max=10"`
	PeerCollaboration    int     `json:"peer_collaboration" binding:"required,min=1,max=10"`
	FrustrationTolerance int     `json:"frustration_tolerance" binding:"required,min=1,max=10"`
	MotivationLevel      int     `json:"motivation_level" binding:"required,min=1,max=10"`
	AnxietyLevel         int     `json:"anxiety_level" binding:"required,min=1,max=10"`
	HomeworkCompletion   int     `json:"homework_completion" binding:"min=0,max=100"`
	AttentionSpan        int     `json:"attention_span" binding:"required,gt=0"`
	Notes                *string `json:"notes,omitempty"`
}

// ProgressMetricsDTO seeds or replaces the longitudinal summary.
type ProgressMetricsDTO struct {
	StartDate        time.Time `json:"start_date" binding:"required"`
	CurrentDate      time.Time `json:"current_date" binding:"required"`
	InitialScore     float64   `json:"initial_score"`
	CurrentScore     float64   `json:"current_score"`
	ImprovementRate  float64   `json:"improvement_rate"`
	ConsistencyScore int       `json:"consistency_score" binding:"omitempty,min=1,max=10"`
}

// AssessmentSubmitDTO creates a student, or appends to an existing one when
// StudentID is set.
type AssessmentSubmitDTO struct {
	StudentID         *string               `json:"student_id,omitempty"`
	Name              string                `json:"name" binding:"required"`
	Grade             *string               `json:"grade,omitempty"`
	Age               *int                  `json:"age,omitempty" binding:"omitempty,gt=0"`
	LearningStyle     *string               `json:"learning_style,omitempty" binding:"omitempty,oneof=Visual Auditory Reading/Writing Kinesthetic Multimodal"`
	TestResults       []TestResultDTO       `json:"test_results" binding:"required,min=1,dive"`
	BehavioralMetrics *BehavioralMetricsDTO `json:"behavioral_metrics,omitempty"`
	ProgressMetrics   *ProgressMetricsDTO   `json:"progress_metrics,omitempty"`
}

// StudentUpdateDTO is a partial update of the student's own fields.
type StudentUpdateDTO struct {
	Name          *string `json:"name,omitempty"`
	Grade         *string `json:"grade,omitempty"`
	Age           *int    `json:"age,omitempty" binding:"omitempty,gt=0"`
	LearningStyle *string `json:"learning_style,omitempty" binding:"omitempty,oneof=Visual Auditory Reading/Writing Kinesthetic Multimodal"`
}

type TestResultsAppendDTO struct {
	TestResults []TestResultDTO `json:"test_results" binding:"required,min=1,dive"`
}

type MilestoneCreateDTO struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date" binding:"required"`
}

type LearningStyleUpdateDTO struct {
	LearningStyle string `json:"learning_style" binding:"required,oneof=Visual Auditory Reading/Writing Kinesthetic Multimodal"`
}

type QuizEvaluateDTO struct {
	// Answers are the chosen learning styles, one per quiz question.
	Answers []string `json:"answers" binding:"required,min=1,dive,oneof=Visual Auditory Reading/Writing Kinesthetic Multimodal"`
}

type InterventionDTO struct {
	Name string `json:"name" binding:"required"`
}
