package model

import (
	"time"

	"gorm.io/gorm"
)

// ProgressMetrics is the per-student longitudinal summary. ImprovementRate
// is a signed percentage; its absence (nil ProgressMetrics on the student)
// means "insufficient data" to the risk classifier.
type ProgressMetrics struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	StudentID        string         `json:"student_id" gorm:"type:uuid;not null;uniqueIndex"`
	StartDate        time.Time      `json:"start_date"`
	CurrentDate      time.Time      `json:"current_date"`
	InitialScore     float64        `json:"initial_score"`
	CurrentScore     float64        `json:"current_score"`
	ImprovementRate  float64        `json:"improvement_rate"`
	ConsistencyScore int            `json:"consistency_score"`
	Milestones       []Milestone    `json:"milestones,omitempty" gorm:"foreignKey:ProgressMetricsID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
