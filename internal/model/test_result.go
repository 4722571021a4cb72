package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestResult is one graded attempt. Insertion order is not guaranteed
// chronological; readers sort by AttemptDate before computing improvement.
// score <= totalPossible is checked at the submission boundary, not here.
type TestResult struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	StudentID       string         `json:"student_id" gorm:"type:uuid;not null;index"`
	Subject         string         `json:"subject" gorm:"not null"`
	Score           int            `json:"score" gorm:"not null"`
	TotalPossible   int            `json:"total_possible" gorm:"not null"`
	AttemptDate     *time.Time     `json:"attempt_date,omitempty"`
	TimeSpent       *int           `json:"time_spent,omitempty"` // minutes
	MistakePatterns datatypes.JSON `json:"mistake_patterns,omitempty"` // []string
	TopicBreakdown  datatypes.JSON `json:"topic_breakdown,omitempty"`  // map[topic]sub-score
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Percentage returns the score as a percentage of the total. Zero totals
// yield 0 rather than dividing by zero.
func (t TestResult) Percentage() float64 {
	if t.TotalPossible <= 0 {
		return 0
	}
	return float64(t.Score) / float64(t.TotalPossible) * 100
}
