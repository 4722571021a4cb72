package model

import (
	"time"

	"gorm.io/gorm"
)

// Completion statuses of a learning activity.
const (
	CompletionCompleted = "Completed"
	CompletionPartial   = "Partial"
	CompletionAbandoned = "Abandoned"
)

// LearningHistoryEntry is one logged learning activity for a student.
type LearningHistoryEntry struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	StudentID        string         `json:"student_id" gorm:"type:uuid;not null;index"`
	Date             time.Time      `json:"date"`
	Activity         string         `json:"activity" gorm:"not null"`
	Duration         int            `json:"duration"`         // minutes
	EngagementLevel  int            `json:"engagement_level"` // 1-10
	CompletionStatus string         `json:"completion_status"`
	Notes            *string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
