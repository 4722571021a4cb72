package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Learning styles recognized by the quiz and the recommendation prompts.
const (
	StyleVisual         = "Visual"
	StyleAuditory       = "Auditory"
	StyleReadingWriting = "Reading/Writing"
	StyleKinesthetic    = "Kinesthetic"
	StyleMultimodal     = "Multimodal"
)

// LearningStyles lists every valid style, in display order.
var LearningStyles = []string{
	StyleVisual,
	StyleAuditory,
	StyleReadingWriting,
	StyleKinesthetic,
	StyleMultimodal,
}

// Student is the aggregate root. The ID is opaque and assigned by the
// storage layer on create; callers never supply it.
type Student struct {
	ID                string                 `gorm:"primarykey;type:uuid" json:"id"`
	Name              string                 `json:"name" gorm:"not null"`
	Grade             *string                `json:"grade,omitempty"`
	Age               *int                   `json:"age,omitempty"`
	LearningStyle     *string                `json:"learning_style,omitempty"`
	TestResults       []TestResult           `json:"test_results,omitempty" gorm:"foreignKey:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BehavioralMetrics *BehavioralMetrics     `json:"behavioral_metrics,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE;"`
	ProgressMetrics   *ProgressMetrics       `json:"progress_metrics,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE;"`
	LearningHistory   []LearningHistoryEntry `json:"learning_history,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE;"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	DeletedAt         gorm.DeletedAt         `gorm:"index" json:"-"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
