package model

import (
	"time"

	"gorm.io/gorm"
)

// BehavioralMetrics is a one-per-student snapshot of classroom observations.
// Scale fields are 1-10, HomeworkCompletion is a percentage, AttentionSpan
// is minutes. Ranges are enforced when the snapshot is submitted.
type BehavioralMetrics struct {
	ID                   uint           `gorm:"primarykey" json:"id"`
	StudentID            string         `json:"student_id" gorm:"type:uuid;not null;uniqueIndex"`
	ClassParticipation   int            `json:"class_participation"`
	PeerCollaboration    int            `json:"peer_collaboration"`
	FrustrationTolerance int            `json:"frustration_tolerance"`
	MotivationLevel      int            `json:"motivation_level"`
	AnxietyLevel         int            `json:"anxiety_level"`
	HomeworkCompletion   int            `json:"homework_completion"`
	AttentionSpan        int            `json:"attention_span"`
	Notes                *string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}
