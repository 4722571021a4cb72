package model

import (
	"time"

	"gorm.io/gorm"
)

// Milestone is a dated goal inside a student's progress metrics.
// IsAchieved holds iff AchievedDate is set; "overdue" is derived at read
// time and never stored.
type Milestone struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	ProgressMetricsID uint           `json:"progress_metrics_id" gorm:"not null;index"`
	Title             string         `json:"title" gorm:"not null"`
	Description       string         `json:"description" gorm:"type:text"`
	TargetDate        time.Time      `json:"target_date"`
	AchievedDate      *time.Time     `json:"achieved_date,omitempty"`
	IsAchieved        bool           `json:"is_achieved"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsOverdue reports whether the milestone passed its target date without
// being achieved, relative to now.
func (m Milestone) IsOverdue(now time.Time) bool {
	return m.TargetDate.Before(now) && !m.IsAchieved
}
