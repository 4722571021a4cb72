package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeachingMethod is a stored teaching strategy for a subject and learning
// style. General methods apply across subjects and serve as the fallback
// when no subject-specific method exists.
type TeachingMethod struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Steps         datatypes.JSON `json:"steps"`     // []string
	Resources     datatypes.JSON `json:"resources"` // []string
	Benefits      datatypes.JSON `json:"benefits"`  // []string
	Effectiveness int            `json:"effectiveness"` // 1-10
	TimeRequired  int            `json:"time_required"` // minutes per session
	Subject       string         `json:"subject" gorm:"index:idx_method_subject_style"`
	LearningStyle string         `json:"learning_style" gorm:"index:idx_method_subject_style"`
	IsGeneral     bool           `json:"is_general"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
