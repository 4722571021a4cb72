package model

import (
	"time"

	"gorm.io/datatypes"
)

// ClassAnalytics is the derived class-wide aggregate. The stored row is a
// cache of the aggregator's output and is re-derivable from the student
// collection at any time; it is never a source of truth.
type ClassAnalytics struct {
	ID                            uint           `gorm:"primarykey" json:"-"`
	TotalStudents                 int            `json:"total_students"`
	SlowLearnerPercentage         int            `json:"slow_learner_percentage"`
	AverageImprovement            float64        `json:"average_improvement"`
	MostChallengedSubjects        datatypes.JSON `json:"most_challenged_subjects"`        // []string, worst first
	MostEffectiveInterventions    datatypes.JSON `json:"most_effective_interventions"`    // []string
	RecommendedTeachingApproaches datatypes.JSON `json:"recommended_teaching_approaches"` // []string
	UpdatedAt                     time.Time      `json:"updated_at"`
}
