package analytics

import "github.com/lshigami/Wallabies/internal/model"

// RiskLevel is the coarse triage label ordering teacher attention.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Weight maps the level to a sortable value, high first.
func (r RiskLevel) Weight() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	default:
		return 1
	}
}

// ClassifyRisk assigns a risk tier to a student. The rules form a priority
// cascade, first match wins: improvement data trumps behavioral signals,
// which trump raw scores. The thresholds deliberately over-flag; missing an
// at-risk student costs more than a false positive.
func ClassifyRisk(student model.Student) RiskLevel {
	// No progress metrics means not enough data to clear the student.
	if student.ProgressMetrics == nil {
		return RiskMedium
	}

	if student.ProgressMetrics.ImprovementRate < 5 {
		return RiskHigh
	}

	if bm := student.BehavioralMetrics; bm != nil {
		if bm.MotivationLevel < 4 || bm.AnxietyLevel > 7 || bm.HomeworkCompletion < 40 {
			return RiskHigh
		}
	}

	lowScores := 0
	for _, t := range student.TestResults {
		if t.Percentage() < 60 {
			lowScores++
		}
	}
	if lowScores > 2 {
		return RiskHigh
	}
	if lowScores > 0 {
		return RiskMedium
	}

	return RiskLow
}
