package analytics

import (
	"testing"

	"github.com/lshigami/Wallabies/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRiskMediumWithoutProgressMetrics(t *testing.T) {
	// Medium regardless of scores: no progress data means no clearance.
	student := studentWithResults("A",
		result("Math", 98, 100), result("Science", 95, 100),
	)

	assert.Equal(t, RiskMedium, ClassifyRisk(student))
}

func TestClassifyRiskLowImprovementTrumpsGoodScores(t *testing.T) {
	student := model.Student{
		Name:            "A",
		ProgressMetrics: &model.ProgressMetrics{ImprovementRate: 4.9},
		TestResults: []model.TestResult{
			result("Math", 95, 100), result("Science", 92, 100),
		},
	}

	assert.Equal(t, RiskHigh, ClassifyRisk(student))
}

func TestClassifyRiskBehavioralTriggers(t *testing.T) {
	base := func(bm model.BehavioralMetrics) model.Student {
		return model.Student{
			Name:              "A",
			ProgressMetrics:   &model.ProgressMetrics{ImprovementRate: 20},
			BehavioralMetrics: &bm,
		}
	}
	healthy := model.BehavioralMetrics{MotivationLevel: 7, AnxietyLevel: 3, HomeworkCompletion: 90}

	tests := []struct {
		name   string
		mutate func(*model.BehavioralMetrics)
		want   RiskLevel
	}{
		{"low motivation", func(bm *model.BehavioralMetrics) { bm.MotivationLevel = 3 }, RiskHigh},
		{"high anxiety", func(bm *model.BehavioralMetrics) { bm.AnxietyLevel = 8 }, RiskHigh},
		{"low homework completion", func(bm *model.BehavioralMetrics) { bm.HomeworkCompletion = 39 }, RiskHigh},
		{"all healthy", func(bm *model.BehavioralMetrics) {}, RiskLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bm := healthy
			tc.mutate(&bm)
			assert.Equal(t, tc.want, ClassifyRisk(base(bm)))
		})
	}
}

func TestClassifyRiskLowScoreCounts(t *testing.T) {
	withLowScores := func(n int) model.Student {
		s := model.Student{
			Name:            "A",
			ProgressMetrics: &model.ProgressMetrics{ImprovementRate: 15},
		}
		for i := 0; i < n; i++ {
			s.TestResults = append(s.TestResults, result("Math", 50, 100))
		}
		s.TestResults = append(s.TestResults, result("Science", 90, 100))
		return s
	}

	assert.Equal(t, RiskLow, ClassifyRisk(withLowScores(0)))
	assert.Equal(t, RiskMedium, ClassifyRisk(withLowScores(1)))
	assert.Equal(t, RiskMedium, ClassifyRisk(withLowScores(2)))
	assert.Equal(t, RiskHigh, ClassifyRisk(withLowScores(3)))
}

func TestRiskLevelWeightOrdersHighFirst(t *testing.T) {
	assert.Greater(t, RiskHigh.Weight(), RiskMedium.Weight())
	assert.Greater(t, RiskMedium.Weight(), RiskLow.Weight())
}
