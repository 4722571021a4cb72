package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/Wallabies/internal/model"
	"github.com/lshigami/Wallabies/internal/sanitize"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// classAnalyticsRowID pins the cache to a single row; analytics are always
// re-derivable from the student collection, so one slot is enough.
const classAnalyticsRowID uint = 1

type AnalyticsRepository interface {
	// Load returns the cached analytics, or nil when none have been saved.
	Load() (*model.ClassAnalytics, error)
	Save(analytics *model.ClassAnalytics) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Load() (*model.ClassAnalytics, error) {
	var analytics model.ClassAnalytics
	err := r.db.First(&analytics, classAnalyticsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (r *analyticsRepository) Save(analytics *model.ClassAnalytics) error {
	analytics.ID = classAnalyticsRowID
	cols := []*datatypes.JSON{
		&analytics.MostChallengedSubjects,
		&analytics.MostEffectiveInterventions,
		&analytics.RecommendedTeachingApproaches,
	}
	for _, col := range cols {
		if len(*col) == 0 {
			continue
		}
		cleaned, err := sanitize.Document(json.RawMessage(*col))
		if err != nil {
			return fmt.Errorf("sanitizing analytics document: %w", err)
		}
		*col = cleaned
	}
	return r.db.Save(analytics).Error
}
