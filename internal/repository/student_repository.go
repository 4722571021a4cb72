package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/Wallabies/internal/model"
	"github.com/lshigami/Wallabies/internal/sanitize"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id string) (*model.Student, error)
	FindAll() ([]model.Student, error)
	Update(student *model.Student) error
	Delete(id string) error
	AppendTestResults(studentID string, results []model.TestResult) error
	CreateMilestone(milestone *model.Milestone) error
	FindMilestone(id uint) (*model.Milestone, error)
	AchieveMilestone(id uint, achievedAt time.Time) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// sanitizeDocuments re-cleans the document-valued columns of the student's
// test results. The store rejects null values inside documents, so every
// write path funnels through here.
func sanitizeDocuments(results []model.TestResult) error {
	for i := range results {
		for _, col := range []*datatypes.JSON{&results[i].MistakePatterns, &results[i].TopicBreakdown} {
			if len(*col) == 0 {
				continue
			}
			cleaned, err := sanitize.Document(json.RawMessage(*col))
			if err != nil {
				return fmt.Errorf("sanitizing test result document: %w", err)
			}
			*col = cleaned
		}
	}
	return nil
}

func (r *studentRepository) Create(student *model.Student) error {
	if err := sanitizeDocuments(student.TestResults); err != nil {
		return err
	}
	// GORM creates the associated results, metrics, and history rows.
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id string) (*model.Student, error) {
	var student model.Student
	err := r.db.
		Preload("TestResults").
		Preload("BehavioralMetrics").
		Preload("ProgressMetrics.Milestones").
		Preload("LearningHistory").
		First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	err := r.db.
		Preload("TestResults").
		Preload("BehavioralMetrics").
		Preload("ProgressMetrics.Milestones").
		Order("created_at ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepository) Update(student *model.Student) error {
	if err := sanitizeDocuments(student.TestResults); err != nil {
		return err
	}
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(student).Error
}

func (r *studentRepository) Delete(id string) error {
	return r.db.Delete(&model.Student{}, "id = ?", id).Error
}

func (r *studentRepository) AppendTestResults(studentID string, results []model.TestResult) error {
	if err := sanitizeDocuments(results); err != nil {
		return err
	}
	for i := range results {
		results[i].StudentID = studentID
	}
	return r.db.Create(&results).Error
}

func (r *studentRepository) CreateMilestone(milestone *model.Milestone) error {
	return r.db.Create(milestone).Error
}

func (r *studentRepository) FindMilestone(id uint) (*model.Milestone, error) {
	var m model.Milestone
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *studentRepository) AchieveMilestone(id uint, achievedAt time.Time) error {
	return r.db.Model(&model.Milestone{}).
		Where("id = ?", id).
		Updates(map[string]any{"achieved_date": achievedAt, "is_achieved": true}).Error
}
