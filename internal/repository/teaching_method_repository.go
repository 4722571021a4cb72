package repository

import (
	"github.com/lshigami/Wallabies/internal/model"
	"gorm.io/gorm"
)

type TeachingMethodRepository interface {
	FindBySubjectAndStyle(subject, learningStyle string) ([]model.TeachingMethod, error)
	FindGeneralByStyle(learningStyle string) ([]model.TeachingMethod, error)
	CreateBatch(methods []model.TeachingMethod) error
}

type teachingMethodRepository struct {
	db *gorm.DB
}

func NewTeachingMethodRepository(db *gorm.DB) TeachingMethodRepository {
	return &teachingMethodRepository{db: db}
}

func (r *teachingMethodRepository) FindBySubjectAndStyle(subject, learningStyle string) ([]model.TeachingMethod, error) {
	var methods []model.TeachingMethod
	err := r.db.
		Where("subject = ? AND learning_style = ?", subject, learningStyle).
		Order("effectiveness DESC").
		Find(&methods).Error
	return methods, err
}

func (r *teachingMethodRepository) FindGeneralByStyle(learningStyle string) ([]model.TeachingMethod, error) {
	var methods []model.TeachingMethod
	err := r.db.
		Where("learning_style = ? AND is_general = ?", learningStyle, true).
		Order("effectiveness DESC").
		Find(&methods).Error
	return methods, err
}

func (r *teachingMethodRepository) CreateBatch(methods []model.TeachingMethod) error {
	return r.db.Create(&methods).Error
}
