package repository

import (
	"complipilot_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.RiskAssessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.RiskAssessment, error) {
	var a model.RiskAssessment
	err := r.DB.First(&a, id).Error
	return &a, err
}

// FindByOrg returns the organization's single live assessment, if any.
func (r *AssessmentRepository) FindByOrg(orgID uint) (*model.RiskAssessment, error) {
	var a model.RiskAssessment
	err := r.DB.Where("org_id = ?", orgID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) Update(a *model.RiskAssessment) error {
	return r.DB.Save(a).Error
}

func (r *AssessmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.RiskAssessment{}, id).Error
}
