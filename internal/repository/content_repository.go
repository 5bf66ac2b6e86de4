package repository

import (
	"complipilot_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) ListPublishedTestimonials() ([]model.Testimonial, error) {
	var ts []model.Testimonial
	err := r.DB.Where("published = ?", true).Order("`order` asc").Find(&ts).Error
	return ts, err
}

func (r *ContentRepository) ListAllTestimonials() ([]model.Testimonial, error) {
	var ts []model.Testimonial
	err := r.DB.Order("`order` asc").Find(&ts).Error
	return ts, err
}

func (r *ContentRepository) CreateTestimonial(t *model.Testimonial) error {
	return r.DB.Create(t).Error
}

func (r *ContentRepository) UpdateTestimonial(t *model.Testimonial) error {
	return r.DB.Save(t).Error
}

func (r *ContentRepository) FindTestimonialByID(id uint) (*model.Testimonial, error) {
	var t model.Testimonial
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *ContentRepository) DeleteTestimonial(id uint) error {
	return r.DB.Delete(&model.Testimonial{}, id).Error
}

func (r *ContentRepository) ListActivePlans() ([]model.PricingPlan, error) {
	var plans []model.PricingPlan
	err := r.DB.Where("active = ?", true).Order("`order` asc").Find(&plans).Error
	return plans, err
}

func (r *ContentRepository) ListAllPlans() ([]model.PricingPlan, error) {
	var plans []model.PricingPlan
	err := r.DB.Order("`order` asc").Find(&plans).Error
	return plans, err
}

func (r *ContentRepository) FindPlanByID(id uint) (*model.PricingPlan, error) {
	var plan model.PricingPlan
	err := r.DB.First(&plan, id).Error
	return &plan, err
}

func (r *ContentRepository) CreatePlan(p *model.PricingPlan) error {
	return r.DB.Create(p).Error
}

func (r *ContentRepository) UpdatePlan(p *model.PricingPlan) error {
	return r.DB.Save(p).Error
}
