package repository

import (
	"complipilot_backend/internal/model"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) Create(org *model.Organization) error {
	return r.DB.Create(org).Error
}

// CreateWithOwner inserts the organization and its owner atomically. A failed
// owner insert, such as a concurrent registration winning the unique email
// index, must not leave an ownerless organization behind.
func (r *OrganizationRepository) CreateWithOwner(org *model.Organization, owner *model.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		owner.OrgID = org.ID
		return tx.Create(owner).Error
	})
}

func (r *OrganizationRepository) FindByID(id uint) (*model.Organization, error) {
	var org model.Organization
	err := r.DB.First(&org, id).Error
	return &org, err
}

func (r *OrganizationRepository) Update(org *model.Organization) error {
	return r.DB.Save(org).Error
}

func (r *OrganizationRepository) UpdateOnboardingStep(orgID uint, step model.OnboardingStep) error {
	return r.DB.Model(&model.Organization{}).
		Where("id = ?", orgID).
		Update("onboarding_step", step).
		Error
}

func (r *OrganizationRepository) UpdateSubscriptionStatus(orgID uint, status model.SubscriptionStatus) error {
	return r.DB.Model(&model.Organization{}).
		Where("id = ?", orgID).
		Update("subscription_status", status).
		Error
}

func (r *OrganizationRepository) List(page, limit int) ([]model.Organization, int64, error) {
	var orgs []model.Organization
	var total int64
	query := r.DB.Model(&model.Organization{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&orgs).Error
	return orgs, total, err
}
