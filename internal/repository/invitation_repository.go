package repository

import (
	"complipilot_backend/internal/model"

	"gorm.io/gorm"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

func (r *InvitationRepository) Create(inv *model.StaffInvitation) error {
	return r.DB.Create(inv).Error
}

func (r *InvitationRepository) FindByID(id uint) (*model.StaffInvitation, error) {
	var inv model.StaffInvitation
	err := r.DB.First(&inv, id).Error
	return &inv, err
}

func (r *InvitationRepository) FindByToken(token string) (*model.StaffInvitation, error) {
	var inv model.StaffInvitation
	err := r.DB.Where("token = ?", token).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) FindPendingByOrgAndEmail(orgID uint, email string) (*model.StaffInvitation, error) {
	var inv model.StaffInvitation
	err := r.DB.Where("org_id = ? AND email = ? AND status = ?", orgID, email, model.InvitationPending).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvitationRepository) ListByOrg(orgID uint) ([]model.StaffInvitation, error) {
	var invs []model.StaffInvitation
	err := r.DB.Where("org_id = ?", orgID).Order("created_at desc").Find(&invs).Error
	return invs, err
}

func (r *InvitationRepository) Update(inv *model.StaffInvitation) error {
	return r.DB.Save(inv).Error
}
