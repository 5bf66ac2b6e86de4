package repository

import (
	"complipilot_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ActionPlanRepository struct {
	DB *gorm.DB
}

func NewActionPlanRepository(db *gorm.DB) *ActionPlanRepository {
	return &ActionPlanRepository{DB: db}
}

// Replace swaps the organization's plan wholesale inside one transaction:
// re-scoring supersedes the previous plan rather than patching it.
func (r *ActionPlanRepository) Replace(orgID uint, items []model.ActionPlanItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("org_id = ?", orgID).Delete(&model.ActionPlanItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ActionPlanRepository) ListByOrg(orgID uint) ([]model.ActionPlanItem, error) {
	var items []model.ActionPlanItem
	err := r.DB.Where("org_id = ?", orgID).Order("`order` asc").Find(&items).Error
	return items, err
}

func (r *ActionPlanRepository) FindByID(id uint) (*model.ActionPlanItem, error) {
	var item model.ActionPlanItem
	err := r.DB.First(&item, id).Error
	return &item, err
}

func (r *ActionPlanRepository) SetCompleted(id uint, completed bool) error {
	updates := map[string]interface{}{"completed": completed}
	if completed {
		updates["completed_at"] = time.Now()
	} else {
		updates["completed_at"] = nil
	}
	return r.DB.Model(&model.ActionPlanItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ActionPlanRepository) CountByOrg(orgID uint) (total int64, completed int64, err error) {
	if err = r.DB.Model(&model.ActionPlanItem{}).Where("org_id = ?", orgID).Count(&total).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.ActionPlanItem{}).Where("org_id = ? AND completed = ?", orgID, true).Count(&completed).Error
	return
}
