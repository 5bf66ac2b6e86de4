package repository

import (
	"complipilot_backend/internal/model"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(doc *model.GeneratedDocument) error {
	return r.DB.Create(doc).Error
}

func (r *DocumentRepository) FindByID(id uint) (*model.GeneratedDocument, error) {
	var doc model.GeneratedDocument
	err := r.DB.First(&doc, id).Error
	return &doc, err
}

func (r *DocumentRepository) FindByOrgAndType(orgID uint, documentType string) (*model.GeneratedDocument, error) {
	var doc model.GeneratedDocument
	err := r.DB.Where("org_id = ? AND document_type = ?", orgID, documentType).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) ListByOrg(orgID uint) ([]model.GeneratedDocument, error) {
	var docs []model.GeneratedDocument
	err := r.DB.Where("org_id = ?", orgID).Order("created_at asc").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) Update(doc *model.GeneratedDocument) error {
	return r.DB.Save(doc).Error
}

func (r *DocumentRepository) DeleteByOrg(orgID uint) error {
	return r.DB.Where("org_id = ?", orgID).Delete(&model.GeneratedDocument{}).Error
}
