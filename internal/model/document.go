package model

import "time"

// DocumentCategory ranks how urgently a missing policy document is needed.
type DocumentCategory string

const (
	DocumentCritical DocumentCategory = "critical"
	DocumentRequired DocumentCategory = "required"
)

// swagger:model GeneratedDocument
type GeneratedDocument struct {
	BaseModel
	OrgID        uint       `gorm:"index;type:bigint unsigned" json:"orgId"`
	DocumentType string     `gorm:"size:100;not null" json:"documentType"`
	Title        string     `gorm:"size:255" json:"title"`
	Status       string     `gorm:"size:20;default:'pending'" json:"status"` // pending, generated, failed
	StorageKey   string     `gorm:"size:512" json:"-"`
	URL          string     `gorm:"size:512" json:"url"`
	GeneratedAt  *time.Time `json:"generatedAt,omitempty"`
}

func (GeneratedDocument) TableName() string {
	return "generated_documents"
}

const (
	DocumentPending   = "pending"
	DocumentGenerated = "generated"
	DocumentFailed    = "failed"
)
