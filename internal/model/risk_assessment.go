package model

import (
	"encoding/json"
	"time"
)

// swagger:model RiskAssessment
type RiskAssessment struct {
	BaseModel
	OrgID            uint            `gorm:"uniqueIndex;type:bigint unsigned" json:"orgId"`
	Answers          json.RawMessage `gorm:"type:json" json:"answers"` // flat map: questionId -> option value
	Status           string          `gorm:"size:20;default:'in_progress'" json:"status"` // in_progress, completed
	TotalRiskScore   int             `json:"totalRiskScore"`
	MaxPossibleScore int             `json:"maxPossibleScore"`
	RiskPercentage   int             `json:"riskPercentage"`
	RiskLevel        string          `gorm:"size:10" json:"riskLevel"` // low, medium, high
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
}

func (RiskAssessment) TableName() string {
	return "risk_assessments"
}

const (
	AssessmentInProgress = "in_progress"
	AssessmentCompleted  = "completed"
)
