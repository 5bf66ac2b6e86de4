package model

import "time"

// swagger:model ActionPlanItem
type ActionPlanItem struct {
	BaseModel
	OrgID          uint       `gorm:"index;type:bigint unsigned" json:"orgId"`
	AssessmentID   uint       `gorm:"index;type:bigint unsigned" json:"assessmentId"`
	QuestionID     string     `gorm:"size:100;not null" json:"questionId"`
	Category       string     `gorm:"size:20" json:"category"` // administrative, physical, technical
	Recommendation string     `gorm:"type:text" json:"recommendation"`
	Priority       string     `gorm:"size:10" json:"priority"` // high, medium, low
	Order          int        `gorm:"default:0" json:"order"`
	Completed      bool       `gorm:"default:false" json:"completed"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func (ActionPlanItem) TableName() string {
	return "action_plan_items"
}
