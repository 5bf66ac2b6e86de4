package model

import "encoding/json"

// Marketing-site content served on public endpoints.

// swagger:model Testimonial
type Testimonial struct {
	BaseModel
	AuthorName  string `gorm:"size:100;not null" json:"authorName"`
	AuthorTitle string `gorm:"size:255" json:"authorTitle"`
	Quote       string `gorm:"type:text;not null" json:"quote"`
	Order       int    `gorm:"default:0" json:"order"`
	Published   bool   `gorm:"default:false" json:"published"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// swagger:model PricingPlan
type PricingPlan struct {
	BaseModel
	Code       string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	PriceCents int             `gorm:"default:0" json:"priceCents"`
	Interval   string          `gorm:"size:20;default:'month'" json:"interval"` // month, year
	Features   json.RawMessage `gorm:"type:json" json:"features"`               // JSON: []string
	Order      int             `gorm:"default:0" json:"order"`
	Active     bool            `gorm:"default:true" json:"active"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}
