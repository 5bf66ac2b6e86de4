package model

import (
	"time"
)

type UserRole string

const (
	Owner UserRole = "owner"
	Staff UserRole = "staff"
	Admin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('owner','staff','admin');default:'staff'" json:"role"`
	OrgID     uint      `gorm:"index;type:bigint unsigned" json:"orgId"`
	JobTitle  string    `gorm:"size:100" json:"jobTitle"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
