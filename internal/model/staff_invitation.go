package model

import "time"

// swagger:model StaffInvitation
type StaffInvitation struct {
	BaseModel
	OrgID      uint       `gorm:"index;type:bigint unsigned" json:"orgId"`
	Email      string     `gorm:"size:100;not null" json:"email"`
	Role       UserRole   `gorm:"size:20;default:'staff'" json:"role"`
	Token      string     `gorm:"size:36;uniqueIndex;not null" json:"-"`
	Status     string     `gorm:"size:20;default:'pending'" json:"status"` // pending, accepted, revoked, expired
	ExpiresAt  time.Time  `json:"expiresAt"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
}

func (StaffInvitation) TableName() string {
	return "staff_invitations"
}

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRevoked  = "revoked"
	InvitationExpired  = "expired"
)
