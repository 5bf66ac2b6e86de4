package model

import "time"

// OnboardingStep tracks how far an organization has progressed through the
// guided setup wizard. Steps only ever advance forward.
type OnboardingStep string

const (
	StepProfile    OnboardingStep = "profile"
	StepAssessment OnboardingStep = "assessment"
	StepResults    OnboardingStep = "results"
	StepDocuments  OnboardingStep = "documents"
	StepTeam       OnboardingStep = "team"
	StepDone       OnboardingStep = "done"
)

// Rank orders the steps so callers can compare progress. Unknown values rank
// below every real step.
func (s OnboardingStep) Rank() int {
	switch s {
	case StepProfile:
		return 1
	case StepAssessment:
		return 2
	case StepResults:
		return 3
	case StepDocuments:
		return 4
	case StepTeam:
		return 5
	case StepDone:
		return 6
	default:
		return 0
	}
}

// Reached reports whether the organization has progressed to at least the
// given step.
func (s OnboardingStep) Reached(step OnboardingStep) bool {
	return s.Rank() >= step.Rank()
}

type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// swagger:model Organization
type Organization struct {
	BaseModel
	Name               string             `gorm:"size:255;not null" json:"name"`
	Type               string             `gorm:"size:100" json:"type"` // e.g. dental_practice, therapy, billing_service
	EmployeeCount      string             `gorm:"size:50" json:"employeeCount"`
	State              string             `gorm:"size:50" json:"state"`
	Phone              string             `gorm:"size:50" json:"phone"`
	Website            string             `gorm:"size:255" json:"website"`
	EHRVendor          string             `gorm:"size:100" json:"ehrVendor"`
	UsesCloudServices  bool               `gorm:"default:true" json:"usesCloudServices"`
	OnboardingStep     OnboardingStep     `gorm:"size:20;default:'profile'" json:"onboardingStep"`
	SubscriptionStatus SubscriptionStatus `gorm:"size:20;default:'trial'" json:"subscriptionStatus"`
	TrialEndsAt        *time.Time         `json:"trialEndsAt,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}

// HasActiveSubscription reports whether the organization may reach gated
// surfaces (dashboard, documents). Trial counts as active until it expires.
func (o *Organization) HasActiveSubscription() bool {
	switch o.SubscriptionStatus {
	case SubscriptionActive:
		return true
	case SubscriptionTrial:
		return o.TrialEndsAt == nil || time.Now().Before(*o.TrialEndsAt)
	default:
		return false
	}
}
