package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email is already registered")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrOrgNotFound           = errors.New("organization not found")
	ErrAssessmentNotFound    = errors.New("assessment not found")
	ErrAssessmentNotComplete = errors.New("assessment not completed")
	ErrUnknownQuestion       = errors.New("unknown question id")
	ErrInvitationNotFound    = errors.New("invitation not found")
	ErrInvitationExpired     = errors.New("invitation expired or revoked")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrSubscriptionInactive  = errors.New("subscription inactive")
	ErrOnboardingIncomplete  = errors.New("onboarding step not reached")
)
