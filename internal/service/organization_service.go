package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
)

type OrganizationService struct {
	OrgRepo *repository.OrganizationRepository
}

func NewOrganizationService(orgRepo *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{OrgRepo: orgRepo}
}

type OrganizationProfileRequest struct {
	Name              string `json:"name" binding:"required"`
	Type              string `json:"type" binding:"required"`
	EmployeeCount     string `json:"employeeCount" binding:"required"`
	State             string `json:"state" binding:"required"`
	Phone             string `json:"phone"`
	Website           string `json:"website"`
	EHRVendor         string `json:"ehrVendor"`
	UsesCloudServices bool   `json:"usesCloudServices"`
}

func (s *OrganizationService) Get(orgID uint) (*model.Organization, error) {
	return s.OrgRepo.FindByID(orgID)
}

// UpdateProfile saves the organization profile collected in the first wizard
// step. Completing it for the first time advances onboarding to the
// assessment step.
func (s *OrganizationService) UpdateProfile(orgID uint, req OrganizationProfileRequest) (*model.Organization, error) {
	org, err := s.OrgRepo.FindByID(orgID)
	if err != nil {
		return nil, err
	}

	org.Name = req.Name
	org.Type = req.Type
	org.EmployeeCount = req.EmployeeCount
	org.State = req.State
	org.Phone = req.Phone
	org.Website = req.Website
	org.EHRVendor = req.EHRVendor
	org.UsesCloudServices = req.UsesCloudServices

	if org.OnboardingStep == model.StepProfile {
		org.OnboardingStep = model.StepAssessment
	}

	if err := s.OrgRepo.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

// AdvanceOnboarding moves the wizard forward, never backward.
func (s *OrganizationService) AdvanceOnboarding(orgID uint, step model.OnboardingStep) error {
	org, err := s.OrgRepo.FindByID(orgID)
	if err != nil {
		return err
	}
	if org.OnboardingStep.Reached(step) {
		return nil
	}
	return s.OrgRepo.UpdateOnboardingStep(orgID, step)
}

type SubscriptionUpdateRequest struct {
	Status model.SubscriptionStatus `json:"status" binding:"required,oneof=trial active past_due canceled"`
}

// SetSubscriptionStatus is the admin backdoor for billing state; checkout
// itself lives outside this service.
func (s *OrganizationService) SetSubscriptionStatus(orgID uint, status model.SubscriptionStatus) error {
	if _, err := s.OrgRepo.FindByID(orgID); err != nil {
		return err
	}
	return s.OrgRepo.UpdateSubscriptionStatus(orgID, status)
}

func (s *OrganizationService) List(page, limit int) ([]model.Organization, int64, error) {
	return s.OrgRepo.List(page, limit)
}
