package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	Repo       *repository.InvitationRepository
	UserRepo   *repository.UserRepository
	OrgRepo    *repository.OrganizationRepository
	OrgService *OrganizationService
}

func NewInvitationService(repo *repository.InvitationRepository, userRepo *repository.UserRepository, orgRepo *repository.OrganizationRepository, orgService *OrganizationService) *InvitationService {
	return &InvitationService{
		Repo:       repo,
		UserRepo:   userRepo,
		OrgRepo:    orgRepo,
		OrgService: orgService,
	}
}

type InviteStaffRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Invite issues a single-use invitation token for a staff account. Repeat
// invites to the same pending address reuse the existing invitation with a
// refreshed expiry instead of stacking tokens.
func (s *InvitationService) Invite(orgID uint, req InviteStaffRequest) (*model.StaffInvitation, error) {
	if _, err := s.UserRepo.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if inv, err := s.Repo.FindPendingByOrgAndEmail(orgID, req.Email); err == nil {
		inv.ExpiresAt = time.Now().Add(invitationTTL)
		if err := s.Repo.Update(inv); err != nil {
			return nil, err
		}
		return inv, nil
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	inv := &model.StaffInvitation{
		OrgID:     orgID,
		Email:     req.Email,
		Role:      model.Staff,
		Token:     model.GenerateUUID(),
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	if err := s.Repo.Create(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvitationService) List(orgID uint) ([]model.StaffInvitation, error) {
	return s.Repo.ListByOrg(orgID)
}

func (s *InvitationService) Revoke(orgID, invitationID uint) error {
	inv, err := s.Repo.FindByID(invitationID)
	if err != nil || inv.OrgID != orgID {
		return util.ErrInvitationNotFound
	}
	if inv.Status != model.InvitationPending {
		return util.ErrInvitationNotFound
	}
	inv.Status = model.InvitationRevoked
	return s.Repo.Update(inv)
}

type AcceptInvitationRequest struct {
	Token    string `json:"token" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	JobTitle string `json:"jobTitle"`
}

// Accept redeems an invitation token and creates the staff account in the
// inviting organization. An expired token is marked as such on first use.
func (s *InvitationService) Accept(req AcceptInvitationRequest) (*model.User, error) {
	inv, err := s.Repo.FindByToken(req.Token)
	if err != nil {
		return nil, util.ErrInvitationNotFound
	}
	if inv.Status != model.InvitationPending {
		return nil, util.ErrInvitationNotFound
	}
	if time.Now().After(inv.ExpiresAt) {
		inv.Status = model.InvitationExpired
		_ = s.Repo.Update(inv)
		return nil, util.ErrInvitationExpired
	}

	if _, err := s.UserRepo.FindByEmail(inv.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    inv.Email,
		Password: string(hashedPassword),
		Role:     inv.Role,
		OrgID:    inv.OrgID,
		JobTitle: req.JobTitle,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	now := time.Now()
	inv.Status = model.InvitationAccepted
	inv.AcceptedAt = &now
	if err := s.Repo.Update(inv); err != nil {
		return nil, err
	}

	_ = s.OrgService.AdvanceOnboarding(inv.OrgID, model.StepTeam)

	return user, nil
}

// Team returns the organization's member list alongside pending invitations.
type TeamMember struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      model.UserRole `json:"role"`
	JobTitle  string         `json:"jobTitle"`
	Disabled  bool           `json:"disabled"`
	LastSeen  time.Time      `json:"lastSeen"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (s *InvitationService) TeamMembers(orgID uint) ([]TeamMember, error) {
	users, err := s.UserRepo.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	members := make([]TeamMember, 0, len(users))
	for _, u := range users {
		members = append(members, TeamMember{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			JobTitle:  u.JobTitle,
			Disabled:  u.Disabled,
			LastSeen:  u.LastSeen,
			CreatedAt: u.CreatedAt,
		})
	}
	return members, nil
}
