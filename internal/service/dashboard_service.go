package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const dashboardCacheTTL = 60 * time.Second

type DashboardService struct {
	OrgRepo    *repository.OrganizationRepository
	UserRepo   *repository.UserRepository
	Assessment *AssessmentService
	ActionPlan *ActionPlanService
	Documents  *DocumentService
	Redis      *redis.Client
}

func NewDashboardService(orgRepo *repository.OrganizationRepository, userRepo *repository.UserRepository, assessment *AssessmentService, actionPlan *ActionPlanService, documents *DocumentService, rdb *redis.Client) *DashboardService {
	return &DashboardService{
		OrgRepo:    orgRepo,
		UserRepo:   userRepo,
		Assessment: assessment,
		ActionPlan: actionPlan,
		Documents:  documents,
		Redis:      rdb,
	}
}

type DashboardSummary struct {
	OnboardingStep     model.OnboardingStep     `json:"onboardingStep"`
	SubscriptionStatus model.SubscriptionStatus `json:"subscriptionStatus"`
	TrialEndsAt        *time.Time               `json:"trialEndsAt,omitempty"`

	AssessmentComplete bool              `json:"assessmentComplete"`
	RiskLevel          scoring.RiskLevel `json:"riskLevel,omitempty"`
	RiskPercentage     int               `json:"riskPercentage"`

	PlanTotal     int64 `json:"planTotal"`
	PlanCompleted int64 `json:"planCompleted"`

	DocumentsRequired  int `json:"documentsRequired"`
	DocumentsGenerated int `json:"documentsGenerated"`

	TeamSize int64 `json:"teamSize"`
}

// Summary aggregates the org's compliance posture for the dashboard view.
// Results are cached briefly in Redis since the dashboard is polled.
func (s *DashboardService) Summary(ctx context.Context, orgID uint) (*DashboardSummary, error) {
	cacheKey := dashboardCacheKey(orgID)
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached DashboardSummary
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	org, err := s.OrgRepo.FindByID(orgID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		OnboardingStep:     org.OnboardingStep,
		SubscriptionStatus: org.SubscriptionStatus,
		TrialEndsAt:        org.TrialEndsAt,
	}

	assessment, err := s.Assessment.Repo.FindByOrg(orgID)
	if err == nil && assessment.Status == model.AssessmentCompleted {
		summary.AssessmentComplete = true
		summary.RiskLevel = scoring.RiskLevel(assessment.RiskLevel)
		summary.RiskPercentage = assessment.RiskPercentage
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	total, completed, err := s.ActionPlan.Progress(orgID)
	if err != nil {
		return nil, err
	}
	summary.PlanTotal = total
	summary.PlanCompleted = completed

	requirements, err := s.Documents.Requirements(orgID)
	if err != nil {
		return nil, err
	}
	summary.DocumentsRequired = len(requirements)

	docs, err := s.Documents.List(orgID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.Status == model.DocumentGenerated {
			summary.DocumentsGenerated++
		}
	}

	teamSize, err := s.UserRepo.CountByOrg(orgID)
	if err != nil {
		return nil, err
	}
	summary.TeamSize = teamSize

	if s.Redis != nil {
		if raw, err := json.Marshal(summary); err == nil {
			s.Redis.Set(ctx, cacheKey, raw, dashboardCacheTTL)
		}
	}

	return summary, nil
}

func dashboardCacheKey(orgID uint) string {
	return fmt.Sprintf("dashboard:summary:%d", orgID)
}
