// Seeds a demo organization with a completed assessment.
//
// Intended for local development and staging demos, not production.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"complipilot_backend/internal/config"
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"complipilot_backend/internal/service"
	"complipilot_backend/pkg/database"
	"complipilot_backend/pkg/logger"
	"encoding/json"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	catalog := scoring.Catalog()
	if err := scoring.ValidateCatalog(catalog); err != nil {
		log.Fatalf("Invalid question catalog: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	planRepo := repository.NewActionPlanRepository(db)

	if _, err := userRepo.FindByEmail("demo@complipilot.io"); err == nil {
		log.Println("Demo account already exists, nothing to do")
		return
	}

	trialEnd := time.Now().AddDate(0, 0, 14)
	org := &model.Organization{
		Name:               "Demo Family Dental",
		Type:               "dental_practice",
		EmployeeCount:      "5-10",
		State:              "CO",
		OnboardingStep:     model.StepResults,
		SubscriptionStatus: model.SubscriptionTrial,
		TrialEndsAt:        &trialEnd,
		UsesCloudServices:  true,
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("demo-password-123"), bcrypt.DefaultCost)
	owner := &model.User{
		Name:     "Demo Owner",
		Email:    "demo@complipilot.io",
		Password: string(hashed),
		Role:     model.Owner,
	}
	if err := orgRepo.CreateWithOwner(org, owner); err != nil {
		log.Fatalf("Failed to create demo organization: %v", err)
	}

	// A mixed answer set: some gaps, some safeguards in place.
	answers := scoring.Answers{}
	for _, q := range catalog {
		answers[q.ID] = q.Options[0].Value
	}
	answers["risk_analysis_done"] = "no"
	answers["staff_training"] = "partial"
	answers["device_encryption"] = "partial"
	answers["written_policies"] = "partial"

	applicable := scoring.ApplicableQuestions(catalog, answers)
	result := scoring.Score(answers, applicable)

	raw, _ := json.Marshal(answers)
	now := time.Now()
	assessment := &model.RiskAssessment{
		OrgID:            org.ID,
		Answers:          raw,
		Status:           model.AssessmentCompleted,
		TotalRiskScore:   result.TotalRiskScore,
		MaxPossibleScore: result.MaxPossibleScore,
		RiskPercentage:   result.RiskPercentage,
		RiskLevel:        string(result.RiskLevel),
		CompletedAt:      &now,
	}
	if err := assessmentRepo.Create(assessment); err != nil {
		log.Fatalf("Failed to create demo assessment: %v", err)
	}

	planService := service.NewActionPlanService(planRepo)
	if err := planService.Regenerate(org.ID, assessment, answers, applicable); err != nil {
		log.Fatalf("Failed to build demo action plan: %v", err)
	}

	log.Printf("Demo organization seeded: demo@complipilot.io / demo-password-123 (risk %d%%, %s)",
		result.RiskPercentage, result.RiskLevel)
}
