package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// Weighted-contribution cutoffs for plan item priority. A question's worst
// case is MaxOptionRiskScore * MaxSeverityWeight = 25.
const (
	planHighPriorityMin   = 10
	planMediumPriorityMin = 4
)

type ActionPlanService struct {
	Repo *repository.ActionPlanRepository
}

func NewActionPlanService(repo *repository.ActionPlanRepository) *ActionPlanService {
	return &ActionPlanService{Repo: repo}
}

// Regenerate replaces the organization's plan from a freshly scored
// assessment. The previous plan, including completion checkmarks, is
// superseded wholesale: a new score means a new plan.
func (s *ActionPlanService) Regenerate(orgID uint, assessment *model.RiskAssessment, answers scoring.Answers, applicable []scoring.Question) error {
	items := BuildPlanItems(answers, applicable)
	for i := range items {
		items[i].OrgID = orgID
		items[i].AssessmentID = assessment.ID
	}
	return s.Repo.Replace(orgID, items)
}

// BuildPlanItems derives one plan item per deficient answer, ordered
// worst-first. Unanswered questions count as deficient at their maximum,
// consistent with how they are scored.
func BuildPlanItems(answers scoring.Answers, applicable []scoring.Question) []model.ActionPlanItem {
	type scored struct {
		item         model.ActionPlanItem
		contribution int
	}
	var deficient []scored

	for _, q := range applicable {
		value, answered := answers[q.ID]
		optScore := q.MaxRiskScore()
		if answered {
			for _, opt := range q.Options {
				if opt.Value == value {
					optScore = opt.RiskScore
					break
				}
			}
		}

		contribution := optScore * q.Weight()
		if contribution == 0 {
			continue
		}

		deficient = append(deficient, scored{
			item: model.ActionPlanItem{
				QuestionID:     q.ID,
				Category:       string(q.Category),
				Recommendation: recommendationFor(q, answered),
				Priority:       planPriority(contribution),
			},
			contribution: contribution,
		})
	}

	sort.SliceStable(deficient, func(i, j int) bool {
		return deficient[i].contribution > deficient[j].contribution
	})

	items := make([]model.ActionPlanItem, len(deficient))
	for i, d := range deficient {
		d.item.Order = i + 1
		items[i] = d.item
	}
	return items
}

func planPriority(contribution int) string {
	switch {
	case contribution >= planHighPriorityMin:
		return "high"
	case contribution >= planMediumPriorityMin:
		return "medium"
	default:
		return "low"
	}
}

func recommendationFor(q scoring.Question, answered bool) string {
	if !answered {
		return fmt.Sprintf("Not assessed: %s Review this area and update your assessment.", q.Text)
	}
	return fmt.Sprintf("Your answer indicates a gap: %s", q.Text)
}

func (s *ActionPlanService) List(orgID uint) ([]model.ActionPlanItem, error) {
	return s.Repo.ListByOrg(orgID)
}

type PlanItemUpdateRequest struct {
	Completed bool `json:"completed"`
}

func (s *ActionPlanService) SetCompleted(orgID, itemID uint, completed bool) error {
	item, err := s.Repo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item.OrgID != orgID {
		return gorm.ErrRecordNotFound
	}
	return s.Repo.SetCompleted(itemID, completed)
}

func (s *ActionPlanService) Progress(orgID uint) (total int64, completed int64, err error) {
	return s.Repo.CountByOrg(orgID)
}
