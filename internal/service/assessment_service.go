package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"complipilot_backend/internal/util"
	"complipilot_backend/pkg/logger"
	"complipilot_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// answerCacheTTL bounds how long an abandoned wizard session survives in
// Redis.
const answerCacheTTL = 24 * time.Hour

// answerMirror is the autosave side-channel keeping in-flight answers across
// sessions. Implementations must tolerate a missing backend.
type answerMirror interface {
	load(orgID uint) map[string]string
	save(orgID uint, questionID, value string)
	drop(orgID uint)
}

type AssessmentService struct {
	Repo       *repository.AssessmentRepository
	OrgService *OrganizationService
	ActionPlan *ActionPlanService
	mirror     answerMirror
	catalog    []scoring.Question
}

func NewAssessmentService(repo *repository.AssessmentRepository, orgService *OrganizationService, actionPlan *ActionPlanService, rdb *redis.Client, catalog []scoring.Question) *AssessmentService {
	return &AssessmentService{
		Repo:       repo,
		OrgService: orgService,
		ActionPlan: actionPlan,
		mirror:     &redisAnswerMirror{client: rdb},
		catalog:    catalog,
	}
}

// VisibleQuestion is the respondent-facing view of a catalog question: risk
// weights and branching rules stay server-side.
type VisibleQuestion struct {
	ID       string           `json:"id"`
	Category scoring.Category `json:"category"`
	Text     string           `json:"text"`
	Options  []VisibleOption  `json:"options"`
	Answer   string           `json:"answer,omitempty"`
}

type VisibleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type QuestionnaireResponse struct {
	Questions []VisibleQuestion `json:"questions"`
	Answered  int               `json:"answered"`
	Total     int               `json:"total"`
	Complete  bool              `json:"complete"`
}

// Questionnaire returns the applicable question set for the organization's
// current answers, using the same filter the scorer uses, so the wizard never
// shows a question the score would not count.
func (s *AssessmentService) Questionnaire(orgID uint) (*QuestionnaireResponse, error) {
	answers, _, err := s.loadAnswers(orgID)
	if err != nil {
		return nil, err
	}

	applicable := scoring.ApplicableQuestions(s.catalog, answers)

	resp := &QuestionnaireResponse{
		Questions: make([]VisibleQuestion, len(applicable)),
		Total:     len(applicable),
	}
	for i, q := range applicable {
		vq := VisibleQuestion{
			ID:       q.ID,
			Category: q.Category,
			Text:     q.Text,
			Options:  make([]VisibleOption, len(q.Options)),
			Answer:   answers[q.ID],
		}
		for j, opt := range q.Options {
			vq.Options[j] = VisibleOption{Value: opt.Value, Label: opt.Label}
		}
		if vq.Answer != "" {
			resp.Answered++
		}
		resp.Questions[i] = vq
	}
	resp.Complete = resp.Answered == resp.Total

	return resp, nil
}

type SaveAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      string `json:"value" binding:"required"`
}

// SaveAnswer persists a single answer (the wizard auto-saves after every
// change). Unknown question ids are rejected; unknown option values are
// accepted and left for the scorer's conservative handling, since the
// catalog may evolve between sessions.
func (s *AssessmentService) SaveAnswer(orgID uint, req SaveAnswerRequest) error {
	if !s.knownQuestion(req.QuestionID) {
		return util.ErrUnknownQuestion
	}

	answers, assessment, err := s.loadAnswers(orgID)
	if err != nil {
		return err
	}
	answers[req.QuestionID] = req.Value

	raw, err := json.Marshal(answers)
	if err != nil {
		return err
	}

	s.mirror.save(orgID, req.QuestionID, req.Value)

	if assessment == nil {
		assessment = &model.RiskAssessment{
			OrgID:   orgID,
			Answers: raw,
			Status:  model.AssessmentInProgress,
		}
		return s.Repo.Create(assessment)
	}

	assessment.Answers = raw
	return s.Repo.Update(assessment)
}

// Submit snapshots the current answers, scores them once, and persists the
// verdict. Re-submitting supersedes the previous result and plan wholesale.
func (s *AssessmentService) Submit(orgID uint) (*model.RiskAssessment, error) {
	answers, assessment, err := s.loadAnswers(orgID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, util.ErrAssessmentNotFound
	}

	applicable := scoring.ApplicableQuestions(s.catalog, answers)
	result := scoring.Score(answers, applicable)

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	assessment.Answers = raw
	assessment.Status = model.AssessmentCompleted
	assessment.TotalRiskScore = result.TotalRiskScore
	assessment.MaxPossibleScore = result.MaxPossibleScore
	assessment.RiskPercentage = result.RiskPercentage
	assessment.RiskLevel = string(result.RiskLevel)
	assessment.CompletedAt = &now

	if err := s.Repo.Update(assessment); err != nil {
		return nil, err
	}

	monitoring.AssessmentsScored.WithLabelValues(string(result.RiskLevel)).Inc()

	if err := s.ActionPlan.Regenerate(orgID, assessment, answers, applicable); err != nil {
		logger.Log.Error("failed to regenerate action plan", zap.Uint("orgId", orgID), zap.Error(err))
	}

	if err := s.OrgService.AdvanceOnboarding(orgID, model.StepResults); err != nil {
		logger.Log.Error("failed to advance onboarding", zap.Uint("orgId", orgID), zap.Error(err))
	}

	s.mirror.drop(orgID)

	return assessment, nil
}

func (s *AssessmentService) Result(orgID uint) (*model.RiskAssessment, error) {
	assessment, err := s.Repo.FindByOrg(orgID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	if assessment.Status != model.AssessmentCompleted {
		return nil, util.ErrAssessmentNotComplete
	}
	return assessment, nil
}

// RawAnswers exposes the stored answer map to sibling consumers (document
// requirement derivation). The scoring result is deliberately not part of
// this contract.
func (s *AssessmentService) RawAnswers(orgID uint) (scoring.Answers, error) {
	answers, _, err := s.loadAnswers(orgID)
	return answers, err
}

func (s *AssessmentService) knownQuestion(id string) bool {
	for _, q := range s.catalog {
		if q.ID == id {
			return true
		}
	}
	return false
}

// loadAnswers merges the persisted answer map with any answers that only
// reached the Redis mirror (e.g. the MySQL write failed mid-session). Redis
// wins for keys present in both, since it is always written last.
func (s *AssessmentService) loadAnswers(orgID uint) (scoring.Answers, *model.RiskAssessment, error) {
	answers := scoring.Answers{}

	assessment, err := s.Repo.FindByOrg(orgID)
	if err == gorm.ErrRecordNotFound {
		assessment = nil
	} else if err != nil {
		return nil, nil, err
	} else if len(assessment.Answers) > 0 {
		if err := json.Unmarshal(assessment.Answers, &answers); err != nil {
			return nil, nil, err
		}
	}

	for k, v := range s.mirror.load(orgID) {
		answers[k] = v
	}

	return answers, assessment, nil
}

// redisAnswerMirror writes answers to Redis asynchronously and
// opportunistically; losing the mirror only costs resume convenience, never
// correctness. A nil client disables it.
type redisAnswerMirror struct {
	client *redis.Client
}

func (m *redisAnswerMirror) load(orgID uint) map[string]string {
	if m.client == nil {
		return nil
	}
	cached, err := m.client.HGetAll(context.Background(), answerCacheKey(orgID)).Result()
	if err != nil {
		return nil
	}
	return cached
}

func (m *redisAnswerMirror) save(orgID uint, questionID, value string) {
	if m.client == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		key := answerCacheKey(orgID)
		if err := m.client.HSet(ctx, key, questionID, value).Err(); err != nil {
			logger.Log.Debug("answer mirror write failed", zap.Error(err))
			return
		}
		m.client.Expire(ctx, key, answerCacheTTL)
	}()
}

func (m *redisAnswerMirror) drop(orgID uint) {
	if m.client == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		m.client.Del(ctx, answerCacheKey(orgID))
	}()
}

func answerCacheKey(orgID uint) string {
	return fmt.Sprintf("assessment:answers:%d", orgID)
}
