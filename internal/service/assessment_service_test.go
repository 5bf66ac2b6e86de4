package service

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"complipilot_backend/internal/util"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubMirror records mirror traffic and serves a canned cache, standing in
// for Redis.
type stubMirror struct {
	cached  map[string]string
	saves   map[string]string
	dropped bool
}

func (m *stubMirror) load(orgID uint) map[string]string { return m.cached }

func (m *stubMirror) save(orgID uint, questionID, value string) {
	if m.saves == nil {
		m.saves = map[string]string{}
	}
	m.saves[questionID] = value
}

func (m *stubMirror) drop(orgID uint) { m.dropped = true }

func wizardCatalog() []scoring.Question {
	yesNo := []scoring.Option{
		{Value: "yes", Label: "Yes", RiskScore: 0},
		{Value: "no", Label: "No", RiskScore: 5},
	}
	return []scoring.Question{
		{ID: "encrypts_data", Category: scoring.CategoryTechnical, Text: "Is stored patient data encrypted?", Options: yesNo},
		{ID: "offers_training", Category: scoring.CategoryAdministrative, Text: "Is security training offered?", Options: yesNo},
	}
}

// newWizard wires an AssessmentService against an isolated in-memory
// database. The schema is created by hand because the models carry MySQL
// column types AutoMigrate cannot map.
func newWizard(t *testing.T, mirror answerMirror) (*AssessmentService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec(`CREATE TABLE risk_assessments (
		id integer primary key autoincrement,
		created_at datetime,
		updated_at datetime,
		deleted_at datetime,
		org_id integer,
		answers text,
		status text default 'in_progress',
		total_risk_score integer default 0,
		max_possible_score integer default 0,
		risk_percentage integer default 0,
		risk_level text,
		completed_at datetime
	)`).Error)
	require.NoError(t, db.Exec(`CREATE UNIQUE INDEX idx_risk_assessments_org_id ON risk_assessments(org_id)`).Error)

	svc := &AssessmentService{
		Repo:    repository.NewAssessmentRepository(db),
		mirror:  mirror,
		catalog: wizardCatalog(),
	}
	return svc, db
}

func TestSaveAnswerRejectsUnknownQuestion(t *testing.T) {
	mirror := &stubMirror{}
	svc, db := newWizard(t, mirror)

	err := svc.SaveAnswer(1, SaveAnswerRequest{QuestionID: "no_such_question", Value: "yes"})
	assert.ErrorIs(t, err, util.ErrUnknownQuestion)

	var count int64
	require.NoError(t, db.Model(&model.RiskAssessment{}).Count(&count).Error)
	assert.Zero(t, count, "a rejected answer must not create an assessment")
	assert.Empty(t, mirror.saves, "a rejected answer must not reach the mirror")
}

func TestSaveAnswerCreatesThenAccumulates(t *testing.T) {
	mirror := &stubMirror{}
	svc, db := newWizard(t, mirror)

	require.NoError(t, svc.SaveAnswer(1, SaveAnswerRequest{QuestionID: "encrypts_data", Value: "yes"}))
	require.NoError(t, svc.SaveAnswer(1, SaveAnswerRequest{QuestionID: "offers_training", Value: "no"}))

	var count int64
	require.NoError(t, db.Model(&model.RiskAssessment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := svc.Repo.FindByOrg(1)
	require.NoError(t, err)
	assert.Equal(t, model.AssessmentInProgress, stored.Status)

	var answers map[string]string
	require.NoError(t, json.Unmarshal(stored.Answers, &answers))
	assert.Equal(t, map[string]string{"encrypts_data": "yes", "offers_training": "no"}, answers)

	assert.Equal(t, map[string]string{"encrypts_data": "yes", "offers_training": "no"}, mirror.saves)
}

func TestLoadAnswersMirrorWinsOverStore(t *testing.T) {
	mirror := &stubMirror{cached: map[string]string{
		"encrypts_data":   "no",
		"offers_training": "yes",
	}}
	svc, db := newWizard(t, mirror)

	raw, err := json.Marshal(map[string]string{"encrypts_data": "yes"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.RiskAssessment{
		OrgID:   1,
		Answers: raw,
		Status:  model.AssessmentInProgress,
	}).Error)

	answers, err := svc.RawAnswers(1)
	require.NoError(t, err)

	assert.Equal(t, "no", answers["encrypts_data"], "a mirrored answer supersedes the stored one")
	assert.Equal(t, "yes", answers["offers_training"], "mirror-only answers are kept")
}

func TestLoadAnswersMirrorOnly(t *testing.T) {
	mirror := &stubMirror{cached: map[string]string{"encrypts_data": "yes"}}
	svc, _ := newWizard(t, mirror)

	answers, err := svc.RawAnswers(1)
	require.NoError(t, err)
	assert.Equal(t, scoring.Answers{"encrypts_data": "yes"}, answers)
}
