package controller

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"complipilot_backend/internal/service"
	"complipilot_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newAssessmentRouter(t *testing.T) *gin.Engine {
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

	svc := service.NewAssessmentService(repository.NewAssessmentRepository(db), nil, nil, nil, scoring.Catalog())
	ctrl := NewAssessmentController(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: 1, OrgID: 1, Role: model.Owner})
	})
	router.POST("/api/assessment/submit", ctrl.Submit)
	return router
}

func TestSubmitWithoutAnswersIsNotFound(t *testing.T) {
	router := newAssessmentRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/assessment/submit", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
