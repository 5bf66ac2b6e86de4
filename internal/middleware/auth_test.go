package middleware

import (
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/util"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type orgStore struct {
	org *model.Organization
	err error
}

func (s *orgStore) FindByID(id uint) (*model.Organization, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.org, nil
}

// gatedRequest runs one GET through the given middleware chain with claims
// preinstalled, standing in for AuthMiddleware.
func gatedRequest(claims *util.Claims, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set("user", claims)
		}
	})
	chain := append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/gated", chain...)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
	return w
}

func TestSubscriptionMiddleware(t *testing.T) {
	owner := &util.Claims{UserID: 1, OrgID: 1, Role: model.Owner}

	t.Run("active trial passes", func(t *testing.T) {
		future := time.Now().Add(24 * time.Hour)
		store := &orgStore{org: &model.Organization{
			SubscriptionStatus: model.SubscriptionTrial,
			TrialEndsAt:        &future,
		}}
		w := gatedRequest(owner, SubscriptionMiddleware(store))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("lapsed trial is payment required", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour)
		store := &orgStore{org: &model.Organization{
			SubscriptionStatus: model.SubscriptionTrial,
			TrialEndsAt:        &past,
		}}
		w := gatedRequest(owner, SubscriptionMiddleware(store))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("canceled is payment required", func(t *testing.T) {
		store := &orgStore{org: &model.Organization{SubscriptionStatus: model.SubscriptionCanceled}}
		w := gatedRequest(owner, SubscriptionMiddleware(store))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("admin is exempt", func(t *testing.T) {
		store := &orgStore{err: errors.New("must not be consulted")}
		admin := &util.Claims{UserID: 2, OrgID: 1, Role: model.Admin}
		w := gatedRequest(admin, SubscriptionMiddleware(store))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing claims is unauthorized", func(t *testing.T) {
		store := &orgStore{org: &model.Organization{SubscriptionStatus: model.SubscriptionActive}}
		w := gatedRequest(nil, SubscriptionMiddleware(store))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOnboardingMiddleware(t *testing.T) {
	owner := &util.Claims{UserID: 1, OrgID: 1, Role: model.Owner}

	t.Run("reached step passes", func(t *testing.T) {
		store := &orgStore{org: &model.Organization{OnboardingStep: model.StepResults}}
		w := gatedRequest(owner, OnboardingMiddleware(store, model.StepResults))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("later step passes", func(t *testing.T) {
		store := &orgStore{org: &model.Organization{OnboardingStep: model.StepDone}}
		w := gatedRequest(owner, OnboardingMiddleware(store, model.StepResults))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("earlier step is conflict", func(t *testing.T) {
		store := &orgStore{org: &model.Organization{OnboardingStep: model.StepAssessment}}
		w := gatedRequest(owner, OnboardingMiddleware(store, model.StepResults))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("admin is exempt", func(t *testing.T) {
		store := &orgStore{err: errors.New("must not be consulted")}
		admin := &util.Claims{UserID: 2, OrgID: 1, Role: model.Admin}
		w := gatedRequest(admin, OnboardingMiddleware(store, model.StepDone))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("org lookup failure is not found", func(t *testing.T) {
		store := &orgStore{err: errors.New("gone")}
		w := gatedRequest(owner, OnboardingMiddleware(store, model.StepResults))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
