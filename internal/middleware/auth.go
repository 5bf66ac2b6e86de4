package middleware

import (
	"complipilot_backend/internal/config"
	"complipilot_backend/internal/model"
	"complipilot_backend/internal/util"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		cfg := c.MustGet("config").(*config.Config)
		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware restricts a route to the given roles. Admins pass every
// role check.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == model.Admin {
				hasRole = true
				break
			}
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			// async, must not block request handling
			go repo.UpdateLastSeen(claims.UserID)
		}
		c.Next()
	}
}

type SubscriptionChecker interface {
	FindByID(id uint) (*model.Organization, error)
}

// SubscriptionMiddleware blocks paid features when the organization's trial
// has lapsed and no subscription is active. Admins are exempt so support
// can still operate on the account.
func SubscriptionMiddleware(orgs SubscriptionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role == model.Admin {
			c.Next()
			return
		}

		org, err := orgs.FindByID(claims.OrgID)
		if err != nil {
			util.NotFound(c)
			c.Abort()
			return
		}

		if !org.HasActiveSubscription() {
			util.Error(c, http.StatusPaymentRequired, util.ErrSubscriptionInactive.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// OnboardingMiddleware blocks a route until the organization's wizard has
// reached the given step. Admins are exempt, matching the subscription gate.
func OnboardingMiddleware(orgs SubscriptionChecker, step model.OnboardingStep) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role == model.Admin {
			c.Next()
			return
		}

		org, err := orgs.FindByID(claims.OrgID)
		if err != nil {
			util.NotFound(c)
			c.Abort()
			return
		}

		if !org.OnboardingStep.Reached(step) {
			util.Error(c, http.StatusConflict, util.ErrOnboardingIncomplete.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
