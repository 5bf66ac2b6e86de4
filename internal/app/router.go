package app

import (
	"complipilot_backend/docs"
	"complipilot_backend/internal/config"
	"complipilot_backend/internal/middleware"
	"complipilot_backend/internal/model"
	"complipilot_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(), middleware.ActivityMiddleware(repos.user))
	{
		a.registerWorkspaceRoutes(authGroup, c, repos)
	}

	a.registerAdminRoutes(router, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/invitations/accept", c.auth.AcceptInvitation)

		public.GET("/content/testimonials", c.content.Testimonials)
		public.GET("/content/plans", c.content.Plans)
	}
}

func (a *App) registerWorkspaceRoutes(rg *gin.RouterGroup, c *controllers, repos *repositories) {
	rg.GET("/me", c.auth.Me)

	rg.GET("/organization", c.org.Get)
	rg.PUT("/organization/profile", middleware.RoleMiddleware(model.Owner), c.org.UpdateProfile)

	// The summary has nothing to show before the first scored assessment, so
	// the dashboard opens up once onboarding reaches the results step.
	rg.GET("/dashboard",
		middleware.SubscriptionMiddleware(repos.organization),
		middleware.OnboardingMiddleware(repos.organization, model.StepResults),
		c.dashboard.Summary)

	rg.GET("/assessment/questionnaire", c.assessment.Questionnaire)
	rg.PUT("/assessment/answers", c.assessment.SaveAnswer)
	rg.POST("/assessment/submit", c.assessment.Submit)
	rg.GET("/assessment/result", c.assessment.Result)

	rg.GET("/action-plan", c.actionPlan.List)
	rg.PATCH("/action-plan/:id", c.actionPlan.SetCompleted)

	rg.GET("/documents/requirements", c.document.Requirements)
	rg.GET("/documents", c.document.List)
	rg.GET("/documents/:id/download", c.document.Download)

	// Generation hits the paid external renderer, so it sits behind the
	// subscription gate while the checklist stays readable on a lapsed trial.
	rg.POST("/documents/generate",
		middleware.SubscriptionMiddleware(repos.organization),
		c.document.Generate)

	team := rg.Group("/team")
	{
		team.GET("/members", c.team.Members)
		team.GET("/invitations", middleware.RoleMiddleware(model.Owner), c.team.Invitations)
		team.POST("/invitations", middleware.RoleMiddleware(model.Owner), c.team.Invite)
		team.DELETE("/invitations/:id", middleware.RoleMiddleware(model.Owner), c.team.Revoke)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/organizations", c.org.ListOrganizations)
		admin.PUT("/organizations/:id/subscription", c.org.SetSubscription)

		admin.GET("/content/testimonials", c.content.AdminTestimonials)
		admin.POST("/content/testimonials", c.content.CreateTestimonial)
		admin.PUT("/content/testimonials/:id", c.content.UpdateTestimonial)
		admin.DELETE("/content/testimonials/:id", c.content.DeleteTestimonial)

		admin.GET("/content/plans", c.content.AdminPlans)
		admin.POST("/content/plans", c.content.CreatePlan)
		admin.PUT("/content/plans/:id", c.content.UpdatePlan)
	}
}
