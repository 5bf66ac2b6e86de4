package app

import (
	"complipilot_backend/internal/config"
	"complipilot_backend/internal/controller"
	"complipilot_backend/internal/repository"
	"complipilot_backend/internal/scoring"
	"complipilot_backend/internal/service"
	"complipilot_backend/pkg/configwatcher"
	"complipilot_backend/pkg/database"
	"complipilot_backend/pkg/logger"
	"complipilot_backend/pkg/monitoring"
	"complipilot_backend/pkg/security"
	"complipilot_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
	tracerProvider  *sdktrace.TracerProvider
}

type repositories struct {
	user         *repository.UserRepository
	organization *repository.OrganizationRepository
	assessment   *repository.AssessmentRepository
	document     *repository.DocumentRepository
	actionPlan   *repository.ActionPlanRepository
	invitation   *repository.InvitationRepository
	content      *repository.ContentRepository
}

type services struct {
	auth       *service.AuthService
	org        *service.OrganizationService
	assessment *service.AssessmentService
	actionPlan *service.ActionPlanService
	document   *service.DocumentService
	invitation *service.InvitationService
	dashboard  *service.DashboardService
	content    *service.ContentService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	org        *controller.OrganizationController
	assessment *controller.AssessmentController
	actionPlan *controller.ActionPlanController
	document   *controller.DocumentController
	team       *controller.TeamController
	dashboard  *controller.DashboardController
	content    *controller.ContentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		organization: repository.NewOrganizationRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		document:     repository.NewDocumentRepository(db),
		actionPlan:   repository.NewActionPlanRepository(db),
		invitation:   repository.NewInvitationRepository(db),
		content:      repository.NewContentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client, catalog []scoring.Question) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.organization, cfg)
	s.org = service.NewOrganizationService(repos.organization)
	s.actionPlan = service.NewActionPlanService(repos.actionPlan)
	s.assessment = service.NewAssessmentService(repos.assessment, s.org, s.actionPlan, rdb, catalog)

	docGenClient := service.NewDocGenClient(&cfg.DocGen)
	s.document = service.NewDocumentService(repos.document, repos.organization, s.assessment, s.org, s.storage, docGenClient, catalog)

	s.invitation = service.NewInvitationService(repos.invitation, repos.user, repos.organization, s.org)
	s.dashboard = service.NewDashboardService(repos.organization, repos.user, s.assessment, s.actionPlan, s.document, rdb)
	s.content = service.NewContentService(repos.content)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.invitation, s.org),
		org:        controller.NewOrganizationController(s.org),
		assessment: controller.NewAssessmentController(s.assessment),
		actionPlan: controller.NewActionPlanController(s.actionPlan),
		document:   controller.NewDocumentController(s.document),
		team:       controller.NewTeamController(s.invitation),
		dashboard:  controller.NewDashboardController(s.dashboard),
		content:    controller.NewContentController(s.content),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	catalog := scoring.Catalog()
	if err := scoring.ValidateCatalog(catalog); err != nil {
		logger.Log.Fatal("Invalid question catalog", zap.Error(err))
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		logger.Log.Info("Migration completed, exiting")
		os.Exit(0)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, answer mirroring and dashboard caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb, catalog)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("complipilot", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/documents", cfg.Storage.LocalPath)
	}

	// Document service credentials can rotate without a restart.
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.document.Client.BaseURL = newCfg.DocGen.BaseURL
		services.document.Client.APIKey = newCfg.DocGen.APIKey
	})

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
		logger.Log.Info("Configuration reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
