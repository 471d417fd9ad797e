package app

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidquiz_backend/internal/config"
	"kidquiz_backend/internal/controller"
	"kidquiz_backend/internal/repository"
	"kidquiz_backend/internal/service"
	"kidquiz_backend/pkg/database"
	"kidquiz_backend/pkg/logger"
	"kidquiz_backend/pkg/monitoring"
	"kidquiz_backend/pkg/security"
	"kidquiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	quiz    *repository.QuizRepository
	attempt *repository.AttemptRepository
	reward  *repository.RewardRepository
}

type services struct {
	auth        *service.AuthService
	quiz        *service.QuizService
	progression *service.ProgressionService
	progress    *service.ProgressService
	reward      *service.RewardService
	user        *service.UserService
}

type controllers struct {
	auth      *controller.AuthController
	quiz      *controller.QuizController
	dashboard *controller.DashboardController
	parent    *controller.ParentController
	reward    *controller.RewardController
	health    *controller.HealthController
}

// RegisterConfigCallback subscribes to config hot reloads.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps the active config and notifies subscribers.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		quiz:    repository.NewQuizRepository(db),
		attempt: repository.NewAttemptRepository(db),
		reward:  repository.NewRewardRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &services{}
	s.auth = service.NewAuthService(repos.user, repos.reward, cfg)
	s.quiz = service.NewQuizService(repos.quiz, rdb)
	s.progression = service.NewProgressionService(db, rng)
	s.progress = service.NewProgressService(repos.attempt)
	s.reward = service.NewRewardService(repos.reward, repos.user, rng)
	s.user = service.NewUserService(repos.user)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		quiz:      controller.NewQuizController(s.quiz, s.progression),
		dashboard: controller.NewDashboardController(s.user, s.reward),
		parent:    controller.NewParentController(s.user, s.progress),
		reward:    controller.NewRewardController(s.user, s.reward),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(func() []string {
		return a.Config.CORS.AllowedOrigins
	}))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
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

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Redis only backs the quiz read cache; the service degrades without it.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, quiz cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kidquiz-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	log.Println("Server exiting")
}
