package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/controller"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/configwatcher"
	"quiz_progress_backend/pkg/database"
	"quiz_progress_backend/pkg/logger"
	"quiz_progress_backend/pkg/monitoring"
	"quiz_progress_backend/pkg/security"
	"quiz_progress_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	// 配置文件路径，非空时 Run 会监听文件变化
	ConfigPath string

	tracer          *sdktrace.TracerProvider
	origins         *security.OriginPolicy
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	plan       *repository.PlanRepository
	submission *repository.SubmissionRepository
	assignment *repository.AssignmentRepository
	profile    *repository.ProfileRepository
	motivation *repository.MotivationRepository
	completion *repository.CompletionCache
}

type services struct {
	plan       *service.PlanService
	progress   *service.ProgressService
	submission *service.SubmissionService
	assignment *service.AssignmentService
	profile    *service.ProfileService
	motivation *service.MotivationService
}

type controllers struct {
	plan       *controller.PlanController
	progress   *controller.ProgressController
	submission *controller.SubmissionController
	assignment *controller.AssignmentController
	profile    *controller.ProfileController
	motivation *controller.MotivationController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a reloaded configuration to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		plan:       repository.NewPlanRepository(db),
		submission: repository.NewSubmissionRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		profile:    repository.NewProfileRepository(db),
		motivation: repository.NewMotivationRepository(db),
		completion: repository.NewCompletionCache(rdb, cfg.Redis.CompletionTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	s := &services{}

	profile, err := service.NewProfileService(repos.profile, cfg.Schedule.DefaultTimezone)
	if err != nil {
		return nil, err
	}
	s.profile = profile
	s.motivation = service.NewMotivationService(repos.motivation)
	s.plan = service.NewPlanService(repos.plan)
	s.progress = service.NewProgressService(repos.plan, repos.submission, s.profile, s.motivation, service.SystemClock)
	s.submission = service.NewSubmissionService(repos.submission, repos.assignment, repos.completion, service.SystemClock)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.submission, s.profile, repos.completion, service.SystemClock)

	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		plan:       controller.NewPlanController(s.plan),
		progress:   controller.NewProgressController(s.progress),
		submission: controller.NewSubmissionController(s.submission),
		assignment: controller.NewAssignmentController(s.assignment),
		profile:    controller.NewProfileController(s.profile),
		motivation: controller.NewMotivationController(s.motivation),
		health:     controller.NewHealthController(db, repos.completion),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// 可热更新的配置项：跨域白名单、默认时区、日志级别
func (a *App) registerReloadables() {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		a.origins.SetOrigins(cfg.CORS.AllowedOrigins)
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		if err := a.services.profile.SetDefaultTimezone(cfg.Schedule.DefaultTimezone); err != nil {
			logger.Log.Error("Ignoring reloaded timezone", zap.Error(err))
		}
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		logger.SetLevel(cfg)
	})
}

// Build wires the HTTP stack on top of ready connections; rdb may be nil.
func Build(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		origins: security.NewOriginPolicy(cfg.CORS.AllowedOrigins),
	}

	util.RegisterValidators()

	repos := app.initRepositories(db, rdb, cfg)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, repos, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)
	app.registerReloadables()

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app, err := Build(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to build application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.ConfigPath != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigPath, a.ApplyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Close flushes traces and releases connections.
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
