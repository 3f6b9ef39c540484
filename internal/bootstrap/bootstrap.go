package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/skillmap/skillmap/internal/app/controllers"
	appMigrations "github.com/skillmap/skillmap/internal/app/migrations"
	appRepos "github.com/skillmap/skillmap/internal/app/repositories"
	appRoutes "github.com/skillmap/skillmap/internal/app/routes"
	appServices "github.com/skillmap/skillmap/internal/app/services"
	"github.com/skillmap/skillmap/internal/config"
	"github.com/skillmap/skillmap/internal/db"
	appMiddleware "github.com/skillmap/skillmap/internal/middleware"
	pkgAuth "github.com/skillmap/skillmap/internal/pkg/auth"
	"github.com/skillmap/skillmap/internal/pkg/logger"
	"github.com/skillmap/skillmap/internal/pkg/metrics"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services          *appServices.Services
	AuthController    *appControllers.AuthController
	ProfileController *appControllers.ProfileController
	CourseController  *appControllers.CourseController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	LoginLimiter      *appMiddleware.LoginRateLimiter // nil when rate limiting is disabled
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	PasswordHasher    *pkgAuth.PasswordHasher
	Metrics           *metrics.Metrics
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string, envFiles ...string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath, envFiles...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg.Database)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.MigrateOnStart {
		lgr.Info().Msg("Skipping database migrations")
		return database, nil
	}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes services, middleware and controllers on top of repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Repos:   repos,
		Logger:  lgr,
		Metrics: metrics.NewMetrics(),
	}

	jwtService, err := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenTTL:    cfg.JWT.Expiration,
		TokenIssuer: cfg.JWT.Issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	deps.JWTService = jwtService
	deps.PasswordHasher = pkgAuth.NewPasswordHasher(cfg.Auth.BcryptCost)

	deps.Services = appServices.NewServices(
		repos,
		deps.PasswordHasher,
		deps.JWTService,
		appServices.AuthConfig{
			EmailDomain:       cfg.Auth.EmailDomain,
			MinPasswordLength: cfg.Auth.MinPasswordLength,
		},
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, lgr, deps.Metrics)
	if cfg.RateLimit.Enabled {
		deps.LoginLimiter = appMiddleware.NewLoginRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, lgr, deps.Metrics)
	}

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.Auth, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Course)
	deps.AdminController = appControllers.NewAdminController(
		deps.Services.Course,
		deps.Services.Skill,
		deps.Services.Mapping,
		deps.Metrics,
		lgr,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production", gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode configured")

	router := gin.New()
	// With no trusted proxies ClientIP is the connection's remote address and
	// X-Forwarded-For is ignored.
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		lgr.Error().Err(err).Strs("trustedProxies", cfg.Server.TrustedProxies).Msg("Invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		gin.Recovery(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
		appMiddleware.Metrics(deps.Metrics),
	)

	appRoutes.SetupSwagger(router, ginSwagger.DefaultModelsExpandDepth(1))

	appRoutes.SetupRouter(router,
		appRoutes.Controllers{
			Auth:    deps.AuthController,
			Profile: deps.ProfileController,
			Course:  deps.CourseController,
			Admin:   deps.AdminController,
		},
		deps.AuthMiddleware,
		deps.LoginLimiter,
		deps.Metrics,
	)

	return router
}
