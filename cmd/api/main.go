package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/memoday/memoday-backend/internal/config"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/memoday/memoday-backend/internal/handler"
	"github.com/memoday/memoday-backend/internal/middleware"
	"github.com/memoday/memoday-backend/internal/migration"
	"github.com/memoday/memoday-backend/internal/repository"
	"github.com/memoday/memoday-backend/internal/routes"
	"github.com/memoday/memoday-backend/internal/service"
	pkgcache "github.com/memoday/memoday-backend/pkg/cache"
	"github.com/memoday/memoday-backend/pkg/jwt"
	pkglogger "github.com/memoday/memoday-backend/pkg/logger"
	pkgredis "github.com/memoday/memoday-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Memoday Backend API
// @version         1.0
// @description     Memo service - OAuth sign-in and owner-scoped memo CRUD
//
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Session token issued after OAuth sign-in, delivered as the memoday_session cookie

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	pkglogger.Init()
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	// MySQL connection; the service is useless without its store
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis connection (optional, cache only)
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	// Session token manager
	jwtManager := jwt.NewManager(cfg.Session.Secret, cfg.Session.ExpiresIn)

	router := gin.Default()

	// CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = cfg.FrontendURL
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400 * time.Second,
	}))

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "memoday-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// OAuth providers
	oauthSvc := service.NewOAuthService(db, jwtManager)
	registerProviders(oauthSvc, cfg)

	// Memo API
	memoRepo := repository.NewMemoRepository(db)
	memoSvc := service.NewMemoService(memoRepo, cacheService)
	memoHandler := handler.NewMemoHandler(memoSvc)
	routes.SetupMemos(router, memoHandler, jwtManager, cfg.Session.Cookie)

	// Auth API
	authHandler := handler.NewAuthHandler(oauthSvc, cfg.Session.Cookie, cfg.FrontendURL, !cfg.IsDevelopment())
	routes.SetupAuth(router, authHandler, jwtManager, cfg.Session.Cookie)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
}

func registerProviders(svc *service.OAuthService, cfg *config.Config) {
	redirectBase := cfg.OAuth.RedirectBase
	if redirectBase == "" {
		redirectBase = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	if cfg.OAuth.Google.ClientID != "" {
		svc.RegisterProvider(domain.OAuthProviderGoogle, &domain.OAuthConfig{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  redirectBase + "/api/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
		})
	}
	if cfg.OAuth.GitHub.ClientID != "" {
		svc.RegisterProvider(domain.OAuthProviderGitHub, &domain.OAuthConfig{
			ClientID:     cfg.OAuth.GitHub.ClientID,
			ClientSecret: cfg.OAuth.GitHub.ClientSecret,
			RedirectURL:  redirectBase + "/api/auth/github/callback",
			Scopes:       []string{"read:user", "user:email"},
		})
	}
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
