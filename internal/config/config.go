package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/memoday/memoday-backend/pkg/logger"
	"gopkg.in/yaml.v3"
)

// DevSessionSecret is the fallback signing secret used when SESSION_SECRET is
// not configured. It must never reach production; Load logs a warning when it
// is in effect.
const DevSessionSecret = "memoday-dev-secret-do-not-deploy"

// Config application configuration
type Config struct {
	Env    string `yaml:"env"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`
	Session struct {
		Secret string `yaml:"secret"`
		// yaml.v3 has no native duration decoding, so the file carries
		// a string like "24h" and Load parses it into ExpiresIn.
		ExpiresInText string        `yaml:"expires_in"`
		ExpiresIn     time.Duration `yaml:"-"`
		Cookie        string        `yaml:"cookie"`
	} `yaml:"session"`
	OAuth struct {
		RedirectBase string        `yaml:"redirect_base"`
		Google       OAuthProvider `yaml:"google"`
		GitHub       OAuthProvider `yaml:"github"`
	} `yaml:"oauth"`
	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`
	FrontendURL string `yaml:"frontend_url"`
}

// OAuthProvider client credentials for one provider
type OAuthProvider struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// Load reads the YAML config file and applies environment overrides.
// A missing file is not fatal; env vars alone can configure the process.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Session.ExpiresInText != "" {
		d, err := time.ParseDuration(cfg.Session.ExpiresInText)
		if err != nil {
			return nil, fmt.Errorf("parse session expires_in %q: %w", cfg.Session.ExpiresInText, err)
		}
		cfg.Session.ExpiresIn = d
	}

	if cfg.Session.Secret == "" {
		cfg.Session.Secret = DevSessionSecret
		logger.Warn("SESSION_SECRET is not set; using the built-in development secret. Do not deploy this configuration.")
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Env = "local"
	cfg.Server.Port = 8080
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 3306
	cfg.Database.User = "memoday"
	cfg.Database.Name = "memoday"
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = 6379
	cfg.Redis.PoolSize = 10
	cfg.Session.ExpiresIn = 24 * time.Hour
	cfg.Session.Cookie = "memoday_session"
	cfg.FrontendURL = "http://localhost:3000"
	return cfg
}

func applyEnv(cfg *Config) {
	setStr(&cfg.Env, "APP_ENV")
	setInt(&cfg.Server.Port, "PORT")
	setStr(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setStr(&cfg.Database.User, "DB_USER")
	setStr(&cfg.Database.Password, "DB_PASSWORD")
	setStr(&cfg.Database.Name, "DB_NAME")
	setStr(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setStr(&cfg.Redis.Password, "REDIS_PASSWORD")
	setStr(&cfg.Session.Secret, "SESSION_SECRET")
	setStr(&cfg.Session.ExpiresInText, "SESSION_EXPIRES_IN")
	setStr(&cfg.OAuth.RedirectBase, "OAUTH_REDIRECT_BASE")
	setStr(&cfg.OAuth.Google.ClientID, "GOOGLE_CLIENT_ID")
	setStr(&cfg.OAuth.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setStr(&cfg.OAuth.GitHub.ClientID, "GITHUB_CLIENT_ID")
	setStr(&cfg.OAuth.GitHub.ClientSecret, "GITHUB_CLIENT_SECRET")
	setStr(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
	setStr(&cfg.FrontendURL, "FRONTEND_URL")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// DSN builds the MySQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// IsDevelopment reports whether the process runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "local" || c.Env == "dev" || c.Env == "development"
}

// LogResolved logs the effective configuration without secrets
func LogResolved(cfg *Config) {
	logger.Info("config: env=%s port=%d db=%s@%s:%d/%s redis=%s:%d cookie=%s",
		cfg.Env, cfg.Server.Port,
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name,
		cfg.Redis.Host, cfg.Redis.Port, cfg.Session.Cookie)
}
