package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

// DemoAccountConfig describes the Premium account seeded at startup
type DemoAccountConfig struct {
	Enabled  bool   `json:"enabled"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Username string `json:"username"`
}

type Config struct {
	Environment    string            `json:"environment"`
	ServerPort     string            `json:"server_port"`
	LogLevel       string            `json:"log_level"`
	LogJSON        bool              `json:"log_json"`
	SentryDSN      string            `json:"-"`
	AllowedOrigins []string          `json:"allowed_origins"`
	RateLimitAuth  int               `json:"rate_limit_auth"`
	RateLimitJoin  int               `json:"rate_limit_join"`
	Redis          RedisConfig       `json:"redis"`
	DemoAccount    DemoAccountConfig `json:"demo_account"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogJSON:        getEnvAsBool("LOG_JSON", false),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitAuth:  getEnvAsInt("RATE_LIMIT_AUTH", 10),
		RateLimitJoin:  getEnvAsInt("RATE_LIMIT_JOIN", 5),
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		DemoAccount: DemoAccountConfig{
			Enabled:  getEnvAsBool("SEED_DEMO_ACCOUNT", true),
			Email:    getEnv("DEMO_EMAIL", "User1@gmail.com"),
			Password: getEnv("DEMO_PASSWORD", "user12345"),
			Username: getEnv("DEMO_USERNAME", "PremiumUser"),
		},
	}

	// Validate required configurations
	if AppConfig.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if AppConfig.RateLimitAuth <= 0 || AppConfig.RateLimitJoin <= 0 {
		return fmt.Errorf("RATE_LIMIT_AUTH and RATE_LIMIT_JOIN must be positive")
	}
	if AppConfig.DemoAccount.Enabled && (AppConfig.DemoAccount.Email == "" || AppConfig.DemoAccount.Password == "") {
		return fmt.Errorf("DEMO_EMAIL and DEMO_PASSWORD are required when SEED_DEMO_ACCOUNT is set")
	}
	if AppConfig.Environment == "production" && AppConfig.DemoAccount.Enabled {
		log.Println("⚠️ Demo account seeding is enabled in production")
	}

	logConfig()
	return nil
}

// IsProduction reports whether the app runs with production settings
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func logConfig() {
	log.Println("🔧 Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Log Level: %s", AppConfig.LogLevel)
	log.Printf("Sentry: %t, Redis: %t", AppConfig.SentryDSN != "", AppConfig.Redis.Enabled)
	log.Printf("Demo account: %t", AppConfig.DemoAccount.Enabled)
}
