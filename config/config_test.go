package config

import (
	"os"
	"reflect"
	"testing"
)

// unsetEnv removes key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "SERVER_PORT", "RATE_LIMIT_AUTH", "RATE_LIMIT_JOIN",
		"REDIS_ENABLED", "SEED_DEMO_ACCOUNT", "DEMO_EMAIL", "DEMO_PASSWORD",
		"CORS_ALLOWED_ORIGINS",
	} {
		unsetEnv(t, key)
	}

	if err := LoadConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if AppConfig.ServerPort != "5000" || AppConfig.Environment != "development" {
		t.Fatalf("unexpected defaults: %+v", AppConfig)
	}
	if AppConfig.RateLimitAuth != 10 || AppConfig.RateLimitJoin != 5 {
		t.Fatalf("unexpected rate limits: %+v", AppConfig)
	}
	if !AppConfig.DemoAccount.Enabled || AppConfig.DemoAccount.Email != "User1@gmail.com" {
		t.Fatalf("expected demo account seeded by default, got %+v", AppConfig.DemoAccount)
	}
	if !reflect.DeepEqual(AppConfig.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Fatalf("unexpected origins %v", AppConfig.AllowedOrigins)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("RATE_LIMIT_AUTH", "3")
	t.Setenv("RATE_LIMIT_JOIN", "2")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("SEED_DEMO_ACCOUNT", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	if err := LoadConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !AppConfig.IsProduction() || AppConfig.ServerPort != "8080" {
		t.Fatalf("unexpected config: %+v", AppConfig)
	}
	if AppConfig.RateLimitAuth != 3 || AppConfig.RateLimitJoin != 2 {
		t.Fatalf("unexpected rate limits: %+v", AppConfig)
	}
	if !AppConfig.Redis.Enabled || AppConfig.Redis.DB != 4 {
		t.Fatalf("unexpected redis config: %+v", AppConfig.Redis)
	}
	if AppConfig.DemoAccount.Enabled {
		t.Fatalf("expected demo account disabled")
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(AppConfig.AllowedOrigins, want) {
		t.Fatalf("expected %v, got %v", want, AppConfig.AllowedOrigins)
	}
}

func TestLoadConfig_RejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("RATE_LIMIT_AUTH", "0")
	t.Setenv("RATE_LIMIT_JOIN", "5")

	if err := LoadConfig(); err == nil {
		t.Fatalf("expected error")
	}
}
