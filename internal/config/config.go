package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	Analysis     analysis.Settings
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; real env vars
	// take precedence anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "ponto"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Default analysis settings, used until a user saves their own.
	config.Analysis, err = loadAnalysisDefaults()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadAnalysisDefaults() (analysis.Settings, error) {
	settings := analysis.Settings{
		Regular: analysis.Schedule{
			StartMinute:      8 * 60,  // 08:00
			EndMinute:        17 * 60, // 17:00
			LunchStartMinute: 12 * 60,
			LunchEndMinute:   13 * 60,
		},
		Early: analysis.Schedule{
			StartMinute:      7 * 60,  // 07:00
			EndMinute:        16 * 60, // 16:00
			LunchStartMinute: 11*60 + 30,
			LunchEndMinute:   12*60 + 30,
		},
	}

	var err error
	if settings.DuplicateWindowMinutes, err = getEnvInt("ANALYSIS_DUPLICATE_WINDOW_MINUTES", 5); err != nil {
		return analysis.Settings{}, err
	}
	if settings.LunchDurationMinutes, err = getEnvInt("ANALYSIS_LUNCH_DURATION_MINUTES", 60); err != nil {
		return analysis.Settings{}, err
	}
	if settings.LateThresholds.HalfHour, err = getEnvInt("ANALYSIS_LATE_HALF_HOUR_MINUTES", 5); err != nil {
		return analysis.Settings{}, err
	}
	if settings.LateThresholds.FullHour, err = getEnvInt("ANALYSIS_LATE_FULL_HOUR_MINUTES", 35); err != nil {
		return analysis.Settings{}, err
	}
	if settings.OvertimeThresholds.HalfHour, err = getEnvInt("ANALYSIS_OVERTIME_HALF_HOUR_MINUTES", 30); err != nil {
		return analysis.Settings{}, err
	}
	if settings.OvertimeThresholds.FullHour, err = getEnvInt("ANALYSIS_OVERTIME_FULL_HOUR_MINUTES", 60); err != nil {
		return analysis.Settings{}, err
	}
	settings.ShowEmptyDays = getEnv("ANALYSIS_SHOW_EMPTY_DAYS", "false") == "true"

	if err := settings.Validate(); err != nil {
		return analysis.Settings{}, fmt.Errorf("invalid default analysis settings: %w", err)
	}
	return settings, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
