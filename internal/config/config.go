package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	BotAPIURL  string // Bale gateway; empty means the default Telegram API
	SupportID  int64
	ChannelID  string
	ChannelURL string
	WebhookURL string // empty means long polling
	Port       string
	Database   DatabaseConfig
	AI         AIConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// AIConfig holds completion endpoint settings
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		BotAPIURL:  getEnv("BOT_API_URL", "https://tapi.bale.ai"),
		ChannelID:  getEnv("CHANNEL_ID", "@aibotchannel"),
		ChannelURL: getEnv("CHANNEL_URL", "https://ble.ir/aibotchannel"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
		Port:       getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "aibot"),
			User:     getEnv("DB_USER", "aibot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		AI: AIConfig{
			BaseURL: getEnv("AI_BASE_URL", "https://router.huggingface.co/v1"),
			APIKey:  os.Getenv("AI_API_KEY"),
			Model:   getEnv("AI_MODEL", "zai-org/GLM-4.7:novita"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is required")
	}

	supportID, err := strconv.ParseInt(os.Getenv("SUPPORT_ID"), 10, 64)
	if err != nil || supportID == 0 {
		return nil, fmt.Errorf("SUPPORT_ID must be a numeric user id")
	}
	cfg.SupportID = supportID

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
