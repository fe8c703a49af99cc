package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad(t *testing.T) {
	keys := []string{"BOT_TOKEN", "DB_PASSWORD", "AI_API_KEY", "SUPPORT_ID"}

	setAll := func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "token")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("AI_API_KEY", "hf_key")
		t.Setenv("SUPPORT_ID", "1596192209")
	}

	t.Run("all required fields present", func(t *testing.T) {
		setAll(t)

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "token", cfg.BotToken)
		assert.Equal(t, int64(1596192209), cfg.SupportID)
		assert.Equal(t, "@aibotchannel", cfg.ChannelID)
		assert.Equal(t, "https://tapi.bale.ai", cfg.BotAPIURL)
		assert.Equal(t, "8080", cfg.Port)
	})

	for _, missing := range keys {
		t.Run("missing "+missing, func(t *testing.T) {
			setAll(t)
			t.Setenv(missing, "")

			_, err := Load()

			assert.Error(t, err)
		})
	}

	t.Run("non-numeric support id", func(t *testing.T) {
		setAll(t)
		t.Setenv("SUPPORT_ID", "operator")

		_, err := Load()

		assert.Error(t, err)
	})
}
