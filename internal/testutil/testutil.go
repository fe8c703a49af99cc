package testutil

import (
	"time"

	"github.com/samafzali11/bale-aibot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestProfile creates a test user profile
func NewTestProfile(userID int64, username string, lang domain.Language) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:    userID,
		Username:  username,
		Language:  lang,
		CreatedAt: time.Now(),
	}
}
