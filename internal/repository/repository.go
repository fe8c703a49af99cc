package repository

import (
	"github.com/samafzali11/bale-aibot/internal/domain"
)

// UserRepository defines user-profile persistence operations
type UserRepository interface {
	Get(userID int64) (*domain.UserProfile, error)
	Upsert(profile domain.UserProfile) error
	SetLanguage(userID int64, lang domain.Language) error
}
