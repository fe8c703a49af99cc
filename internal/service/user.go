package service

import (
	"fmt"

	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/repository"
)

// UserService manages user profiles
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RecordProfile stores or refreshes the user's profile fields without
// reading the row back. Cheap enough to run on every inbound update.
func (s *UserService) RecordProfile(userID int64, username, firstName, lastName string) error {
	return s.userRepo.Upsert(domain.UserProfile{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	})
}

// EnsureProfile records the user, refreshing profile fields, and returns
// the stored profile.
func (s *UserService) EnsureProfile(userID int64, username, firstName, lastName string) (*domain.UserProfile, error) {
	if err := s.RecordProfile(userID, username, firstName, lastName); err != nil {
		return nil, err
	}

	profile, err := s.userRepo.Get(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("user %d missing after upsert", userID)
	}
	return profile, nil
}

// SetLanguage stores the user's language preference
func (s *UserService) SetLanguage(userID int64, lang domain.Language) error {
	return s.userRepo.SetLanguage(userID, lang)
}

// Language returns the user's language for rendering messages.
// Unknown users, unset preferences and lookup failures all fall back to
// Persian, so a profile-store hiccup never blocks a reply.
func (s *UserService) Language(userID int64) domain.Language {
	profile, err := s.userRepo.Get(userID)
	if err != nil || profile == nil {
		return domain.LangFa
	}
	if lang, ok := domain.ParseLanguage(string(profile.Language)); ok {
		return lang
	}
	return domain.LangFa
}
