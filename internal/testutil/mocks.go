package testutil

import (
	"context"

	"github.com/samafzali11/bale-aibot/internal/domain"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(userID int64) (*domain.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Upsert(profile domain.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserRepository) SetLanguage(userID int64, lang domain.Language) error {
	args := m.Called(userID, lang)
	return args.Error(0)
}

// MockMessenger is a mock for transport.Messenger
type MockMessenger struct {
	mock.Mock

	// Calls in invocation order, for asserting delivery order
	Log []string
}

func (m *MockMessenger) Send(chatID int64, text string, markup *tele.ReplyMarkup) error {
	m.Log = append(m.Log, "send")
	args := m.Called(chatID, text, markup)
	return args.Error(0)
}

func (m *MockMessenger) Forward(toChatID int64, ref domain.MessageRef) error {
	m.Log = append(m.Log, "forward")
	args := m.Called(toChatID, ref)
	return args.Error(0)
}

func (m *MockMessenger) MemberStatus(channelID string, userID int64) (string, error) {
	args := m.Called(channelID, userID)
	return args.String(0), args.Error(1)
}

// MockCompleter is a mock for service.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}
