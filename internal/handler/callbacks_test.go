package handler

import (
	"errors"
	"testing"

	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/service"
	"github.com/samafzali11/bale-aibot/internal/state"
	"github.com/samafzali11/bale-aibot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const operatorID = int64(1596192209)

type handlerFixture struct {
	handler   *Handler
	store     *state.Store
	repo      *testutil.MockUserRepository
	messenger *testutil.MockMessenger
}

// newHandlerFixture wires a real handler around an offline bot, so
// synthetic updates exercise the full dispatch path. Assertions target
// the state store and the mocks rather than delivery results.
func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	bot, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)

	logger := testutil.NewTestLogger()
	repo := new(testutil.MockUserRepository)
	messenger := new(testutil.MockMessenger)
	store := state.NewStore()
	users := service.NewUserService(repo)

	h := NewHandler(
		bot,
		users,
		service.NewMembershipService(messenger, "@aibotchannel", logger),
		service.NewSupportService(messenger, operatorID, logger),
		service.NewChatService(new(testutil.MockCompleter), logger),
		store,
		operatorID,
		"https://ble.ir/aibotchannel",
		logger,
	)

	return &handlerFixture{
		handler:   h,
		store:     store,
		repo:      repo,
		messenger: messenger,
	}
}

func (f *handlerFixture) callbackContext(userID int64, data string) tele.Context {
	return f.handler.bot.NewContext(tele.Update{
		Callback: &tele.Callback{
			ID:     "cb1",
			Data:   data,
			Sender: &tele.User{ID: userID},
			Message: &tele.Message{
				ID:     99,
				Chat:   &tele.Chat{ID: userID},
				Sender: &tele.User{ID: userID},
			},
		},
	})
}

func (f *handlerFixture) messageContext(userID int64, text string) tele.Context {
	return f.handler.bot.NewContext(tele.Update{
		Message: &tele.Message{
			ID:     1,
			Text:   text,
			Chat:   &tele.Chat{ID: userID},
			Sender: &tele.User{ID: userID},
		},
	})
}

func TestHandleStart_LanguageSetSkipsPicker(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Upsert", mock.Anything).Return(nil)
	f.repo.On("Get", int64(1)).Return(testutil.NewTestProfile(1, "someone", domain.LangEn), nil)
	f.messenger.On("MemberStatus", "@aibotchannel", int64(1)).Return("member", nil)

	f.store.Set(1, domain.ChatbotState())

	_ = f.handler.handleStart(f.messageContext(1, "/start"))

	// A stored language goes straight to the membership check, and the
	// menu reverts the user to idle
	f.messenger.AssertCalled(t, "MemberStatus", "@aibotchannel", int64(1))
	assert.Equal(t, domain.StateIdle, f.store.Get(1).Kind)
}

func TestHandleStart_NoLanguagePromptsPicker(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Upsert", mock.Anything).Return(nil)
	f.repo.On("Get", int64(1)).Return(testutil.NewTestProfile(1, "someone", ""), nil)
	f.messenger.On("MemberStatus", mock.Anything, mock.Anything).Return("member", nil).Maybe()

	_ = f.handler.handleStart(f.messageContext(1, "/start"))

	// No language yet: the picker comes first, membership is not checked
	f.messenger.AssertNotCalled(t, "MemberStatus", mock.Anything, mock.Anything)
}

func TestHandleStart_MembershipDeniedSkipsMenu(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Upsert", mock.Anything).Return(nil)
	f.repo.On("Get", int64(1)).Return(testutil.NewTestProfile(1, "someone", domain.LangEn), nil)
	f.messenger.On("MemberStatus", "@aibotchannel", int64(1)).Return("left", nil)

	f.store.Set(1, domain.ChatbotState())

	_ = f.handler.handleStart(f.messageContext(1, "/start"))

	// The join prompt never reaches the menu, which would reset state
	assert.Equal(t, domain.StateChatbotActive, f.store.Get(1).Kind)
}

func TestHandleCallback_ReplySupportNonOperator(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Get", int64(555)).Return(testutil.NewTestProfile(555, "", domain.LangFa), nil)

	_ = f.handler.handleCallback(f.callbackContext(555, "reply_support_42"))

	// Someone else's reply control must not move this user into reply mode
	assert.Equal(t, domain.StateIdle, f.store.Get(555).Kind)
	assert.Equal(t, domain.StateIdle, f.store.Get(operatorID).Kind)
}

func TestHandleCallback_ReplySupportOperator(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Get", operatorID).Return(testutil.NewTestProfile(operatorID, "op", domain.LangFa), nil)

	_ = f.handler.handleCallback(f.callbackContext(operatorID, "reply_support_42"))

	st := f.store.Get(operatorID)
	assert.Equal(t, domain.StateSupportReplying, st.Kind)
	assert.Equal(t, int64(42), st.Target)
	assert.Empty(t, st.Buffered)
}

func TestHandleCallback_SendSupportEmptyBuffer(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Upsert", mock.Anything).Return(nil)
	f.repo.On("Get", int64(555)).Return(testutil.NewTestProfile(555, "", domain.LangFa), nil)

	f.store.Set(555, domain.CollectingState())

	_ = f.handler.handleCallback(f.callbackContext(555, "send_support"))

	// Nothing to flush: state stays put so the user can keep collecting
	st := f.store.Get(555)
	assert.Equal(t, domain.StateSupportCollecting, st.Kind)
	assert.Empty(t, st.Buffered)
	f.messenger.AssertNumberOfCalls(t, "Send", 0)
	f.messenger.AssertNumberOfCalls(t, "Forward", 0)
}

func TestHandleCallback_SendSupportFlushes(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Upsert", mock.Anything).Return(nil)
	f.repo.On("Get", int64(555)).Return(testutil.NewTestProfile(555, "someone", domain.LangFa), nil)
	f.messenger.On("Send", operatorID, mock.Anything, mock.Anything).Return(nil)
	f.messenger.On("Forward", operatorID, mock.Anything).Return(nil)

	refs := []domain.MessageRef{
		{ChatID: 555, MessageID: 1},
		{ChatID: 555, MessageID: 2},
	}
	f.store.Set(555, domain.ConversationState{
		Kind:     domain.StateSupportCollecting,
		Buffered: refs,
	})

	_ = f.handler.handleCallback(f.callbackContext(555, "send_support"))

	assert.Equal(t, domain.StateIdle, f.store.Get(555).Kind)
	// Header, both forwards, reply control
	f.messenger.AssertNumberOfCalls(t, "Send", 2)
	f.messenger.AssertNumberOfCalls(t, "Forward", 2)
}

func TestHandleCallback_SendSupportHeaderFailureKeepsBatch(t *testing.T) {
	f := newHandlerFixture(t)
	f.repo.On("Upsert", mock.Anything).Return(nil)
	f.repo.On("Get", int64(555)).Return(testutil.NewTestProfile(555, "someone", domain.LangFa), nil)
	f.messenger.On("Send", operatorID, mock.Anything, mock.Anything).Return(errors.New("blocked"))

	refs := []domain.MessageRef{
		{ChatID: 555, MessageID: 1},
		{ChatID: 555, MessageID: 2},
	}
	f.store.Set(555, domain.ConversationState{
		Kind:     domain.StateSupportCollecting,
		Buffered: refs,
	})

	_ = f.handler.handleCallback(f.callbackContext(555, "send_support"))

	// Undelivered batch is restored so the user can retry
	st := f.store.Get(555)
	assert.Equal(t, domain.StateSupportCollecting, st.Kind)
	assert.Equal(t, refs, st.Buffered)
	f.messenger.AssertNumberOfCalls(t, "Forward", 0)
}
