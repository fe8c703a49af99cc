package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/samafzali11/bale-aibot/internal/ai"
	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/locale"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMessage dispatches any inbound content on the user's current state
func (h *Handler) handleMessage(c tele.Context) error {
	userID := c.Sender().ID
	lang := h.users.Language(userID)

	st := h.states.Get(userID)
	switch st.Kind {
	case domain.StateSupportCollecting, domain.StateSupportReplying:
		return h.bufferMessage(c, lang)
	case domain.StateChatbotActive:
		return h.handleChatMessage(c, lang)
	default:
		// Idle: point at the menu, touch nothing
		return c.Reply(locale.UseMenuHint.In(lang))
	}
}

// bufferMessage appends the message to the active batch. Re-delivery of
// the same message buffers it once.
func (h *Handler) bufferMessage(c tele.Context, lang domain.Language) error {
	userID := c.Sender().ID
	ref := domain.MessageRef{
		ChatID:    c.Chat().ID,
		MessageID: c.Message().ID,
	}

	h.states.Update(userID, func(s *domain.ConversationState) {
		if s.Buffering() {
			s.Append(ref)
		}
	})

	return c.Reply(locale.Received.In(lang))
}

// handleChatMessage runs one AI round for the user's text
func (h *Handler) handleChatMessage(c tele.Context, lang domain.Language) error {
	userID := c.Sender().ID

	prompt := strings.TrimSpace(c.Text())
	if prompt == "" {
		return nil
	}

	chunks, err := h.chat.Ask(context.Background(), prompt)
	if err != nil {
		if errors.Is(err, ai.ErrTimeout) {
			h.logger.Warn("Completion timed out", zap.Int64("user_id", userID))
			return c.Reply(locale.AITimeout.In(lang))
		}
		h.logger.Error("Completion failed", zap.Error(err), zap.Int64("user_id", userID))
		return c.Reply(locale.AIFailure.In(lang))
	}

	// The user may have left chatbot mode while the completion was
	// running; a late answer is dropped rather than delivered out of band.
	if h.states.Get(userID).Kind != domain.StateChatbotActive {
		h.logger.Info("Discarding stale completion answer", zap.Int64("user_id", userID))
		return nil
	}

	for _, chunk := range chunks {
		if err := c.Reply(chunk); err != nil {
			h.logger.Error("Failed to send answer chunk", zap.Error(err), zap.Int64("user_id", userID))
			return nil
		}
	}
	return nil
}
