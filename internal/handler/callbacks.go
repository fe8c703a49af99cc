package handler

import (
	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/locale"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCallback routes every inline-button press through the closed
// action set. Unrecognized data is acknowledged and dropped.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	if data == "" {
		data = cleanCallbackData(callback.Unique)
	}

	userID := c.Sender().ID
	lang := h.users.Language(userID)

	h.logger.Info("Processing callback",
		zap.String("data", data),
		zap.Int64("user_id", userID),
	)

	action := domain.ParseAction(data)
	switch action.Kind {
	case domain.ActionLangFa:
		return h.handleLanguageSelected(c, domain.LangFa)
	case domain.ActionLangEn:
		return h.handleLanguageSelected(c, domain.LangEn)
	case domain.ActionCheckJoin:
		return h.checkMembership(c, lang)
	case domain.ActionChangeLang:
		return h.respond(c, locale.ChooseNewLanguage.In(lang), languageMarkup())
	case domain.ActionAboutBot:
		return h.respond(c, locale.About.In(lang), backMarkup(lang))
	case domain.ActionMainMenu:
		return h.showMainMenu(c, lang)
	case domain.ActionSupportOpen:
		h.states.Set(userID, domain.CollectingState())
		return h.respond(c, locale.SupportIntro.In(lang), supportMarkup(lang))
	case domain.ActionSendSupport:
		return h.handleSendSupport(c, lang)
	case domain.ActionChatbot:
		h.states.Set(userID, domain.ChatbotState())
		return h.respond(c, locale.ChatbotIntro.In(lang), chatbotMarkup(lang))
	case domain.ActionExitChatbot:
		return h.showMainMenu(c, lang)
	case domain.ActionReplySupport:
		return h.handleReplySupport(c, action.Target, lang)
	case domain.ActionSendReply:
		return h.handleSendReply(c, action.Target, lang)
	}

	h.logger.Warn("Unhandled callback", zap.String("data", data))
	return c.Respond()
}

// handleLanguageSelected persists the choice and continues with the
// membership check, same as a fresh /start.
func (h *Handler) handleLanguageSelected(c tele.Context, lang domain.Language) error {
	userID := c.Sender().ID

	if err := h.users.SetLanguage(userID, lang); err != nil {
		h.logger.Error("Failed to save language", zap.Error(err), zap.Int64("user_id", userID))
		return h.respond(c, locale.GenericError.In(lang), nil)
	}

	return h.checkMembership(c, lang)
}

// handleSendSupport flushes the user's collected ticket to the operator
func (h *Handler) handleSendSupport(c tele.Context, lang domain.Language) error {
	sender := c.Sender()
	userID := sender.ID

	// The buffer stays untouched until the sender profile is in hand
	profile, err := h.users.EnsureProfile(sender.ID, sender.Username, sender.FirstName, sender.LastName)
	if err != nil {
		h.logger.Error("Failed to load sender profile", zap.Error(err), zap.Int64("user_id", userID))
		return h.respond(c, locale.GenericError.In(lang), nil)
	}

	// Take the buffer and revert to idle in one step, so a message
	// arriving mid-flush cannot land in a half-flushed batch.
	var refs []domain.MessageRef
	h.states.Update(userID, func(s *domain.ConversationState) {
		if s.Kind == domain.StateSupportCollecting && len(s.Buffered) > 0 {
			refs = s.Buffered
			*s = domain.IdleState()
		}
	})

	if len(refs) == 0 {
		return h.respond(c, locale.NothingToSend.In(lang), nil)
	}

	if err := h.support.FlushTicket(profile, refs); err != nil {
		h.logger.Error("Failed to deliver ticket", zap.Error(err), zap.Int64("user_id", userID))
		// Nothing reached the operator; put the batch back so the
		// user can retry instead of losing it.
		h.states.Update(userID, func(s *domain.ConversationState) {
			if s.Kind == domain.StateIdle {
				*s = domain.ConversationState{
					Kind:     domain.StateSupportCollecting,
					Buffered: refs,
				}
			}
		})
		return h.respond(c, locale.GenericError.In(lang), nil)
	}

	return h.respond(c, locale.TicketSent.In(lang), nil)
}

// handleReplySupport puts the operator into reply mode for one user.
// Only the configured support identity may enter it.
func (h *Handler) handleReplySupport(c tele.Context, target int64, lang domain.Language) error {
	userID := c.Sender().ID

	if userID != h.supportID {
		h.logger.Warn("Reply control pressed by non-operator",
			zap.Int64("user_id", userID),
			zap.Int64("target", target),
		)
		return c.Respond()
	}

	h.states.Set(userID, domain.ReplyingState(target))
	return h.respond(c, locale.ReplyIntro.In(lang), replyComposeMarkup(lang, target))
}

// handleSendReply flushes the operator's buffered reply back to the user
func (h *Handler) handleSendReply(c tele.Context, target int64, lang domain.Language) error {
	userID := c.Sender().ID

	if userID != h.supportID {
		h.logger.Warn("Send-reply control pressed by non-operator",
			zap.Int64("user_id", userID),
			zap.Int64("target", target),
		)
		return c.Respond()
	}

	var refs []domain.MessageRef
	h.states.Update(userID, func(s *domain.ConversationState) {
		if s.Kind == domain.StateSupportReplying && s.Target == target && len(s.Buffered) > 0 {
			refs = s.Buffered
			*s = domain.IdleState()
		}
	})

	if len(refs) == 0 {
		return h.respond(c, locale.NothingToSend.In(lang), nil)
	}

	targetLang := h.users.Language(target)
	if err := h.support.FlushReply(target, targetLang, refs); err != nil {
		h.logger.Error("Failed to deliver reply",
			zap.Error(err),
			zap.Int64("target", target),
		)
		return h.respond(c, locale.GenericError.In(lang), nil)
	}

	return h.respond(c, locale.ReplySent.In(lang), nil)
}
