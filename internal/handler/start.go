package handler

import (
	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/locale"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start. Repeating it once a language is set goes
// straight to the membership check without re-prompting.
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	profile, err := h.users.EnsureProfile(sender.ID, sender.Username, sender.FirstName, sender.LastName)
	if err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err), zap.Int64("user_id", sender.ID))
		return c.Send(locale.GenericError.In(domain.LangFa))
	}

	if profile.HasLanguage() {
		return h.checkMembership(c, profile.Language)
	}

	return h.respond(c, locale.ChooseLanguage, languageMarkup())
}

// checkMembership gates the menu behind the channel subscription
func (h *Handler) checkMembership(c tele.Context, lang domain.Language) error {
	if h.membership.IsMember(c.Sender().ID) {
		return h.showMainMenu(c, lang)
	}

	return h.respond(c, locale.JoinPrompt.In(lang), h.joinMarkup(lang))
}

// showMainMenu presents the menu and reverts the user to idle, discarding
// any unflushed support buffer or active chat mode.
func (h *Handler) showMainMenu(c tele.Context, lang domain.Language) error {
	h.states.Reset(c.Sender().ID)
	return h.respond(c, locale.MainMenu.In(lang), mainMenuMarkup(lang))
}
