package handler

import (
	"strings"
	"unicode"

	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/locale"
	"github.com/samafzali11/bale-aibot/internal/service"
	"github.com/samafzali11/bale-aibot/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	users      *service.UserService
	membership *service.MembershipService
	support    *service.SupportService
	chat       *service.ChatService
	states     *state.Store
	supportID  int64
	channelURL string
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	membership *service.MembershipService,
	support *service.SupportService,
	chat *service.ChatService,
	states *state.Store,
	supportID int64,
	channelURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		users:      users,
		membership: membership,
		support:    support,
		chat:       chat,
		states:     states,
		supportID:  supportID,
		channelURL: channelURL,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Anything a user can buffer for support or type at the chatbot
	for _, event := range []string{
		tele.OnText,
		tele.OnPhoto,
		tele.OnVideo,
		tele.OnVoice,
		tele.OnAudio,
		tele.OnDocument,
		tele.OnSticker,
	} {
		h.bot.Handle(event, h.handleMessage)
	}
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// respond edits the tapped message when handling a callback and sends a
// new one otherwise. A failed edit (deleted or too old message) falls
// back to sending.
func (h *Handler) respond(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	send := func() error {
		if markup != nil {
			return c.Send(text, markup)
		}
		return c.Send(text)
	}

	if c.Callback() == nil {
		return send()
	}

	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err != nil {
		if handled := h.handleEditError(err, c); handled == nil {
			return nil
		}
		return send()
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit(). If the message was simply
// not modified, the callback is acknowledged and nil comes back; any other
// failure is returned so the caller can send a fresh message instead.
func (h *Handler) handleEditError(err error, c tele.Context) error {
	userID := c.Sender().ID

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// Inline keyboards

func languageMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("فارسی", "", "lang_fa"),
		markup.Data("English", "", "lang_en"),
	))
	return markup
}

func (h *Handler) joinMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.URL(locale.BtnChannel.In(lang), h.channelURL)),
		markup.Row(markup.Data(locale.BtnCheckJoin.In(lang), "", "check_join")),
	)
	return markup
}

func mainMenuMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(locale.BtnChatbot.In(lang), "", "chatbot")),
		markup.Row(markup.Data(locale.BtnSupport.In(lang), "", "support_open")),
		markup.Row(markup.Data(locale.BtnAbout.In(lang), "", "about_bot")),
		markup.Row(markup.Data(locale.BtnChangeLang.In(lang), "", "change_lang")),
	)
	return markup
}

func supportMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(locale.BtnSendSupport.In(lang), "", "send_support")),
		markup.Row(markup.Data(locale.BtnBackToMenu.In(lang), "", "main_menu")),
	)
	return markup
}

func chatbotMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(locale.BtnExitChatbot.In(lang), "", "exit_chatbot")))
	return markup
}

func backMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(locale.BtnBack.In(lang), "", "main_menu")))
	return markup
}

func replyComposeMarkup(lang domain.Language, target int64) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(locale.BtnSendReply.In(lang), "", domain.SendReplyData(target))),
		markup.Row(markup.Data(locale.BtnBackToMenu.In(lang), "", "main_menu")),
	)
	return markup
}
