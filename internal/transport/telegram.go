// Package transport narrows the bot API down to the primitives the
// services need, so they stay testable without a live bot.
package transport

import (
	"strconv"

	"github.com/samafzali11/bale-aibot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Messenger describes the outbound operations the services use
type Messenger interface {
	Send(chatID int64, text string, markup *tele.ReplyMarkup) error
	Forward(toChatID int64, ref domain.MessageRef) error
	MemberStatus(channelID string, userID int64) (string, error)
}

// Telegram implements Messenger over a telebot instance
type Telegram struct {
	bot *tele.Bot
}

// NewTelegram wraps a bot
func NewTelegram(bot *tele.Bot) *Telegram {
	return &Telegram{bot: bot}
}

// Send delivers a text message, optionally with an inline keyboard
func (t *Telegram) Send(chatID int64, text string, markup *tele.ReplyMarkup) error {
	var err error
	if markup != nil {
		_, err = t.bot.Send(tele.ChatID(chatID), text, markup)
	} else {
		_, err = t.bot.Send(tele.ChatID(chatID), text)
	}
	return err
}

// Forward re-sends an existing message to another chat
func (t *Telegram) Forward(toChatID int64, ref domain.MessageRef) error {
	_, err := t.bot.Forward(tele.ChatID(toChatID), tele.StoredMessage{
		MessageID: strconv.Itoa(ref.MessageID),
		ChatID:    ref.ChatID,
	})
	return err
}

// channel lets a "@username" channel id act as a recipient
type channel string

func (c channel) Recipient() string { return string(c) }

// MemberStatus returns the user's membership status in the channel
func (t *Telegram) MemberStatus(channelID string, userID int64) (string, error) {
	member, err := t.bot.ChatMemberOf(channel(channelID), &tele.User{ID: userID})
	if err != nil {
		return "", err
	}
	return string(member.Role), nil
}
