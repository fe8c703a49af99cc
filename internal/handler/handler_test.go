package handler

import (
	"testing"

	"github.com/samafzali11/bale-aibot/internal/domain"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "send_support",
			expected: "send_support",
		},
		{
			name:     "string with whitespace",
			input:    "  send_support  ",
			expected: "send_support",
		},
		{
			name:     "string with newline",
			input:    "send\nsupport",
			expected: "sendsupport",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "send\x00support\x01",
			expected: "sendsupport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func markupData(markup *tele.ReplyMarkup) []string {
	var data []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			if btn.Data != "" {
				data = append(data, btn.Data)
			}
		}
	}
	return data
}

// Every button the bot renders must parse back into a known action,
// otherwise a press would fall through as unhandled.
func TestMarkupDataParses(t *testing.T) {
	h := &Handler{channelURL: "https://ble.ir/aibotchannel"}

	markups := map[string]*tele.ReplyMarkup{
		"language": languageMarkup(),
		"join":     h.joinMarkup(domain.LangEn),
		"menu":     mainMenuMarkup(domain.LangEn),
		"support":  supportMarkup(domain.LangFa),
		"chatbot":  chatbotMarkup(domain.LangFa),
		"back":     backMarkup(domain.LangEn),
		"reply":    replyComposeMarkup(domain.LangFa, 42),
	}

	for name, markup := range markups {
		data := markupData(markup)
		assert.NotEmpty(t, data, name)
		for _, d := range data {
			action := domain.ParseAction(cleanCallbackData(d))
			assert.NotEqual(t, domain.ActionUnknown, action.Kind, "%s button %q", name, d)
		}
	}
}

func TestReplyComposeMarkupCarriesTarget(t *testing.T) {
	markup := replyComposeMarkup(domain.LangFa, 42)

	data := markupData(markup)
	assert.Contains(t, data, "send_reply_42")
}
