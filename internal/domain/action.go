package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind enumerates every inline-button action the bot understands
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionLangFa
	ActionLangEn
	ActionCheckJoin
	ActionChangeLang
	ActionAboutBot
	ActionMainMenu
	ActionSupportOpen
	ActionSendSupport
	ActionChatbot
	ActionExitChatbot
	ActionReplySupport
	ActionSendReply
)

// Action is a parsed callback payload. Target is set only for the
// reply_support_{id} and send_reply_{id} forms.
type Action struct {
	Kind   ActionKind
	Target int64
}

const (
	replySupportPrefix = "reply_support_"
	sendReplyPrefix    = "send_reply_"
)

// ParseAction maps raw callback data onto the closed action set.
// Anything it does not recognize comes back as ActionUnknown.
func ParseAction(data string) Action {
	switch data {
	case "lang_fa":
		return Action{Kind: ActionLangFa}
	case "lang_en":
		return Action{Kind: ActionLangEn}
	case "check_join":
		return Action{Kind: ActionCheckJoin}
	case "change_lang":
		return Action{Kind: ActionChangeLang}
	case "about_bot":
		return Action{Kind: ActionAboutBot}
	case "main_menu":
		return Action{Kind: ActionMainMenu}
	case "support_open":
		return Action{Kind: ActionSupportOpen}
	case "send_support":
		return Action{Kind: ActionSendSupport}
	case "chatbot":
		return Action{Kind: ActionChatbot}
	case "exit_chatbot":
		return Action{Kind: ActionExitChatbot}
	}

	switch {
	case strings.HasPrefix(data, replySupportPrefix):
		if target, ok := parseTarget(data, replySupportPrefix); ok {
			return Action{Kind: ActionReplySupport, Target: target}
		}
	case strings.HasPrefix(data, sendReplyPrefix):
		if target, ok := parseTarget(data, sendReplyPrefix); ok {
			return Action{Kind: ActionSendReply, Target: target}
		}
	}

	return Action{Kind: ActionUnknown}
}

func parseTarget(data, prefix string) (int64, bool) {
	target, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil || target <= 0 {
		return 0, false
	}
	return target, true
}

// ReplySupportData builds the callback token the operator taps to answer a ticket
func ReplySupportData(target int64) string {
	return fmt.Sprintf("%s%d", replySupportPrefix, target)
}

// SendReplyData builds the callback token that flushes an operator reply
func SendReplyData(target int64) string {
	return fmt.Sprintf("%s%d", sendReplyPrefix, target)
}
