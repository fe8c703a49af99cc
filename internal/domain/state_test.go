package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationStateConstructors(t *testing.T) {
	assert.Equal(t, StateIdle, IdleState().Kind)
	assert.Equal(t, StateSupportCollecting, CollectingState().Kind)
	assert.Equal(t, StateChatbotActive, ChatbotState().Kind)

	replying := ReplyingState(77)
	assert.Equal(t, StateSupportReplying, replying.Kind)
	assert.Equal(t, int64(77), replying.Target)
	assert.Empty(t, replying.Buffered)
}

func TestConversationState_Buffering(t *testing.T) {
	tests := []struct {
		kind     StateKind
		expected bool
	}{
		{StateIdle, false},
		{StateSupportCollecting, true},
		{StateChatbotActive, false},
		{StateSupportReplying, true},
	}

	for _, tt := range tests {
		s := ConversationState{Kind: tt.kind}
		assert.Equal(t, tt.expected, s.Buffering(), string(tt.kind))
	}
}

func TestConversationState_Append(t *testing.T) {
	s := CollectingState()
	first := MessageRef{ChatID: 1, MessageID: 10}
	second := MessageRef{ChatID: 1, MessageID: 11}

	assert.True(t, s.Append(first))
	assert.True(t, s.Append(second))

	// Same message delivered twice must not buffer twice
	assert.False(t, s.Append(first))

	assert.Equal(t, []MessageRef{first, second}, s.Buffered)
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		ok       bool
	}{
		{"fa", LangFa, true},
		{"en", LangEn, true},
		{"", "", false},
		{"ru", "", false},
		{"FA", "", false},
	}

	for _, tt := range tests {
		lang, ok := ParseLanguage(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.expected, lang, tt.input)
	}
}
