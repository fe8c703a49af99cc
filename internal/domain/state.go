package domain

// StateKind identifies the user's current conversational mode
type StateKind string

const (
	StateIdle              StateKind = "idle"
	StateSupportCollecting StateKind = "support_collecting"
	StateChatbotActive     StateKind = "chatbot_active"
	StateSupportReplying   StateKind = "support_replying"
)

// MessageRef points at a transport-level message so it can be forwarded later
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// ConversationState is one user's position in the state machine.
// It lives only in process memory; a restart reverts everyone to idle.
type ConversationState struct {
	Kind     StateKind
	Target   int64        // SupportReplying: user the reply is routed to
	Buffered []MessageRef // SupportCollecting / SupportReplying
}

// IdleState returns the default state
func IdleState() ConversationState {
	return ConversationState{Kind: StateIdle}
}

// CollectingState returns a fresh support-collection state with an empty buffer
func CollectingState() ConversationState {
	return ConversationState{Kind: StateSupportCollecting}
}

// ChatbotState returns the AI chat mode state
func ChatbotState() ConversationState {
	return ConversationState{Kind: StateChatbotActive}
}

// ReplyingState returns an operator reply state bound to target
func ReplyingState(target int64) ConversationState {
	return ConversationState{Kind: StateSupportReplying, Target: target}
}

// Buffering reports whether the state accumulates message references
func (s *ConversationState) Buffering() bool {
	return s.Kind == StateSupportCollecting || s.Kind == StateSupportReplying
}

// Append adds ref to the buffer unless the same message is already present.
// Returns false for duplicates.
func (s *ConversationState) Append(ref MessageRef) bool {
	for _, existing := range s.Buffered {
		if existing == ref {
			return false
		}
	}
	s.Buffered = append(s.Buffered, ref)
	return true
}
