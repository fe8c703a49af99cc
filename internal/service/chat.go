package service

import (
	"context"

	"go.uber.org/zap"
)

// maxMessageLength is the transport's message-size limit; longer answers
// are split before sending.
const maxMessageLength = 4000

// systemPrompt sets the assistant's tone for every completion call
const systemPrompt = `تو یک دوست صمیمی، باهوش و کمک‌کننده هستی.
با لحن گرم، مهربون و کمی شوخ‌طبع حرف بزن.
هر سوالی پرسیدن، با حوصله، دقیق و مفید جواب بده.
از ایموجی هم گاهی استفاده کن که صمیمی‌تر بشه 😊
هر موضوعی بود با مهربونی کامل جواب بده.`

// Completer is the completion call the chat mode depends on
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ChatService runs the AI chat mode
type ChatService struct {
	completer Completer
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(completer Completer, logger *zap.Logger) *ChatService {
	return &ChatService{
		completer: completer,
		logger:    logger,
	}
}

// Ask runs one completion round and returns the answer split into
// transport-sized chunks, in order.
func (s *ChatService) Ask(ctx context.Context, prompt string) ([]string, error) {
	answer, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	return splitChunks(answer, maxMessageLength), nil
}

// splitChunks cuts s into pieces of at most size characters.
// Splitting is by rune, never through the middle of a UTF-8 sequence.
func splitChunks(s string, size int) []string {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	var chunks []string
	for len(runes) > size {
		chunks = append(chunks, string(runes[:size]))
		runes = runes[size:]
	}
	return append(chunks, string(runes))
}
