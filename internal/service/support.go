package service

import (
	"github.com/samafzali11/bale-aibot/internal/domain"
	"github.com/samafzali11/bale-aibot/internal/locale"
	"github.com/samafzali11/bale-aibot/internal/transport"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SupportService relays batches of buffered messages between users and
// the single support operator.
type SupportService struct {
	messenger transport.Messenger
	supportID int64
	logger    *zap.Logger
}

// NewSupportService creates a new support service
func NewSupportService(messenger transport.Messenger, supportID int64, logger *zap.Logger) *SupportService {
	return &SupportService{
		messenger: messenger,
		supportID: supportID,
		logger:    logger,
	}
}

// FlushTicket delivers a user's buffered messages to the operator: a header
// identifying the sender, every message in arrival order, then a reply
// control carrying the sender's id. Forwarding is best-effort per message;
// one failed forward does not stop the rest. Only a failed header aborts
// the flush, since at that point nothing has reached the operator yet and
// the caller can safely retry the whole batch.
func (s *SupportService) FlushTicket(user *domain.UserProfile, refs []domain.MessageRef) error {
	header := locale.TicketHeader(domain.LangFa, user.UserID, user.Username)
	if err := s.messenger.Send(s.supportID, header, nil); err != nil {
		return err
	}

	for _, ref := range refs {
		if err := s.messenger.Forward(s.supportID, ref); err != nil {
			s.logger.Error("Failed to forward ticket message",
				zap.Error(err),
				zap.Int64("user_id", user.UserID),
				zap.Int("message_id", ref.MessageID),
			)
		}
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data(locale.BtnReplyToUser.In(domain.LangFa), "", domain.ReplySupportData(user.UserID)),
	))

	// The batch is already with the operator; losing the reply control
	// is not worth failing the flush and re-forwarding everything.
	if err := s.messenger.Send(s.supportID, locale.TicketTrailer.In(domain.LangFa), markup); err != nil {
		s.logger.Error("Failed to send reply control",
			zap.Error(err),
			zap.Int64("user_id", user.UserID),
		)
	}
	return nil
}

// FlushReply forwards the operator's buffered messages to the target user
// in arrival order and tells the target a reply came in. Forwarding is
// best-effort per message, like FlushTicket.
func (s *SupportService) FlushReply(target int64, targetLang domain.Language, refs []domain.MessageRef) error {
	for _, ref := range refs {
		if err := s.messenger.Forward(target, ref); err != nil {
			s.logger.Error("Failed to forward reply message",
				zap.Error(err),
				zap.Int64("target", target),
				zap.Int("message_id", ref.MessageID),
			)
		}
	}

	return s.messenger.Send(target, locale.ReplyFromSupport.In(targetLang), nil)
}
