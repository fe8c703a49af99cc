package service

import (
	"github.com/samafzali11/bale-aibot/internal/transport"

	"go.uber.org/zap"
)

// MembershipService gates the bot behind a channel subscription
type MembershipService struct {
	messenger transport.Messenger
	channelID string
	logger    *zap.Logger
}

// NewMembershipService creates a new membership service
func NewMembershipService(messenger transport.Messenger, channelID string, logger *zap.Logger) *MembershipService {
	return &MembershipService{
		messenger: messenger,
		channelID: channelID,
		logger:    logger,
	}
}

// IsMember reports whether the user belongs to the required channel.
// A transport failure is logged and counted as not-a-member, so the user
// just sees the join prompt again.
func (s *MembershipService) IsMember(userID int64) bool {
	status, err := s.messenger.MemberStatus(s.channelID, userID)
	if err != nil {
		s.logger.Error("Membership check failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("channel", s.channelID),
		)
		return false
	}

	switch status {
	case "member", "administrator", "creator":
		return true
	}
	return false
}
