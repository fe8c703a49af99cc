package middleware

import (
	"github.com/samafzali11/bale-aibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Profile captures the sender's profile fields on every update, so the
// stored username and names stay current. Failures are logged and the
// update still goes through.
func Profile(users *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				err := users.RecordProfile(sender.ID, sender.Username, sender.FirstName, sender.LastName)
				if err != nil {
					logger.Error("Failed to record user profile",
						zap.Error(err),
						zap.Int64("user_id", sender.ID),
					)
				}
			}
			return next(c)
		}
	}
}
