package jobs

import (
	"context"
	"time"

	"stayops-backend/internal/logger"
	"stayops-backend/internal/session"
)

// CompleteBookings marks booked stays whose check-out date has passed
// as completed, across every live session's store.
func (jr *JobRunner) CompleteBookings() {
	jr.runWithRecovery("CompleteBookings", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		var total int32
		jr.sessions.Range(func(sess *session.Session) {
			count, err := sess.Services.Bookings.CompletePastBookings(ctx, today)
			if err != nil {
				logger.Error("Failed to complete past bookings", "session_id", sess.ID, "error", err)
				return
			}
			total += count
		})

		logger.Info("Marked bookings as completed", "count", total)
	})
}
