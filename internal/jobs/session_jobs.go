package jobs

import (
	"time"

	"stayops-backend/internal/logger"
)

// PruneSessions drops sessions idle past the configured TTL.
func (jr *JobRunner) PruneSessions() {
	jr.runWithRecovery("PruneSessions", func() {
		pruned := jr.sessions.Prune(time.Now())
		if pruned > 0 {
			logger.Info("Pruned idle sessions", "count", pruned, "remaining", jr.sessions.Count())
		}
	})
}
