package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	offerExpiryJob *OfferExpiryJob
	matchPumpJob   *MatchPumpJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(offerExpiryJob *OfferExpiryJob, matchPumpJob *MatchPumpJob) *JobManager {
	return &JobManager{
		offerExpiryJob: offerExpiryJob,
		matchPumpJob:   matchPumpJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer expiry job: %w", err)
	}

	if err := jm.matchPumpJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.offerExpiryJob.Stop()
		return fmt.Errorf("failed to start match pump job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerExpiryJob.Stop()
	jm.matchPumpJob.Stop()
}
