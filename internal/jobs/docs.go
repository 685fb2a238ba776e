// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the engine needs.
//
// # Available Jobs
//
// 1. OfferExpiryJob - Runs every minute to settle stale offer statuses:
// offers past their deadline become expired, offers still live on jobs that
// left the requested status become superseded. Claimability does not depend
// on this job; deadline checks are enforced lazily on every read and claim.
//
// 2. MatchPumpJob - Runs every minute to retry matching for requested jobs
// that have no offers yet, picking up jobs whose initial matching found no
// candidates.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expiryJob, pumpJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and keep their schedule; a failed run is retried
// on the next tick. Failed job starts stop any already running jobs.
package jobs
