package job_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) *job.Job {
	t.Helper()

	location, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)
	pricing, err := job.NewPricing(10000)
	require.NoError(t, err)

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "plumbing", location, pricing)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("starts requested with pending payment", func(t *testing.T) {
		j := newTestJob(t)

		assert.Equal(t, job.StatusRequested, j.Status())
		assert.Equal(t, job.PaymentPending, j.PaymentStatus())
		assert.Nil(t, j.AssignedPro())
		assert.Equal(t, "plumbing", j.ServiceCode())
	})

	t.Run("rejects empty service code", func(t *testing.T) {
		location, _ := kernel.NewGeoPoint(0, 0)
		pricing, _ := job.NewPricing(100)

		_, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "", location, pricing)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed location", func(t *testing.T) {
		pricing, _ := job.NewPricing(100)

		_, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "plumbing", kernel.GeoPoint{}, pricing)

		require.Error(t, err)
	})
}

func TestJob_Assign(t *testing.T) {
	t.Run("requested job accepts assignment", func(t *testing.T) {
		j := newTestJob(t)
		proID := kernel.NewUUID()

		require.NoError(t, j.Assign(proID))

		assert.Equal(t, job.StatusAssigned, j.Status())
		require.NotNil(t, j.AssignedPro())
		assert.True(t, j.AssignedPro().IsEqual(proID))
		assert.True(t, j.IsAssignedPro(proID))
	})

	t.Run("second assignment conflicts", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Assign(kernel.NewUUID()))

		err := j.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("cancelled job cannot be assigned", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.TransitionTo(job.StatusCancelled))

		require.ErrorIs(t, j.Assign(kernel.NewUUID()), errs.ErrConflict)
	})
}

func TestJob_TransitionTo(t *testing.T) {
	t.Run("full happy path with payment side effects", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Assign(kernel.NewUUID()))

		require.NoError(t, j.TransitionTo(job.StatusEnRoute))
		require.NoError(t, j.TransitionTo(job.StatusArrived))
		assert.Equal(t, job.PaymentPending, j.PaymentStatus())

		require.NoError(t, j.TransitionTo(job.StatusStarted))
		assert.Equal(t, job.PaymentCaptured, j.PaymentStatus())

		require.NoError(t, j.TransitionTo(job.StatusCompleted))
		assert.Equal(t, job.StatusCompleted, j.Status())
		assert.Equal(t, job.PaymentCompleted, j.PaymentStatus())
	})

	t.Run("invalid transition carries allowed set and does not mutate", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Assign(kernel.NewUUID()))

		err := j.TransitionTo(job.StatusCompleted)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "assigned", transitionErr.From)
		assert.Equal(t, "completed", transitionErr.To)
		assert.ElementsMatch(t, []string{"en_route", "cancelled"}, transitionErr.AllowedNext)

		assert.Equal(t, job.StatusAssigned, j.Status())
		assert.Equal(t, job.PaymentPending, j.PaymentStatus())
	})

	t.Run("requested to started always fails", func(t *testing.T) {
		j := newTestJob(t)

		err := j.TransitionTo(job.StatusStarted)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, job.StatusRequested, j.Status())
	})

	t.Run("cancellation from any non-terminal state", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Assign(kernel.NewUUID()))
		require.NoError(t, j.TransitionTo(job.StatusEnRoute))

		require.NoError(t, j.TransitionTo(job.StatusCancelled))
		assert.Equal(t, job.StatusCancelled, j.Status())

		require.ErrorIs(t, j.TransitionTo(job.StatusEnRoute), errs.ErrInvalidTransition)
	})
}

func TestRestoreJob(t *testing.T) {
	location, _ := kernel.NewGeoPoint(40.7128, -74.0060)
	pricing, _ := job.NewPricing(10000)

	t.Run("restores assigned job", func(t *testing.T) {
		proID := kernel.NewUUID()

		j, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), "plumbing", location, pricing,
			job.StatusAssigned, job.PaymentPending, &proID)

		require.NoError(t, err)
		assert.Equal(t, job.StatusAssigned, j.Status())
		assert.True(t, j.IsAssignedPro(proID))
	})

	t.Run("requested job with professional is inconsistent", func(t *testing.T) {
		proID := kernel.NewUUID()

		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), "plumbing", location, pricing,
			job.StatusRequested, job.PaymentPending, &proID)

		require.Error(t, err)
	})

	t.Run("started job without professional is inconsistent", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), "plumbing", location, pricing,
			job.StatusStarted, job.PaymentCaptured, nil)

		require.Error(t, err)
	})

	t.Run("cancelled job may lack a professional", func(t *testing.T) {
		j, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), "plumbing", location, pricing,
			job.StatusCancelled, job.PaymentPending, nil)

		require.NoError(t, err)
		assert.Nil(t, j.AssignedPro())
	})
}

func TestJob_Validate(t *testing.T) {
	var j *job.Job
	require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)

	var zero job.Job
	require.ErrorIs(t, zero.Validate(), job.ErrJobIsNotConstructed)

	require.NoError(t, newTestJob(t).Validate())
}

func TestNewEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		now := time.Now()
		loc, _ := kernel.NewGeoPoint(1, 2)

		e, err := job.NewEvent(
			kernel.NewUUID(), kernel.NewUUID(), "en_route", &loc,
			map[string]string{job.MetaPreviousStatus: "assigned"}, now)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "en_route", e.Name())
		assert.Equal(t, "assigned", e.Meta()[job.MetaPreviousStatus])
		assert.Equal(t, now, e.OccurredAt())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := job.NewEvent(kernel.NewUUID(), kernel.NewUUID(), "", nil, nil, time.Now())
		require.Error(t, err)
	})

	t.Run("zero time is rejected", func(t *testing.T) {
		_, err := job.NewEvent(kernel.NewUUID(), kernel.NewUUID(), "requested", nil, nil, time.Time{})
		require.Error(t, err)
	})
}

func TestNewRating(t *testing.T) {
	jobID, customerID, proID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("valid rating", func(t *testing.T) {
		r, err := job.NewRating(jobID, customerID, proID, 5, "great work")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 5, r.Score())
		assert.Equal(t, "great work", r.Comment())
	})

	t.Run("score bounds", func(t *testing.T) {
		_, err := job.NewRating(jobID, customerID, proID, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = job.NewRating(jobID, customerID, proID, 6, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
