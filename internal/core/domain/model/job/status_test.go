package job_test

import (
	"testing"

	"dispatch/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    job.Status
		to      job.Status
		allowed bool
	}{
		{"requested to cancelled", job.StatusRequested, job.StatusCancelled, true},
		{"requested to assigned is not table-driven", job.StatusRequested, job.StatusAssigned, false},
		{"requested to started", job.StatusRequested, job.StatusStarted, false},
		{"assigned to en_route", job.StatusAssigned, job.StatusEnRoute, true},
		{"assigned to cancelled", job.StatusAssigned, job.StatusCancelled, true},
		{"assigned to completed", job.StatusAssigned, job.StatusCompleted, false},
		{"en_route to arrived", job.StatusEnRoute, job.StatusArrived, true},
		{"en_route to started", job.StatusEnRoute, job.StatusStarted, false},
		{"arrived to started", job.StatusArrived, job.StatusStarted, true},
		{"started to completed", job.StatusStarted, job.StatusCompleted, true},
		{"started to cancelled", job.StatusStarted, job.StatusCancelled, true},
		{"completed is terminal", job.StatusCompleted, job.StatusCancelled, false},
		{"cancelled is terminal", job.StatusCancelled, job.StatusRequested, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_AllowedNext(t *testing.T) {
	assert.ElementsMatch(t,
		[]job.Status{job.StatusEnRoute, job.StatusCancelled},
		job.StatusAssigned.AllowedNext())
	assert.ElementsMatch(t,
		[]string{"en_route", "cancelled"},
		job.StatusAssigned.AllowedNextStrings())
	assert.Empty(t, job.StatusCompleted.AllowedNext())
	assert.Empty(t, job.StatusCancelled.AllowedNext())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, job.StatusCompleted.IsTerminal())
	assert.True(t, job.StatusCancelled.IsTerminal())
	assert.False(t, job.StatusRequested.IsTerminal())
	assert.False(t, job.StatusStarted.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []job.Status{
			job.StatusRequested, job.StatusAssigned, job.StatusEnRoute,
			job.StatusArrived, job.StatusStarted, job.StatusCompleted, job.StatusCancelled,
		} {
			parsed, err := job.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := job.StatusFromString("teleported")
		require.Error(t, err)

		_, err = job.StatusFromString("")
		require.Error(t, err)

		_, err = job.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, job.StatusRequested.Validate())
	require.NoError(t, job.StatusCancelled.Validate())
	require.Error(t, job.StatusUnknown.Validate())
	require.Error(t, job.Status(42).Validate())
}
