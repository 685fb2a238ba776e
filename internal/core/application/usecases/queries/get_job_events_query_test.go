package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetJobEventsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		jobID := kernel.NewUUID()

		query, err := queries.NewGetJobEventsQuery(jobID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.JobID().IsEqual(jobID))
	})

	t.Run("rejects empty job id", func(t *testing.T) {
		_, err := queries.NewGetJobEventsQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		query := queries.GetJobEventsQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetJobEventsQueryIsNotConstructed)
	})
}
