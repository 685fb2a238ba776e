package queries

import (
	"context"
	"encoding/json"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobEventsQueryHandler retrieves a job's audit trail from the database.
// Reads the event rows directly; no aggregate reconstruction is needed for
// a display-only history.
type GetJobEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetJobEventsQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetJobEventsQueryHandler(db *gorm.DB) GetJobEventsQueryHandler {
	return GetJobEventsQueryHandler{db: db}
}

// Handle executes the query to retrieve all events recorded for the job,
// ordered by occurrence.
func (h GetJobEventsQueryHandler) Handle(
	ctx context.Context,
	query GetJobEventsQuery,
) ([]GetJobEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetJobEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_id,
			name,
			latitude,
			longitude,
			meta,
			occurred_at
		FROM job_events
		WHERE job_id = ?
		ORDER BY occurred_at, id
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventResp GetJobEventsQueryResponse
		var eventID, actorID uuid.UUID
		var meta []byte

		err = rows.Scan(
			&eventID,
			&actorID,
			&eventResp.Name,
			&eventResp.Latitude,
			&eventResp.Longitude,
			&meta,
			&eventResp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		eventResp.EventID, err = kernel.UUIDFromBytes(eventID[:])
		if err != nil {
			return nil, err
		}
		eventResp.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}

		if len(meta) > 0 {
			if err = json.Unmarshal(meta, &eventResp.Meta); err != nil {
				return nil, err
			}
		}

		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
