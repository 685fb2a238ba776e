package job

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// MetaPreviousStatus is the metadata key recording the status a job held
// before a transition event.
const MetaPreviousStatus = "previous_status"

// ErrEventIsNotConstructed is returned when an Event was not created through
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructors")

// Event is one row of a job's append-only audit trail. Events are written
// once per accepted transition (and once on creation) and never mutated.
type Event struct {
	id         kernel.UUID
	jobID      kernel.UUID
	actorID    kernel.UUID
	name       string
	location   *kernel.GeoPoint
	meta       map[string]string
	occurredAt time.Time

	isConstructed bool
}

// NewEvent creates an audit event with a fresh identifier.
// location and meta are optional; occurredAt must be non-zero.
func NewEvent(
	jobID kernel.UUID,
	actorID kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	meta map[string]string,
	occurredAt time.Time,
) (*Event, error) {
	return RestoreEvent(kernel.NewUUID(), jobID, actorID, name, location, meta, occurredAt)
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	jobID kernel.UUID,
	actorID kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	meta map[string]string,
	occurredAt time.Time,
) (*Event, error) {
	if err := errors.Join(id.Validate(), jobID.Validate(), actorID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("event name")
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurred_at")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Event{
		id:            id,
		jobID:         jobID,
		actorID:       actorID,
		name:          name,
		location:      location,
		meta:          meta,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// JobID returns the job the event belongs to.
func (e *Event) JobID() kernel.UUID { return e.jobID }

// ActorID returns the user who caused the event.
func (e *Event) ActorID() kernel.UUID { return e.actorID }

// Name returns the event name, typically the status entered.
func (e *Event) Name() string { return e.name }

// Location returns the coordinate attached to the event, if any.
func (e *Event) Location() *kernel.GeoPoint { return e.location }

// Meta returns the event metadata, e.g. the previous status.
func (e *Event) Meta() map[string]string { return e.meta }

// OccurredAt returns when the event happened.
func (e *Event) OccurredAt() time.Time { return e.occurredAt }
