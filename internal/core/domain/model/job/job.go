package job

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job was not created through
// NewJob or RestoreJob. This ensures all jobs are properly validated.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructors")

// Job is the aggregate root for a unit of dispatched work.
//
// Invariants:
//   - pricing satisfies payout + fee == price exactly
//   - assignedProID is non-nil iff the job has moved past requested
//     (a job cancelled before assignment keeps a nil professional)
//   - status changes only through Assign (claim protocol) and TransitionTo
//     (lifecycle table); the payment flag flips inside TransitionTo so it
//     stays atomic with the status write
type Job struct {
	id            kernel.UUID
	customerID    kernel.UUID
	serviceCode   string
	location      kernel.GeoPoint
	pricing       Pricing
	status        Status
	paymentStatus PaymentStatus
	assignedProID *kernel.UUID

	isConstructed bool
}

// NewJob creates a Job in requested status with a pending payment hold.
// All parameters are validated; serviceCode must be non-empty.
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceCode string,
	location kernel.GeoPoint,
	pricing Pricing,
) (*Job, error) {
	j := &Job{
		status:        StatusRequested,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setServiceCode(serviceCode),
		j.setLocation(location),
		j.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persistence, including its status,
// payment status, and optional assigned professional. The status/assignment
// consistency invariant is enforced here so corrupt rows surface early.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceCode string,
	location kernel.GeoPoint,
	pricing Pricing,
	status Status,
	paymentStatus PaymentStatus,
	assignedProID *kernel.UUID,
) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setServiceCode(serviceCode),
		j.setLocation(location),
		j.setPricing(pricing),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if err := validateAssignment(status, assignedProID); err != nil {
		return nil, err
	}

	j.status = status
	j.paymentStatus = paymentStatus
	j.assignedProID = assignedProID
	return j, nil
}

// validateAssignment enforces the status/assignment consistency rule:
// requested jobs have no professional, in-flight and completed jobs do,
// and cancelled jobs may go either way depending on when they were cancelled.
func validateAssignment(status Status, assignedProID *kernel.UUID) error {
	switch status {
	case StatusRequested:
		if assignedProID != nil {
			return errs.NewValueIsInvalidError("requested job cannot have an assigned professional")
		}
	case StatusAssigned, StatusEnRoute, StatusArrived, StatusStarted, StatusCompleted:
		if assignedProID == nil {
			return errs.NewValueIsInvalidError(status.String() + " job must have an assigned professional")
		}
	case StatusCancelled, StatusUnknown:
		// no constraint
	}

	if assignedProID != nil {
		return assignedProID.Validate()
	}
	return nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the requester's identifier.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// ServiceCode returns the service category the job requires.
func (j *Job) ServiceCode() string {
	return j.serviceCode
}

// Location returns the job site coordinate.
func (j *Job) Location() kernel.GeoPoint {
	return j.location
}

// Pricing returns the money breakdown.
func (j *Job) Pricing() Pricing {
	return j.pricing
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// PaymentStatus returns the local payment flag.
func (j *Job) PaymentStatus() PaymentStatus {
	return j.paymentStatus
}

// AssignedPro returns the assigned professional's ID, or nil before assignment.
func (j *Job) AssignedPro() *kernel.UUID {
	return j.assignedProID
}

// IsCustomer reports whether the given user is the job's requester.
func (j *Job) IsCustomer(userID kernel.UUID) bool {
	return j.customerID.IsEqual(userID)
}

// IsAssignedPro reports whether the given user is the assigned professional.
func (j *Job) IsAssignedPro(userID kernel.UUID) bool {
	return j.assignedProID != nil && j.assignedProID.IsEqual(userID)
}

// Assign binds the winning professional and moves the job to assigned.
// Only the claim protocol calls this; it is legal solely from requested.
// Returns a Conflict error carrying the current status otherwise.
func (j *Job) Assign(proID kernel.UUID) error {
	if err := proID.Validate(); err != nil {
		return err
	}

	if j.status != StatusRequested {
		return errs.NewConflictError("job is not open", "job status is "+j.status.String())
	}

	j.status = StatusAssigned
	j.assignedProID = &proID
	return nil
}

// TransitionTo applies a lifecycle transition from the allowed table.
// On a transition outside the table it returns an InvalidTransition error
// carrying the allowed-next set and leaves the job unmodified.
//
// Payment side effects applied atomically with the status change:
//   - entering started while the hold is pending marks it captured
//   - entering completed marks the payment completed
func (j *Job) TransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !j.status.CanTransitionTo(next) {
		return errs.NewInvalidTransitionError(
			j.status.String(), next.String(), j.status.AllowedNextStrings())
	}

	if next == StatusStarted && j.paymentStatus == PaymentPending {
		j.paymentStatus = PaymentCaptured
	}
	if next == StatusCompleted {
		j.paymentStatus = PaymentCompleted
	}

	j.status = next
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.customerID = id
	return nil
}

func (j *Job) setServiceCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("service_code")
	}
	j.serviceCode = code
	return nil
}

func (j *Job) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	j.location = location
	return nil
}

func (j *Job) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	j.pricing = pricing
	return nil
}
