package professional

import (
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Role names as stored on the account.
const (
	RolePro      = "pro"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Rating average bounds. Zero means unrated.
const (
	RatingAverageMin = 0.0
	RatingAverageMax = 5.0
)

// ErrProfessionalIsNotConstructed is returned when a Professional was not
// created through NewProfessional or RestoreProfessional.
var ErrProfessionalIsNotConstructed = errors.New("Professional must be created via NewProfessional or RestoreProfessional constructors")

// Professional is the aggregate for a field worker. Accounts carry both an
// account type and an active role; a professional whose active role has been
// switched away from pro keeps the account but cannot claim offers.
type Professional struct {
	id                 kernel.UUID
	name               string
	services           []string
	isOnline           bool
	ratingAverage      float64
	currentLocation    *kernel.GeoPoint
	verificationStatus VerificationStatus
	accountType        string
	activeRole         string

	isConstructed bool
}

// NewProfessional creates a pro-typed account pending verification,
// offline, unrated, with no known location.
func NewProfessional(id kernel.UUID, name string, services []string) (*Professional, error) {
	p := &Professional{
		verificationStatus: VerificationPending,
		accountType:        RolePro,
		activeRole:         RolePro,
		isConstructed:      true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setServices(services),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfessional reconstructs a Professional from persistence.
func RestoreProfessional(
	id kernel.UUID,
	name string,
	services []string,
	isOnline bool,
	ratingAverage float64,
	currentLocation *kernel.GeoPoint,
	verificationStatus VerificationStatus,
	accountType string,
	activeRole string,
) (*Professional, error) {
	p := &Professional{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setServices(services),
		p.setRatingAverage(ratingAverage),
		p.setCurrentLocation(currentLocation),
		verificationStatus.Validate(),
		p.setAccountType(accountType),
		p.setActiveRole(activeRole),
	); err != nil {
		return nil, err
	}

	p.isOnline = isOnline
	p.verificationStatus = verificationStatus
	return p, nil
}

// Validate ensures the Professional was created through a constructor.
func (p *Professional) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfessionalIsNotConstructed
	}
	return nil
}

// ID returns the professional's identifier.
func (p *Professional) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p *Professional) Name() string { return p.name }

// Services returns the enabled service category codes.
func (p *Professional) Services() []string {
	out := make([]string, len(p.services))
	copy(out, p.services)
	return out
}

// IsOnline reports whether the professional is currently accepting work.
func (p *Professional) IsOnline() bool { return p.isOnline }

// RatingAverage returns the current rating average, 0 when unrated.
func (p *Professional) RatingAverage() float64 { return p.ratingAverage }

// CurrentLocation returns the last known location, or nil if never reported.
func (p *Professional) CurrentLocation() *kernel.GeoPoint { return p.currentLocation }

// VerificationStatus returns the identity review outcome.
func (p *Professional) VerificationStatus() VerificationStatus { return p.verificationStatus }

// AccountType returns the account type the professional registered with.
func (p *Professional) AccountType() string { return p.accountType }

// ActiveRole returns the role the account currently operates as.
func (p *Professional) ActiveRole() string { return p.activeRole }

// IsVerified reports whether the identity review approved the professional.
func (p *Professional) IsVerified() bool {
	return p.verificationStatus == VerificationApproved
}

// IsActivePro reports whether the account currently operates as a
// professional. Role-switched accounts keep their data but cannot claim.
func (p *Professional) IsActivePro() bool {
	return p.activeRole == RolePro
}

// HasService reports whether the given service category is enabled.
func (p *Professional) HasService(serviceCode string) bool {
	return slices.Contains(p.services, serviceCode)
}

// DistanceTo returns the haversine distance to the given point, or nil if
// the professional has no known location or the point is not usable.
func (p *Professional) DistanceTo(point kernel.GeoPoint) *float64 {
	if p.currentLocation == nil {
		return nil
	}
	d, err := p.currentLocation.DistanceKm(point)
	if err != nil {
		return nil
	}
	return &d
}

// GoOnline marks the professional as accepting work.
func (p *Professional) GoOnline() { p.isOnline = true }

// GoOffline marks the professional as not accepting work.
func (p *Professional) GoOffline() { p.isOnline = false }

// UpdateLocation records a fresh location report.
func (p *Professional) UpdateLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	p.currentLocation = &point
	return nil
}

// UpdateRatingAverage replaces the stored rating average with a freshly
// recomputed value.
func (p *Professional) UpdateRatingAverage(average float64) error {
	return p.setRatingAverage(average)
}

func (p *Professional) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Professional) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Professional) setServices(services []string) error {
	for _, s := range services {
		if s == "" {
			return errs.NewValueIsInvalidError("service code cannot be empty")
		}
	}
	p.services = make([]string, len(services))
	copy(p.services, services)
	return nil
}

func (p *Professional) setRatingAverage(average float64) error {
	if average < RatingAverageMin || average > RatingAverageMax {
		return errs.NewValueIsOutOfRangeError(
			"rating_average", average, RatingAverageMin, RatingAverageMax)
	}
	p.ratingAverage = average
	return nil
}

func (p *Professional) setCurrentLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	p.currentLocation = location
	return nil
}

func (p *Professional) setAccountType(accountType string) error {
	if accountType == "" {
		return errs.NewValueIsRequiredError("account_type")
	}
	p.accountType = accountType
	return nil
}

func (p *Professional) setActiveRole(activeRole string) error {
	if activeRole == "" {
		return errs.NewValueIsRequiredError("active_role")
	}
	p.activeRole = activeRole
	return nil
}
