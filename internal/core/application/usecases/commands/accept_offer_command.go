package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand is a professional's attempt to claim an offer.
// The caller may supply its current coordinate to enable the distance
// precondition and the assignment location capture.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	offerID       kernel.UUID
	proID         kernel.UUID
	location      *kernel.GeoPoint
	maxDistanceKm float64

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to claim an offer.
// location may be nil; maxDistanceKm = 0 means the default ceiling.
func NewAcceptOfferCommand(
	offerID kernel.UUID,
	proID kernel.UUID,
	location *kernel.GeoPoint,
	maxDistanceKm float64,
) (AcceptOfferCommand, error) {
	acceptCommand := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOfferID(offerID),
		acceptCommand.setProID(proID),
		acceptCommand.setLocation(location),
		acceptCommand.setMaxDistanceKm(maxDistanceKm),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OfferID returns the offer being claimed.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// ProID returns the claiming professional.
func (c AcceptOfferCommand) ProID() kernel.UUID {
	return c.proID
}

// Location returns the caller's current coordinate, or nil.
func (c AcceptOfferCommand) Location() *kernel.GeoPoint {
	return c.location
}

// MaxDistanceKm returns the distance ceiling, 0 meaning the default.
func (c AcceptOfferCommand) MaxDistanceKm() float64 {
	return c.maxDistanceKm
}

func (c *AcceptOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *AcceptOfferCommand) setProID(proID kernel.UUID) error {
	if err := proID.Validate(); err != nil {
		return err
	}

	c.proID = proID
	return nil
}

func (c *AcceptOfferCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *AcceptOfferCommand) setMaxDistanceKm(maxDistanceKm float64) error {
	if maxDistanceKm < 0 {
		return errs.NewValueIsInvalidError("max distance cannot be negative")
	}

	c.maxDistanceKm = maxDistanceKm
	return nil
}
