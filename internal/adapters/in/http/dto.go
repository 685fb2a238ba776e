// Package http exposes the dispatch engine's REST API on Echo.
// Handlers translate request DTOs into commands and queries and map the
// application's error taxonomy onto HTTP statuses.
package http

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CreateJobRequest is the body of POST /api/v1/jobs.
type CreateJobRequest struct {
	CustomerID  string  `json:"customer_id" validate:"required,uuid"`
	ServiceCode string  `json:"service_code" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateJobResponse returns the identifier of the created job.
type CreateJobResponse struct {
	JobID string `json:"job_id"`
}

// MatchJobRequest is the body of POST /api/v1/jobs/:id/match.
// A zero radius applies the deployment default.
type MatchJobRequest struct {
	RadiusKm float64 `json:"radius_km" validate:"min=0"`
}

// MatchJobResponse reports the fan-out outcome.
type MatchJobResponse struct {
	MatchedCount int             `json:"matched_count"`
	Offers       []OfferResponse `json:"offers"`
}

// OfferResponse is one offer, in feeds and match results.
type OfferResponse struct {
	OfferID     string    `json:"offer_id"`
	JobID       string    `json:"job_id"`
	ProID       string    `json:"pro_id,omitempty"`
	ServiceCode string    `json:"service_code,omitempty"`
	PayoutCents int64     `json:"payout_cents"`
	DistanceKm  *float64  `json:"distance_km,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AcceptOfferRequest is the body of POST /api/v1/offers/:id/accept.
// The coordinate is optional; without one the distance precondition is
// waived for professionals with no known location.
type AcceptOfferRequest struct {
	ProID         string   `json:"pro_id" validate:"required,uuid"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	MaxDistanceKm float64  `json:"max_distance_km" validate:"min=0"`
}

// UpdateJobStatusRequest is the body of POST /api/v1/jobs/:id/status.
type UpdateJobStatusRequest struct {
	ActorID   string   `json:"actor_id" validate:"required,uuid"`
	IsAdmin   bool     `json:"is_admin"`
	Status    string   `json:"status" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// RateJobRequest is the body of POST /api/v1/jobs/:id/rating.
type RateJobRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Score      int    `json:"score" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// JobEventResponse is one entry of a job's audit trail.
type JobEventResponse struct {
	EventID    string            `json:"event_id"`
	ActorID    string            `json:"actor_id"`
	Name       string            `json:"name"`
	Latitude   *float64          `json:"latitude,omitempty"`
	Longitude  *float64          `json:"longitude,omitempty"`
	Meta       map[string]string `json:"meta,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons,omitempty"`
}

// RequestValidator adapts go-playground/validator to Echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
