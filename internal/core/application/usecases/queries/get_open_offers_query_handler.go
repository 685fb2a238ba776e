package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOffersQueryHandler retrieves a professional's claimable offers from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the deadline and job-openness filters live in the WHERE clause so
// rows the sweep has not settled yet never leak into the feed.
type GetOpenOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOffersQueryHandler creates a handler for offer feed queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOffersQueryHandler(db *gorm.DB) GetOpenOffersQueryHandler {
	return GetOpenOffersQueryHandler{db: db}
}

// Handle executes the query to retrieve the professional's open offers.
// Results are sorted by the soonest deadline first.
func (h GetOpenOffersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOffersQuery,
) ([]GetOpenOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]GetOpenOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.job_id,
			j.service_code,
			o.payout_cents,
			o.distance_km,
			o.expires_at
		FROM offers o
		JOIN jobs j ON j.id = o.job_id
		WHERE o.pro_id = ?
		  AND o.status = ?
		  AND o.expires_at > ?
		  AND j.status = ?
		ORDER BY o.expires_at, o.id
	`, query.ProID().Bytes(), offer.StatusOffered.String(), time.Now(), job.StatusRequested.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var offerResp GetOpenOffersQueryResponse
		var offerID, jobID uuid.UUID

		err = rows.Scan(
			&offerID,
			&jobID,
			&offerResp.ServiceCode,
			&offerResp.PayoutCents,
			&offerResp.DistanceKm,
			&offerResp.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		offerResp.OfferID, err = kernel.UUIDFromBytes(offerID[:])
		if err != nil {
			return nil, err
		}
		offerResp.JobID, err = kernel.UUIDFromBytes(jobID[:])
		if err != nil {
			return nil, err
		}

		offers = append(offers, offerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
