package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/notifications"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// OfferSummary describes one offer created by the fan-out.
type OfferSummary struct {
	OfferID     kernel.UUID
	ProID       kernel.UUID
	PayoutCents int64
	DistanceKm  *float64
	ExpiresAt   time.Time
}

// MatchJobResult is the fan-out outcome. MatchedCount of zero is a valid
// result meaning no eligible candidates existed.
type MatchJobResult struct {
	MatchedCount int
	Offers       []OfferSummary
}

// MatchJobCommandHandler orchestrates eligibility selection and offer
// fan-out. Offer creation is fire-and-continue: a failed insert for one
// candidate is logged and skipped without aborting the rest, and candidate
// notification is best effort after each successful insert.
type MatchJobCommandHandler struct {
	uowFactory MatchUoWFactory
	catalog    ports.ServiceCatalog
	compliance ports.ComplianceOracle
	notifier   Notifier
	logger     *slog.Logger
}

// NewMatchJobCommandHandler creates a handler for offer fan-out operations.
func NewMatchJobCommandHandler(
	uowFactory MatchUoWFactory,
	catalog ports.ServiceCatalog,
	compliance ports.ComplianceOracle,
	notifier Notifier,
	logger *slog.Logger,
) MatchJobCommandHandler {
	return MatchJobCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		compliance: compliance,
		notifier:   notifier,
		logger:     logger.With("component", "match_job"),
	}
}

// Handle processes the match command. Returns a Conflict error when the job
// has already left the requested status.
func (h MatchJobCommandHandler) Handle(ctx context.Context, cmd MatchJobCommand) (MatchJobResult, error) {
	if err := cmd.Validate(); err != nil {
		return MatchJobResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MatchJobResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	matchedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return MatchJobResult{}, err
	}
	if matchedJob.Status() != job.StatusRequested {
		return MatchJobResult{}, errs.NewConflictError(
			"job is not open for matching", "job status is "+matchedJob.Status().String())
	}

	candidates, err := h.selectCandidates(ctx, uow, matchedJob, cmd.RadiusKm())
	if err != nil {
		return MatchJobResult{}, err
	}

	result := h.fanOut(ctx, uow.OfferRepository(), matchedJob, candidates)

	if err = uow.Commit(ctx); err != nil {
		return MatchJobResult{}, err
	}

	h.notifyCandidates(ctx, matchedJob, result.Offers)
	return result, nil
}

func (h MatchJobCommandHandler) selectCandidates(
	ctx context.Context,
	uow MatchUoW,
	matchedJob *job.Job,
	radiusKm float64,
) (services.CandidateSet, error) {
	pros, err := uow.ProfessionalRepository().GetAllOnlineByService(ctx, matchedJob.ServiceCode())
	if err != nil {
		return nil, err
	}

	compliantIDs := make(map[string]bool, len(pros))
	for _, pro := range pros {
		records, err := h.compliance.GetCompliance(ctx, pro.ID(), []string{matchedJob.ServiceCode()})
		if err != nil {
			return nil, errs.NewUpstreamError("compliance oracle", err)
		}
		for _, rec := range records {
			if rec.Category == matchedJob.ServiceCode() && rec.Compliant {
				compliantIDs[pro.ID().String()] = true
			}
		}
	}

	return services.NewEligibilityFilter().Select(matchedJob, pros, compliantIDs, radiusKm)
}

func (h MatchJobCommandHandler) fanOut(
	ctx context.Context,
	offerRepo ports.OfferRepository,
	matchedJob *job.Job,
	candidates services.CandidateSet,
) MatchJobResult {
	result := MatchJobResult{}
	now := time.Now()

	for _, candidate := range candidates.Candidates() {
		newOffer, err := offer.NewOffer(
			matchedJob.ID(), candidate.Pro.ID(),
			matchedJob.Pricing().PayoutCents(), candidate.DistanceKm, now)
		if err != nil {
			h.logger.Error("failed to build offer",
				"job_id", matchedJob.ID().String(),
				"pro_id", candidate.Pro.ID().String(), "error", err)
			continue
		}

		if err = offerRepo.Add(ctx, newOffer); err != nil {
			h.logger.Warn("failed to persist offer, skipping candidate",
				"job_id", matchedJob.ID().String(),
				"pro_id", candidate.Pro.ID().String(), "error", err)
			continue
		}

		result.MatchedCount++
		result.Offers = append(result.Offers, OfferSummary{
			OfferID:     newOffer.ID(),
			ProID:       newOffer.ProID(),
			PayoutCents: newOffer.PayoutCents(),
			DistanceKm:  newOffer.DistanceKm(),
			ExpiresAt:   newOffer.ExpiresAt(),
		})
	}

	return result
}

func (h MatchJobCommandHandler) notifyCandidates(ctx context.Context, matchedJob *job.Job, offers []OfferSummary) {
	serviceName := matchedJob.ServiceCode()
	if service, err := h.catalog.GetActive(ctx, matchedJob.ServiceCode()); err == nil {
		serviceName = service.Name
	}

	body := fmt.Sprintf("%s, payout $%.2f, expires in %d minutes",
		serviceName, float64(matchedJob.Pricing().PayoutCents())/100, int(offer.TTL.Minutes()))

	for _, summary := range offers {
		h.notifier.Notify(ctx, notifications.Event{
			UserID:   summary.ProID,
			Type:     notification.TypeJobOffer,
			Title:    "New job nearby",
			Body:     body,
			Channels: []notification.Channel{notification.ChannelSMS, notification.ChannelInApp},
			Data: map[string]string{
				"job_id":   matchedJob.ID().String(),
				"offer_id": summary.OfferID.String(),
			},
		})
	}
}
