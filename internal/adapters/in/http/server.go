package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler       commands.CreateJobCommandHandler
	matchJobHandler        commands.MatchJobCommandHandler
	acceptOfferHandler     commands.AcceptOfferCommandHandler
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler
	rateJobHandler         commands.RateJobCommandHandler

	// Query handlers
	getOpenOffersHandler queries.GetOpenOffersQueryHandler
	getJobEventsHandler  queries.GetJobEventsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	matchJobHandler commands.MatchJobCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler,
	rateJobHandler commands.RateJobCommandHandler,
	getOpenOffersHandler queries.GetOpenOffersQueryHandler,
	getJobEventsHandler queries.GetJobEventsQueryHandler,
) *Server {
	return &Server{
		createJobHandler:       createJobHandler,
		matchJobHandler:        matchJobHandler,
		acceptOfferHandler:     acceptOfferHandler,
		updateJobStatusHandler: updateJobStatusHandler,
		rateJobHandler:         rateJobHandler,
		getOpenOffersHandler:   getOpenOffersHandler,
		getJobEventsHandler:    getJobEventsHandler,
	}
}

// RegisterRoutes binds all API routes onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/jobs", s.CreateJob)
	v1.POST("/jobs/:id/match", s.MatchJob)
	v1.POST("/jobs/:id/status", s.UpdateJobStatus)
	v1.POST("/jobs/:id/rating", s.RateJob)
	v1.GET("/jobs/:id/events", s.GetJobEvents)
	v1.POST("/offers/:id/accept", s.AcceptOffer)
	v1.GET("/offers", s.GetOpenOffers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateJob handles POST /api/v1/jobs - posts a new job in requested status.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req CreateJobRequest
	if err := bind(ctx, &req); err != nil {
		return respondBadRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(jobID, customerID, req.ServiceCode, location)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateJobResponse{JobID: jobID.String()})
}

// MatchJob handles POST /api/v1/jobs/:id/match - fans offers out to
// eligible professionals.
func (s *Server) MatchJob(ctx echo.Context) error {
	jobID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req MatchJobRequest
	if err = bind(ctx, &req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewMatchJobCommand(jobID, req.RadiusKm)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	result, err := s.matchJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := MatchJobResponse{
		MatchedCount: result.MatchedCount,
		Offers:       make([]OfferResponse, 0, len(result.Offers)),
	}
	for _, o := range result.Offers {
		response.Offers = append(response.Offers, OfferResponse{
			OfferID:     o.OfferID.String(),
			JobID:       jobID.String(),
			ProID:       o.ProID.String(),
			PayoutCents: o.PayoutCents,
			DistanceKm:  o.DistanceKm,
			ExpiresAt:   o.ExpiresAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOffer handles POST /api/v1/offers/:id/accept - the claim protocol.
// Exactly one acceptance per job succeeds; losers get a 409 with reasons.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	offerID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req AcceptOfferRequest
	if err = bind(ctx, &req); err != nil {
		return respondBadRequest(ctx, err)
	}

	proID, err := kernel.UUIDFromString(req.ProID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	location, err := optionalPoint(req.Latitude, req.Longitude)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID, proID, location, req.MaxDistanceKm)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateJobStatus handles POST /api/v1/jobs/:id/status - lifecycle
// transitions.
func (s *Server) UpdateJobStatus(ctx echo.Context) error {
	jobID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req UpdateJobStatusRequest
	if err = bind(ctx, &req); err != nil {
		return respondBadRequest(ctx, err)
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	next, err := job.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, err)
	}
	location, err := optionalPoint(req.Latitude, req.Longitude)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateJobStatusCommand(jobID, actorID, req.IsAdmin, next, location)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.updateJobStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateJob handles POST /api/v1/jobs/:id/rating - customer rating of a
// completed job.
func (s *Server) RateJob(ctx echo.Context) error {
	jobID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req RateJobRequest
	if err = bind(ctx, &req); err != nil {
		return respondBadRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRateJobCommand(jobID, customerID, req.Score, req.Comment)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.rateJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenOffers handles GET /api/v1/offers?pro_id= - a professional's
// claimable offer feed.
func (s *Server) GetOpenOffers(ctx echo.Context) error {
	proID, err := kernel.UUIDFromString(ctx.QueryParam("pro_id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOpenOffersQuery(proID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	offers, err := s.getOpenOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		response = append(response, OfferResponse{
			OfferID:     o.OfferID.String(),
			JobID:       o.JobID.String(),
			ServiceCode: o.ServiceCode,
			PayoutCents: o.PayoutCents,
			DistanceKm:  o.DistanceKm,
			ExpiresAt:   o.ExpiresAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetJobEvents handles GET /api/v1/jobs/:id/events - the audit trail.
func (s *Server) GetJobEvents(ctx echo.Context) error {
	jobID, err := pathID(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetJobEventsQuery(jobID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	events, err := s.getJobEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]JobEventResponse, 0, len(events))
	for _, e := range events {
		response = append(response, JobEventResponse{
			EventID:    e.EventID.String(),
			ActorID:    e.ActorID.String(),
			Name:       e.Name,
			Latitude:   e.Latitude,
			Longitude:  e.Longitude,
			Meta:       e.Meta,
			OccurredAt: e.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// bind decodes and validates a request body.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// optionalPoint builds a coordinate from optional latitude/longitude pair.
// Both must be present or both absent.
func optionalPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "latitude and longitude must be provided together")
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
