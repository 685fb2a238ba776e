package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/application/notifications"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/professional"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllRequestedWithoutOffers(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) AddEvent(ctx context.Context, e *job.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockJobRepository) UpsertRating(ctx context.Context, r *job.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockJobRepository) GetProRatingAverage(ctx context.Context, proID kernel.UUID) (float64, error) {
	args := m.Called(ctx, proID)
	return args.Get(0).(float64), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Settle(ctx context.Context, o *offer.Offer) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetAllOpenByJob(ctx context.Context, jobID kernel.UUID) ([]*offer.Offer, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetAllExpiredOffered(ctx context.Context, now time.Time) ([]*offer.Offer, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetAllOfferedOnClosedJobs(ctx context.Context) ([]*offer.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *offer.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*offer.Assignment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Assignment), args.Error(1)
}

type MockProfessionalRepository struct{ mock.Mock }

func (m *MockProfessionalRepository) Get(ctx context.Context, id kernel.UUID) (*professional.Professional, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*professional.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) Update(ctx context.Context, p *professional.Professional) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfessionalRepository) GetAllOnlineByService(ctx context.Context, serviceCode string) ([]*professional.Professional, error) {
	args := m.Called(ctx, serviceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*professional.Professional), args.Error(1)
}

// MockUoW satisfies every command-side unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) ProfessionalRepository() ports.ProfessionalRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfessionalRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockMatchUoWFactory struct{ mock.Mock }

func (m *MockMatchUoWFactory) Create() commands.MatchUoW {
	args := m.Called()
	return args.Get(0).(commands.MatchUoW)
}

type MockClaimUoWFactory struct{ mock.Mock }

func (m *MockClaimUoWFactory) Create() commands.ClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ClaimUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	args := m.Called()
	return args.Get(0).(commands.SweepUoW)
}

type MockServiceCatalog struct{ mock.Mock }

func (m *MockServiceCatalog) GetActive(ctx context.Context, code string) (ports.CatalogService, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(ports.CatalogService), args.Error(1)
}

type MockComplianceOracle struct{ mock.Mock }

func (m *MockComplianceOracle) GetCompliance(ctx context.Context, proID kernel.UUID, categories []string) ([]professional.ComplianceRecord, error) {
	args := m.Called(ctx, proID, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]professional.ComplianceRecord), args.Error(1)
}

type MockPaymentCollaborator struct{ mock.Mock }

func (m *MockPaymentCollaborator) Capture(ctx context.Context, jobID kernel.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockPaymentCollaborator) MarkCompleted(ctx context.Context, jobID kernel.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// RecordingNotifier captures routed events; routing itself is best effort
// and has no failure mode worth mocking here.
type RecordingNotifier struct {
	Events []notifications.Event
}

func (n *RecordingNotifier) Notify(_ context.Context, event notifications.Event) {
	n.Events = append(n.Events, event)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()

	location, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)
	return location
}

func newRequestedJob(t *testing.T, customerID kernel.UUID) *job.Job {
	t.Helper()

	pricing, err := job.NewPricing(10000)
	require.NoError(t, err)
	j, err := job.NewJob(kernel.NewUUID(), customerID, "plumbing", testLocation(t), pricing)
	require.NoError(t, err)
	return j
}

func newJobInStatus(t *testing.T, customerID kernel.UUID, proID kernel.UUID, status job.Status) *job.Job {
	t.Helper()

	pricing, err := job.NewPricing(10000)
	require.NoError(t, err)
	j, err := job.RestoreJob(
		kernel.NewUUID(), customerID, "plumbing", testLocation(t), pricing,
		status, job.PaymentPending, &proID)
	require.NoError(t, err)
	return j
}

func newApprovedPro(t *testing.T, id kernel.UUID) *professional.Professional {
	t.Helper()

	p, err := professional.RestoreProfessional(
		id, "Dana", []string{"plumbing"}, true, 4.5, nil,
		professional.VerificationApproved, professional.RolePro, professional.RolePro)
	require.NoError(t, err)
	return p
}

func plumbingCompliance() []professional.ComplianceRecord {
	return []professional.ComplianceRecord{{Category: "plumbing", Compliant: true}}
}
