package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/out/gateway"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/catalogrepo"
	"dispatch/internal/adapters/out/postgres/compliancerepo"
	"dispatch/internal/adapters/out/postgres/notifyrepo"
	"dispatch/internal/core/application/notifications"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormServiceCatalog
	compliance *compliancerepo.GormComplianceOracle
	payment    *gateway.StubPaymentCollaborator
	router     *notifications.Router
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	router := notifications.NewRouter(
		notifyrepo.NewGormNotificationRepository(gormDB),
		gateway.NewStubDeliverer(logger),
		notifications.Config{
			PushEnabled:  config.PushNotificationsEnabled,
			SMSEnabled:   config.SMSNotificationsEnabled,
			EmailEnabled: config.EmailNotificationsEnabled,
		},
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormServiceCatalog(gormDB),
		compliance: compliancerepo.NewGormComplianceOracle(gormDB),
		payment:    gateway.NewStubPaymentCollaborator(logger),
		router:     router,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateMatchJobCommandHandler() commands.MatchJobCommandHandler {
	var f commands.MatchUoWFactory = FuncMatchUoWFactory(func() commands.MatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMatchJobCommandHandler(f, c.catalog, c.compliance, c.router, c.logger)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.ClaimUoWFactory = FuncClaimUoWFactory(func() commands.ClaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f, c.compliance, c.router, c.logger)
}

func (c *CompositionRoot) CreateUpdateJobStatusCommandHandler() commands.UpdateJobStatusCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateJobStatusCommandHandler(f, c.payment, c.router, c.logger)
}

func (c *CompositionRoot) CreateRateJobCommandHandler() commands.RateJobCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOffersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOpenOffersQueryHandler() queries.GetOpenOffersQueryHandler {
	return queries.NewGetOpenOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobEventsQueryHandler() queries.GetJobEventsQueryHandler {
	return queries.NewGetJobEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	offerExpiryJob := jobs.NewOfferExpiryJob(c.CreateExpireOffersCommandHandler(), c.logger)
	matchPumpJob := jobs.NewMatchPumpJob(c.uowFactory, c.CreateMatchJobCommandHandler(), c.logger)
	return jobs.NewJobManager(offerExpiryJob, matchPumpJob)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncMatchUoWFactory func() commands.MatchUoW

func (f FuncMatchUoWFactory) Create() commands.MatchUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}
