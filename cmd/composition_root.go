package cmd

import (
	"log/slog"

	"fleetadmin/internal/adapters/out/postgres"
	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateContractCommandHandler() commands.CreateContractCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContractCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionContractCommandHandler() commands.TransitionContractCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionContractCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignDriverCommandHandler() commands.UnassignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateSuspendDriverCommandHandler() commands.SuspendDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSuspendDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateResumeDriverCommandHandler() commands.ResumeDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResumeDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateActivateContractsCommandHandler() commands.ActivateContractsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewActivateContractsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateMarkOverdueContractsCommandHandler() commands.MarkOverdueContractsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueContractsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveAssignmentsQueryHandler() queries.GetActiveAssignmentsQueryHandler {
	return queries.NewGetActiveAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(schedules jobs.Schedules) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateActivateContractsCommandHandler(),
		c.CreateMarkOverdueContractsCommandHandler(),
		c.CreateGetStatusSummaryQueryHandler(),
		schedules,
		c.logger,
	)
}

type FuncContractUoWFactory func() commands.ContractUoW

func (f FuncContractUoWFactory) Create() commands.ContractUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
