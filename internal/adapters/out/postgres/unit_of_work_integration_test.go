package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fleetadmin/internal/adapters/out/postgres"
	"fleetadmin/internal/adapters/out/postgres/assignmentrepo"
	"fleetadmin/internal/adapters/out/postgres/contractrepo"
	"fleetadmin/internal/adapters/out/postgres/driverrepo"
	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	tenantID  kernel.UUID
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&contractrepo.ContractDTO{}, &contractrepo.RentalVehicleDTO{},
		&driverrepo.DriverDTO{}, &assignmentrepo.AssignmentDTO{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(db.Exec(assignmentrepo.OverlapGuardDDL).Error)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE contracts, rental_vehicles, drivers, assignments").Error
	suite.Require().NoError(err)
	suite.tenantID = kernel.NewUUID()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ContractRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.AssignmentRepository())
	suite.NotNil(uow2.ContractRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated Begin must not open a nested transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_AssignmentFlow runs the full assign transaction shape:
// contract update plus ledger insert committed atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentFlow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testContract := suite.createTestContract()
	testDriver := suite.createTestDriver()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ContractRepository().Add(ctx, testContract)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = testContract.AttachDriver(testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.ContractRepository().Update(ctx, testContract)
	suite.Require().NoError(err)

	row, err := assignment.NewAssignment(
		kernel.NewUUID(), suite.tenantID, testDriver.ID(), testContract.ID(),
		testContract.Period(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, row)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Everything is visible through a fresh unit of work.
	newUow := suite.factory.Create()

	retrieved, err := newUow.ContractRepository().Get(ctx, suite.tenantID, testContract.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Vehicles()[0].Driver())
	suite.Equal(testDriver.ID(), *retrieved.Vehicles()[0].Driver())

	rows, err := newUow.AssignmentRepository().GetActiveByDriver(ctx, suite.tenantID, testDriver.ID())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(row.ID(), rows[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testContract := suite.createTestContract()
	testDriver := suite.createTestDriver()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ContractRepository().Add(ctx, testContract)
	suite.Require().NoError(err)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Both aggregates are visible inside the transaction.
	_, err = uow.ContractRepository().Get(ctx, suite.tenantID, testContract.ID())
	suite.Require().NoError(err)

	_, err = uow.DriverRepository().Get(ctx, suite.tenantID, testDriver.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ContractRepository().Get(ctx, suite.tenantID, testContract.ID())
	suite.Require().Error(err, "Contract should not exist after rollback")

	_, err = newUow.DriverRepository().Get(ctx, suite.tenantID, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	contract1 := suite.createTestContract()
	contract2 := suite.createTestContract()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ContractRepository().Add(ctx, contract1)
	suite.Require().NoError(err)

	err = uow2.ContractRepository().Add(ctx, contract2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes.
	_, err = uow1.ContractRepository().Get(ctx, suite.tenantID, contract1.ID())
	suite.Require().NoError(err)

	_, err = uow1.ContractRepository().Get(ctx, suite.tenantID, contract2.ID())
	suite.Require().Error(err)

	_, err = uow2.ContractRepository().Get(ctx, suite.tenantID, contract2.ID())
	suite.Require().NoError(err)

	_, err = uow2.ContractRepository().Get(ctx, suite.tenantID, contract1.ID())
	suite.Require().Error(err)

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ContractRepository().Get(ctx, suite.tenantID, contract1.ID())
	suite.Require().NoError(err, "Committed contract should persist")

	_, err = newUow.ContractRepository().Get(ctx, suite.tenantID, contract2.ID())
	suite.Require().Error(err, "Rolled-back contract should not persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := suite.createTestDriver()

	// Without Begin the repository writes immediately.
	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.DriverRepository().Get(ctx, suite.tenantID, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestContract() *contract.Contract {
	vehicle, err := contract.NewRentalVehicle(kernel.NewUUID(), kernel.NewUUID(), 12500)
	suite.Require().NoError(err)

	period, err := kernel.NewDateRange(
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)

	aggregate, err := contract.NewContract(
		kernel.NewUUID(), suite.tenantID, "CN-"+kernel.NewUUID().String()[:8], period,
		true, contract.PricingDaily,
		[]*contract.RentalVehicle{vehicle}, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDriver() *driver.Driver {
	expiry := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	d, err := driver.NewDriver(kernel.NewUUID(), suite.tenantID, expiry, time.Now().UTC())
	suite.Require().NoError(err)
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
