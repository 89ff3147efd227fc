package commands_test

import (
	"context"
	"testing"
	"time"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/ports"
	"fleetadmin/internal/pkg/auth"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func testPeriod(t *testing.T) kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return period
}

func adminContext(t *testing.T, tenantID kernel.UUID) auth.Context {
	t.Helper()
	ac, err := auth.NewContext(tenantID, kernel.NewUUID(), auth.RoleFleetAdmin)
	require.NoError(t, err)
	return ac
}

func viewerContext(t *testing.T, tenantID kernel.UUID) auth.Context {
	t.Helper()
	ac, err := auth.NewContext(tenantID, kernel.NewUUID(), auth.RoleViewer)
	require.NoError(t, err)
	return ac
}

func pendingContract(t *testing.T, tenantID kernel.UUID, includeDriver bool) *contract.Contract {
	t.Helper()
	vehicle, err := contract.NewRentalVehicle(kernel.NewUUID(), kernel.NewUUID(), 12500)
	require.NoError(t, err)

	aggregate, err := contract.NewContract(
		kernel.NewUUID(), tenantID, "CN-1001", testPeriod(t),
		includeDriver, contract.PricingDaily,
		[]*contract.RentalVehicle{vehicle}, testNow,
	)
	require.NoError(t, err)
	return aggregate
}

func availableDriver(t *testing.T, tenantID kernel.UUID) *driver.Driver {
	t.Helper()
	expiry := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	d, err := driver.NewDriver(kernel.NewUUID(), tenantID, expiry, testNow)
	require.NoError(t, err)
	return d
}

type MockContractRepository struct{ mock.Mock }

func (m *MockContractRepository) Add(ctx context.Context, aggregate *contract.Contract) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContractRepository) Update(ctx context.Context, aggregate *contract.Contract) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContractRepository) Get(
	ctx context.Context, tenantID, id kernel.UUID,
) (*contract.Contract, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) GetAllPendingStartingBy(
	ctx context.Context, date time.Time,
) ([]*contract.Contract, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) GetAllActiveEndedBy(
	ctx context.Context, date time.Time,
) ([]*contract.Contract, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contract.Contract), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(
	ctx context.Context, tenantID, id kernel.UUID,
) (*driver.Driver, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(
	ctx context.Context, tenantID, id kernel.UUID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByDriver(
	ctx context.Context, tenantID, driverID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, tenantID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByContract(
	ctx context.Context, tenantID, contractID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, tenantID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllByDriver(
	ctx context.Context, tenantID, driverID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, tenantID, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

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

func (m *MockUoW) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockContractUoWFactory struct{ mock.Mock }

func (m *MockContractUoWFactory) Create() commands.ContractUoW {
	args := m.Called()
	return args.Get(0).(commands.ContractUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}
