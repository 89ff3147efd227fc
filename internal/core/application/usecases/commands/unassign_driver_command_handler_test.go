package commands_test

import (
	"testing"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnassignDriverCommandHandler_Handle_PendingContract(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := pendingContract(t, tenantID, true)
	driverID := kernel.NewUUID()
	require.NoError(t, aggregate.AttachDriver(driverID, testNow))

	activeRow, err := assignment.NewAssignment(
		kernel.NewUUID(), tenantID, driverID, aggregate.ID(), aggregate.Period(), testNow,
	)
	require.NoError(t, err)

	cmd, err := commands.NewUnassignDriverCommand(tenantID, aggregate.ID(), "driver detached", testNow)
	require.NoError(t, err)

	contractRepo := new(MockContractRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		contractRepo.On("Get", ctx, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		assignmentRepo.On("GetActiveByContract", ctx, tenantID, aggregate.ID()).
			Return([]*assignment.Assignment{activeRow}, nil).Once(),
		assignmentRepo.On("Update", ctx, activeRow).Return(nil).Once(),
		contractRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignDriverCommandHandler(factory)
	err = handler.Handle(ctx, adminContext(t, tenantID), cmd)

	require.NoError(t, err)
	assert.Equal(t, assignment.Unassigned, activeRow.Status())
	assert.Equal(t, "driver detached", activeRow.Reason())
	// the pending contract's vehicle slot is cleared
	assert.Nil(t, aggregate.Vehicles()[0].Driver())
	uow.AssertExpectations(t)
}

func TestUnassignDriverCommandHandler_Handle_ActiveContractKeepsSlot(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := pendingContract(t, tenantID, true)
	driverID := kernel.NewUUID()
	require.NoError(t, aggregate.AttachDriver(driverID, testNow))
	require.NoError(t, aggregate.TransitionTo(contract.Active, testNow))

	activeRow, err := assignment.NewAssignment(
		kernel.NewUUID(), tenantID, driverID, aggregate.ID(), aggregate.Period(), testNow,
	)
	require.NoError(t, err)

	cmd, err := commands.NewUnassignDriverCommand(tenantID, aggregate.ID(), "driver suspended", testNow)
	require.NoError(t, err)

	contractRepo := new(MockContractRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		contractRepo.On("Get", ctx, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		assignmentRepo.On("GetActiveByContract", ctx, tenantID, aggregate.ID()).
			Return([]*assignment.Assignment{activeRow}, nil).Once(),
		assignmentRepo.On("Update", ctx, activeRow).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignDriverCommandHandler(factory)
	err = handler.Handle(ctx, adminContext(t, tenantID), cmd)

	require.NoError(t, err)
	// the ledger row is ended but the frozen vehicle slot keeps its history
	assert.Equal(t, assignment.Unassigned, activeRow.Status())
	require.NotNil(t, aggregate.Vehicles()[0].Driver())
	contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUnassignDriverCommandHandler_Handle_NoActiveAssignment(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	aggregate := pendingContract(t, tenantID, true)

	cmd, err := commands.NewUnassignDriverCommand(tenantID, aggregate.ID(), "driver detached", testNow)
	require.NoError(t, err)

	contractRepo := new(MockContractRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(contractRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		contractRepo.On("Get", ctx, tenantID, aggregate.ID()).Return(aggregate, nil).Once(),
		assignmentRepo.On("GetActiveByContract", ctx, tenantID, aggregate.ID()).
			Return([]*assignment.Assignment{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignDriverCommandHandler(factory)
	err = handler.Handle(ctx, adminContext(t, tenantID), cmd)

	require.ErrorIs(t, err, commands.ErrNoActiveAssignmentFound)
}
