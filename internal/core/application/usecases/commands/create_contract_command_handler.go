package commands

import (
	"context"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/auth"
)

// CreateContractCommandHandler handles the business logic for opening rental
// contracts. Creates the contract aggregate with its rental vehicles and
// persists it within a transaction.
type CreateContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewCreateContractCommandHandler creates a handler for contract creation.
func NewCreateContractCommandHandler(uowFactory ContractUoWFactory) CreateContractCommandHandler {
	return CreateContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contract creation command.
// Requires the manage-contracts permission within the command's tenant.
func (h CreateContractCommandHandler) Handle(
	ctx context.Context, ac auth.Context, cmd CreateContractCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := auth.RequirePermission(ac, auth.PermManageContracts); err != nil {
		return err
	}
	if err := auth.RequireTenant(ac, cmd.TenantID()); err != nil {
		return err
	}

	vehicles := make([]*contract.RentalVehicle, 0, len(cmd.Vehicles()))
	for _, spec := range cmd.Vehicles() {
		v, err := contract.NewRentalVehicle(kernel.NewUUID(), spec.VehicleID, spec.RateCents)
		if err != nil {
			return err
		}
		vehicles = append(vehicles, v)
	}

	aggregate, err := contract.NewContract(
		cmd.ContractID(),
		cmd.TenantID(),
		cmd.ContractNumber(),
		cmd.Period(),
		cmd.IncludesDriver(),
		cmd.PricingModel(),
		vehicles,
		cmd.OccurredOn(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContractRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
