// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: authorization, validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"fleetadmin/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ContractRepoFactory provides access to the contract repository within a transaction.
	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AssignmentRepoFactory provides access to the assignment ledger repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ContractUoW manages transactions for contract-only operations.
	ContractUoW interface {
		TxManager
		ContractRepoFactory
	}

	// ContractUoWFactory creates new contract unit of work instances.
	ContractUoWFactory interface {
		Create() ContractUoW
	}

	// DriverUoW manages transactions for operations that read the assignment
	// ledger while modifying a driver, such as suspension.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		AssignmentRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW manages transactions across contract, driver and assignment
	// aggregates. Used for commands that coordinate changes between multiple
	// aggregate types, such as driver assignment.
	UoW interface {
		TxManager
		ContractRepoFactory
		DriverRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
