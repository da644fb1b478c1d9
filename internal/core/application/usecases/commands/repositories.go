// Package commands contains the business operations that change system state.
// Every handler follows the same pattern: validate the command, open a unit of
// work, load with a row lock, authorise, mutate, persist, commit.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ShipmentUoW serves the driver and customer actions on a single shipment:
	// the shipment row and its ledger change in one transaction.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		TrackingRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// AccountUoW serves registration and account administration.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// UoW spans shipments, the ledger and accounts. Used by dispatch, which
	// reads the driver's account while it mutates the shipment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   driver, err := uow.AccountRepository().Get(ctx, driverID)
	//   s, err := uow.ShipmentRepository().GetForUpdate(ctx, shipmentID)
	//   // ... dispatch
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipmentRepoFactory
		TrackingRepoFactory
		AccountRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
