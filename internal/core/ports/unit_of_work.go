package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events raised by the
// aggregates it saved are published only after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction, then publishes the domain events of every
	// aggregate saved through its repositories.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and the pending events.
	// Returns error if no active transaction exists.
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	TrackingRepository() TrackingRepository
	AccountRepository() AccountRepository
}
