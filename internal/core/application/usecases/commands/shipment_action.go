package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
)

// applyShipmentAction runs one action against a shipment inside an open unit of
// work: the row is locked, the actor authorised and the aggregate mutated;
// tracked events go to the ledger and the shipment is saved before commit.
// A failure at any step leaves the transaction for the caller to roll back.
func applyShipmentAction(
	ctx context.Context,
	uow ShipmentUoW,
	shipmentID kernel.UUID,
	authorize func(s *shipment.Shipment) error,
	act func(s *shipment.Shipment) error,
) (*shipment.Shipment, error) {
	shipments := uow.ShipmentRepository()

	s, err := shipments.GetForUpdate(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err = authorize(s); err != nil {
		return nil, err
	}

	if err = act(s); err != nil {
		return nil, err
	}

	if err = appendLedgerEntries(ctx, uow, s); err != nil {
		return nil, err
	}

	if err = shipments.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// appendLedgerEntries writes one placeholder-position ledger entry per tracked
// event the aggregate raised since it was loaded.
func appendLedgerEntries(ctx context.Context, uow TrackingRepoFactory, s *shipment.Shipment) error {
	entries, err := ledgerEntries(s.Events())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	return uow.TrackingRepository().Append(ctx, entries...)
}

func ledgerEntries(events []shipment.Event) ([]*tracking.Entry, error) {
	entries := make([]*tracking.Entry, 0, len(events))
	for _, event := range events {
		if !event.Tracked() {
			continue
		}

		entry, err := tracking.NewEntry(
			kernel.NewUUID(),
			event.ShipmentID,
			kernel.UnknownGeoPoint(),
			event.LocationName,
			event.Note,
			event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
