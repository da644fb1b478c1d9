// Package shipment provides the Shipment aggregate root and its lifecycle state machine.
//
// The package includes:
//   - Shipment: the aggregate that owns the status field, the driver binding and
//     the commercial, customs, COD, failure and delay metadata of one shipment
//   - Status and Action: the closed status enumeration and the transition table
//   - Event: one domain event per accepted action, consumed by the tracking
//     ledger and by the event publisher
//
// Key business rules:
//   - PENDING -> ASSIGNED -> PICKED_UP -> IN_TRANSIT -> OUT_FOR_DELIVERY -> DELIVERED
//   - IN_TRANSIT may be delivered directly; any non-terminal status may fail
//   - only PENDING may be cancelled
//   - an action attempted from any other status is rejected, never corrected
//   - the actual delivery time is set exactly when the status is DELIVERED
//   - an administrator override may set any known status
package shipment
