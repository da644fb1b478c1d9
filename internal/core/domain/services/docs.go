// Package services provides domain services for the rules that span more than
// one aggregate of the logistics domain.
//
// The package includes:
//   - AccessGuard: decides whether an account may act on a shipment
//   - ShipmentDispatcher: binds an active driver to a shipment
//   - PriceCalculator: computes the price breakdown of a shipment
//
// All three are stateless and safe for concurrent use.
package services
