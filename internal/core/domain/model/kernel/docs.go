// Package kernel provides the value objects shared by every aggregate of the
// logistics domain.
//
//   - UUID: identifier of shipments, accounts and tracking entries
//   - GeoPoint: a latitude/longitude pair used by tracking entries
//
// Both are immutable, safe for concurrent use and invalid as zero values.
package kernel
