// Package geo defines the geographic value types shared by the rest of
// the routing engine: a Coordinate (decimal-degree latitude/longitude)
// and a Distance (non-negative meters).
//
// Both types are immutable value objects: every operation that would
// change a value returns a new one instead of mutating the receiver.
package geo
