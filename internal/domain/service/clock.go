// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "time"

// Clock supplies the current time in the clinic's fixed reference zone.
// Every deadline and window computation goes through this interface, never
// through the server's local zone: a deployment region change or a DST shift
// must not move confirmation deadlines.
type Clock interface {
	// Now returns the current instant in the reference zone.
	Now() time.Time

	// Location returns the reference zone itself, for day-boundary math.
	Location() *time.Location
}
