package service

// TokenGenerator produces opaque token values. Implementations must draw from a
// cryptographically secure source; token values are bearer credentials.
type TokenGenerator interface {
	// Generate returns a fresh random value, uniform over the generator's
	// alphabet, long enough that exhaustive guessing within any TTL is infeasible.
	Generate() (string, error)
}
