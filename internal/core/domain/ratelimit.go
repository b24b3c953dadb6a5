package domain

// RateLimitRecord holds the per-account throttling configuration for a
// connector's remote API. Records live and die with their account: deleting
// an account removes its record in the same pass.
type RateLimitRecord struct {
	// Account identifies the throttled account.
	Account AccountRef

	// RequestsPerSecond is the sustained request rate allowed against the
	// provider on behalf of this account.
	RequestsPerSecond float64

	// Burst is the number of requests that may be issued back to back
	// before the sustained rate applies.
	Burst int
}
