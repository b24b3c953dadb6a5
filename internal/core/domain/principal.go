package domain

// Principal is the capability token passed into every mutating operation.
// There is no ambient security context: services check the principal they
// were handed, callers decide how to construct one.
type Principal struct {
	// Name identifies the operator, for audit output.
	Name string

	// Admin grants the right to mutate account setup (delete accounts,
	// change scenario assignments).
	Admin bool
}

// CanAdminister reports whether the principal may mutate account setup.
func (p Principal) CanAdminister() bool {
	return p.Admin
}
