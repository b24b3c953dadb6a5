// Package domain defines the core business entities for mailctl.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - EmailAccount: An email account owned by a provider connector
//   - ConnectorID: Stable identifier for a provider integration
//   - Scenario: A named usage role bound to at most one account
//   - Principal: Explicit capability token for mutating operations
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
