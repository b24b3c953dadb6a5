// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Connector: One installed provider integration
//   - ConnectorCatalog: The set of currently installed connectors
//   - ScenarioStore: Scenario-to-account assignment persistence
//   - RateLimitStore: Per-account throttling record persistence
//   - AccountStore: Account persistence for locally-stored connectors
//
// # Optional Interfaces
//
// These can be nil - the relevant behaviour degrades gracefully:
//
//   - AccountChooser: Interactive selection of a replacement default.
//     Without it, repair falls back to clearing a dangling default.
//   - ConfirmPrompt: Interactive deletion confirmation. Without it,
//     deletion proceeds as if confirmed.
//   - Notifier: Event hooks for deletions and default changes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
