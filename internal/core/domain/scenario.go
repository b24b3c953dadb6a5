package domain

// Scenario is a named usage role that can be bound to at most one account
// (e.g., the account used when no explicit account is specified).
type Scenario string

// ScenarioDefault is the scenario consulted when no explicit account is
// given. Other scenarios are free-form names chosen by the operator.
const ScenarioDefault Scenario = "default"

// ScenarioAssignment binds a scenario to an account reference.
type ScenarioAssignment struct {
	Scenario Scenario
	Account  AccountRef
}
