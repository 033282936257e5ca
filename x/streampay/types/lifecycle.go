package types

import "fmt"

// Lifecycle is the module-wide operating state. Pausing is reversible;
// freezing is terminal and only reachable from the paused state.
type Lifecycle struct {
	Paused bool `json:"paused"`
	// FrozenAt is the unix second of the freeze, zero while not frozen.
	FrozenAt int64 `json:"frozen_at"`
}

// NewLifecycle returns the active state used at genesis.
func NewLifecycle() Lifecycle {
	return Lifecycle{}
}

// IsActive reports whether user operations may proceed.
func (l Lifecycle) IsActive() bool {
	return !l.Paused && l.FrozenAt == 0
}

// IsFrozen reports whether the module has been terminally frozen.
func (l Lifecycle) IsFrozen() bool {
	return l.FrozenAt != 0
}

// Validate checks the state machine invariants.
func (l Lifecycle) Validate() error {
	if l.FrozenAt < 0 {
		return fmt.Errorf("frozen timestamp must not be negative")
	}
	if l.FrozenAt != 0 && !l.Paused {
		return fmt.Errorf("frozen state requires the paused flag")
	}
	return nil
}
