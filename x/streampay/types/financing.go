package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// FinancingState is the aggregate funding ledger for the whole program.
type FinancingState struct {
	// TotalDeposited is reduced on withdrawal, so it tracks funds the
	// program still controls rather than lifetime inflow.
	TotalDeposited math.Int `json:"total_deposited"`
	// TotalClaimed is the sum of Claimed over all streams.
	TotalClaimed math.Int `json:"total_claimed"`
	// Deadline is the unix second after which claims stop and the
	// depositor may withdraw. Zero means no deadline is set.
	Deadline int64 `json:"deadline"`
}

// NewFinancingState returns the zeroed ledger used at genesis.
func NewFinancingState() FinancingState {
	return FinancingState{
		TotalDeposited: math.ZeroInt(),
		TotalClaimed:   math.ZeroInt(),
	}
}

// Unclaimed returns the deposited funds not yet paid out.
func (f FinancingState) Unclaimed() math.Int {
	return f.TotalDeposited.Sub(f.TotalClaimed)
}

// ClaimsClosed reports whether the deadline is set and lies strictly
// before now.
func (f FinancingState) ClaimsClosed(now int64) bool {
	return f.Deadline != 0 && now > f.Deadline
}

// Validate checks internal consistency of the ledger.
func (f FinancingState) Validate() error {
	if f.TotalDeposited.IsNil() || f.TotalDeposited.IsNegative() {
		return fmt.Errorf("total deposited must be a non-negative integer")
	}
	if f.TotalClaimed.IsNil() || f.TotalClaimed.IsNegative() {
		return fmt.Errorf("total claimed must be a non-negative integer")
	}
	if f.TotalClaimed.GT(f.TotalDeposited) {
		return fmt.Errorf("total claimed %s exceeds total deposited %s", f.TotalClaimed, f.TotalDeposited)
	}
	if f.Deadline < 0 {
		return fmt.Errorf("deadline must not be negative")
	}
	return nil
}
