package calculations

import (
	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// EmissionWindow is the fixed schedule every stream follows.
type EmissionWindow struct {
	StartTime          int64
	EndTime            int64
	RatePerSecond      math.Int
	AllocationPerToken math.Int
}

// Accrued maps the accrual cursor of one stream to the amount claimable
// now and the new cursor position. Pure, no side effects.
//
// The cursor never moves past EndTime. On the final tick, the whole
// unpaid remainder is released so integer-division dust is never lost.
func Accrued(window EmissionWindow, lastClaimedAt int64, claimed math.Int, now int64) (math.Int, int64) {
	effectiveNow := now
	if effectiveNow > window.EndTime {
		effectiveNow = window.EndTime
	}

	if effectiveNow == window.EndTime {
		return window.AllocationPerToken.Sub(claimed), effectiveNow
	}

	effectiveLast := lastClaimedAt
	if effectiveLast < window.StartTime {
		effectiveLast = window.StartTime
	}

	elapsed := effectiveNow - effectiveLast
	if elapsed <= 0 {
		return math.ZeroInt(), effectiveNow
	}

	return window.RatePerSecond.Mul(math.NewInt(elapsed)), effectiveNow
}

// Progress reports the elapsed share of the window as a decimal in
// [0, 1]. All operations are deterministic using shopspring/decimal.
func Progress(window EmissionWindow, now int64) decimal.Decimal {
	length := window.EndTime - window.StartTime
	elapsed := now - window.StartTime
	if elapsed <= 0 {
		return decimal.Zero
	}
	if elapsed >= length {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(elapsed).DivRound(decimal.NewFromInt(length), 18)
}
