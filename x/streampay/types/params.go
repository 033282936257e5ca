package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the immutable stream configuration. It is set once at
// genesis; there is deliberately no UpdateParams message.
type Params struct {
	// StartTime and EndTime bound the emission window in unix seconds.
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
	// AllocationPerToken is the amount each token streams over the window.
	AllocationPerToken math.Int `json:"allocation_per_token"`
	// TokenCount is the size of the collection; valid ids are 1..TokenCount.
	TokenCount uint64 `json:"token_count"`
	// Denom is the denomination streamed out.
	Denom string `json:"denom"`
}

// Default parameter values. Deployments override the window and
// allocation at genesis; the defaults only have to validate.
var (
	DefaultDenom              = "ustrm"
	DefaultStreamDuration     = int64(30 * 24 * 60 * 60)
	DefaultAllocationPerToken = math.NewInt(2_592_000)
	DefaultTokenCount         = uint64(10_000)
)

// DeadlineProtectionPeriod is the minimum gap, in seconds, between
// max(EndTime, now) and any new claim deadline. It keeps a last-minute
// deadline from cutting holders off before they can react.
const DeadlineProtectionPeriod int64 = 14 * 24 * 60 * 60

// NewParams creates a new Params instance
func NewParams(startTime, endTime int64, allocationPerToken math.Int, tokenCount uint64, denom string) Params {
	return Params{
		StartTime:          startTime,
		EndTime:            endTime,
		AllocationPerToken: allocationPerToken,
		TokenCount:         tokenCount,
		Denom:              denom,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(0, DefaultStreamDuration, DefaultAllocationPerToken, DefaultTokenCount, DefaultDenom)
}

// EmissionRatePerSecond is the per-token accrual rate, truncated by
// integer division. The truncation remainder is paid on the final tick.
func (p Params) EmissionRatePerSecond() math.Int {
	return p.AllocationPerToken.QuoRaw(p.EndTime - p.StartTime)
}

// TotalAllocation is the cap on deposits: AllocationPerToken for every
// token in the collection.
func (p Params) TotalAllocation() math.Int {
	return p.AllocationPerToken.Mul(math.NewIntFromUint64(p.TokenCount))
}

// ValidTokenId reports whether id addresses a token of the collection.
func (p Params) ValidTokenId(tokenId uint64) bool {
	return tokenId >= 1 && tokenId <= p.TokenCount
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.EndTime <= p.StartTime {
		return fmt.Errorf("end time %d must be after start time %d", p.EndTime, p.StartTime)
	}
	if err := validateAllocationPerToken(p.AllocationPerToken); err != nil {
		return err
	}
	if p.TokenCount == 0 {
		return fmt.Errorf("token count must be positive")
	}
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid stream denom: %w", err)
	}
	// An allocation smaller than the window truncates the per-second rate
	// to zero and the stream would pay everything on the final tick only.
	if !p.EmissionRatePerSecond().IsPositive() {
		return fmt.Errorf("emission rate rounds to zero: allocation %s over %d seconds", p.AllocationPerToken, p.EndTime-p.StartTime)
	}
	return nil
}

func validateAllocationPerToken(v math.Int) error {
	if v.IsNil() {
		return fmt.Errorf("allocation per token is not set")
	}
	if !v.IsPositive() {
		return fmt.Errorf("allocation per token must be positive: %s", v)
	}
	return nil
}
