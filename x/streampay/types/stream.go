package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Stream is the per-token accrual record. Streams are created lazily on
// first access, so a token that never claimed has no stored record.
type Stream struct {
	// Claimed is the cumulative amount paid out for this token.
	Claimed math.Int `json:"claimed"`
	// LastClaimedAt is the accrual cursor in unix seconds. It never
	// decreases and never passes EndTime; once it equals EndTime the
	// stream is drained.
	LastClaimedAt int64 `json:"last_claimed_at"`
	// Paused blocks accrual for this token only.
	Paused bool `json:"paused"`
}

// NewStream returns the default record for a token seen for the first time.
func NewStream() Stream {
	return Stream{Claimed: math.ZeroInt()}
}

// Drained reports whether the stream has reached the end of the window.
func (s Stream) Drained(endTime int64) bool {
	return s.LastClaimedAt == endTime
}

// Validate checks the record against the stream configuration.
func (s Stream) Validate(p Params) error {
	if s.Claimed.IsNil() || s.Claimed.IsNegative() {
		return fmt.Errorf("claimed amount must be a non-negative integer")
	}
	if s.Claimed.GT(p.AllocationPerToken) {
		return fmt.Errorf("claimed %s exceeds allocation per token %s", s.Claimed, p.AllocationPerToken)
	}
	if s.LastClaimedAt < 0 || s.LastClaimedAt > p.EndTime {
		return fmt.Errorf("last claimed timestamp %d outside [0, %d]", s.LastClaimedAt, p.EndTime)
	}
	return nil
}
