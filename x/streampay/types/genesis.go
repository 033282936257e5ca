package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StreamRecord pairs a token id with its accrual record for genesis
// import/export.
type StreamRecord struct {
	TokenId uint64 `json:"token_id"`
	Stream  Stream `json:"stream"`
}

// GenesisState is the full module state.
type GenesisState struct {
	Params    Params         `json:"params"`
	Roles     Roles          `json:"roles"`
	Lifecycle Lifecycle      `json:"lifecycle"`
	Financing FinancingState `json:"financing"`
	Streams   []StreamRecord `json:"streams,omitempty"`
	Modules   []string       `json:"modules,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Roles:     Roles{},
		Lifecycle: NewLifecycle(),
		Financing: NewFinancingState(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.Roles.Validate(); err != nil {
		return err
	}
	if err := gs.Lifecycle.Validate(); err != nil {
		return err
	}
	if err := gs.Financing.Validate(); err != nil {
		return err
	}
	if gs.Financing.TotalDeposited.GT(gs.Params.TotalAllocation()) {
		return fmt.Errorf("total deposited %s exceeds total allocation %s", gs.Financing.TotalDeposited, gs.Params.TotalAllocation())
	}

	claimedSum := math.ZeroInt()
	seenTokens := make(map[uint64]struct{}, len(gs.Streams))
	for _, record := range gs.Streams {
		if !gs.Params.ValidTokenId(record.TokenId) {
			return fmt.Errorf("stream token id %d outside collection range [1, %d]", record.TokenId, gs.Params.TokenCount)
		}
		if _, ok := seenTokens[record.TokenId]; ok {
			return fmt.Errorf("duplicate stream record for token id %d", record.TokenId)
		}
		seenTokens[record.TokenId] = struct{}{}
		if err := record.Stream.Validate(gs.Params); err != nil {
			return fmt.Errorf("stream for token id %d: %w", record.TokenId, err)
		}
		claimedSum = claimedSum.Add(record.Stream.Claimed)
	}
	if !claimedSum.Equal(gs.Financing.TotalClaimed) {
		return fmt.Errorf("sum of stream claims %s does not match total claimed %s", claimedSum, gs.Financing.TotalClaimed)
	}

	seenModules := make(map[string]struct{}, len(gs.Modules))
	for _, module := range gs.Modules {
		if _, err := sdk.AccAddressFromBech32(module); err != nil {
			return fmt.Errorf("invalid module address %q: %w", module, err)
		}
		if _, ok := seenModules[module]; ok {
			return fmt.Errorf("duplicate module address %q", module)
		}
		seenModules[module] = struct{}{}
	}

	return nil
}
