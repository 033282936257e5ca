package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/calculations"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

func emissionWindow(params types.Params) calculations.EmissionWindow {
	return calculations.EmissionWindow{
		StartTime:          params.StartTime,
		EndTime:            params.EndTime,
		RatePerSecond:      params.EmissionRatePerSecond(),
		AllocationPerToken: params.AllocationPerToken,
	}
}

// accrueStream advances one stream to now and returns the amount
// released. Repeat calls within the same second return zero, which is
// what keeps duplicate batch entries and payout-triggered re-entry from
// double counting.
func (k Keeper) accrueStream(ctx context.Context, params types.Params, tokenId uint64, now int64) (math.Int, error) {
	stream := k.getOrInitStream(ctx, tokenId)

	if stream.LastClaimedAt == now {
		return math.ZeroInt(), nil
	}
	if stream.Drained(params.EndTime) {
		return math.ZeroInt(), nil
	}
	if stream.Paused {
		return math.Int{}, errorsmod.Wrapf(types.ErrStreamPaused, "token id %d", tokenId)
	}

	claimable, newCursor := calculations.Accrued(emissionWindow(params), stream.LastClaimedAt, stream.Claimed, now)
	if claimable.IsNegative() {
		return math.Int{}, errorsmod.Wrapf(types.ErrIncorrectClaimable, "token id %d accrued negative amount %s", tokenId, claimable)
	}

	updated := stream.Claimed.Add(claimable)
	if updated.GT(params.AllocationPerToken) {
		return math.Int{}, errorsmod.Wrapf(types.ErrIncorrectClaimable, "token id %d would reach %s of allocation %s", tokenId, updated, params.AllocationPerToken)
	}

	stream.Claimed = updated
	stream.LastClaimedAt = newCursor
	k.SetStream(ctx, tokenId, stream)

	return claimable, nil
}

// PeekClaimable reports what a claim at the current block time would pay
// for one token, without mutating anything. Unlike accrueStream it does
// not fail on a paused stream.
func (k Keeper) PeekClaimable(ctx context.Context, tokenId uint64) (math.Int, error) {
	params := k.GetParams(ctx)
	if !params.ValidTokenId(tokenId) {
		return math.Int{}, errorsmod.Wrapf(types.ErrTokenIdOutOfRange, "token id %d, collection range [1, %d]", tokenId, params.TokenCount)
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	stream := k.getOrInitStream(ctx, tokenId)
	if stream.LastClaimedAt == now {
		return math.ZeroInt(), nil
	}

	claimable, _ := calculations.Accrued(emissionWindow(params), stream.LastClaimedAt, stream.Claimed, now)
	return claimable, nil
}

// SetStreamsPaused bulk toggles the per-token pause flag. Pausing one
// stream never affects another's accrual.
func (k Keeper) SetStreamsPaused(ctx context.Context, tokenIds []uint64, paused bool) {
	for _, tokenId := range tokenIds {
		stream := k.getOrInitStream(ctx, tokenId)
		stream.Paused = paused
		k.SetStream(ctx, tokenId, stream)
	}
}
