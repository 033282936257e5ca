package keeper

import (
	"strconv"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

// claimOutcome is what a dispatched claim produced: the per-token
// breakdown in request order and the grand total.
type claimOutcome struct {
	Amounts []types.ClaimedAmount
	Total   math.Int
}

// dispatchClaim runs one claim call end to end: gate, resolve ownership,
// advance every stream, update the financing ledger, then pay. All state
// is written before the first bank send, so re-entry through a payout
// can only ever accrue zero.
func (k Keeper) dispatchClaim(ctx sdk.Context, caller sdk.AccAddress, tokenIds []uint64, resolver ownershipResolver) (*claimOutcome, error) {
	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	now := ctx.BlockTime().Unix()
	if err := k.requireClaimWindow(ctx, now); err != nil {
		return nil, err
	}
	params := k.GetParams(ctx)
	if err := k.requireValidTokenIds(params, tokenIds); err != nil {
		return nil, err
	}

	targets, err := resolver.resolve(ctx, caller, tokenIds)
	if err != nil {
		return nil, err
	}

	outcome := &claimOutcome{
		Amounts: make([]types.ClaimedAmount, 0, len(targets)),
		Total:   math.ZeroInt(),
	}
	payouts := make(map[string]math.Int, len(targets))
	for _, target := range targets {
		amount, err := k.accrueStream(ctx, params, target.tokenId, now)
		if err != nil {
			return nil, err
		}
		outcome.Amounts = append(outcome.Amounts, types.ClaimedAmount{TokenId: target.tokenId, Amount: amount})
		outcome.Total = outcome.Total.Add(amount)

		payee := target.payee.String()
		current, ok := payouts[payee]
		if !ok {
			current = math.ZeroInt()
		}
		payouts[payee] = current.Add(amount)
	}

	financing := k.GetFinancing(ctx)
	financing.TotalClaimed = financing.TotalClaimed.Add(outcome.Total)
	k.SetFinancing(ctx, financing)

	// bank sends come last, in sorted payee order for determinism
	payees := maps.Keys(payouts)
	slices.Sort(payees)
	for _, payee := range payees {
		amount := payouts[payee]
		if amount.IsZero() {
			continue
		}
		coin := sdk.NewCoin(params.Denom, amount)
		payeeAddr := sdk.MustAccAddressFromBech32(payee)
		if err := k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, payeeAddr, sdk.NewCoins(coin), "stream claim"); err != nil {
			return nil, err
		}
		k.bookkeepingBankKeeper.LogSubAccountTransaction(ctx, payee, types.ModuleName, types.SubAccountStream, coin, "stream claim")
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyClaimant, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, outcome.Total.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIds, formatTokenIds(tokenIds)),
		),
	})

	k.Logger().Info("streams claimed",
		"claimant", caller.String(),
		"total", outcome.Total.String(),
		"tokens", len(tokenIds),
	)

	return outcome, nil
}

func formatTokenIds(tokenIds []uint64) string {
	parts := make([]string, 0, len(tokenIds))
	for _, id := range tokenIds {
		parts = append(parts, strconv.FormatUint(id, 10))
	}
	return strings.Join(parts, ",")
}
