package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

// requireActive fails every claim and financing operation while the
// module is paused or frozen.
func (k Keeper) requireActive(ctx context.Context) error {
	if !k.GetLifecycle(ctx).IsActive() {
		return types.ErrPaused
	}
	return nil
}

// requireClaimWindow fails outside [StartTime, deadline]. A zero deadline
// leaves the window open-ended.
func (k Keeper) requireClaimWindow(ctx context.Context, now int64) error {
	params := k.GetParams(ctx)
	if now < params.StartTime {
		return errorsmod.Wrapf(types.ErrNotStarted, "streaming starts at %d", params.StartTime)
	}
	if financing := k.GetFinancing(ctx); financing.ClaimsClosed(now) {
		return errorsmod.Wrapf(types.ErrDeadlinePassed, "claim deadline was %d", financing.Deadline)
	}
	return nil
}

// requireValidTokenIds rejects empty batches and ids outside the
// configured collection range.
func (k Keeper) requireValidTokenIds(params types.Params, tokenIds []uint64) error {
	if len(tokenIds) == 0 {
		return types.ErrEmptyTokenList
	}
	for _, id := range tokenIds {
		if !params.ValidTokenId(id) {
			return errorsmod.Wrapf(types.ErrTokenIdOutOfRange, "token id %d, collection range [1, %d]", id, params.TokenCount)
		}
	}
	return nil
}

func (k Keeper) requireOwner(ctx context.Context, addr string) error {
	if !k.GetRoles(ctx).IsOwner(addr) {
		return errorsmod.Wrapf(types.ErrOnlyOwner, "address %s", addr)
	}
	return nil
}

func (k Keeper) requirePendingOwner(ctx context.Context, addr string) error {
	if !k.GetRoles(ctx).IsPendingOwner(addr) {
		return errorsmod.Wrapf(types.ErrOnlyPendingOwner, "address %s", addr)
	}
	return nil
}

func (k Keeper) requireDepositor(ctx context.Context, addr string) error {
	if !k.GetRoles(ctx).IsDepositor(addr) {
		return errorsmod.Wrapf(types.ErrOnlyDepositor, "address %s", addr)
	}
	return nil
}

func (k Keeper) requireOwnerOrOperator(ctx context.Context, addr string) error {
	roles := k.GetRoles(ctx)
	if !roles.IsOwner(addr) && !roles.IsOperator(addr) {
		return errorsmod.Wrapf(types.ErrOnlyOperator, "address %s", addr)
	}
	return nil
}
