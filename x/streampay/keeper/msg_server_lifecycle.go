package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

// Pause halts all claim and financing operations. Owner or operator.
func (k msgServer) Pause(goCtx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwnerOrOperator(ctx, msg.Creator); err != nil {
		return nil, err
	}

	lifecycle := k.GetLifecycle(ctx)
	if lifecycle.Paused {
		return nil, types.ErrAlreadyPaused
	}

	lifecycle.Paused = true
	k.SetLifecycle(ctx, lifecycle)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePause,
			sdk.NewAttribute(types.AttributeKeyClaimant, msg.Creator),
		),
	})

	k.Logger().Info("streaming paused", "creator", msg.Creator)

	return &types.MsgPauseResponse{}, nil
}

// Unpause resumes operations. Owner only; a frozen module never resumes.
func (k msgServer) Unpause(goCtx context.Context, msg *types.MsgUnpause) (*types.MsgUnpauseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	lifecycle := k.GetLifecycle(ctx)
	if lifecycle.IsFrozen() {
		return nil, types.ErrIsFrozen
	}
	if !lifecycle.Paused {
		return nil, types.ErrNotPaused
	}

	lifecycle.Paused = false
	k.SetLifecycle(ctx, lifecycle)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnpause,
			sdk.NewAttribute(types.AttributeKeyClaimant, msg.Creator),
		),
	})

	k.Logger().Info("streaming unpaused", "creator", msg.Creator)

	return &types.MsgUnpauseResponse{}, nil
}

// Freeze is the irreversible admission that the pause will not be
// lifted. Only reachable from the paused state, and only once.
func (k msgServer) Freeze(goCtx context.Context, msg *types.MsgFreeze) (*types.MsgFreezeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	lifecycle := k.GetLifecycle(ctx)
	if lifecycle.IsFrozen() {
		return nil, types.ErrIsFrozen
	}
	if !lifecycle.Paused {
		return nil, types.ErrNotPaused
	}

	frozenAt := ctx.BlockTime().Unix()
	lifecycle.FrozenAt = frozenAt
	k.SetLifecycle(ctx, lifecycle)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeFreeze,
			sdk.NewAttribute(types.AttributeKeyFrozenAt, strconv.FormatInt(frozenAt, 10)),
		),
	})

	k.Logger().Info("streaming frozen", "creator", msg.Creator, "frozen_at", frozenAt)

	return &types.MsgFreezeResponse{}, nil
}

// EmergencyExit sweeps the entire live module balance to the receiver.
// The bookkeeping totals may be stale by then; the live balance is the
// only number that still matters once the module is frozen.
func (k msgServer) EmergencyExit(goCtx context.Context, msg *types.MsgEmergencyExit) (*types.MsgEmergencyExitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	lifecycle := k.GetLifecycle(ctx)
	if !lifecycle.IsFrozen() {
		return nil, types.ErrNotFrozen
	}

	receiver, err := sdk.AccAddressFromBech32(msg.Receiver)
	if err != nil {
		return nil, err
	}

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	balance := k.bankViewKeeper.GetBalance(ctx, moduleAddr, k.GetParams(ctx).Denom)
	swept := sdk.NewCoins(balance)

	err = k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, swept, "emergency exit")
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeEmergencyExit,
			sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver),
			sdk.NewAttribute(types.AttributeKeyAmount, swept.String()),
		),
	})

	k.Logger().Info("emergency exit executed",
		"receiver", msg.Receiver,
		"amount", swept.String(),
	)

	return &types.MsgEmergencyExitResponse{Amount: swept}, nil
}
