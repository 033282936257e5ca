package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

// TransferOwnership starts the two-step owner handover. Nothing changes
// hands until the new owner accepts.
func (k msgServer) TransferOwnership(goCtx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return nil, err
	}

	roles := k.GetRoles(ctx)
	roles.PendingOwner = msg.NewOwner
	k.SetRoles(ctx, roles)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeTransferOwnership,
			sdk.NewAttribute(types.AttributeKeyPrevious, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyNew, msg.NewOwner),
		),
	})

	k.Logger().Info("ownership transfer initiated",
		"owner", msg.Creator,
		"pending_owner", msg.NewOwner,
	)

	return &types.MsgTransferOwnershipResponse{}, nil
}

// AcceptOwnership completes the handover; only the pending owner may
// send it.
func (k msgServer) AcceptOwnership(goCtx context.Context, msg *types.MsgAcceptOwnership) (*types.MsgAcceptOwnershipResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requirePendingOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	roles := k.GetRoles(ctx)
	previous := roles.Owner
	roles.Owner = msg.Creator
	roles.PendingOwner = ""
	k.SetRoles(ctx, roles)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeAcceptOwnership,
			sdk.NewAttribute(types.AttributeKeyPrevious, previous),
			sdk.NewAttribute(types.AttributeKeyNew, msg.Creator),
		),
	})

	k.Logger().Info("ownership transfer completed",
		"previous_owner", previous,
		"owner", msg.Creator,
	)

	return &types.MsgAcceptOwnershipResponse{}, nil
}

func (k msgServer) UpdateDepositor(goCtx context.Context, msg *types.MsgUpdateDepositor) (*types.MsgUpdateDepositorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewDepositor); err != nil {
		return nil, err
	}

	roles := k.GetRoles(ctx)
	previous := roles.Depositor
	roles.Depositor = msg.NewDepositor
	k.SetRoles(ctx, roles)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateDepositor,
			sdk.NewAttribute(types.AttributeKeyPrevious, previous),
			sdk.NewAttribute(types.AttributeKeyNew, msg.NewDepositor),
		),
	})

	k.Logger().Info("depositor updated",
		"previous", previous,
		"depositor", msg.NewDepositor,
	)

	return &types.MsgUpdateDepositorResponse{}, nil
}

// UpdateOperator reassigns the operator role; an empty address unsets it.
func (k msgServer) UpdateOperator(goCtx context.Context, msg *types.MsgUpdateOperator) (*types.MsgUpdateOperatorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if msg.NewOperator != "" {
		if _, err := sdk.AccAddressFromBech32(msg.NewOperator); err != nil {
			return nil, err
		}
	}

	roles := k.GetRoles(ctx)
	previous := roles.Operator
	roles.Operator = msg.NewOperator
	k.SetRoles(ctx, roles)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateOperator,
			sdk.NewAttribute(types.AttributeKeyPrevious, previous),
			sdk.NewAttribute(types.AttributeKeyNew, msg.NewOperator),
		),
	})

	k.Logger().Info("operator updated",
		"previous", previous,
		"operator", msg.NewOperator,
	)

	return &types.MsgUpdateOperatorResponse{}, nil
}

func (k msgServer) UpdateModule(goCtx context.Context, msg *types.MsgUpdateModule) (*types.MsgUpdateModuleResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Module); err != nil {
		return nil, types.ErrInvalidModuleAddress.Wrapf("module address %q: %s", msg.Module, err)
	}

	k.SetModuleEnabled(ctx, msg.Module, msg.Enabled)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateModule,
			sdk.NewAttribute(types.AttributeKeyModule, msg.Module),
			sdk.NewAttribute(types.AttributeKeyEnabled, strconv.FormatBool(msg.Enabled)),
		),
	})

	k.Logger().Info("claim module updated",
		"module", msg.Module,
		"enabled", msg.Enabled,
	)

	return &types.MsgUpdateModuleResponse{}, nil
}
