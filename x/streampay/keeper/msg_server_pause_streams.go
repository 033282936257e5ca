package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) PauseStreams(goCtx context.Context, msg *types.MsgPauseStreams) (*types.MsgPauseStreamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwnerOrOperator(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if len(msg.TokenIds) == 0 {
		return nil, types.ErrEmptyTokenList
	}

	k.SetStreamsPaused(ctx, msg.TokenIds, true)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePauseStreams,
			sdk.NewAttribute(types.AttributeKeyTokenIds, formatTokenIds(msg.TokenIds)),
		),
	})

	k.Logger().Info("streams paused",
		"creator", msg.Creator,
		"tokens", len(msg.TokenIds),
	)

	return &types.MsgPauseStreamsResponse{}, nil
}

func (k msgServer) UnpauseStreams(goCtx context.Context, msg *types.MsgUnpauseStreams) (*types.MsgUnpauseStreamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwnerOrOperator(ctx, msg.Creator); err != nil {
		return nil, err
	}
	if len(msg.TokenIds) == 0 {
		return nil, types.ErrEmptyTokenList
	}

	k.SetStreamsPaused(ctx, msg.TokenIds, false)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUnpauseStreams,
			sdk.NewAttribute(types.AttributeKeyTokenIds, formatTokenIds(msg.TokenIds)),
		),
	})

	k.Logger().Info("streams unpaused",
		"creator", msg.Creator,
		"tokens", len(msg.TokenIds),
	)

	return &types.MsgUnpauseStreamsResponse{}, nil
}
