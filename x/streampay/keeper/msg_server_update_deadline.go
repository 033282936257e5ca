package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) UpdateDeadline(goCtx context.Context, msg *types.MsgUpdateDeadline) (*types.MsgUpdateDeadlineResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.requireOwner(ctx, msg.Creator); err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	now := ctx.BlockTime().Unix()
	floor := params.EndTime
	if now > floor {
		floor = now
	}
	floor += types.DeadlineProtectionPeriod
	if msg.Deadline < floor {
		return nil, types.ErrInvalidNewDeadline.Wrapf("deadline %d is before the earliest allowed %d", msg.Deadline, floor)
	}

	financing := k.GetFinancing(ctx)
	previous := financing.Deadline
	financing.Deadline = msg.Deadline
	k.SetFinancing(ctx, financing)

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeUpdateDeadline,
			sdk.NewAttribute(types.AttributeKeyPrevious, strconv.FormatInt(previous, 10)),
			sdk.NewAttribute(types.AttributeKeyDeadline, strconv.FormatInt(msg.Deadline, 10)),
		),
	})

	k.Logger().Info("claim deadline updated",
		"previous", previous,
		"deadline", msg.Deadline,
	)

	return &types.MsgUpdateDeadlineResponse{}, nil
}
