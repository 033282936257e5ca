package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	depositor, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	if err := k.requireActive(ctx); err != nil {
		return nil, err
	}
	if err := k.requireDepositor(ctx, msg.Creator); err != nil {
		return nil, err
	}

	financing := k.GetFinancing(ctx)
	if financing.Deadline == 0 {
		return nil, types.ErrWithdrawDisabled
	}
	now := ctx.BlockTime().Unix()
	if now <= financing.Deadline {
		return nil, types.ErrPrematureWithdraw.Wrapf("deadline is %d, current time %d", financing.Deadline, now)
	}

	// Only the bookkept difference is returned; tokens that arrived
	// outside the deposit path stay in the module account.
	amount := financing.Unclaimed()
	coin := sdk.NewCoin(k.GetParams(ctx).Denom, amount)

	financing.TotalDeposited = financing.TotalDeposited.Sub(amount)
	k.SetFinancing(ctx, financing)

	err = k.bookkeepingBankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, sdk.NewCoins(coin), "stream financing withdrawal")
	if err != nil {
		return nil, err
	}

	k.bookkeepingBankKeeper.LogSubAccountTransaction(goCtx, msg.Creator, types.ModuleName, types.SubAccountFinancing, coin, "stream financing withdrawal")

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyDepositor, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
		),
	})

	k.Logger().Info("unclaimed financing withdrawn",
		"depositor", msg.Creator,
		"amount", coin.String(),
	)

	return &types.MsgWithdrawResponse{Amount: coin}, nil
}
