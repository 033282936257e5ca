package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
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

	params := k.GetParams(ctx)
	if msg.Amount.Denom != params.Denom {
		return nil, types.ErrInvalidDenom.Wrapf("only %s denomination is accepted for financing, got %s",
			params.Denom, msg.Amount.Denom)
	}

	// The funding cap is the full allocation; anything beyond it could
	// never be streamed out.
	financing := k.GetFinancing(ctx)
	newTotal := financing.TotalDeposited.Add(msg.Amount.Amount)
	if newTotal.GT(params.TotalAllocation()) {
		return nil, types.ErrExcessDeposit.Wrapf("deposit would raise total to %s, allocation cap is %s",
			newTotal, params.TotalAllocation())
	}

	// Pull the funds into the module account
	err = k.bookkeepingBankKeeper.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, sdk.NewCoins(msg.Amount), "stream financing deposit")
	if err != nil {
		return nil, err
	}

	financing.TotalDeposited = newTotal
	k.SetFinancing(ctx, financing)

	k.bookkeepingBankKeeper.LogSubAccountTransaction(goCtx, types.ModuleName, msg.Creator, types.SubAccountFinancing, msg.Amount, "stream financing deposit")

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyDepositor, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		),
	})

	k.Logger().Info("financing deposited",
		"depositor", msg.Creator,
		"amount", msg.Amount.String(),
		"total_deposited", newTotal.String(),
	)

	return &types.MsgDepositResponse{}, nil
}
