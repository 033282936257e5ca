package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) ClaimViaModule(goCtx context.Context, msg *types.MsgClaimViaModule) (*types.MsgClaimViaModuleResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimant, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	moduleAddr, err := sdk.AccAddressFromBech32(msg.Module)
	if err != nil {
		return nil, types.ErrInvalidModuleAddress.Wrapf("module address %q: %s", msg.Module, err)
	}

	outcome, err := k.dispatchClaim(ctx, claimant, msg.TokenIds, moduleResolver{
		keeper: k.Keeper,
		module: moduleAddr,
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimViaModuleResponse{
		Amounts: outcome.Amounts,
		Total:   outcome.Total,
	}, nil
}
