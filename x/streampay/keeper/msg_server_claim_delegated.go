package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) ClaimDelegated(goCtx context.Context, msg *types.MsgClaimDelegated) (*types.MsgClaimDelegatedResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	delegate, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	outcome, err := k.dispatchClaim(ctx, delegate, msg.TokenIds, delegatedResolver{
		nft:   k.nftKeeper,
		authz: k.authzKeeper,
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimDelegatedResponse{
		Amounts: outcome.Amounts,
		Total:   outcome.Total,
	}, nil
}
