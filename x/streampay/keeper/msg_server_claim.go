package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (k msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimant, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	outcome, err := k.dispatchClaim(ctx, claimant, msg.TokenIds, directResolver{nft: k.nftKeeper})
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimResponse{
		Amounts: outcome.Amounts,
		Total:   outcome.Total,
	}, nil
}

func (k msgServer) ClaimSingle(goCtx context.Context, msg *types.MsgClaimSingle) (*types.MsgClaimSingleResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	claimant, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, err
	}

	outcome, err := k.dispatchClaim(ctx, claimant, []uint64{msg.TokenId}, directResolver{nft: k.nftKeeper})
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimSingleResponse{Amount: outcome.Total}, nil
}
