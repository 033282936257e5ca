package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

// claimTarget pairs a token id with the address its payout is owed to.
type claimTarget struct {
	tokenId uint64
	payee   sdk.AccAddress
}

// ownershipResolver answers "may the caller claim these tokens, and to
// whom is each payout owed". The three implementations are the direct,
// delegated, and module-custodied paths; exactly one is used per call.
type ownershipResolver interface {
	resolve(ctx context.Context, caller sdk.AccAddress, tokenIds []uint64) ([]claimTarget, error)
}

// directResolver requires the caller to be the registry owner of every
// token. Payouts go to the caller.
type directResolver struct {
	nft types.NFTKeeper
}

func (r directResolver) resolve(ctx context.Context, caller sdk.AccAddress, tokenIds []uint64) ([]claimTarget, error) {
	targets := make([]claimTarget, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		owner, err := r.nft.OwnerOf(ctx, tokenId)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidOwner, "token id %d: %s", tokenId, err)
		}
		if !owner.Equals(caller) {
			return nil, errorsmod.Wrapf(types.ErrInvalidOwner, "token id %d is owned by %s", tokenId, owner)
		}
		targets = append(targets, claimTarget{tokenId: tokenId, payee: caller})
	}
	return targets, nil
}

// delegatedResolver requires an unexpired claim grant from each token's
// owner to the caller. Payouts go to the owners, never the delegate.
type delegatedResolver struct {
	nft   types.NFTKeeper
	authz types.AuthzKeeper
}

func (r delegatedResolver) resolve(ctx context.Context, caller sdk.AccAddress, tokenIds []uint64) ([]claimTarget, error) {
	targets := make([]claimTarget, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		owner, err := r.nft.OwnerOf(ctx, tokenId)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidOwner, "token id %d: %s", tokenId, err)
		}
		// an expired grant comes back nil from the authz keeper
		authorization, _ := r.authz.GetAuthorization(ctx, caller, owner, types.MsgClaimDelegatedTypeURL)
		if authorization == nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidDelegate, "no claim grant from %s to %s", owner, caller)
		}
		resp, err := authorization.Accept(ctx, &types.MsgClaimDelegated{Creator: caller.String(), TokenIds: []uint64{tokenId}})
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidDelegate, "token id %d: %s", tokenId, err)
		}
		if !resp.Accept {
			return nil, errorsmod.Wrapf(types.ErrInvalidDelegate, "grant from %s does not cover token id %d", owner, tokenId)
		}
		targets = append(targets, claimTarget{tokenId: tokenId, payee: owner})
	}
	return targets, nil
}

// moduleResolver defers to a registered custodial module, which must
// affirm the caller's right over the whole batch in one check. Payouts
// go to the caller.
type moduleResolver struct {
	keeper Keeper
	module sdk.AccAddress
}

func (r moduleResolver) resolve(ctx context.Context, caller sdk.AccAddress, tokenIds []uint64) ([]claimTarget, error) {
	if !r.keeper.IsModuleRegistered(ctx, r.module.String()) {
		return nil, errorsmod.Wrapf(types.ErrUnregisteredModule, "module %s", r.module)
	}
	if err := r.keeper.custodyKeeper.ConfirmCustody(ctx, r.module, caller, tokenIds); err != nil {
		return nil, errorsmod.Wrapf(types.ErrModuleCheckFailed, "module %s: %s", r.module, err)
	}
	targets := make([]claimTarget, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		targets = append(targets, claimTarget{tokenId: tokenId, payee: caller})
	}
	return targets, nil
}
