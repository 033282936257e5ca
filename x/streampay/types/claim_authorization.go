package types

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/authz"
)

var _ authz.Authorization = &ClaimAuthorization{}

// ClaimAuthorization grants a delegate the right to trigger claims on the
// granter's tokens. The payout still goes to the granter; the grant only
// covers who may initiate the claim.
type ClaimAuthorization struct {
	// AllowedTokenIds restricts the grant to specific tokens. Empty means
	// every token the granter owns is covered.
	AllowedTokenIds []uint64
}

// NewClaimAuthorization creates an authorization for the given token ids.
func NewClaimAuthorization(tokenIds []uint64) *ClaimAuthorization {
	return &ClaimAuthorization{AllowedTokenIds: tokenIds}
}

func (a *ClaimAuthorization) Reset()         { *a = ClaimAuthorization{} }
func (a *ClaimAuthorization) String() string { return fmt.Sprintf("%v", *a) }
func (*ClaimAuthorization) ProtoMessage()    {}

// MsgTypeURL implements the authz.Authorization interface.
func (a ClaimAuthorization) MsgTypeURL() string {
	return MsgClaimDelegatedTypeURL
}

// AllowsToken reports whether the grant covers the given token id.
func (a ClaimAuthorization) AllowsToken(tokenId uint64) bool {
	if len(a.AllowedTokenIds) == 0 {
		return true
	}
	for _, id := range a.AllowedTokenIds {
		if id == tokenId {
			return true
		}
	}
	return false
}

// Accept implements the authz.Authorization interface. The grant is not
// consumed by use; it stays in place until revoked or expired.
func (a ClaimAuthorization) Accept(_ context.Context, msg sdk.Msg) (authz.AcceptResponse, error) {
	claim, ok := msg.(*MsgClaimDelegated)
	if !ok {
		return authz.AcceptResponse{}, errorsmod.Wrap(sdkerrors.ErrInvalidType, "expected MsgClaimDelegated")
	}
	for _, id := range claim.TokenIds {
		if !a.AllowsToken(id) {
			return authz.AcceptResponse{}, errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "token id %d is not covered by the grant", id)
		}
	}
	return authz.AcceptResponse{Accept: true}, nil
}

// ValidateBasic implements the authz.Authorization interface.
func (a ClaimAuthorization) ValidateBasic() error {
	seen := make(map[uint64]struct{}, len(a.AllowedTokenIds))
	for _, id := range a.AllowedTokenIds {
		if id == 0 {
			return errorsmod.Wrap(ErrTokenIdOutOfRange, "token id must not be zero")
		}
		if _, ok := seen[id]; ok {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate token id %d", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
