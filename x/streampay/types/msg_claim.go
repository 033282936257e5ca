package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = &MsgClaim{}
	_ sdk.Msg = &MsgClaimSingle{}
	_ sdk.Msg = &MsgClaimDelegated{}
	_ sdk.Msg = &MsgClaimViaModule{}
)

// validateTokenIds rejects empty batches and the always-invalid id zero.
// Range checks against the configured collection size are stateful and
// happen in the keeper.
func validateTokenIds(tokenIds []uint64) error {
	if len(tokenIds) == 0 {
		return ErrEmptyTokenList
	}
	for _, id := range tokenIds {
		if id == 0 {
			return errorsmod.Wrap(ErrTokenIdOutOfRange, "token id must not be zero")
		}
	}
	return nil
}

// ValidateBasic performs basic validation of the MsgClaim
func (msg *MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return validateTokenIds(msg.TokenIds)
}

// ValidateBasic performs basic validation of the MsgClaimSingle
func (msg *MsgClaimSingle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return validateTokenIds([]uint64{msg.TokenId})
}

// ValidateBasic performs basic validation of the MsgClaimDelegated
func (msg *MsgClaimDelegated) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return validateTokenIds(msg.TokenIds)
}

// ValidateBasic performs basic validation of the MsgClaimViaModule
func (msg *MsgClaimViaModule) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Module); err != nil {
		return errorsmod.Wrapf(ErrInvalidModuleAddress, "invalid module address: %s", err)
	}
	return validateTokenIds(msg.TokenIds)
}
