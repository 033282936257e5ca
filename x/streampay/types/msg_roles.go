package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = &MsgTransferOwnership{}
	_ sdk.Msg = &MsgAcceptOwnership{}
	_ sdk.Msg = &MsgUpdateDepositor{}
	_ sdk.Msg = &MsgUpdateOperator{}
	_ sdk.Msg = &MsgUpdateModule{}
)

// ValidateBasic performs basic validation of the MsgTransferOwnership
func (msg *MsgTransferOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new owner address: %s", err)
	}
	return nil
}

// ValidateBasic performs basic validation of the MsgAcceptOwnership
func (msg *MsgAcceptOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return nil
}

// ValidateBasic performs basic validation of the MsgUpdateDepositor
func (msg *MsgUpdateDepositor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewDepositor); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new depositor address: %s", err)
	}
	return nil
}

// ValidateBasic performs basic validation of the MsgUpdateOperator.
// An empty new operator unsets the role.
func (msg *MsgUpdateOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.NewOperator != "" {
		if _, err := sdk.AccAddressFromBech32(msg.NewOperator); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new operator address: %s", err)
		}
	}
	return nil
}

// ValidateBasic performs basic validation of the MsgUpdateModule
func (msg *MsgUpdateModule) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Module); err != nil {
		return errorsmod.Wrapf(ErrInvalidModuleAddress, "invalid module address: %s", err)
	}
	return nil
}
