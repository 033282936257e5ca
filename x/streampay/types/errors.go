package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/streampay module sentinel errors
var (
	// Ownership and delegation
	ErrInvalidOwner         = sdkerrors.Register(ModuleName, 1100, "caller is not the token owner")
	ErrInvalidDelegate      = sdkerrors.Register(ModuleName, 1101, "caller is not a delegate for the token owner")
	ErrInvalidModuleAddress = sdkerrors.Register(ModuleName, 1102, "claim module address is empty or malformed")
	ErrUnregisteredModule   = sdkerrors.Register(ModuleName, 1103, "claim module is not registered")
	ErrModuleCheckFailed    = sdkerrors.Register(ModuleName, 1104, "claim module rejected the custody check")

	// Input validation
	ErrEmptyTokenList    = sdkerrors.Register(ModuleName, 1105, "token id list is empty")
	ErrTokenIdOutOfRange = sdkerrors.Register(ModuleName, 1106, "token id is outside the configured collection range")

	// Temporal gating
	ErrNotStarted     = sdkerrors.Register(ModuleName, 1107, "streaming has not started")
	ErrDeadlinePassed = sdkerrors.Register(ModuleName, 1108, "claim deadline has passed")

	// Stream ledger
	ErrStreamPaused       = sdkerrors.Register(ModuleName, 1109, "stream is paused")
	ErrIncorrectClaimable = sdkerrors.Register(ModuleName, 1110, "claimable amount exceeds the per-token allocation")

	// Lifecycle gating
	ErrPaused        = sdkerrors.Register(ModuleName, 1111, "streaming is paused")
	ErrNotPaused     = sdkerrors.Register(ModuleName, 1112, "streaming is not paused")
	ErrAlreadyPaused = sdkerrors.Register(ModuleName, 1113, "streaming is already paused")
	ErrIsFrozen      = sdkerrors.Register(ModuleName, 1114, "streaming is frozen")
	ErrNotFrozen     = sdkerrors.Register(ModuleName, 1115, "streaming is not frozen")

	// Access control
	ErrOnlyOwner        = sdkerrors.Register(ModuleName, 1116, "caller is not the owner")
	ErrOnlyPendingOwner = sdkerrors.Register(ModuleName, 1117, "caller is not the pending owner")
	ErrOnlyDepositor    = sdkerrors.Register(ModuleName, 1118, "caller is not the depositor")
	ErrOnlyOperator     = sdkerrors.Register(ModuleName, 1119, "caller is neither owner nor operator")

	// Financing
	ErrInvalidDenom       = sdkerrors.Register(ModuleName, 1120, "invalid denomination")
	ErrExcessDeposit      = sdkerrors.Register(ModuleName, 1121, "deposit would exceed the total allocation")
	ErrWithdrawDisabled   = sdkerrors.Register(ModuleName, 1122, "withdraw is disabled until a deadline is set")
	ErrPrematureWithdraw  = sdkerrors.Register(ModuleName, 1123, "withdraw is not allowed before the deadline")
	ErrInvalidNewDeadline = sdkerrors.Register(ModuleName, 1124, "new deadline is inside the protection buffer")
)
