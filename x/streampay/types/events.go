package types

// Event types for the streampay module
const (
	EventTypeClaim             = "claim_streams"
	EventTypeDeposit           = "deposit"
	EventTypeWithdraw          = "withdraw"
	EventTypeUpdateDeadline    = "update_deadline"
	EventTypeTransferOwnership = "transfer_ownership"
	EventTypeAcceptOwnership   = "accept_ownership"
	EventTypeUpdateDepositor   = "update_depositor"
	EventTypeUpdateOperator    = "update_operator"
	EventTypeUpdateModule      = "update_module"
	EventTypePauseStreams      = "pause_streams"
	EventTypeUnpauseStreams    = "unpause_streams"
	EventTypePause             = "pause"
	EventTypeUnpause           = "unpause"
	EventTypeFreeze            = "freeze"
	EventTypeEmergencyExit     = "emergency_exit"
)

// Event attribute keys
const (
	AttributeKeyClaimant  = "claimant"
	AttributeKeyAmount    = "amount"
	AttributeKeyTokenIds  = "token_ids"
	AttributeKeyDepositor = "depositor"
	AttributeKeyDeadline  = "deadline"
	AttributeKeyPrevious  = "previous"
	AttributeKeyNew       = "new"
	AttributeKeyModule    = "claim_module"
	AttributeKeyEnabled   = "enabled"
	AttributeKeyFrozenAt  = "frozen_at"
	AttributeKeyReceiver  = "receiver"
)
