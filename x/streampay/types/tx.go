package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgClaimDelegatedTypeURL is the message name delegated-claim authz
// grants are stored under.
const MsgClaimDelegatedTypeURL = "/nftstreaming.streampay.v1.MsgClaimDelegated"

// ClaimedAmount is the per-token breakdown returned by batch claims.
// Duplicate ids in a request yield a zero Amount for the repeat.
type ClaimedAmount struct {
	TokenId uint64
	Amount  math.Int
}

// MsgClaim claims accrued emissions for a batch of directly owned tokens.
type MsgClaim struct {
	Creator  string
	TokenIds []uint64
}

func (m *MsgClaim) Reset()         { *m = MsgClaim{} }
func (m *MsgClaim) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaim) ProtoMessage()    {}

type MsgClaimResponse struct {
	Amounts []ClaimedAmount
	Total   math.Int
}

// MsgClaimSingle claims accrued emissions for one directly owned token.
type MsgClaimSingle struct {
	Creator string
	TokenId uint64
}

func (m *MsgClaimSingle) Reset()         { *m = MsgClaimSingle{} }
func (m *MsgClaimSingle) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimSingle) ProtoMessage()    {}

type MsgClaimSingleResponse struct {
	Amount math.Int
}

// MsgClaimDelegated claims on behalf of token owners under authz grants.
// Payouts go to the owners, never to the delegate.
type MsgClaimDelegated struct {
	Creator  string
	TokenIds []uint64
}

func (m *MsgClaimDelegated) Reset()         { *m = MsgClaimDelegated{} }
func (m *MsgClaimDelegated) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimDelegated) ProtoMessage()    {}

type MsgClaimDelegatedResponse struct {
	Amounts []ClaimedAmount
	Total   math.Int
}

// MsgClaimViaModule claims for tokens held in custody by a registered
// claim module. The module vouches that the caller controls the tokens.
type MsgClaimViaModule struct {
	Creator  string
	Module   string
	TokenIds []uint64
}

func (m *MsgClaimViaModule) Reset()         { *m = MsgClaimViaModule{} }
func (m *MsgClaimViaModule) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimViaModule) ProtoMessage()    {}

type MsgClaimViaModuleResponse struct {
	Amounts []ClaimedAmount
	Total   math.Int
}

// MsgDeposit moves funding from the depositor into the module account.
type MsgDeposit struct {
	Creator string
	Amount  sdk.Coin
}

func (m *MsgDeposit) Reset()         { *m = MsgDeposit{} }
func (m *MsgDeposit) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgDeposit) ProtoMessage()    {}

type MsgDepositResponse struct{}

// MsgWithdraw returns unclaimed funding to the depositor after the
// deadline has passed.
type MsgWithdraw struct {
	Creator string
}

func (m *MsgWithdraw) Reset()         { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgWithdraw) ProtoMessage()    {}

type MsgWithdrawResponse struct {
	Amount sdk.Coin
}

// MsgUpdateDeadline sets the claim deadline.
type MsgUpdateDeadline struct {
	Creator  string
	Deadline int64
}

func (m *MsgUpdateDeadline) Reset()         { *m = MsgUpdateDeadline{} }
func (m *MsgUpdateDeadline) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateDeadline) ProtoMessage()    {}

type MsgUpdateDeadlineResponse struct{}

// MsgTransferOwnership starts the two-step owner handover.
type MsgTransferOwnership struct {
	Creator  string
	NewOwner string
}

func (m *MsgTransferOwnership) Reset()         { *m = MsgTransferOwnership{} }
func (m *MsgTransferOwnership) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgTransferOwnership) ProtoMessage()    {}

type MsgTransferOwnershipResponse struct{}

// MsgAcceptOwnership completes the handover; only the pending owner may
// send it.
type MsgAcceptOwnership struct {
	Creator string
}

func (m *MsgAcceptOwnership) Reset()         { *m = MsgAcceptOwnership{} }
func (m *MsgAcceptOwnership) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgAcceptOwnership) ProtoMessage()    {}

type MsgAcceptOwnershipResponse struct{}

// MsgUpdateDepositor reassigns the depositor role.
type MsgUpdateDepositor struct {
	Creator      string
	NewDepositor string
}

func (m *MsgUpdateDepositor) Reset()         { *m = MsgUpdateDepositor{} }
func (m *MsgUpdateDepositor) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateDepositor) ProtoMessage()    {}

type MsgUpdateDepositorResponse struct{}

// MsgUpdateOperator reassigns the operator role. An empty address unsets
// the role.
type MsgUpdateOperator struct {
	Creator     string
	NewOperator string
}

func (m *MsgUpdateOperator) Reset()         { *m = MsgUpdateOperator{} }
func (m *MsgUpdateOperator) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateOperator) ProtoMessage()    {}

type MsgUpdateOperatorResponse struct{}

// MsgUpdateModule registers or deregisters a custodial claim module.
type MsgUpdateModule struct {
	Creator string
	Module  string
	Enabled bool
}

func (m *MsgUpdateModule) Reset()         { *m = MsgUpdateModule{} }
func (m *MsgUpdateModule) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateModule) ProtoMessage()    {}

type MsgUpdateModuleResponse struct{}

// MsgPauseStreams pauses accrual for the listed tokens only.
type MsgPauseStreams struct {
	Creator  string
	TokenIds []uint64
}

func (m *MsgPauseStreams) Reset()         { *m = MsgPauseStreams{} }
func (m *MsgPauseStreams) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgPauseStreams) ProtoMessage()    {}

type MsgPauseStreamsResponse struct{}

// MsgUnpauseStreams resumes accrual for the listed tokens.
type MsgUnpauseStreams struct {
	Creator  string
	TokenIds []uint64
}

func (m *MsgUnpauseStreams) Reset()         { *m = MsgUnpauseStreams{} }
func (m *MsgUnpauseStreams) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUnpauseStreams) ProtoMessage()    {}

type MsgUnpauseStreamsResponse struct{}

// MsgPause halts all claim and financing operations.
type MsgPause struct {
	Creator string
}

func (m *MsgPause) Reset()         { *m = MsgPause{} }
func (m *MsgPause) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgPause) ProtoMessage()    {}

type MsgPauseResponse struct{}

// MsgUnpause resumes operations after a pause.
type MsgUnpause struct {
	Creator string
}

func (m *MsgUnpause) Reset()         { *m = MsgUnpause{} }
func (m *MsgUnpause) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUnpause) ProtoMessage()    {}

type MsgUnpauseResponse struct{}

// MsgFreeze is the irreversible shutdown, only reachable while paused.
type MsgFreeze struct {
	Creator string
}

func (m *MsgFreeze) Reset()         { *m = MsgFreeze{} }
func (m *MsgFreeze) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgFreeze) ProtoMessage()    {}

type MsgFreezeResponse struct{}

// MsgEmergencyExit sweeps the entire live module balance to a receiver.
// Only valid while frozen.
type MsgEmergencyExit struct {
	Creator  string
	Receiver string
}

func (m *MsgEmergencyExit) Reset()         { *m = MsgEmergencyExit{} }
func (m *MsgEmergencyExit) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgEmergencyExit) ProtoMessage()    {}

type MsgEmergencyExitResponse struct {
	Amount sdk.Coins
}

// MsgServer is the transaction surface of the module.
type MsgServer interface {
	Claim(ctx context.Context, msg *MsgClaim) (*MsgClaimResponse, error)
	ClaimSingle(ctx context.Context, msg *MsgClaimSingle) (*MsgClaimSingleResponse, error)
	ClaimDelegated(ctx context.Context, msg *MsgClaimDelegated) (*MsgClaimDelegatedResponse, error)
	ClaimViaModule(ctx context.Context, msg *MsgClaimViaModule) (*MsgClaimViaModuleResponse, error)
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	UpdateDeadline(ctx context.Context, msg *MsgUpdateDeadline) (*MsgUpdateDeadlineResponse, error)
	TransferOwnership(ctx context.Context, msg *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
	AcceptOwnership(ctx context.Context, msg *MsgAcceptOwnership) (*MsgAcceptOwnershipResponse, error)
	UpdateDepositor(ctx context.Context, msg *MsgUpdateDepositor) (*MsgUpdateDepositorResponse, error)
	UpdateOperator(ctx context.Context, msg *MsgUpdateOperator) (*MsgUpdateOperatorResponse, error)
	UpdateModule(ctx context.Context, msg *MsgUpdateModule) (*MsgUpdateModuleResponse, error)
	PauseStreams(ctx context.Context, msg *MsgPauseStreams) (*MsgPauseStreamsResponse, error)
	UnpauseStreams(ctx context.Context, msg *MsgUnpauseStreams) (*MsgUnpauseStreamsResponse, error)
	Pause(ctx context.Context, msg *MsgPause) (*MsgPauseResponse, error)
	Unpause(ctx context.Context, msg *MsgUnpause) (*MsgUnpauseResponse, error)
	Freeze(ctx context.Context, msg *MsgFreeze) (*MsgFreezeResponse, error)
	EmergencyExit(ctx context.Context, msg *MsgEmergencyExit) (*MsgEmergencyExitResponse, error)
}
