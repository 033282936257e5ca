package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"go.uber.org/mock/gomock"

	"github.com/calnix/nftstreaming/testutil"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (suite *KeeperTestSuite) TestMsgPause_HaltsOperations() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.Pause(suite.ctx, &types.MsgPause{Creator: testutil.Operator})
	suite.Require().NoError(err)
	suite.Require().True(suite.keeper.GetLifecycle(suite.ctx).Paused)

	_, err = suite.msgServer.Pause(suite.ctx, &types.MsgPause{Creator: testutil.Operator})
	suite.Require().ErrorIs(err, types.ErrAlreadyPaused)
}

func (suite *KeeperTestSuite) TestMsgPause_OwnerOrOperatorOnly() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.Pause(suite.ctx, &types.MsgPause{Creator: testutil.Depositor})
	suite.Require().ErrorIs(err, types.ErrOnlyOperator)

	_, err = suite.msgServer.Pause(suite.ctx, &types.MsgPause{Creator: testutil.Owner})
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestMsgUnpause_ResumesOperations() {
	suite.setDefaultRoles()
	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true})

	// the operator may pause but never unpause
	_, err := suite.msgServer.Unpause(suite.ctx, &types.MsgUnpause{Creator: testutil.Operator})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)

	_, err = suite.msgServer.Unpause(suite.ctx, &types.MsgUnpause{Creator: testutil.Owner})
	suite.Require().NoError(err)
	suite.Require().True(suite.keeper.GetLifecycle(suite.ctx).IsActive())
}

func (suite *KeeperTestSuite) TestMsgUnpause_WhileActiveFails() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.Unpause(suite.ctx, &types.MsgUnpause{Creator: testutil.Owner})
	suite.Require().ErrorIs(err, types.ErrNotPaused)
}

// Freezing is terminal: only reachable from paused, never lifted.
func (suite *KeeperTestSuite) TestMsgFreeze_OnlyFromPausedAndOnlyOnce() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.Freeze(suite.ctx, &types.MsgFreeze{Creator: testutil.Owner})
	suite.Require().ErrorIs(err, types.ErrNotPaused)

	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true})

	_, err = suite.msgServer.Freeze(suite.at(77), &types.MsgFreeze{Creator: testutil.Owner})
	suite.Require().NoError(err)

	lifecycle := suite.keeper.GetLifecycle(suite.ctx)
	suite.Require().True(lifecycle.IsFrozen())
	suite.Require().Equal(int64(77), lifecycle.FrozenAt)

	_, err = suite.msgServer.Freeze(suite.at(78), &types.MsgFreeze{Creator: testutil.Owner})
	suite.Require().ErrorIs(err, types.ErrIsFrozen)

	_, err = suite.msgServer.Unpause(suite.ctx, &types.MsgUnpause{Creator: testutil.Owner})
	suite.Require().ErrorIs(err, types.ErrIsFrozen)
}

func (suite *KeeperTestSuite) TestMsgFreeze_OnlyOwner() {
	suite.setDefaultRoles()
	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true})

	_, err := suite.msgServer.Freeze(suite.ctx, &types.MsgFreeze{Creator: testutil.Operator})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}

func (suite *KeeperTestSuite) TestMsgPauseStreams_TogglesIndividualStreams() {
	suite.setupWindow()
	suite.setDefaultRoles()

	_, err := suite.msgServer.PauseStreams(suite.ctx, &types.MsgPauseStreams{
		Creator:  testutil.Operator,
		TokenIds: []uint64{1, 3},
	})
	suite.Require().NoError(err)

	stream, found := suite.keeper.GetStream(suite.ctx, 1)
	suite.Require().True(found)
	suite.Require().True(stream.Paused)
	_, found = suite.keeper.GetStream(suite.ctx, 2)
	suite.Require().False(found)

	_, err = suite.msgServer.UnpauseStreams(suite.ctx, &types.MsgUnpauseStreams{
		Creator:  testutil.Operator,
		TokenIds: []uint64{1},
	})
	suite.Require().NoError(err)

	stream, _ = suite.keeper.GetStream(suite.ctx, 1)
	suite.Require().False(stream.Paused)
	stream, _ = suite.keeper.GetStream(suite.ctx, 3)
	suite.Require().True(stream.Paused)
}

func (suite *KeeperTestSuite) TestMsgPauseStreams_EmptyTokenList() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.PauseStreams(suite.ctx, &types.MsgPauseStreams{Creator: testutil.Operator})
	suite.Require().ErrorIs(err, types.ErrEmptyTokenList)
}

func (suite *KeeperTestSuite) TestMsgPauseStreams_OwnerOrOperatorOnly() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.PauseStreams(suite.ctx, &types.MsgPauseStreams{
		Creator:  testutil.Holder,
		TokenIds: []uint64{1},
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOperator)
}

// The exit sweeps the live module balance, not the bookkeeping totals.
func (suite *KeeperTestSuite) TestMsgEmergencyExit_SweepsTheLiveBalance() {
	suite.setDefaultRoles()
	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true, FrozenAt: 77})

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	balance := sdk.NewInt64Coin(types.DefaultDenom, 123)
	receiver := sdk.MustAccAddressFromBech32(testutil.Receiver)

	suite.mocks.BankKeeper.EXPECT().GetBalance(gomock.Any(), moduleAddr, types.DefaultDenom).Return(balance)
	suite.mocks.BookkeepingBankKeeper.EXPECT().
		SendCoinsFromModuleToAccount(suite.ctx, types.ModuleName, receiver, sdk.NewCoins(balance), "emergency exit").
		Return(nil)

	resp, err := suite.msgServer.EmergencyExit(suite.ctx, &types.MsgEmergencyExit{
		Creator:  testutil.Owner,
		Receiver: testutil.Receiver,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoins(balance), resp.Amount)
}

func (suite *KeeperTestSuite) TestMsgEmergencyExit_RequiresFrozen() {
	suite.setDefaultRoles()
	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true})

	_, err := suite.msgServer.EmergencyExit(suite.ctx, &types.MsgEmergencyExit{
		Creator:  testutil.Owner,
		Receiver: testutil.Receiver,
	})
	suite.Require().ErrorIs(err, types.ErrNotFrozen)
}

func (suite *KeeperTestSuite) TestMsgEmergencyExit_OnlyOwner() {
	suite.setDefaultRoles()
	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true, FrozenAt: 77})

	_, err := suite.msgServer.EmergencyExit(suite.ctx, &types.MsgEmergencyExit{
		Creator:  testutil.Operator,
		Receiver: testutil.Receiver,
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}
