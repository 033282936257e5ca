package keeper_test

import (
	"github.com/calnix/nftstreaming/testutil"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

// Ownership moves in two steps; nothing changes until the new owner
// accepts.
func (suite *KeeperTestSuite) TestMsgTransferOwnership_TwoStepHandover() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.TransferOwnership(suite.ctx, &types.MsgTransferOwnership{
		Creator:  testutil.Owner,
		NewOwner: testutil.Holder,
	})
	suite.Require().NoError(err)

	roles := suite.keeper.GetRoles(suite.ctx)
	suite.Require().Equal(testutil.Owner, roles.Owner)
	suite.Require().Equal(testutil.Holder, roles.PendingOwner)

	_, err = suite.msgServer.AcceptOwnership(suite.ctx, &types.MsgAcceptOwnership{Creator: testutil.Holder})
	suite.Require().NoError(err)

	roles = suite.keeper.GetRoles(suite.ctx)
	suite.Require().Equal(testutil.Holder, roles.Owner)
	suite.Require().Empty(roles.PendingOwner)

	// the previous owner has lost their privileges
	_, err = suite.msgServer.UpdateDepositor(suite.ctx, &types.MsgUpdateDepositor{
		Creator:      testutil.Owner,
		NewDepositor: testutil.Owner,
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}

func (suite *KeeperTestSuite) TestMsgTransferOwnership_OnlyOwner() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.TransferOwnership(suite.ctx, &types.MsgTransferOwnership{
		Creator:  testutil.Holder,
		NewOwner: testutil.Holder,
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}

// A second transfer before acceptance simply replaces the pending owner.
func (suite *KeeperTestSuite) TestMsgTransferOwnership_ReplacesPendingOwner() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.TransferOwnership(suite.ctx, &types.MsgTransferOwnership{
		Creator:  testutil.Owner,
		NewOwner: testutil.Holder,
	})
	suite.Require().NoError(err)

	_, err = suite.msgServer.TransferOwnership(suite.ctx, &types.MsgTransferOwnership{
		Creator:  testutil.Owner,
		NewOwner: testutil.Receiver,
	})
	suite.Require().NoError(err)

	suite.Require().Equal(testutil.Receiver, suite.keeper.GetRoles(suite.ctx).PendingOwner)

	_, err = suite.msgServer.AcceptOwnership(suite.ctx, &types.MsgAcceptOwnership{Creator: testutil.Holder})
	suite.Require().ErrorIs(err, types.ErrOnlyPendingOwner)
}

func (suite *KeeperTestSuite) TestMsgAcceptOwnership_WithoutPendingTransferFails() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.AcceptOwnership(suite.ctx, &types.MsgAcceptOwnership{Creator: testutil.Holder})
	suite.Require().ErrorIs(err, types.ErrOnlyPendingOwner)
}

func (suite *KeeperTestSuite) TestMsgUpdateDepositor() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.UpdateDepositor(suite.ctx, &types.MsgUpdateDepositor{
		Creator:      testutil.Owner,
		NewDepositor: testutil.Holder,
	})
	suite.Require().NoError(err)

	roles := suite.keeper.GetRoles(suite.ctx)
	suite.Require().Equal(testutil.Holder, roles.Depositor)
	suite.Require().False(roles.IsDepositor(testutil.Depositor))
}

func (suite *KeeperTestSuite) TestMsgUpdateOperator_EmptyAddressUnsetsTheRole() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.UpdateOperator(suite.ctx, &types.MsgUpdateOperator{
		Creator:     testutil.Owner,
		NewOperator: "",
	})
	suite.Require().NoError(err)

	roles := suite.keeper.GetRoles(suite.ctx)
	suite.Require().Empty(roles.Operator)
	suite.Require().False(roles.IsOperator(testutil.Operator))
	suite.Require().False(roles.IsOperator(""))
}

func (suite *KeeperTestSuite) TestMsgUpdateOperator_OnlyOwner() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.UpdateOperator(suite.ctx, &types.MsgUpdateOperator{
		Creator:     testutil.Operator,
		NewOperator: testutil.Holder,
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}

func (suite *KeeperTestSuite) TestMsgUpdateModule_RegistersAndDeregisters() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.UpdateModule(suite.ctx, &types.MsgUpdateModule{
		Creator: testutil.Owner,
		Module:  testutil.Custodian,
		Enabled: true,
	})
	suite.Require().NoError(err)
	suite.Require().True(suite.keeper.IsModuleRegistered(suite.ctx, testutil.Custodian))

	_, err = suite.msgServer.UpdateModule(suite.ctx, &types.MsgUpdateModule{
		Creator: testutil.Owner,
		Module:  testutil.Custodian,
		Enabled: false,
	})
	suite.Require().NoError(err)
	suite.Require().False(suite.keeper.IsModuleRegistered(suite.ctx, testutil.Custodian))
}

func (suite *KeeperTestSuite) TestMsgUpdateModule_OnlyOwner() {
	suite.setDefaultRoles()

	_, err := suite.msgServer.UpdateModule(suite.ctx, &types.MsgUpdateModule{
		Creator: testutil.Operator,
		Module:  testutil.Custodian,
		Enabled: true,
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}
