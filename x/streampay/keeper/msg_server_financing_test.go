package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/testutil"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (suite *KeeperTestSuite) TestMsgDeposit_FundsTheProgram() {
	suite.setupWindow()
	suite.setDefaultRoles()
	deposit := sdk.NewInt64Coin(types.DefaultDenom, 20)

	suite.mocks.BookkeepingBankKeeper.ExpectDeposit(suite.ctx, testutil.Depositor, 20)
	suite.mocks.BookkeepingBankKeeper.EXPECT().
		LogSubAccountTransaction(suite.ctx, types.ModuleName, testutil.Depositor, types.SubAccountFinancing, deposit, "stream financing deposit")

	_, err := suite.msgServer.Deposit(suite.ctx, &types.MsgDeposit{
		Creator: testutil.Depositor,
		Amount:  deposit,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(20), suite.keeper.GetFinancing(suite.ctx).TotalDeposited)
}

// The funding cap is TokenCount * AllocationPerToken, 50 for the small
// window. Filling it exactly is fine; one more unit is not.
func (suite *KeeperTestSuite) TestMsgDeposit_CapBoundary() {
	suite.setupWindow()
	suite.setDefaultRoles()
	full := sdk.NewInt64Coin(types.DefaultDenom, 50)

	suite.mocks.BookkeepingBankKeeper.ExpectDeposit(suite.ctx, testutil.Depositor, 50)
	suite.mocks.BookkeepingBankKeeper.EXPECT().
		LogSubAccountTransaction(suite.ctx, types.ModuleName, testutil.Depositor, types.SubAccountFinancing, full, "stream financing deposit")

	_, err := suite.msgServer.Deposit(suite.ctx, &types.MsgDeposit{Creator: testutil.Depositor, Amount: full})
	suite.Require().NoError(err)

	_, err = suite.msgServer.Deposit(suite.ctx, &types.MsgDeposit{
		Creator: testutil.Depositor,
		Amount:  sdk.NewInt64Coin(types.DefaultDenom, 1),
	})
	suite.Require().ErrorIs(err, types.ErrExcessDeposit)
	suite.Require().Equal(math.NewInt(50), suite.keeper.GetFinancing(suite.ctx).TotalDeposited)
}

func (suite *KeeperTestSuite) TestMsgDeposit_WrongDenomFails() {
	suite.setupWindow()
	suite.setDefaultRoles()

	_, err := suite.msgServer.Deposit(suite.ctx, &types.MsgDeposit{
		Creator: testutil.Depositor,
		Amount:  sdk.NewInt64Coin("faketoken", 20),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)
}

func (suite *KeeperTestSuite) TestMsgDeposit_OnlyDepositor() {
	suite.setupWindow()
	suite.setDefaultRoles()

	_, err := suite.msgServer.Deposit(suite.ctx, &types.MsgDeposit{
		Creator: testutil.Holder,
		Amount:  sdk.NewInt64Coin(types.DefaultDenom, 20),
	})
	suite.Require().ErrorIs(err, types.ErrOnlyDepositor)
}

func (suite *KeeperTestSuite) TestMsgDeposit_WhilePausedFails() {
	suite.setupWindow()
	suite.setDefaultRoles()
	suite.keeper.SetLifecycle(suite.ctx, types.Lifecycle{Paused: true})

	_, err := suite.msgServer.Deposit(suite.ctx, &types.MsgDeposit{
		Creator: testutil.Depositor,
		Amount:  sdk.NewInt64Coin(types.DefaultDenom, 20),
	})
	suite.Require().ErrorIs(err, types.ErrPaused)
}

func (suite *KeeperTestSuite) TestMsgWithdraw_DisabledWithoutDeadline() {
	suite.setupWindow()
	suite.setDefaultRoles()
	suite.keeper.SetFinancing(suite.ctx, types.FinancingState{
		TotalDeposited: math.NewInt(50),
		TotalClaimed:   math.NewInt(20),
	})

	_, err := suite.msgServer.Withdraw(suite.at(1000), &types.MsgWithdraw{Creator: testutil.Depositor})
	suite.Require().ErrorIs(err, types.ErrWithdrawDisabled)
}

func (suite *KeeperTestSuite) TestMsgWithdraw_BeforeDeadlineFails() {
	suite.setupWindow()
	suite.setDefaultRoles()
	suite.keeper.SetFinancing(suite.ctx, types.FinancingState{
		TotalDeposited: math.NewInt(50),
		TotalClaimed:   math.NewInt(20),
		Deadline:       100,
	})

	// still premature at the deadline second itself
	_, err := suite.msgServer.Withdraw(suite.at(100), &types.MsgWithdraw{Creator: testutil.Depositor})
	suite.Require().ErrorIs(err, types.ErrPrematureWithdraw)
}

func (suite *KeeperTestSuite) TestMsgWithdraw_PaysTheUnclaimedRemainder() {
	suite.setupWindow()
	suite.setDefaultRoles()
	suite.keeper.SetFinancing(suite.ctx, types.FinancingState{
		TotalDeposited: math.NewInt(50),
		TotalClaimed:   math.NewInt(20),
		Deadline:       100,
	})

	ctx := suite.at(101)
	remainder := sdk.NewInt64Coin(types.DefaultDenom, 30)
	suite.mocks.BookkeepingBankKeeper.ExpectPayout(ctx, testutil.Depositor, 30)
	suite.mocks.BookkeepingBankKeeper.EXPECT().
		LogSubAccountTransaction(ctx, testutil.Depositor, types.ModuleName, types.SubAccountFinancing, remainder, "stream financing withdrawal")

	resp, err := suite.msgServer.Withdraw(ctx, &types.MsgWithdraw{Creator: testutil.Depositor})
	suite.Require().NoError(err)
	suite.Require().Equal(remainder, resp.Amount)

	// the ledger now carries exactly what was claimed, nothing unclaimed
	financing := suite.keeper.GetFinancing(suite.ctx)
	suite.Require().Equal(math.NewInt(20), financing.TotalDeposited)
	suite.Require().True(financing.Unclaimed().IsZero())
}

func (suite *KeeperTestSuite) TestMsgWithdraw_OnlyDepositor() {
	suite.setupWindow()
	suite.setDefaultRoles()
	suite.keeper.SetFinancing(suite.ctx, types.FinancingState{
		TotalDeposited: math.NewInt(50),
		TotalClaimed:   math.NewInt(20),
		Deadline:       100,
	})

	_, err := suite.msgServer.Withdraw(suite.at(101), &types.MsgWithdraw{Creator: testutil.Owner})
	suite.Require().ErrorIs(err, types.ErrOnlyDepositor)
}

// The new deadline must clear max(EndTime, now) by the protection
// period, so holders always get a window to react.
func (suite *KeeperTestSuite) TestMsgUpdateDeadline_EnforcesTheProtectionFloor() {
	suite.setupWindow()
	suite.setDefaultRoles()

	floor := int64(12) + types.DeadlineProtectionPeriod

	_, err := suite.msgServer.UpdateDeadline(suite.at(5), &types.MsgUpdateDeadline{
		Creator:  testutil.Owner,
		Deadline: floor - 1,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidNewDeadline)

	_, err = suite.msgServer.UpdateDeadline(suite.at(5), &types.MsgUpdateDeadline{
		Creator:  testutil.Owner,
		Deadline: floor,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(floor, suite.keeper.GetFinancing(suite.ctx).Deadline)
}

// Once the window has ended, the floor tracks the current time instead.
func (suite *KeeperTestSuite) TestMsgUpdateDeadline_FloorTracksNowAfterTheWindow() {
	suite.setupWindow()
	suite.setDefaultRoles()

	now := int64(100_000)
	floor := now + types.DeadlineProtectionPeriod

	_, err := suite.msgServer.UpdateDeadline(suite.at(now), &types.MsgUpdateDeadline{
		Creator:  testutil.Owner,
		Deadline: int64(12) + types.DeadlineProtectionPeriod,
	})
	suite.Require().ErrorIs(err, types.ErrInvalidNewDeadline)

	_, err = suite.msgServer.UpdateDeadline(suite.at(now), &types.MsgUpdateDeadline{
		Creator:  testutil.Owner,
		Deadline: floor,
	})
	suite.Require().NoError(err)
	suite.Require().Equal(floor, suite.keeper.GetFinancing(suite.ctx).Deadline)
}

func (suite *KeeperTestSuite) TestMsgUpdateDeadline_OnlyOwner() {
	suite.setupWindow()
	suite.setDefaultRoles()

	_, err := suite.msgServer.UpdateDeadline(suite.at(5), &types.MsgUpdateDeadline{
		Creator:  testutil.Depositor,
		Deadline: int64(12) + types.DeadlineProtectionPeriod,
	})
	suite.Require().ErrorIs(err, types.ErrOnlyOwner)
}
