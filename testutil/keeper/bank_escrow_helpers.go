package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

func (escrow *MockBookkeepingBankKeeper) ExpectAny(context sdk.Context) {
	escrow.EXPECT().SendCoinsFromAccountToModule(context, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	escrow.EXPECT().SendCoinsFromModuleToAccount(context, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	escrow.EXPECT().LogSubAccountTransaction(context, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func coinsOf(amount int64) sdk.Coins {
	return sdk.Coins{
		sdk.NewInt64Coin(
			types.DefaultDenom,
			amount),
	}
}

func (escrow *MockBookkeepingBankKeeper) ExpectDeposit(context sdk.Context, who string, amount int64) *gomock.Call {
	whoAddr, err := sdk.AccAddressFromBech32(who)
	if err != nil {
		panic(err)
	}
	return escrow.EXPECT().SendCoinsFromAccountToModule(context, whoAddr, types.ModuleName, coinsOf(amount), gomock.Any())
}

func (escrow *MockBookkeepingBankKeeper) ExpectPayout(context sdk.Context, who string, amount int64) *gomock.Call {
	whoAddr, err := sdk.AccAddressFromBech32(who)
	if err != nil {
		panic(err)
	}
	return escrow.EXPECT().SendCoinsFromModuleToAccount(context, types.ModuleName, whoAddr, coinsOf(amount), gomock.Any())
}
