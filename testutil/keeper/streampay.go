package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/calnix/nftstreaming/x/streampay/keeper"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

// StreampayMocks holds all the mock oracles for testing
type StreampayMocks struct {
	NFTKeeper             *MockNFTKeeper
	AuthzKeeper           *MockAuthzKeeper
	CustodyKeeper         *MockCustodyKeeper
	BankKeeper            *MockBankKeeper
	BookkeepingBankKeeper *MockBookkeepingBankKeeper
}

func StreampayKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := StreampayKeeperReturningMocks(t)
	return k, ctx
}

func StreampayKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, StreampayMocks) {
	ctrl := gomock.NewController(t)
	mocks := StreampayMocks{
		NFTKeeper:             NewMockNFTKeeper(ctrl),
		AuthzKeeper:           NewMockAuthzKeeper(ctrl),
		CustodyKeeper:         NewMockCustodyKeeper(ctrl),
		BankKeeper:            NewMockBankKeeper(ctrl),
		BookkeepingBankKeeper: NewMockBookkeepingBankKeeper(ctrl),
	}

	k, ctx := StreampayKeeperWithMocks(t, mocks)

	return k, ctx, mocks
}

func StreampayKeeperWithMocks(
	t testing.TB,
	mocks StreampayMocks,
) (keeper.Keeper, sdk.Context) {
	return StreampayKeeperWithKeepers(t,
		mocks.NFTKeeper,
		mocks.AuthzKeeper,
		mocks.CustodyKeeper,
		mocks.BankKeeper,
		mocks.BookkeepingBankKeeper,
	)
}

// StreampayKeeperWithKeepers builds a keeper on an in-memory store with
// whatever oracle implementations the test supplies, gomock or fakes.
func StreampayKeeperWithKeepers(
	t testing.TB,
	nftKeeper types.NFTKeeper,
	authzKeeper types.AuthzKeeper,
	custodyKeeper types.CustodyKeeper,
	bankKeeper types.BankKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		nftKeeper,
		authzKeeper,
		custodyKeeper,
		bankKeeper,
		bookkeepingBankKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
