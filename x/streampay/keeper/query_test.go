package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/calnix/nftstreaming/testutil"
	keepertest "github.com/calnix/nftstreaming/testutil/keeper"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

func TestParamsQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)
	params := types.DefaultParams()
	require.NoError(t, k.SetParams(ctx, params))

	response, err := k.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, &types.QueryParamsResponse{Params: params}, response)

	_, err = k.Params(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestStreamQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)
	require.NoError(t, k.SetParams(ctx, smallWindowParams()))

	// a token that never claimed reports the lazily defaulted record
	response, err := k.Stream(ctx, &types.QueryStreamRequest{TokenId: 1})
	require.NoError(t, err)
	require.Equal(t, types.NewStream(), response.Stream)

	stored := types.Stream{Claimed: math.NewInt(4), LastClaimedAt: 6}
	k.SetStream(ctx, 2, stored)
	response, err = k.Stream(ctx, &types.QueryStreamRequest{TokenId: 2})
	require.NoError(t, err)
	require.Equal(t, stored, response.Stream)

	_, err = k.Stream(ctx, &types.QueryStreamRequest{TokenId: 6})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = k.Stream(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestClaimableQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)
	require.NoError(t, k.SetParams(ctx, smallWindowParams()))

	// before the window opens nothing is claimable
	response, err := k.Claimable(ctx.WithBlockTime(time.Unix(1, 0)), &types.QueryClaimableRequest{TokenId: 1})
	require.NoError(t, err)
	require.True(t, response.Amount.IsZero())

	// three seconds in, three units
	response, err = k.Claimable(ctx.WithBlockTime(time.Unix(5, 0)), &types.QueryClaimableRequest{TokenId: 1})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), response.Amount)

	// the query does not mutate the stream
	_, found := k.GetStream(ctx, 1)
	require.False(t, found)

	// a paused stream still reports what a claim would pay
	k.SetStream(ctx, 2, types.Stream{Claimed: math.ZeroInt(), Paused: true})
	response, err = k.Claimable(ctx.WithBlockTime(time.Unix(5, 0)), &types.QueryClaimableRequest{TokenId: 2})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), response.Amount)

	_, err = k.Claimable(ctx, &types.QueryClaimableRequest{TokenId: 99})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = k.Claimable(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestFinancingQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)

	response, err := k.Financing(ctx, &types.QueryFinancingRequest{})
	require.NoError(t, err)
	require.True(t, response.Financing.TotalDeposited.IsZero())

	financing := types.FinancingState{
		TotalDeposited: math.NewInt(500),
		TotalClaimed:   math.NewInt(125),
		Deadline:       7777,
	}
	k.SetFinancing(ctx, financing)

	response, err = k.Financing(ctx, &types.QueryFinancingRequest{})
	require.NoError(t, err)
	require.Equal(t, financing, response.Financing)

	_, err = k.Financing(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestLifecycleQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)

	response, err := k.Lifecycle(ctx, &types.QueryLifecycleRequest{})
	require.NoError(t, err)
	require.True(t, response.Lifecycle.IsActive())

	k.SetLifecycle(ctx, types.Lifecycle{Paused: true, FrozenAt: 42})
	response, err = k.Lifecycle(ctx, &types.QueryLifecycleRequest{})
	require.NoError(t, err)
	require.True(t, response.Lifecycle.IsFrozen())

	_, err = k.Lifecycle(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestRolesQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)

	roles := types.Roles{Owner: testutil.Owner, Depositor: testutil.Depositor}
	k.SetRoles(ctx, roles)

	response, err := k.Roles(ctx, &types.QueryRolesRequest{})
	require.NoError(t, err)
	require.Equal(t, roles, response.Roles)

	_, err = k.Roles(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestModulesQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)

	response, err := k.Modules(ctx, &types.QueryModulesRequest{})
	require.NoError(t, err)
	require.Empty(t, response.Modules)

	k.SetModuleEnabled(ctx, testutil.Custodian, true)
	response, err = k.Modules(ctx, &types.QueryModulesRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.Custodian}, response.Modules)

	_, err = k.Modules(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}

func TestStreamInfoQuery(t *testing.T) {
	k, ctx := keepertest.StreampayKeeper(t)
	require.NoError(t, k.SetParams(ctx, smallWindowParams()))

	response, err := k.StreamInfo(ctx.WithBlockTime(time.Unix(7, 0)), &types.QueryStreamInfoRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(2), response.StartTime)
	require.Equal(t, int64(12), response.EndTime)
	require.Equal(t, math.NewInt(1), response.EmissionRate)
	require.Equal(t, math.NewInt(10), response.AllocationPerToken)
	require.Equal(t, uint64(5), response.TokenCount)
	require.Equal(t, math.NewInt(50), response.TotalAllocation)
	require.Equal(t, "0.5", response.Progress)

	_, err = k.StreamInfo(ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}
