package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/calnix/nftstreaming/x/streampay/calculations"
	"github.com/calnix/nftstreaming/x/streampay/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: k.GetParams(goCtx)}, nil
}

// Stream returns a token's accrual record; a token that never claimed
// reports the lazily defaulted record.
func (k Keeper) Stream(goCtx context.Context, req *types.QueryStreamRequest) (*types.QueryStreamResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	params := k.GetParams(goCtx)
	if !params.ValidTokenId(req.TokenId) {
		return nil, status.Errorf(codes.InvalidArgument, "token id %d outside collection range [1, %d]", req.TokenId, params.TokenCount)
	}

	return &types.QueryStreamResponse{Stream: k.getOrInitStream(goCtx, req.TokenId)}, nil
}

// Claimable reports what a claim at the current block time would pay for
// one token. It does not fail on a paused stream.
func (k Keeper) Claimable(goCtx context.Context, req *types.QueryClaimableRequest) (*types.QueryClaimableResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	amount, err := k.PeekClaimable(goCtx, req.TokenId)
	if err != nil {
		if errorsmod.IsOf(err, types.ErrTokenIdOutOfRange) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryClaimableResponse{Amount: amount}, nil
}

func (k Keeper) Financing(goCtx context.Context, req *types.QueryFinancingRequest) (*types.QueryFinancingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryFinancingResponse{Financing: k.GetFinancing(goCtx)}, nil
}

func (k Keeper) Lifecycle(goCtx context.Context, req *types.QueryLifecycleRequest) (*types.QueryLifecycleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryLifecycleResponse{Lifecycle: k.GetLifecycle(goCtx)}, nil
}

func (k Keeper) Roles(goCtx context.Context, req *types.QueryRolesRequest) (*types.QueryRolesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryRolesResponse{Roles: k.GetRoles(goCtx)}, nil
}

func (k Keeper) Modules(goCtx context.Context, req *types.QueryModulesRequest) (*types.QueryModulesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryModulesResponse{Modules: k.GetAllModules(goCtx)}, nil
}

// StreamInfo summarizes the emission schedule and how far along it is.
func (k Keeper) StreamInfo(goCtx context.Context, req *types.QueryStreamInfoRequest) (*types.QueryStreamInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	params := k.GetParams(goCtx)
	progress := calculations.Progress(emissionWindow(params), ctx.BlockTime().Unix())

	return &types.QueryStreamInfoResponse{
		StartTime:          params.StartTime,
		EndTime:            params.EndTime,
		EmissionRate:       params.EmissionRatePerSecond(),
		AllocationPerToken: params.AllocationPerToken,
		TokenCount:         params.TokenCount,
		TotalAllocation:    params.TotalAllocation(),
		Progress:           progress.String(),
	}, nil
}
