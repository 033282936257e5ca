package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Stream(ctx context.Context, req *QueryStreamRequest) (*QueryStreamResponse, error)
	Claimable(ctx context.Context, req *QueryClaimableRequest) (*QueryClaimableResponse, error)
	Financing(ctx context.Context, req *QueryFinancingRequest) (*QueryFinancingResponse, error)
	Lifecycle(ctx context.Context, req *QueryLifecycleRequest) (*QueryLifecycleResponse, error)
	Roles(ctx context.Context, req *QueryRolesRequest) (*QueryRolesResponse, error)
	Modules(ctx context.Context, req *QueryModulesRequest) (*QueryModulesResponse, error)
	StreamInfo(ctx context.Context, req *QueryStreamInfoRequest) (*QueryStreamInfoResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params
}

type QueryStreamRequest struct {
	TokenId uint64
}

// QueryStreamResponse returns the stored record, or the lazily defaulted
// view for a token that never claimed.
type QueryStreamResponse struct {
	Stream Stream
}

type QueryClaimableRequest struct {
	TokenId uint64
}

type QueryClaimableResponse struct {
	Amount math.Int
}

type QueryFinancingRequest struct{}

type QueryFinancingResponse struct {
	Financing FinancingState
}

type QueryLifecycleRequest struct{}

type QueryLifecycleResponse struct {
	Lifecycle Lifecycle
}

type QueryRolesRequest struct{}

type QueryRolesResponse struct {
	Roles Roles
}

type QueryModulesRequest struct{}

type QueryModulesResponse struct {
	Modules []string
}

type QueryStreamInfoRequest struct{}

// QueryStreamInfoResponse summarizes the emission schedule. Progress is
// the elapsed share of the window as a decimal string in [0, 1].
type QueryStreamInfoResponse struct {
	StartTime          int64
	EndTime            int64
	EmissionRate       math.Int
	AllocationPerToken math.Int
	TokenCount         uint64
	TotalAllocation    math.Int
	Progress           string
}
