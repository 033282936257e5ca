package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetRoles(ctx, genState.Roles)
	k.SetLifecycle(ctx, genState.Lifecycle)
	k.SetFinancing(ctx, genState.Financing)
	for _, record := range genState.Streams {
		k.SetStream(ctx, record.TokenId, record.Stream)
	}
	for _, module := range genState.Modules {
		k.SetModuleEnabled(ctx, module, true)
	}
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.Roles = k.GetRoles(ctx)
	genesis.Lifecycle = k.GetLifecycle(ctx)
	genesis.Financing = k.GetFinancing(ctx)
	genesis.Streams = k.GetAllStreams(ctx)
	genesis.Modules = k.GetAllModules(ctx)

	return genesis
}
