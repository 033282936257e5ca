package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/calnix/nftstreaming/x/streampay/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of executing a MsgUpdateParams message. Typically, this
		// should be the x/gov module account.
		authority string

		nftKeeper             types.NFTKeeper
		authzKeeper           types.AuthzKeeper
		custodyKeeper         types.CustodyKeeper
		bankViewKeeper        types.BankKeeper
		bookkeepingBankKeeper types.BookkeepingBankKeeper

		Schema         collections.Schema
		params         collections.Item[types.Params]
		Streams        collections.Map[uint64, types.Stream]
		financing      collections.Item[types.FinancingState]
		lifecycle      collections.Item[types.Lifecycle]
		roles          collections.Item[types.Roles]
		moduleRegistry collections.KeySet[string]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	nftKeeper types.NFTKeeper,
	authzKeeper types.AuthzKeeper,
	custodyKeeper types.CustodyKeeper,
	bankKeeper types.BankKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		nftKeeper:             nftKeeper,
		authzKeeper:           authzKeeper,
		custodyKeeper:         custodyKeeper,
		bankViewKeeper:        bankKeeper,
		bookkeepingBankKeeper: bookkeepingBankKeeper,

		params:         collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
		Streams:        collections.NewMap(sb, types.StreamKey, "streams", collections.Uint64Key, types.StreamValue),
		financing:      collections.NewItem(sb, types.FinancingKey, "financing", types.FinancingValue),
		lifecycle:      collections.NewItem(sb, types.LifecycleKey, "lifecycle", types.LifecycleValue),
		roles:          collections.NewItem(sb, types.RolesKey, "roles", types.RolesValue),
		moduleRegistry: collections.NewKeySet(sb, types.ModuleRegistryKey, "module_registry", collections.StringKey),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetStream retrieves a token's accrual record
func (k Keeper) GetStream(ctx context.Context, tokenId uint64) (types.Stream, bool) {
	stream, err := k.Streams.Get(ctx, tokenId)
	return stream, err == nil
}

// getOrInitStream returns the stored record or the lazily initialized
// default for a token seen for the first time.
func (k Keeper) getOrInitStream(ctx context.Context, tokenId uint64) types.Stream {
	stream, found := k.GetStream(ctx, tokenId)
	if !found {
		return types.NewStream()
	}
	return stream
}

// SetStream stores a token's accrual record
func (k Keeper) SetStream(ctx context.Context, tokenId uint64, stream types.Stream) {
	if err := k.Streams.Set(ctx, tokenId, stream); err != nil {
		panic(err)
	}
}

// GetAllStreams returns every stored accrual record ordered by token id,
// for genesis export.
func (k Keeper) GetAllStreams(ctx context.Context) []types.StreamRecord {
	var records []types.StreamRecord
	err := k.Streams.Walk(ctx, nil, func(tokenId uint64, stream types.Stream) (bool, error) {
		records = append(records, types.StreamRecord{TokenId: tokenId, Stream: stream})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return records
}

// GetFinancing retrieves the funding ledger, defaulting to the zeroed
// ledger when unset.
func (k Keeper) GetFinancing(ctx context.Context) types.FinancingState {
	financing, err := k.financing.Get(ctx)
	if err != nil {
		return types.NewFinancingState()
	}
	return financing
}

// SetFinancing stores the funding ledger
func (k Keeper) SetFinancing(ctx context.Context, financing types.FinancingState) {
	if err := k.financing.Set(ctx, financing); err != nil {
		panic(err)
	}
}

// GetLifecycle retrieves the operating state, defaulting to active.
func (k Keeper) GetLifecycle(ctx context.Context) types.Lifecycle {
	lifecycle, err := k.lifecycle.Get(ctx)
	if err != nil {
		return types.NewLifecycle()
	}
	return lifecycle
}

// SetLifecycle stores the operating state
func (k Keeper) SetLifecycle(ctx context.Context, lifecycle types.Lifecycle) {
	if err := k.lifecycle.Set(ctx, lifecycle); err != nil {
		panic(err)
	}
}

// GetRoles retrieves the privileged addresses.
func (k Keeper) GetRoles(ctx context.Context) types.Roles {
	roles, err := k.roles.Get(ctx)
	if err != nil {
		return types.Roles{}
	}
	return roles
}

// SetRoles stores the privileged addresses
func (k Keeper) SetRoles(ctx context.Context, roles types.Roles) {
	if err := k.roles.Set(ctx, roles); err != nil {
		panic(err)
	}
}

// SetModuleEnabled registers or deregisters a custodial claim module.
func (k Keeper) SetModuleEnabled(ctx context.Context, module string, enabled bool) {
	var err error
	if enabled {
		err = k.moduleRegistry.Set(ctx, module)
	} else {
		err = k.moduleRegistry.Remove(ctx, module)
	}
	if err != nil {
		panic(err)
	}
}

// IsModuleRegistered checks whether a claim module is registered.
func (k Keeper) IsModuleRegistered(ctx context.Context, module string) bool {
	found, err := k.moduleRegistry.Has(ctx, module)
	if err != nil {
		panic(err)
	}
	return found
}

// GetAllModules returns all registered claim module addresses.
func (k Keeper) GetAllModules(ctx context.Context) []string {
	iter, err := k.moduleRegistry.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()
	modules, err := iter.Keys()
	if err != nil {
		panic(err)
	}
	return modules
}
