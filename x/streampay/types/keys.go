package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "streampay"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_streampay"

	// SubAccountStream tags per-token stream movements in bookkeeping logs
	SubAccountStream = "stream"

	// SubAccountFinancing tags depositor movements in bookkeeping logs
	SubAccountFinancing = "financing"
)

var (
	// ParamsKey is the collections prefix for module params (Item)
	ParamsKey = collections.NewPrefix(0)

	// StreamKey is the collections prefix for per-token streams (Map)
	StreamKey = collections.NewPrefix(1)

	// FinancingKey is the collections prefix for the financing state (Item)
	FinancingKey = collections.NewPrefix(2)

	// LifecycleKey is the collections prefix for the lifecycle state (Item)
	LifecycleKey = collections.NewPrefix(3)

	// RolesKey is the collections prefix for the role assignments (Item)
	RolesKey = collections.NewPrefix(4)

	// ModuleRegistryKey is the collections prefix for registered claim modules (KeySet)
	ModuleRegistryKey = collections.NewPrefix(5)
)
