package testutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Fixed actors for tests that want stable, readable addresses.
const (
	Owner     = "cosmos1mndakfn69hrlux78zc2awxyx7md9448rl3h3cu"
	Depositor = "cosmos1wwv8s5v5lwgmhsen8z9w6tjhk7fpyje2whhkfc"
	Operator  = "cosmos1jegrrwgxn0a9r9k6w3qulaunhlmxdfsru4c5j0"
	Holder    = "cosmos1a5mj56jf7c0p26s3euvvjxalx76ygalu86c36h"
	Delegate  = "cosmos1hn39m7vh4qskkuql7xr0k9eyjww95w0slww9kc"
	Custodian = "cosmos1wp9x8xses4fep4e4pk7dfuykxzrc8qj3ajwul7"
	Receiver  = "cosmos1yx6ecyrcxaxyuf0v0m89xznetalqv54saf5vkk"
)

// Bech32Addr returns a valid bech32-encoded account address with the given HRP.
func Bech32Addr(seed int) string {
	hrp := sdk.GetConfig().GetBech32AccountAddrPrefix()
	// Deterministic private key from seed
	h := sha256.Sum256([]byte(fmt.Sprintf("addr-seed-%d", seed)))
	priv := secp256k1.PrivKey{Key: h[:]}
	pub := priv.PubKey()

	// Convert to AccAddress (20 bytes)
	addr := sdk.AccAddress(pub.Address())

	// Encode with desired HRP/prefix
	bech, err := sdk.Bech32ifyAddressBytes(hrp, addr)
	if err != nil {
		panic(err)
	}
	return bech
}
