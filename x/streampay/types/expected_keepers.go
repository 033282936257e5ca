package types

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
)

//go:generate mockgen -source=expected_keepers.go -package keeper -destination ../../../testutil/keeper/streampay_mocks.go

// NFTKeeper resolves the current holder of a token. It is the source of
// truth for direct and delegated claims.
type NFTKeeper interface {
	OwnerOf(ctx context.Context, tokenId uint64) (sdk.AccAddress, error)
}

// AuthzKeeper exposes the grant lookups needed for delegated claims.
type AuthzKeeper interface {
	GetAuthorization(ctx context.Context, grantee, granter sdk.AccAddress, msgType string) (authz.Authorization, *time.Time)
}

// CustodyKeeper is implemented by modules that hold tokens on behalf of
// users, for example lending or rental escrows. ConfirmCustody returns
// nil only when every listed token is held by claimModule for claimant.
type CustodyKeeper interface {
	ConfirmCustody(ctx context.Context, claimModule, claimant sdk.AccAddress, tokenIds []uint64) error
}

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// BookkeepingBankKeeper wraps bank transfers with transaction logging.
type BookkeepingBankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string)
}
