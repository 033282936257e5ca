package keeper

// Mocks for simple Keepers, just store in memory as if in the KV Store
import (
	"context"
	"fmt"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
)

// InMemoryNFTKeeper is an in-memory implementation of NFTKeeper.
type InMemoryNFTKeeper struct {
	owners map[uint64]sdk.AccAddress
	mu     sync.RWMutex
}

// NewInMemoryNFTKeeper creates a new instance of InMemoryNFTKeeper.
func NewInMemoryNFTKeeper() *InMemoryNFTKeeper {
	return &InMemoryNFTKeeper{
		owners: make(map[uint64]sdk.AccAddress),
	}
}

// SetOwner records owner as the holder of the given tokens.
func (keeper *InMemoryNFTKeeper) SetOwner(owner sdk.AccAddress, tokenIds ...uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	for _, tokenId := range tokenIds {
		keeper.owners[tokenId] = owner
	}
}

// OwnerOf retrieves the registered holder of a token.
func (keeper *InMemoryNFTKeeper) OwnerOf(ctx context.Context, tokenId uint64) (sdk.AccAddress, error) {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	owner, found := keeper.owners[tokenId]
	if !found {
		return nil, fmt.Errorf("token %d: no owner on record", tokenId)
	}
	return owner, nil
}

// InMemoryAuthzKeeper is an in-memory implementation of AuthzKeeper.
type InMemoryAuthzKeeper struct {
	grants map[string]inMemoryGrant
	mu     sync.RWMutex
}

type inMemoryGrant struct {
	authorization authz.Authorization
	expiration    *time.Time
}

// generateKey creates a unique key from grantee, granter and message type.
func (keeper *InMemoryAuthzKeeper) generateKey(grantee, granter sdk.AccAddress, msgType string) string {
	return fmt.Sprintf("%s/%s/%s", grantee, granter, msgType)
}

// NewInMemoryAuthzKeeper creates a new instance of InMemoryAuthzKeeper.
func NewInMemoryAuthzKeeper() *InMemoryAuthzKeeper {
	return &InMemoryAuthzKeeper{
		grants: make(map[string]inMemoryGrant),
	}
}

// Grant stores or updates an authorization from granter to grantee.
func (keeper *InMemoryAuthzKeeper) Grant(grantee, granter sdk.AccAddress, authorization authz.Authorization, expiration *time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	key := keeper.generateKey(grantee, granter, authorization.MsgTypeURL())
	keeper.grants[key] = inMemoryGrant{authorization: authorization, expiration: expiration}
}

// Revoke removes the authorization for the given message type.
func (keeper *InMemoryAuthzKeeper) Revoke(grantee, granter sdk.AccAddress, msgType string) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	delete(keeper.grants, keeper.generateKey(grantee, granter, msgType))
}

// GetAuthorization retrieves a live grant. Like the real x/authz keeper
// it reports an expired grant as missing.
func (keeper *InMemoryAuthzKeeper) GetAuthorization(ctx context.Context, grantee, granter sdk.AccAddress, msgType string) (authz.Authorization, *time.Time) {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	grant, found := keeper.grants[keeper.generateKey(grantee, granter, msgType)]
	if !found {
		return nil, nil
	}
	if grant.expiration != nil && !grant.expiration.After(sdk.UnwrapSDKContext(ctx).BlockTime()) {
		return nil, nil
	}
	return grant.authorization, grant.expiration
}

// InMemoryCustodyKeeper is an in-memory implementation of CustodyKeeper.
type InMemoryCustodyKeeper struct {
	held map[string]string
	mu   sync.RWMutex
}

// generateKey creates a unique key from the custodian module and token id.
func (keeper *InMemoryCustodyKeeper) generateKey(custodian sdk.AccAddress, tokenId uint64) string {
	return fmt.Sprintf("%s/%d", custodian, tokenId)
}

// NewInMemoryCustodyKeeper creates a new instance of InMemoryCustodyKeeper.
func NewInMemoryCustodyKeeper() *InMemoryCustodyKeeper {
	return &InMemoryCustodyKeeper{
		held: make(map[string]string),
	}
}

// SetCustody records that custodian holds the given tokens for claimant.
func (keeper *InMemoryCustodyKeeper) SetCustody(custodian, claimant sdk.AccAddress, tokenIds ...uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	for _, tokenId := range tokenIds {
		keeper.held[keeper.generateKey(custodian, tokenId)] = claimant.String()
	}
}

// ConfirmCustody reports whether claimModule holds every listed token for
// claimant, failing on the first token it does not.
func (keeper *InMemoryCustodyKeeper) ConfirmCustody(ctx context.Context, claimModule, claimant sdk.AccAddress, tokenIds []uint64) error {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	for _, tokenId := range tokenIds {
		holder, found := keeper.held[keeper.generateKey(claimModule, tokenId)]
		if !found {
			return fmt.Errorf("token %d: not in custody of %s", tokenId, claimModule)
		}
		if holder != claimant.String() {
			return fmt.Errorf("token %d: held for %s, not %s", tokenId, holder, claimant)
		}
	}
	return nil
}

// InMemoryBankViewKeeper is an in-memory implementation of BankKeeper.
type InMemoryBankViewKeeper struct {
	balances map[string]sdk.Coins
	mu       sync.RWMutex
}

// NewInMemoryBankViewKeeper creates a new instance of InMemoryBankViewKeeper.
func NewInMemoryBankViewKeeper() *InMemoryBankViewKeeper {
	return &InMemoryBankViewKeeper{
		balances: make(map[string]sdk.Coins),
	}
}

// SetBalance fixes the reported balance of an account.
func (keeper *InMemoryBankViewKeeper) SetBalance(addr sdk.AccAddress, balance sdk.Coins) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.balances[addr.String()] = balance
}

// GetBalance retrieves the balance of an account in one denomination.
func (keeper *InMemoryBankViewKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	return sdk.NewCoin(denom, keeper.balances[addr.String()].AmountOf(denom))
}

// BankSend records a single transfer routed through the bookkeeping bank.
type BankSend struct {
	From   string
	To     string
	Amount sdk.Coins
	Memo   string
}

// SubAccountLog records a single sub-account ledger line.
type SubAccountLog struct {
	Recipient  string
	Sender     string
	SubAccount string
	Amount     sdk.Coin
	Memo       string
}

// RecordingBankKeeper is an in-memory implementation of
// BookkeepingBankKeeper that remembers every transfer it is asked to make.
type RecordingBankKeeper struct {
	Sends          []BankSend
	SubAccountLogs []SubAccountLog
	// FailWith, when set, is returned from every send.
	FailWith error
	// OnSendToAccount runs after a module-to-account transfer is recorded,
	// outside the keeper lock, so tests can reenter the module under test.
	OnSendToAccount func(ctx context.Context, recipient sdk.AccAddress, amt sdk.Coins)
	mu              sync.RWMutex
}

// NewRecordingBankKeeper creates a new instance of RecordingBankKeeper.
func NewRecordingBankKeeper() *RecordingBankKeeper {
	return &RecordingBankKeeper{}
}

// SendCoinsFromAccountToModule records a deposit into a module account.
func (keeper *RecordingBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	if keeper.FailWith != nil {
		return keeper.FailWith
	}
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.Sends = append(keeper.Sends, BankSend{From: senderAddr.String(), To: recipientModule, Amount: amt, Memo: memo})
	return nil
}

// SendCoinsFromModuleToAccount records a payout from a module account.
func (keeper *RecordingBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if keeper.FailWith != nil {
		return keeper.FailWith
	}
	keeper.mu.Lock()
	keeper.Sends = append(keeper.Sends, BankSend{From: senderModule, To: recipientAddr.String(), Amount: amt, Memo: memo})
	keeper.mu.Unlock()
	if keeper.OnSendToAccount != nil {
		keeper.OnSendToAccount(ctx, recipientAddr, amt)
	}
	return nil
}

// LogSubAccountTransaction records a sub-account ledger line.
func (keeper *RecordingBankKeeper) LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.SubAccountLogs = append(keeper.SubAccountLogs, SubAccountLog{Recipient: recipient, Sender: sender, SubAccount: subAccount, Amount: amt, Memo: memo})
}

// PaidTo sums every recorded payout to the given address.
func (keeper *RecordingBankKeeper) PaidTo(addr string) sdk.Coins {
	keeper.mu.RLock()
	defer keeper.mu.RUnlock()
	total := sdk.NewCoins()
	for _, send := range keeper.Sends {
		if send.To == addr {
			total = total.Add(send.Amount...)
		}
	}
	return total
}
