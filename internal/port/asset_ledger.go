package port

import (
	"context"
	"errors"
)

// Errors returned by AssetLedger implementations. They surface to service
// callers unchanged.
var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrUnauthorized      = errors.New("unauthorized ledger actor")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

// Proof authorizes an outgoing movement on a ledger account. Callers obtain
// one from the AuthorityVerifier; a Property or Pool presents its own vault
// capability when it signs a movement itself.
type Proof string

// FeeConfig is forwarded opaquely to the ledger at asset creation. The
// ledger owns fee application semantics.
type FeeConfig struct {
	RateBps uint32
}

// AssetLedger is the external system of record for token supply and
// balances. Every operation either applies fully or fails with no effect.
type AssetLedger interface {
	// CreateAsset registers a new asset and returns its id. mintAuthority is
	// the only proof the ledger will accept for minting the asset.
	CreateAsset(ctx context.Context, decimals uint8, mintAuthority string, fee FeeConfig) (string, error)

	Mint(ctx context.Context, assetID, to string, amount uint64, proof Proof) error
	Transfer(ctx context.Context, assetID, from, to string, amount uint64, proof Proof) error
	Burn(ctx context.Context, assetID, from string, amount uint64, proof Proof) error

	// BalanceOf and TotalSupply are fresh reads; results must not be cached
	// across operations.
	BalanceOf(ctx context.Context, assetID, account string) (uint64, error)
	TotalSupply(ctx context.Context, assetID string) (uint64, error)
}
