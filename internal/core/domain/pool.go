package domain

import "time"

// Pool is the accounting record for one two-asset liquidity pool. Share
// tokens are minted and burned 1:1 against base-asset deposits.
type Pool struct {
	ID             string
	Authority      string
	BaseAssetID    string
	ShareAssetID   string
	VaultAccount   string // base-asset vault; also the record's signing capability, never exposed to callers
	TotalLiquidity uint64
	FeeRateBps     uint32
	Version        int // optimistic locking
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
