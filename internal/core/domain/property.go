package domain

import "time"

// Property is the accounting record for one tokenized inventory pool. Claim
// token supply and holder balances live in the external asset ledger and are
// never cached here.
type Property struct {
	ID             string
	Authority      string
	ClaimAssetID   string
	VaultAccount   string // settlement-asset vault; also the record's signing capability, never exposed to callers
	UnitCount      uint64
	UnitsIssued    uint64
	AccruedRevenue uint64
	FeeRateBps     uint32
	Version        int // optimistic locking
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
