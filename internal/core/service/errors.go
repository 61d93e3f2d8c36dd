package service

import "errors"

var (
	ErrInvalidConfiguration     = errors.New("invalid configuration")
	ErrPropertyNotFound         = errors.New("property not found")
	ErrPoolNotFound             = errors.New("pool not found")
	ErrInvalidUnitIndex         = errors.New("invalid unit index")
	ErrAllUnitsIssued           = errors.New("all units issued")
	ErrNoProfitToDistribute     = errors.New("no profit to distribute")
	ErrNoClaimTokensOutstanding = errors.New("no claim tokens outstanding")
	ErrInsufficientLiquidity    = errors.New("insufficient liquidity")

	// ErrLedgerInconsistent reports that the ledger and the accounting record
	// diverged mid-operation and compensation did not restore them. Operator
	// intervention is required.
	ErrLedgerInconsistent = errors.New("ledger state inconsistent")
)
