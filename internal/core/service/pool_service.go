package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rl1809/roomledger/internal/core/domain"
	"github.com/rl1809/roomledger/internal/port"
)

const shareAssetDecimals = 9

// PoolService owns Pool records: base-asset deposits against 1:1 share
// minting, and withdrawals that burn shares back.
type PoolService struct {
	db     port.DatabaseRepository
	ledger port.AssetLedger
	auth   port.AuthorityVerifier
	locks  port.RecordLocker
	log    *logrus.Logger
	events chan domain.Event
}

func NewPoolService(db port.DatabaseRepository, ledger port.AssetLedger, auth port.AuthorityVerifier, locks port.RecordLocker, log *logrus.Logger, queueSize int) *PoolService {
	return &PoolService{
		db:     db,
		ledger: ledger,
		auth:   auth,
		locks:  locks,
		log:    log,
		events: make(chan domain.Event, queueSize),
	}
}

func (s *PoolService) Events() <-chan domain.Event {
	return s.events
}

func (s *PoolService) Close() {
	close(s.events)
}

func (s *PoolService) emit(e domain.Event) {
	select {
	case s.events <- e:
	default:
		s.log.WithFields(logrus.Fields{
			"event_type": e.Type,
			"record_id":  e.RecordID,
		}).Warn("event queue full, notification dropped")
	}
}

// CreatePool creates the accounting record and its 9-decimal share asset.
// The fee rate is handed to the ledger opaquely.
func (s *PoolService) CreatePool(ctx context.Context, authority, baseAssetID string, feeRateBps uint32) (*domain.Pool, error) {
	if feeRateBps > maxFeeRateBps {
		return nil, fmt.Errorf("%w: fee rate above %d bps", ErrInvalidConfiguration, maxFeeRateBps)
	}

	// Surfaces ErrAssetNotFound before anything is created.
	if _, err := s.ledger.TotalSupply(ctx, baseAssetID); err != nil {
		return nil, fmt.Errorf("check base asset: %w", err)
	}

	vault := uuid.New().String()

	shareAsset, err := s.ledger.CreateAsset(ctx, shareAssetDecimals, vault, port.FeeConfig{RateBps: feeRateBps})
	if err != nil {
		return nil, fmt.Errorf("create share asset: %w", err)
	}

	now := time.Now()
	pool := domain.Pool{
		ID:           uuid.New().String(),
		Authority:    authority,
		BaseAssetID:  baseAssetID,
		ShareAssetID: shareAsset,
		VaultAccount: vault,
		FeeRateBps:   feeRateBps,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.CreatePool(ctx, pool); err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"pool_id":      pool.ID,
		"base_asset":   baseAssetID,
		"share_asset":  shareAsset,
		"fee_rate_bps": feeRateBps,
	}).Info("pool created")

	return &pool, nil
}

// ProvideLiquidity moves the deposit into the pool vault and mints shares
// 1:1, signed by the pool's vault capability. A zero deposit succeeds as a
// degenerate no-op. Returns the shares minted.
func (s *PoolService) ProvideLiquidity(ctx context.Context, poolID, depositor, credential string, amount uint64) (uint64, error) {
	proof, err := s.auth.Verify(ctx, depositor, credential)
	if err != nil {
		return 0, fmt.Errorf("verify depositor: %w", err)
	}

	release, err := s.locks.Acquire(ctx, "pool:"+poolID)
	if err != nil {
		return 0, fmt.Errorf("acquire pool lock: %w", err)
	}
	defer release()

	pool, err := s.db.GetPool(ctx, poolID)
	if err != nil {
		return 0, fmt.Errorf("load pool: %w", err)
	}
	if pool == nil {
		return 0, ErrPoolNotFound
	}

	if err := s.ledger.Transfer(ctx, pool.BaseAssetID, depositor, pool.VaultAccount, amount, proof); err != nil {
		return 0, fmt.Errorf("collect deposit: %w", err)
	}

	// 1:1 exchange rate
	shares := amount

	if err := s.ledger.Mint(ctx, pool.ShareAssetID, depositor, shares, port.Proof(pool.VaultAccount)); err != nil {
		if rbErr := s.ledger.Transfer(ctx, pool.BaseAssetID, pool.VaultAccount, depositor, amount, port.Proof(pool.VaultAccount)); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"pool_id":   pool.ID,
				"depositor": depositor,
				"amount":    amount,
			}).Errorf("CRITICAL: deposit refund failed after mint error: %v", rbErr)
			return 0, fmt.Errorf("%w: mint shares: %v", ErrLedgerInconsistent, err)
		}
		return 0, fmt.Errorf("mint shares: %w", err)
	}

	pool.TotalLiquidity += amount
	if err := s.db.UpdatePool(ctx, *pool); err != nil {
		// Unwind both ledger legs; the depositor's proof covers the burn.
		burnErr := s.ledger.Burn(ctx, pool.ShareAssetID, depositor, shares, proof)
		if burnErr == nil {
			burnErr = s.ledger.Transfer(ctx, pool.BaseAssetID, pool.VaultAccount, depositor, amount, port.Proof(pool.VaultAccount))
		}
		if burnErr != nil {
			s.log.WithFields(logrus.Fields{
				"pool_id":   pool.ID,
				"depositor": depositor,
				"amount":    amount,
			}).Errorf("CRITICAL: deposit unwind failed after persist error: %v", burnErr)
			return 0, fmt.Errorf("%w: persist deposit: %v", ErrLedgerInconsistent, err)
		}
		return 0, fmt.Errorf("persist deposit: %w", err)
	}

	s.emit(domain.Event{
		ID:         uuid.New().String(),
		Type:       domain.EventLiquidityProvided,
		RecordID:   pool.ID,
		Actor:      depositor,
		Amount:     amount,
		Shares:     shares,
		OccurredAt: time.Now(),
	})

	s.log.WithFields(logrus.Fields{
		"pool_id":         pool.ID,
		"depositor":       depositor,
		"amount":          amount,
		"shares_minted":   shares,
		"total_liquidity": pool.TotalLiquidity,
	}).Info("liquidity provided")

	return shares, nil
}

// WithdrawLiquidity burns the holder's shares and returns base assets 1:1,
// signed by the pool's vault capability. The burn is confirmed before the
// compensating transfer; a transfer failure re-mints the burned shares, and
// a re-mint failure is surfaced as a fatal inconsistency, never silent.
func (s *PoolService) WithdrawLiquidity(ctx context.Context, poolID, holder, credential string, shares uint64) (uint64, error) {
	proof, err := s.auth.Verify(ctx, holder, credential)
	if err != nil {
		return 0, fmt.Errorf("verify holder: %w", err)
	}

	release, err := s.locks.Acquire(ctx, "pool:"+poolID)
	if err != nil {
		return 0, fmt.Errorf("acquire pool lock: %w", err)
	}
	defer release()

	pool, err := s.db.GetPool(ctx, poolID)
	if err != nil {
		return 0, fmt.Errorf("load pool: %w", err)
	}
	if pool == nil {
		return 0, ErrPoolNotFound
	}

	// 1:1 exchange rate
	baseReturned := shares

	if pool.TotalLiquidity < baseReturned {
		return 0, ErrInsufficientLiquidity
	}

	if err := s.ledger.Burn(ctx, pool.ShareAssetID, holder, shares, proof); err != nil {
		return 0, fmt.Errorf("burn shares: %w", err)
	}

	if err := s.ledger.Transfer(ctx, pool.BaseAssetID, pool.VaultAccount, holder, baseReturned, port.Proof(pool.VaultAccount)); err != nil {
		if rbErr := s.ledger.Mint(ctx, pool.ShareAssetID, holder, shares, port.Proof(pool.VaultAccount)); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"pool_id": pool.ID,
				"holder":  holder,
				"shares":  shares,
			}).Errorf("CRITICAL: share re-mint failed after payout error: %v", rbErr)
			return 0, fmt.Errorf("%w: return base assets: %v", ErrLedgerInconsistent, err)
		}
		return 0, fmt.Errorf("return base assets: %w", err)
	}

	pool.TotalLiquidity -= baseReturned
	if err := s.db.UpdatePool(ctx, *pool); err != nil {
		s.log.WithFields(logrus.Fields{
			"pool_id": pool.ID,
			"holder":  holder,
			"shares":  shares,
		}).Errorf("CRITICAL: withdrawal settled but total_liquidity not persisted: %v", err)
		return 0, fmt.Errorf("%w: persist withdrawal: %v", ErrLedgerInconsistent, err)
	}

	s.emit(domain.Event{
		ID:         uuid.New().String(),
		Type:       domain.EventLiquidityWithdrawn,
		RecordID:   pool.ID,
		Actor:      holder,
		Amount:     baseReturned,
		Shares:     shares,
		OccurredAt: time.Now(),
	})

	s.log.WithFields(logrus.Fields{
		"pool_id":         pool.ID,
		"holder":          holder,
		"shares_burned":   shares,
		"base_returned":   baseReturned,
		"total_liquidity": pool.TotalLiquidity,
	}).Info("liquidity withdrawn")

	return baseReturned, nil
}
