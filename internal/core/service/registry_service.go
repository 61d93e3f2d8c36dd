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

const (
	claimAssetDecimals = 0
	maxFeeRateBps      = 10000
)

// RegistryService owns Property records: unit issuance, booking revenue and
// pro-rata distribution to claim-token holders.
type RegistryService struct {
	db              port.DatabaseRepository
	ledger          port.AssetLedger
	auth            port.AuthorityVerifier
	locks           port.RecordLocker
	settlementAsset string
	log             *logrus.Logger
	events          chan domain.Event
}

func NewRegistryService(db port.DatabaseRepository, ledger port.AssetLedger, auth port.AuthorityVerifier, locks port.RecordLocker, settlementAsset string, log *logrus.Logger, queueSize int) *RegistryService {
	return &RegistryService{
		db:              db,
		ledger:          ledger,
		auth:            auth,
		locks:           locks,
		settlementAsset: settlementAsset,
		log:             log,
		events:          make(chan domain.Event, queueSize),
	}
}

func (s *RegistryService) Events() <-chan domain.Event {
	return s.events
}

func (s *RegistryService) Close() {
	close(s.events)
}

func (s *RegistryService) emit(e domain.Event) {
	select {
	case s.events <- e:
	default:
		s.log.WithFields(logrus.Fields{
			"event_type": e.Type,
			"record_id":  e.RecordID,
		}).Warn("event queue full, notification dropped")
	}
}

// RegisterProperty creates the accounting record and its zero-decimal claim
// asset. The fee rate is handed to the ledger opaquely.
func (s *RegistryService) RegisterProperty(ctx context.Context, authority string, unitCount uint64, feeRateBps uint32) (*domain.Property, error) {
	if unitCount == 0 {
		return nil, fmt.Errorf("%w: unit count must be positive", ErrInvalidConfiguration)
	}
	if feeRateBps > maxFeeRateBps {
		return nil, fmt.Errorf("%w: fee rate above %d bps", ErrInvalidConfiguration, maxFeeRateBps)
	}

	// The vault account id doubles as the record's signing capability: only
	// this service knows it, and the ledger accepts it as mint and debit
	// authority for the record's assets.
	vault := uuid.New().String()

	claimAsset, err := s.ledger.CreateAsset(ctx, claimAssetDecimals, vault, port.FeeConfig{RateBps: feeRateBps})
	if err != nil {
		return nil, fmt.Errorf("create claim asset: %w", err)
	}

	now := time.Now()
	prop := domain.Property{
		ID:           uuid.New().String(),
		Authority:    authority,
		ClaimAssetID: claimAsset,
		VaultAccount: vault,
		UnitCount:    unitCount,
		FeeRateBps:   feeRateBps,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.CreateProperty(ctx, prop); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"property_id":  prop.ID,
		"claim_asset":  claimAsset,
		"unit_count":   unitCount,
		"fee_rate_bps": feeRateBps,
	}).Info("property registered")

	return &prop, nil
}

// IssueUnit mints exactly one claim token to the recipient. Unit numbering
// treats the upper bound as inclusive: index == UnitCount is valid.
func (s *RegistryService) IssueUnit(ctx context.Context, propertyID string, unitIndex uint64, recipient string) error {
	release, err := s.locks.Acquire(ctx, "property:"+propertyID)
	if err != nil {
		return fmt.Errorf("acquire property lock: %w", err)
	}
	defer release()

	prop, err := s.db.GetProperty(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("load property: %w", err)
	}
	if prop == nil {
		return ErrPropertyNotFound
	}

	if unitIndex > prop.UnitCount {
		return ErrInvalidUnitIndex
	}
	if prop.UnitsIssued >= prop.UnitCount {
		return ErrAllUnitsIssued
	}

	if err := s.ledger.Mint(ctx, prop.ClaimAssetID, recipient, 1, port.Proof(prop.VaultAccount)); err != nil {
		return fmt.Errorf("mint claim token: %w", err)
	}

	prop.UnitsIssued++
	if err := s.db.UpdateProperty(ctx, *prop); err != nil {
		s.log.WithFields(logrus.Fields{
			"property_id": prop.ID,
			"recipient":   recipient,
		}).Errorf("CRITICAL: claim token minted but units_issued not persisted: %v", err)
		return fmt.Errorf("%w: update property after mint: %v", ErrLedgerInconsistent, err)
	}

	s.log.WithFields(logrus.Fields{
		"property_id":  prop.ID,
		"unit_index":   unitIndex,
		"recipient":    recipient,
		"units_issued": prop.UnitsIssued,
	}).Info("unit issued")

	return nil
}

// RecordBooking collects a booking payment into the property vault and
// accrues it as undistributed revenue. The transfer is confirmed before the
// accrual, so a ledger failure leaves AccruedRevenue untouched. Calling twice
// with the same arguments accrues twice.
func (s *RegistryService) RecordBooking(ctx context.Context, propertyID string, unitIndex uint64, payer, credential string, amount uint64) error {
	proof, err := s.auth.Verify(ctx, payer, credential)
	if err != nil {
		return fmt.Errorf("verify payer: %w", err)
	}

	release, err := s.locks.Acquire(ctx, "property:"+propertyID)
	if err != nil {
		return fmt.Errorf("acquire property lock: %w", err)
	}
	defer release()

	prop, err := s.db.GetProperty(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("load property: %w", err)
	}
	if prop == nil {
		return ErrPropertyNotFound
	}

	if unitIndex > prop.UnitCount {
		return ErrInvalidUnitIndex
	}

	if err := s.ledger.Transfer(ctx, s.settlementAsset, payer, prop.VaultAccount, amount, proof); err != nil {
		return fmt.Errorf("collect booking payment: %w", err)
	}

	prop.AccruedRevenue += amount
	if err := s.db.UpdateProperty(ctx, *prop); err != nil {
		// Refund the collected payment so vault and record stay consistent.
		if rbErr := s.ledger.Transfer(ctx, s.settlementAsset, prop.VaultAccount, payer, amount, port.Proof(prop.VaultAccount)); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"property_id": prop.ID,
				"payer":       payer,
				"amount":      amount,
			}).Errorf("CRITICAL: refund failed after persist error: %v", rbErr)
			return fmt.Errorf("%w: persist booking: %v", ErrLedgerInconsistent, err)
		}
		return fmt.Errorf("persist booking: %w", err)
	}

	s.emit(domain.Event{
		ID:         uuid.New().String(),
		Type:       domain.EventBooking,
		RecordID:   prop.ID,
		UnitIndex:  unitIndex,
		Actor:      payer,
		Amount:     amount,
		OccurredAt: time.Now(),
	})

	s.log.WithFields(logrus.Fields{
		"property_id":     prop.ID,
		"unit_index":      unitIndex,
		"amount":          amount,
		"accrued_revenue": prop.AccruedRevenue,
	}).Info("booking recorded")

	return nil
}

// DistributeRevenue pays the claimant their pro-rata share of accrued
// revenue, signed by the property's vault capability. Supply and balance are
// read fresh from the ledger on every call. Integer floor division means the
// remainder accrued_revenue mod supply stays accrued for a later round; the
// sum of payouts in one round can be below the accrued total, never above.
func (s *RegistryService) DistributeRevenue(ctx context.Context, propertyID, claimant string) (uint64, error) {
	release, err := s.locks.Acquire(ctx, "property:"+propertyID)
	if err != nil {
		return 0, fmt.Errorf("acquire property lock: %w", err)
	}
	defer release()

	prop, err := s.db.GetProperty(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("load property: %w", err)
	}
	if prop == nil {
		return 0, ErrPropertyNotFound
	}

	if prop.AccruedRevenue == 0 {
		return 0, ErrNoProfitToDistribute
	}

	supply, err := s.ledger.TotalSupply(ctx, prop.ClaimAssetID)
	if err != nil {
		return 0, fmt.Errorf("read claim supply: %w", err)
	}
	if supply == 0 {
		return 0, ErrNoClaimTokensOutstanding
	}

	balance, err := s.ledger.BalanceOf(ctx, prop.ClaimAssetID, claimant)
	if err != nil {
		return 0, fmt.Errorf("read claimant balance: %w", err)
	}

	perToken := prop.AccruedRevenue / supply
	payout := perToken * balance

	if err := s.ledger.Transfer(ctx, s.settlementAsset, prop.VaultAccount, claimant, payout, port.Proof(prop.VaultAccount)); err != nil {
		return 0, fmt.Errorf("pay out revenue: %w", err)
	}

	prop.AccruedRevenue -= payout
	if err := s.db.UpdateProperty(ctx, *prop); err != nil {
		s.log.WithFields(logrus.Fields{
			"property_id": prop.ID,
			"claimant":    claimant,
			"payout":      payout,
		}).Errorf("CRITICAL: payout transferred but accrued revenue not persisted: %v", err)
		return 0, fmt.Errorf("%w: persist distribution: %v", ErrLedgerInconsistent, err)
	}

	s.emit(domain.Event{
		ID:         uuid.New().String(),
		Type:       domain.EventDistribution,
		RecordID:   prop.ID,
		Actor:      claimant,
		Amount:     payout,
		OccurredAt: time.Now(),
	})

	s.log.WithFields(logrus.Fields{
		"property_id":     prop.ID,
		"claimant":        claimant,
		"payout":          payout,
		"accrued_revenue": prop.AccruedRevenue,
	}).Info("revenue distributed")

	return payout, nil
}
