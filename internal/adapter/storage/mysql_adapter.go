package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/roomledger/internal/core/domain"
)

var ErrOptimisticLock = errors.New("optimistic lock conflict")

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) CreateProperty(ctx context.Context, p domain.Property) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO properties
			(id, authority, claim_asset_id, vault_account, unit_count,
			 units_issued, accrued_revenue, fee_rate_bps, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Authority, p.ClaimAssetID, p.VaultAccount, p.UnitCount,
		p.UnitsIssued, p.AccruedRevenue, p.FeeRateBps, p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	err := m.db.QueryRowContext(ctx, `
		SELECT id, authority, claim_asset_id, vault_account, unit_count,
		       units_issued, accrued_revenue, fee_rate_bps, version, created_at, updated_at
		FROM properties WHERE id = ?`, id,
	).Scan(&p.ID, &p.Authority, &p.ClaimAssetID, &p.VaultAccount, &p.UnitCount,
		&p.UnitsIssued, &p.AccruedRevenue, &p.FeeRateBps, &p.Version, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query property: %w", err)
	}
	return &p, nil
}

func (m *MySQLAdapter) UpdateProperty(ctx context.Context, p domain.Property) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE properties
		SET units_issued = ?, accrued_revenue = ?, version = version + 1, updated_at = NOW()
		WHERE id = ? AND version = ?`,
		p.UnitsIssued, p.AccruedRevenue, p.ID, p.Version,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrOptimisticLock
	}
	return nil
}

func (m *MySQLAdapter) CreatePool(ctx context.Context, pool domain.Pool) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO pools
			(id, authority, base_asset_id, share_asset_id, vault_account,
			 total_liquidity, fee_rate_bps, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pool.ID, pool.Authority, pool.BaseAssetID, pool.ShareAssetID, pool.VaultAccount,
		pool.TotalLiquidity, pool.FeeRateBps, pool.Version, pool.CreatedAt, pool.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pool: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetPool(ctx context.Context, id string) (*domain.Pool, error) {
	var pool domain.Pool
	err := m.db.QueryRowContext(ctx, `
		SELECT id, authority, base_asset_id, share_asset_id, vault_account,
		       total_liquidity, fee_rate_bps, version, created_at, updated_at
		FROM pools WHERE id = ?`, id,
	).Scan(&pool.ID, &pool.Authority, &pool.BaseAssetID, &pool.ShareAssetID, &pool.VaultAccount,
		&pool.TotalLiquidity, &pool.FeeRateBps, &pool.Version, &pool.CreatedAt, &pool.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query pool: %w", err)
	}
	return &pool, nil
}

func (m *MySQLAdapter) UpdatePool(ctx context.Context, pool domain.Pool) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE pools
		SET total_liquidity = ?, version = version + 1, updated_at = NOW()
		WHERE id = ? AND version = ?`,
		pool.TotalLiquidity, pool.ID, pool.Version,
	)
	if err != nil {
		return fmt.Errorf("update pool: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrOptimisticLock
	}
	return nil
}

func (m *MySQLAdapter) AppendEvent(ctx context.Context, e domain.Event) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO ledger_events
			(id, event_type, record_id, unit_index, actor, amount, shares, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Type), e.RecordID, e.UnitIndex, e.Actor, e.Amount, e.Shares, e.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
