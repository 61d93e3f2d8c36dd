package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/roomledger/internal/core/domain"
	"github.com/rl1809/roomledger/internal/port"
)

// Fake asset ledger enforcing the same authority rules as the Redis adapter:
// mint proof must match the asset's mint authority, debit proof must match
// the debited account id.
type fakeAsset struct {
	decimals      uint8
	mintAuthority string
	feeBps        uint32
	supply        uint64
}

type fakeLedger struct {
	mu       sync.Mutex
	assets   map[string]*fakeAsset
	balances map[string]uint64
	nextID   int

	mintErr     error
	transferErr error
	burnErr     error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		assets:   make(map[string]*fakeAsset),
		balances: make(map[string]uint64),
	}
}

func (l *fakeLedger) key(assetID, account string) string {
	return assetID + ":" + account
}

func (l *fakeLedger) CreateAsset(ctx context.Context, decimals uint8, mintAuthority string, fee port.FeeConfig) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := fmt.Sprintf("asset-%d", l.nextID)
	l.assets[id] = &fakeAsset{decimals: decimals, mintAuthority: mintAuthority, feeBps: fee.RateBps}
	return id, nil
}

func (l *fakeLedger) Mint(ctx context.Context, assetID, to string, amount uint64, proof port.Proof) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mintErr != nil {
		return l.mintErr
	}
	asset, ok := l.assets[assetID]
	if !ok {
		return port.ErrAssetNotFound
	}
	if string(proof) != asset.mintAuthority {
		return port.ErrUnauthorized
	}
	l.balances[l.key(assetID, to)] += amount
	asset.supply += amount
	return nil
}

func (l *fakeLedger) Transfer(ctx context.Context, assetID, from, to string, amount uint64, proof port.Proof) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.transferErr != nil {
		return l.transferErr
	}
	if _, ok := l.assets[assetID]; !ok {
		return port.ErrAssetNotFound
	}
	if string(proof) != from {
		return port.ErrUnauthorized
	}
	if l.balances[l.key(assetID, from)] < amount {
		return port.ErrInsufficientFunds
	}
	l.balances[l.key(assetID, from)] -= amount
	l.balances[l.key(assetID, to)] += amount
	return nil
}

func (l *fakeLedger) Burn(ctx context.Context, assetID, from string, amount uint64, proof port.Proof) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.burnErr != nil {
		return l.burnErr
	}
	asset, ok := l.assets[assetID]
	if !ok {
		return port.ErrAssetNotFound
	}
	if string(proof) != from {
		return port.ErrUnauthorized
	}
	if l.balances[l.key(assetID, from)] < amount {
		return port.ErrInsufficientFunds
	}
	l.balances[l.key(assetID, from)] -= amount
	asset.supply -= amount
	return nil
}

func (l *fakeLedger) BalanceOf(ctx context.Context, assetID, account string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[l.key(assetID, account)], nil
}

func (l *fakeLedger) TotalSupply(ctx context.Context, assetID string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	asset, ok := l.assets[assetID]
	if !ok {
		return 0, port.ErrAssetNotFound
	}
	return asset.supply, nil
}

// setBalance seeds an account directly, bypassing authority checks.
func (l *fakeLedger) setBalance(assetID, account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[l.key(assetID, account)] = amount
}

func (l *fakeLedger) balance(assetID, account string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[l.key(assetID, account)]
}

type fakeRepo struct {
	mu         sync.Mutex
	properties map[string]domain.Property
	pools      map[string]domain.Pool
	events     []domain.Event

	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		properties: make(map[string]domain.Property),
		pools:      make(map[string]domain.Pool),
	}
}

func (r *fakeRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties[p.ID] = p
	return nil
}

func (r *fakeRepo) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeRepo) UpdateProperty(ctx context.Context, p domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	p.Version++
	r.properties[p.ID] = p
	return nil
}

func (r *fakeRepo) CreatePool(ctx context.Context, pool domain.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools[pool.ID] = pool
	return nil
}

func (r *fakeRepo) GetPool(ctx context.Context, id string) (*domain.Pool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pool, ok := r.pools[id]
	if !ok {
		return nil, nil
	}
	return &pool, nil
}

func (r *fakeRepo) UpdatePool(ctx context.Context, pool domain.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	pool.Version++
	r.pools[pool.ID] = pool
	return nil
}

func (r *fakeRepo) AppendEvent(ctx context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(ctx context.Context, principal, credential string) (port.Proof, error) {
	if credential != principal {
		return "", errors.New("invalid credential")
	}
	return port.Proof(principal), nil
}

type fakeLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *fakeLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
