package ledger

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/roomledger/internal/port"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func newTestAsset(t *testing.T, l *RedisLedger, authority string) string {
	t.Helper()
	ctx := context.Background()

	id, err := l.CreateAsset(ctx, 6, authority, port.FeeConfig{RateBps: 0})
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}
	t.Cleanup(func() {
		l.client.Del(ctx, assetKeyPrefix+id)
	})
	return id
}

func TestCreateAsset_InitialState(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")

	supply, err := ledger.TotalSupply(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if supply != 0 {
		t.Errorf("expected supply 0, got %d", supply)
	}

	decimals, _ := client.HGet(ctx, assetKeyPrefix+id, "decimals").Int()
	if decimals != 6 {
		t.Errorf("expected decimals 6, got %d", decimals)
	}
}

func TestTotalSupply_UnknownAsset(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ledger := NewRedisLedger(client)

	_, err := ledger.TotalSupply(context.Background(), "no-such-asset")
	if !errors.Is(err, port.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestMint_Success(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"))

	if err := ledger.Mint(ctx, id, "alice", 100, "authority-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, err := ledger.BalanceOf(ctx, id, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 100 {
		t.Errorf("expected balance 100, got %d", balance)
	}

	supply, _ := ledger.TotalSupply(ctx, id)
	if supply != 100 {
		t.Errorf("expected supply 100, got %d", supply)
	}
}

func TestMint_WrongAuthority(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")

	err := ledger.Mint(ctx, id, "alice", 100, "someone-else")
	if !errors.Is(err, port.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	supply, _ := ledger.TotalSupply(ctx, id)
	if supply != 0 {
		t.Errorf("expected supply unchanged at 0, got %d", supply)
	}
}

func TestMint_UnknownAsset(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ledger := NewRedisLedger(client)

	err := ledger.Mint(context.Background(), "no-such-asset", "alice", 100, "authority-1")
	if !errors.Is(err, port.ErrAssetNotFound) {
		t.Errorf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestTransfer_Success(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"), balanceKey(id, "bob"))
	if err := ledger.Mint(ctx, id, "alice", 100, "authority-1"); err != nil {
		t.Fatalf("mint: %v", err)
	}

	if err := ledger.Transfer(ctx, id, "alice", "bob", 30, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aliceBalance, _ := ledger.BalanceOf(ctx, id, "alice")
	bobBalance, _ := ledger.BalanceOf(ctx, id, "bob")
	if aliceBalance != 70 {
		t.Errorf("expected alice balance 70, got %d", aliceBalance)
	}
	if bobBalance != 30 {
		t.Errorf("expected bob balance 30, got %d", bobBalance)
	}

	// Transfers do not change the supply.
	supply, _ := ledger.TotalSupply(ctx, id)
	if supply != 100 {
		t.Errorf("expected supply 100, got %d", supply)
	}
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"), balanceKey(id, "bob"))
	if err := ledger.Mint(ctx, id, "alice", 10, "authority-1"); err != nil {
		t.Fatalf("mint: %v", err)
	}

	err := ledger.Transfer(ctx, id, "alice", "bob", 11, "alice")
	if !errors.Is(err, port.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}

	aliceBalance, _ := ledger.BalanceOf(ctx, id, "alice")
	if aliceBalance != 10 {
		t.Errorf("expected alice balance unchanged at 10, got %d", aliceBalance)
	}
}

func TestTransfer_WrongProof(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"), balanceKey(id, "bob"))
	if err := ledger.Mint(ctx, id, "alice", 10, "authority-1"); err != nil {
		t.Fatalf("mint: %v", err)
	}

	err := ledger.Transfer(ctx, id, "alice", "bob", 5, "bob")
	if !errors.Is(err, port.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTransfer_ZeroAmount(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"), balanceKey(id, "bob"))

	// A zero transfer between empty accounts is a no-op, not a failure.
	if err := ledger.Transfer(ctx, id, "alice", "bob", 0, "alice"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBurn_ReducesSupply(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"))
	if err := ledger.Mint(ctx, id, "alice", 100, "authority-1"); err != nil {
		t.Fatalf("mint: %v", err)
	}

	if err := ledger.Burn(ctx, id, "alice", 40, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, _ := ledger.BalanceOf(ctx, id, "alice")
	if balance != 60 {
		t.Errorf("expected balance 60, got %d", balance)
	}
	supply, _ := ledger.TotalSupply(ctx, id)
	if supply != 60 {
		t.Errorf("expected supply 60, got %d", supply)
	}
}

func TestBurn_InsufficientFunds(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"))
	if err := ledger.Mint(ctx, id, "alice", 5, "authority-1"); err != nil {
		t.Fatalf("mint: %v", err)
	}

	err := ledger.Burn(ctx, id, "alice", 6, "alice")
	if !errors.Is(err, port.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	supply, _ := ledger.TotalSupply(ctx, id)
	if supply != 5 {
		t.Errorf("expected supply unchanged at 5, got %d", supply)
	}
}

func TestTransfer_Concurrent(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	initialBalance := 20
	totalRequests := 50

	id := newTestAsset(t, ledger, "authority-1")
	client.Del(ctx, balanceKey(id, "alice"), balanceKey(id, "bob"))
	if err := ledger.Mint(ctx, id, "alice", uint64(initialBalance), "authority-1"); err != nil {
		t.Fatalf("mint: %v", err)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ledger.Transfer(ctx, id, "alice", "bob", 1, "alice")
			if err == nil {
				successCount.Add(1)
				return
			}
			if !errors.Is(err, port.ErrInsufficientFunds) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	// Exactly the funded amount moves, never more.
	if successCount.Load() != int32(initialBalance) {
		t.Errorf("expected %d successes, got %d", initialBalance, successCount.Load())
	}

	aliceBalance, _ := ledger.BalanceOf(ctx, id, "alice")
	bobBalance, _ := ledger.BalanceOf(ctx, id, "bob")
	if aliceBalance != 0 {
		t.Errorf("expected alice balance 0, got %d", aliceBalance)
	}
	if bobBalance != uint64(initialBalance) {
		t.Errorf("expected bob balance %d, got %d", initialBalance, bobBalance)
	}
}

func TestAmountAboveLuaPrecision(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	ledger := NewRedisLedger(client)

	id := newTestAsset(t, ledger, "authority-1")
	tooBig := maxAmount + 1

	if err := ledger.Mint(ctx, id, "alice", tooBig, "authority-1"); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("mint: expected ErrAmountTooLarge, got %v", err)
	}
	if err := ledger.Transfer(ctx, id, "alice", "bob", tooBig, "alice"); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("transfer: expected ErrAmountTooLarge, got %v", err)
	}
	if err := ledger.Burn(ctx, id, "alice", tooBig, "alice"); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("burn: expected ErrAmountTooLarge, got %v", err)
	}

	supply, _ := ledger.TotalSupply(ctx, id)
	if supply != 0 {
		t.Errorf("expected supply unchanged at 0, got %d", supply)
	}
}
