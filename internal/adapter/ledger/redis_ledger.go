package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/roomledger/internal/port"
)

const (
	assetKeyPrefix   = "asset:"
	balanceKeyPrefix = "balance:"
)

// Lua represents numbers as IEEE doubles, so amounts above 2^53 would lose
// precision inside the scripts' balance comparisons. Rejected up front.
const maxAmount = uint64(1) << 53

var ErrAmountTooLarge = errors.New("amount exceeds ledger precision")

// Result codes shared by the scripts below.
const (
	scriptOK           = 1
	scriptNoAsset      = -1
	scriptInsufficient = -3
)

var mintScript = redis.NewScript(`
local asset = KEYS[1]
local balance = KEYS[2]
local amount = tonumber(ARGV[1])

if redis.call('EXISTS', asset) == 0 then
	return -1
end

redis.call('INCRBY', balance, amount)
redis.call('HINCRBY', asset, 'supply', amount)
return 1
`)

var transferScript = redis.NewScript(`
local asset = KEYS[1]
local from = KEYS[2]
local to = KEYS[3]
local amount = tonumber(ARGV[1])

if redis.call('EXISTS', asset) == 0 then
	return -1
end

local current = tonumber(redis.call('GET', from) or '0')
if current < amount then
	return -3
end

redis.call('DECRBY', from, amount)
redis.call('INCRBY', to, amount)
return 1
`)

var burnScript = redis.NewScript(`
local asset = KEYS[1]
local from = KEYS[2]
local amount = tonumber(ARGV[1])

if redis.call('EXISTS', asset) == 0 then
	return -1
end

local current = tonumber(redis.call('GET', from) or '0')
if current < amount then
	return -3
end

redis.call('DECRBY', from, amount)
redis.call('HINCRBY', asset, 'supply', -amount)
return 1
`)

// RedisLedger is an asset ledger backed by Redis. Assets are hashes holding
// decimals, mint authority, fee config and a running supply; balances are
// integer keys per (asset, account). Each mutation runs as a single Lua
// script, so it either applies fully or not at all.
//
// Authority model: the proof for minting must match the asset's registered
// mint authority; the proof for debiting an account must match the account
// id itself (knowledge of a vault's id is the capability to move its funds).
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func balanceKey(assetID, account string) string {
	return balanceKeyPrefix + assetID + ":" + account
}

func (l *RedisLedger) CreateAsset(ctx context.Context, decimals uint8, mintAuthority string, fee port.FeeConfig) (string, error) {
	id := uuid.New().String()
	err := l.client.HSet(ctx, assetKeyPrefix+id,
		"decimals", decimals,
		"mint_authority", mintAuthority,
		"fee_bps", fee.RateBps,
		"supply", 0,
	).Err()
	if err != nil {
		return "", fmt.Errorf("create asset: %w", err)
	}
	return id, nil
}

func (l *RedisLedger) Mint(ctx context.Context, assetID, to string, amount uint64, proof port.Proof) error {
	if amount > maxAmount {
		return ErrAmountTooLarge
	}

	authority, err := l.client.HGet(ctx, assetKeyPrefix+assetID, "mint_authority").Result()
	if errors.Is(err, redis.Nil) {
		return port.ErrAssetNotFound
	}
	if err != nil {
		return err
	}
	if string(proof) != authority {
		return port.ErrUnauthorized
	}

	result, err := mintScript.Run(ctx, l.client,
		[]string{assetKeyPrefix + assetID, balanceKey(assetID, to)},
		amount,
	).Int()
	if err != nil {
		return err
	}
	return resultErr(result)
}

func (l *RedisLedger) Transfer(ctx context.Context, assetID, from, to string, amount uint64, proof port.Proof) error {
	if amount > maxAmount {
		return ErrAmountTooLarge
	}
	if string(proof) != from {
		return port.ErrUnauthorized
	}

	result, err := transferScript.Run(ctx, l.client,
		[]string{assetKeyPrefix + assetID, balanceKey(assetID, from), balanceKey(assetID, to)},
		amount,
	).Int()
	if err != nil {
		return err
	}
	return resultErr(result)
}

func (l *RedisLedger) Burn(ctx context.Context, assetID, from string, amount uint64, proof port.Proof) error {
	if amount > maxAmount {
		return ErrAmountTooLarge
	}
	if string(proof) != from {
		return port.ErrUnauthorized
	}

	result, err := burnScript.Run(ctx, l.client,
		[]string{assetKeyPrefix + assetID, balanceKey(assetID, from)},
		amount,
	).Int()
	if err != nil {
		return err
	}
	return resultErr(result)
}

func (l *RedisLedger) BalanceOf(ctx context.Context, assetID, account string) (uint64, error) {
	balance, err := l.client.Get(ctx, balanceKey(assetID, account)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (l *RedisLedger) TotalSupply(ctx context.Context, assetID string) (uint64, error) {
	supply, err := l.client.HGet(ctx, assetKeyPrefix+assetID, "supply").Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, port.ErrAssetNotFound
	}
	if err != nil {
		return 0, err
	}
	return supply, nil
}

func resultErr(code int) error {
	switch code {
	case scriptOK:
		return nil
	case scriptNoAsset:
		return port.ErrAssetNotFound
	case scriptInsufficient:
		return port.ErrInsufficientFunds
	}
	return fmt.Errorf("unexpected ledger script result %d", code)
}
