package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const balanceTTL = 5 * time.Minute

// BalanceCache keeps a short-lived copy of wallet balances in Redis. It is
// read-through only: mutation paths always hit Postgres and refresh the cache
// after commit, so a stale or missing entry costs one extra query, never a
// wrong balance decision.
type BalanceCache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *BalanceCache {
	return &BalanceCache{rdb: rdb}
}

func (c *BalanceCache) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) {
	if err := c.rdb.Set(ctx, balanceKey(userID), balance.String(), balanceTTL).Err(); err != nil {
		zap.L().Warn("balance cache set failed", zap.Int64("userID", userID), zap.Error(err))
	}
}

func (c *BalanceCache) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, bool) {
	str, err := c.rdb.Get(ctx, balanceKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("balance cache get failed", zap.Int64("userID", userID), zap.Error(err))
		}
		return decimal.Zero, false
	}
	balance, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return balance, true
}

func balanceKey(userID int64) string {
	return fmt.Sprintf("balance:%d", userID)
}

// Noop satisfies the cache contract when no Redis address is configured.
type Noop struct{}

func (Noop) SetBalance(context.Context, int64, decimal.Decimal) {}

func (Noop) GetBalance(context.Context, int64) (decimal.Decimal, bool) {
	return decimal.Zero, false
}
