package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/grupo95/job-ledger-service/internal/domain/entities"
	"github.com/grupo95/job-ledger-service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	// ledger_summary:{job_id} -> JSON-encoded entities.LedgerSummary
	keyLedgerSummary = "ledger_summary:%s"
)

// TTLLedgerSummary bounds staleness for reads that race no write; writes
// invalidate explicitly so the TTL is a backstop, not the mechanism.
var TTLLedgerSummary = 2 * time.Minute

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// LedgerCache stores per-job ledger summaries in Redis.
type LedgerCache struct {
	rdb *redis.Client
}

var _ interfaces.ILedgerCache = (*LedgerCache)(nil)

func NewLedgerCache(rdb *redis.Client) *LedgerCache {
	return &LedgerCache{rdb: rdb}
}

func (c *LedgerCache) GetSummary(ctx context.Context, jobID string) (entities.LedgerSummary, bool, error) {
	key := fmt.Sprintf(keyLedgerSummary, jobID)
	raw, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return entities.LedgerSummary{}, false, nil
	}
	if err != nil {
		return entities.LedgerSummary{}, false, err
	}

	var s entities.LedgerSummary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// Corrupt entry: drop it and fall through to the database.
		_ = c.rdb.Del(ctx, key).Err()
		return entities.LedgerSummary{}, false, nil
	}
	return s, true, nil
}

func (c *LedgerCache) SetSummary(ctx context.Context, jobID string, s entities.LedgerSummary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(keyLedgerSummary, jobID), b, TTLLedgerSummary).Err()
}

func (c *LedgerCache) Invalidate(ctx context.Context, jobID string) error {
	return c.rdb.Del(ctx, fmt.Sprintf(keyLedgerSummary, jobID)).Err()
}
