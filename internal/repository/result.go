package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ghost91-/nimgame/internal/entity"
)

const resultsKey = "nim:results"

type ResultRepository interface {
	Record(ctx context.Context, result *entity.Result) error
	Recent(ctx context.Context, limit int) ([]*entity.Result, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Record - prepends the result to the scoreboard list, newest first.
func (that *dbResult) Record(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	if err = that.client.LPush(ctx, resultsKey, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to push result: %w", err)
	}

	return nil
}

// Recent - returns up to limit results, newest first.
func (that *dbResult) Recent(ctx context.Context, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		return nil, nil
	}

	raw, err := that.client.LRange(ctx, resultsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.Result, 0, len(raw))
	for _, item := range raw {
		var result entity.Result
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}
