package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskRecomputeShopScore = "shop:recompute_score"
)

// RecomputeShopScorePayload 口碑分重算任务载荷
type RecomputeShopScorePayload struct {
	ShopID int64 `json:"shop_id"`
}

// DistributeTaskRecomputeShopScore 分发口碑分重算任务
func (distributor *RedisTaskDistributor) DistributeTaskRecomputeShopScore(
	ctx context.Context,
	payload *RecomputeShopScorePayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskRecomputeShopScore, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("shop_id", payload.ShopID).
		Msg("enqueued score recompute task")

	return nil
}

// ProcessTaskRecomputeShopScore 重算一家店铺的口碑分
func (processor *RedisTaskProcessor) ProcessTaskRecomputeShopScore(ctx context.Context, task *asynq.Task) error {
	var payload RecomputeShopScorePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	score, err := processor.recomputer.Recompute(ctx, payload.ShopID)
	if err != nil {
		return fmt.Errorf("recompute shop score: %w", err)
	}

	log.Info().
		Int64("shop_id", payload.ShopID).
		Float64("score", score).
		Msg("shop score recomputed")

	return nil
}
