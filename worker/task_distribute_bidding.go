package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskDistributeBidding = "bidding:distribute"
)

// DistributeBiddingPayload 竞价单匹配分发任务载荷
type DistributeBiddingPayload struct {
	BiddingID int64 `json:"bidding_id"`
}

// DistributeTaskDistributeBidding 分发竞价单匹配任务
func (distributor *RedisTaskDistributor) DistributeTaskDistributeBidding(
	ctx context.Context,
	payload *DistributeBiddingPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskDistributeBidding, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("bidding_id", payload.BiddingID).
		Msg("enqueued bidding distribution task")

	return nil
}

// ProcessTaskDistributeBidding 处理竞价单匹配分发
func (processor *RedisTaskProcessor) ProcessTaskDistributeBidding(ctx context.Context, task *asynq.Task) error {
	var payload DistributeBiddingPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	bidding, err := processor.store.GetBidding(ctx, payload.BiddingID)
	if err != nil {
		return fmt.Errorf("get bidding: %w", err)
	}

	// 车主可能在分发前撤单
	if bidding.Status != "open" {
		log.Info().
			Int64("bidding_id", bidding.ID).
			Str("status", bidding.Status).
			Msg("bidding no longer open, skip distribution")
		return nil
	}

	result, err := processor.matcher.Distribute(ctx, bidding)
	if err != nil {
		return fmt.Errorf("distribute bidding: %w", err)
	}

	log.Info().
		Int64("bidding_id", bidding.ID).
		Int32("radius_meters", result.RadiusMeters).
		Int("assignments", len(result.Assignments)).
		Int("notified_tier1", result.NotifiedTier1).
		Msg("bidding distributed")

	return nil
}
