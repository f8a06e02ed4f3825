package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/ai"
	db "github.com/fixbid/repairbid/db/sqlc"
)

const (
	TaskDamageAnalysis = "bidding:damage_analysis"
)

// DamageAnalysisPayload 损伤分析任务载荷
type DamageAnalysisPayload struct {
	TaskID    int64    `json:"task_id"` // analysis_tasks 记录ID
	BiddingID int64    `json:"bidding_id"`
	PhotoURLs []string `json:"photo_urls"`
}

// DistributeTaskDamageAnalysis 分发损伤分析任务
func (distributor *RedisTaskDistributor) DistributeTaskDamageAnalysis(
	ctx context.Context,
	payload *DamageAnalysisPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskDamageAnalysis, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("bidding_id", payload.BiddingID).
		Msg("enqueued damage analysis task")

	return nil
}

// ProcessTaskDamageAnalysis 处理损伤分析：
// 规则估级只是下限，AI判级更高时上调竞价单复杂度（只升不降）。
func (processor *RedisTaskProcessor) ProcessTaskDamageAnalysis(ctx context.Context, task *asynq.Task) error {
	var payload DamageAnalysisPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	bidding, err := processor.store.GetBidding(ctx, payload.BiddingID)
	if err != nil {
		return fmt.Errorf("get bidding: %w", err)
	}

	verdict, err := processor.oracle.AnalyzeDamage(ctx, ai.DamageRequest{
		BiddingID:   bidding.ID,
		PhotoURLs:   payload.PhotoURLs,
		Description: bidding.Description,
		Items:       bidding.Items,
	})
	if err != nil {
		// 记一次失败尝试，让 asynq 重试，兜底由巡检任务接管
		if _, markErr := processor.store.UpdateAnalysisTask(ctx, db.UpdateAnalysisTaskParams{
			Status: "pending",
			ID:     payload.TaskID,
		}); markErr != nil {
			log.Error().Err(markErr).Int64("task_id", payload.TaskID).Msg("mark analysis attempt failed")
		}
		return fmt.Errorf("analyze damage: %w", err)
	}

	verdictJSON, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("marshal verdict: %w", err)
	}

	if _, err := processor.store.UpdateAnalysisTask(ctx, db.UpdateAnalysisTaskParams{
		Status:  "done",
		Verdict: verdictJSON,
		ID:      payload.TaskID,
	}); err != nil {
		return fmt.Errorf("update analysis task: %w", err)
	}

	if verdict.Level > bidding.ComplexityLevel {
		if err := processor.store.SetBiddingComplexity(ctx, db.SetBiddingComplexityParams{
			ComplexityLevel: verdict.Level,
			ID:              bidding.ID,
		}); err != nil {
			return fmt.Errorf("escalate bidding complexity: %w", err)
		}
		log.Info().
			Int64("bidding_id", bidding.ID).
			Int16("from_level", bidding.ComplexityLevel).
			Int16("to_level", verdict.Level).
			Float64("confidence", verdict.Confidence).
			Msg("bidding complexity escalated by damage analysis")
	}

	log.Info().
		Int64("bidding_id", bidding.ID).
		Int16("level", verdict.Level).
		Msg("damage analysis completed")

	return nil
}
