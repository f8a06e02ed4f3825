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
	TaskAnalyzeAppeal = "appeal:analyze"
)

// AnalyzeAppealPayload 申诉判定任务载荷
type AnalyzeAppealPayload struct {
	AppealID int64 `json:"appeal_id"`
}

// DistributeTaskAnalyzeAppeal 分发申诉判定任务
func (distributor *RedisTaskDistributor) DistributeTaskAnalyzeAppeal(
	ctx context.Context,
	payload *AnalyzeAppealPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskAnalyzeAppeal, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("appeal_id", payload.AppealID).
		Msg("enqueued appeal analysis task")

	return nil
}

// ProcessTaskAnalyzeAppeal 处理商家「问题已解决」申诉：
// AI裁决后落库，胜诉评价被排除出聚合并触发口碑分重算。
func (processor *RedisTaskProcessor) ProcessTaskAnalyzeAppeal(ctx context.Context, task *asynq.Task) error {
	var payload AnalyzeAppealPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	appeal, err := processor.store.GetAppeal(ctx, payload.AppealID)
	if err != nil {
		return fmt.Errorf("get appeal: %w", err)
	}

	if appeal.Status != "pending" {
		log.Info().
			Int64("appeal_id", appeal.ID).
			Str("status", appeal.Status).
			Msg("appeal already resolved, skip")
		return nil
	}

	review, err := processor.store.GetReview(ctx, appeal.ReviewID)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}

	verdict, err := processor.oracle.JudgeAppeal(ctx, ai.AppealRequest{
		AppealID:      appeal.ID,
		ReviewContent: review.Content,
		AppealReason:  appeal.Reason,
	})
	if err != nil {
		return fmt.Errorf("judge appeal: %w", err)
	}

	result, err := processor.store.ResolveAppealTx(ctx, db.ResolveAppealTxParams{
		AppealID: appeal.ID,
		Upheld:   verdict.Upheld,
	})
	if err != nil {
		return fmt.Errorf("resolve appeal: %w", err)
	}

	// 关闭对应的分析任务记录，避免兜底扫描重复入队
	if err := processor.store.CompleteAnalysisTaskByRelated(ctx, db.CompleteAnalysisTaskByRelatedParams{
		TaskType:  "appeal_analysis",
		RelatedID: appeal.ID,
	}); err != nil {
		log.Error().Err(err).Int64("appeal_id", appeal.ID).Msg("close analysis task failed")
	}

	log.Info().
		Int64("appeal_id", appeal.ID).
		Str("status", result.Appeal.Status).
		Float64("confidence", verdict.Confidence).
		Msg("appeal resolved")

	// 胜诉：评价已排除，需要重算口碑分
	if verdict.Upheld {
		if err := processor.distributor.DistributeTaskRecomputeShopScore(ctx, &RecomputeShopScorePayload{
			ShopID: appeal.ShopID,
		}); err != nil {
			log.Error().Err(err).Int64("shop_id", appeal.ShopID).Msg("distribute score recompute failed")
		}
	}

	// 通知申诉商家裁决结果
	title := "申诉结果通知"
	body := fmt.Sprintf("您对评价的申诉未通过：%s", verdict.Summary)
	if verdict.Upheld {
		body = "您对评价的申诉已通过，该评价不再计入店铺口碑分。"
	}
	if err := processor.distributor.DistributeTaskSendNotification(ctx, &SendNotificationPayload{
		ShopID:      appeal.ShopID,
		NotifType:   "appeal",
		Title:       title,
		Body:        body,
		RelatedType: "appeal",
		RelatedID:   appeal.ID,
	}); err != nil {
		log.Error().Err(err).Int64("appeal_id", appeal.ID).Msg("distribute appeal notification failed")
	}

	return nil
}
