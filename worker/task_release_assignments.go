package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
)

const (
	TaskReleaseDueAssignments = "bidding:release_due_assignments"

	// 单次扫描上限，防止一批任务占满队列
	releaseBatchSize = 200
)

// ReleaseDueAssignmentsPayload 梯队放量扫描任务载荷
type ReleaseDueAssignmentsPayload struct{}

// DistributeTaskReleaseDueAssignments 分发梯队放量扫描任务（由定时器周期触发）
func (distributor *RedisTaskDistributor) DistributeTaskReleaseDueAssignments(
	ctx context.Context,
	payload *ReleaseDueAssignmentsPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskReleaseDueAssignments, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Msg("enqueued assignment release sweep")

	return nil
}

// ProcessTaskReleaseDueAssignments 扫描到点未通知的二三梯队分配并补发通知。
// 二梯队在一梯队窗口截止后放开，三梯队还要求在场有效报价不足。
func (processor *RedisTaskProcessor) ProcessTaskReleaseDueAssignments(ctx context.Context, task *asynq.Task) error {
	var payload ReleaseDueAssignmentsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	rules := processor.rules.Current(ctx)

	due, err := processor.store.ListDueUnnotifiedAssignments(ctx, db.ListDueUnnotifiedAssignmentsParams{
		Tier3MinActiveQuote: int32(rules.Distribution.Tier3MinActiveQuotes),
		Limit:               releaseBatchSize,
	})
	if err != nil {
		return fmt.Errorf("list due assignments: %w", err)
	}

	released := 0
	for _, assignment := range due {
		// 并发扫描下另一实例可能已标记
		if _, err := processor.store.MarkAssignmentNotified(ctx, assignment.ID); err != nil {
			log.Warn().Err(err).Int64("assignment_id", assignment.ID).Msg("mark assignment notified failed")
			continue
		}

		if err := processor.distributor.DistributeTaskSendNotification(ctx, &SendNotificationPayload{
			ShopID:      assignment.ShopID,
			NotifType:   "bidding",
			Title:       "新竞价单",
			Body:        "有一单已对您开放报价，请尽快查看",
			RelatedType: "bidding",
			RelatedID:   assignment.BiddingID,
		}); err != nil {
			log.Error().Err(err).Int64("assignment_id", assignment.ID).Msg("distribute release notification failed")
			continue
		}
		released++
	}

	if len(due) > 0 {
		log.Info().
			Int("due", len(due)).
			Int("released", released).
			Msg("assignment release sweep finished")
	}

	return nil
}
