package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskDistributeBidding 分发竞价单匹配任务
	DistributeTaskDistributeBidding(
		ctx context.Context,
		payload *DistributeBiddingPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskDamageAnalysis 分发事故照片损伤分析任务
	DistributeTaskDamageAnalysis(
		ctx context.Context,
		payload *DamageAnalysisPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskAnalyzeAppeal 分发申诉AI判定任务
	DistributeTaskAnalyzeAppeal(
		ctx context.Context,
		payload *AnalyzeAppealPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskSendNotification 分发商户通知任务
	DistributeTaskSendNotification(
		ctx context.Context,
		payload *SendNotificationPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskRecomputeShopScore 分发店铺口碑分重算任务
	DistributeTaskRecomputeShopScore(
		ctx context.Context,
		payload *RecomputeShopScorePayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskReleaseDueAssignments 分发二三梯队到点放量扫描任务
	DistributeTaskReleaseDueAssignments(
		ctx context.Context,
		payload *ReleaseDueAssignmentsPayload,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
