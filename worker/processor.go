package worker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/ai"
	"github.com/fixbid/repairbid/algorithm"
	db "github.com/fixbid/repairbid/db/sqlc"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// TaskProcessor 任务处理接口
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskDistributeBidding 处理竞价单匹配分发任务
	ProcessTaskDistributeBidding(ctx context.Context, task *asynq.Task) error
	// ProcessTaskDamageAnalysis 处理事故照片损伤分析任务
	ProcessTaskDamageAnalysis(ctx context.Context, task *asynq.Task) error
	// ProcessTaskAnalyzeAppeal 处理申诉AI判定任务
	ProcessTaskAnalyzeAppeal(ctx context.Context, task *asynq.Task) error
	// ProcessTaskSendNotification 处理商户通知任务
	ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error
	// ProcessTaskRecomputeShopScore 处理店铺口碑分重算任务
	ProcessTaskRecomputeShopScore(ctx context.Context, task *asynq.Task) error
	// ProcessTaskReleaseDueAssignments 处理二三梯队到点放量任务
	ProcessTaskReleaseDueAssignments(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server      *asynq.Server
	store       db.Store
	distributor TaskDistributor            // 用于在任务中分发后续任务
	oracle      ai.Client                  // 损伤/申诉分析预言机
	rules       *algorithm.RuleSource      // 平台规则快照
	matcher     *algorithm.BiddingDistributor
	recomputer  *algorithm.ScoreRecomputer
	redisClient *redis.Client // Redis客户端（用于Pub/Sub推送通知）
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	distributor TaskDistributor,
	oracle ai.Client,
	rules *algorithm.RuleSource,
) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	// 创建Redis客户端（用于Pub/Sub）
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisOpt.Addr,
		Password: redisOpt.Password,
		DB:       redisOpt.DB,
	})

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		distributor: distributor,
		oracle:      oracle,
		rules:       rules,
		matcher:     algorithm.NewBiddingDistributor(store, rules),
		recomputer:  algorithm.NewScoreRecomputer(store, rules),
		redisClient: redisClient,
	}
}

// NewTestTaskProcessor 创建用于测试的处理器实例（不需要Redis连接）
func NewTestTaskProcessor(
	store db.Store,
	distributor TaskDistributor,
	oracle ai.Client,
	rules *algorithm.RuleSource,
) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:       store,
		distributor: distributor,
		oracle:      oracle,
		rules:       rules,
		matcher:     algorithm.NewBiddingDistributor(store, rules),
		recomputer:  algorithm.NewScoreRecomputer(store, rules),
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	// 注册任务处理器
	mux.HandleFunc(TaskDistributeBidding, processor.ProcessTaskDistributeBidding)
	mux.HandleFunc(TaskDamageAnalysis, processor.ProcessTaskDamageAnalysis)
	mux.HandleFunc(TaskAnalyzeAppeal, processor.ProcessTaskAnalyzeAppeal)
	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)
	mux.HandleFunc(TaskRecomputeShopScore, processor.ProcessTaskRecomputeShopScore)
	mux.HandleFunc(TaskReleaseDueAssignments, processor.ProcessTaskReleaseDueAssignments)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
