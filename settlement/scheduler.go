package settlement

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/worker"
)

const (
	// 分析任务卡住多久算失联
	stuckTaskAge = 10 * time.Minute
	// 单轮巡检重投上限
	stuckTaskBatch = 100
)

// Scheduler 定时任务调度器：月度结算、梯队放量扫描、卡住的分析任务巡检
type Scheduler struct {
	cron           *cron.Cron
	store          db.Store
	batch          *Batch
	distributor    worker.TaskDistributor
	settlementSpec string
}

// NewScheduler 创建结算调度器，settlementSpec 为空时默认每月1日凌晨2点
func NewScheduler(store db.Store, batch *Batch, distributor worker.TaskDistributor, settlementSpec string) *Scheduler {
	if settlementSpec == "" {
		settlementSpec = "0 2 1 * *"
	}
	return &Scheduler{
		cron:           cron.New(),
		store:          store,
		batch:          batch,
		distributor:    distributor,
		settlementSpec: settlementSpec,
	}
}

// Start 注册定时任务并启动调度器
func (s *Scheduler) Start() error {
	// 结算上个月
	_, err := s.cron.AddFunc(s.settlementSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		month := time.Now().AddDate(0, -1, 0).Format("2006-01")
		if _, err := s.batch.Run(ctx, month); err != nil {
			log.Error().Err(err).Str("month", month).Msg("monthly settlement failed")
		}
	})
	if err != nil {
		return err
	}

	// 每分钟扫描到点未通知的二三梯队分配
	_, err = s.cron.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.distributor.DistributeTaskReleaseDueAssignments(ctx, &worker.ReleaseDueAssignmentsPayload{}); err != nil {
			log.Error().Err(err).Msg("enqueue assignment release sweep failed")
		}
	})
	if err != nil {
		return err
	}

	// 每10分钟重投卡住的分析任务（覆盖进程重启丢任务的情况）
	_, err = s.cron.AddFunc("*/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.RequeueStuckAnalysisTasks(ctx); err != nil {
			log.Error().Err(err).Msg("requeue stuck analysis tasks failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Msg("settlement scheduler started")
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("settlement scheduler stopped")
}

// RequeueStuckAnalysisTasks 把长时间停留在 pending 的分析任务重新入队。
// 事故照片引用不落库，兜底重跑只带文字描述。
func (s *Scheduler) RequeueStuckAnalysisTasks(ctx context.Context) error {
	tasks, err := s.store.ListStuckAnalysisTasks(ctx, db.ListStuckAnalysisTasksParams{
		Before: time.Now().Add(-stuckTaskAge),
		Limit:  stuckTaskBatch,
	})
	if err != nil {
		return err
	}

	for _, task := range tasks {
		switch task.TaskType {
		case "damage_analysis":
			err = s.distributor.DistributeTaskDamageAnalysis(ctx, &worker.DamageAnalysisPayload{
				TaskID:    task.ID,
				BiddingID: task.RelatedID,
			})
		case "appeal_analysis":
			err = s.distributor.DistributeTaskAnalyzeAppeal(ctx, &worker.AnalyzeAppealPayload{
				AppealID: task.RelatedID,
			})
		default:
			log.Warn().Str("task_type", task.TaskType).Int64("task_id", task.ID).Msg("unknown analysis task type")
			continue
		}
		if err != nil {
			log.Error().Err(err).Int64("task_id", task.ID).Msg("requeue analysis task failed")
		}
	}

	if len(tasks) > 0 {
		log.Info().Int("count", len(tasks)).Msg("stuck analysis tasks requeued")
	}
	return nil
}
