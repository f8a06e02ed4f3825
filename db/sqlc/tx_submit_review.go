package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type rewardStage struct {
	Stage        int     `json:"stage"`
	Ratio        float64 `json:"ratio"`
	Amount       int64   `json:"amount"`
	OffsetMonths int     `json:"offset_months"`
}

// SubmitReviewTxParams contains the input parameters for submitting a review
type SubmitReviewTxParams struct {
	CreateReviewParams CreateReviewParams

	// 评价提交月 YYYY-MM，分期挂账的基准
	ReviewMonth string
	// 分期触发月，与订单 reward_stages 一一对应（下标即期数-1）
	StageMonths []string

	// 首期即时到账金额（分），0 表示无即时奖励
	ImmediateAmount int64
}

// SubmitReviewTxResult contains the result of the submit review transaction
type SubmitReviewTxResult struct {
	Review         Review
	Transaction    *TransactionRecord
	PendingEntries []SettlementPendingEntry
}

// SubmitReviewTx 评价提交：权重冻结落库、累加评价数、首期奖励即时入账、
// 后续分期写入挂账表等月结触发。
// 评价表 order_id 唯一，重复提交在插入时即失败。
func (store *SQLStore) SubmitReviewTx(ctx context.Context, arg SubmitReviewTxParams) (SubmitReviewTxResult, error) {
	var result SubmitReviewTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Review, err = q.CreateReview(ctx, arg.CreateReviewParams)
		if err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		if err = q.IncrementUserReviewCount(ctx, result.Review.UserID); err != nil {
			return fmt.Errorf("increment review count: %w", err)
		}

		order, err := q.GetOrder(ctx, result.Review.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		// 首期即时入账
		if arg.ImmediateAmount > 0 {
			if _, err = q.AddUserBalance(ctx, AddUserBalanceParams{
				Amount: arg.ImmediateAmount,
				ID:     result.Review.UserID,
			}); err != nil {
				return fmt.Errorf("add balance: %w", err)
			}

			record, err := q.CreateTransactionRecord(ctx, CreateTransactionRecordParams{
				UserID:          result.Review.UserID,
				TxType:          TxTypeReviewReward,
				Amount:          arg.ImmediateAmount,
				RelatedType:     "order",
				RelatedID:       order.ID,
				SettlementMonth: pgtype.Text{String: arg.ReviewMonth, Valid: true},
			})
			if err != nil {
				return fmt.Errorf("create transaction record: %w", err)
			}
			result.Transaction = &record
		}

		// 后续分期挂账
		var stages []rewardStage
		if len(order.RewardStages) > 0 {
			if err = json.Unmarshal(order.RewardStages, &stages); err != nil {
				return fmt.Errorf("decode reward stages: %w", err)
			}
		}
		for _, stage := range stages {
			if stage.Stage == 1 || stage.Amount <= 0 {
				continue
			}
			if stage.Stage-1 > len(arg.StageMonths) || stage.Stage < 1 {
				return fmt.Errorf("stage %d has no trigger month", stage.Stage)
			}

			entry, err := q.CreateSettlementPendingEntry(ctx, CreateSettlementPendingEntryParams{
				UserID:       result.Review.UserID,
				OrderID:      order.ID,
				ReviewID:     pgtype.Int8{Int64: result.Review.ID, Valid: true},
				BonusType:    BonusTypeStageFollowup,
				AmountPreTax: stage.Amount,
				TriggerMonth: arg.StageMonths[stage.Stage-2],
			})
			if err != nil {
				// 唯一约束命中说明该期已挂账
				if errors.Is(err, pgx.ErrNoRows) {
					continue
				}
				return fmt.Errorf("create pending entry stage %d: %w", stage.Stage, err)
			}
			result.PendingEntries = append(result.PendingEntries, entry)
		}

		return nil
	})

	return result, err
}
