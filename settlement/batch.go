package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/algorithm"
	db "github.com/fixbid/repairbid/db/sqlc"
)

const (
	// 决策权重折现单价（分/权重点）
	likeWeightUnitCents = 100
)

// deferredTxTypes 计入单评价80%佣金上限的延迟奖励类型
var deferredTxTypes = []string{
	db.TxTypeOrdinaryLikeBonus,
	db.BonusTypeConversion,
	db.BonusTypeUpgradeDiff,
	db.BonusTypeStageFollowup,
}

// Batch 月度结算批处理。三个阶段都按行兜错：单行失败记入错误清单，
// 不中断整批；全部幂等，同一个月份重跑不会重复发钱。
// 并发重入用进程内互斥挡住，多实例部署时由外部调度保证单点触发。
type Batch struct {
	store db.Store
	rules *algorithm.RuleSource

	mu sync.Mutex
}

// NewBatch 创建结算批处理器
func NewBatch(store db.Store, rules *algorithm.RuleSource) *Batch {
	return &Batch{store: store, rules: rules}
}

// RunSummary 一轮结算的汇总
type RunSummary struct {
	Month          string
	EntriesPaid    int
	LikesPaid      int
	PostVerifyPaid int
	TotalAmount    int64
	Errors         []string
}

// Run 结算指定月份（YYYY-MM）：
// 1) 发放到期未结的挂账（阶段奖励、转化分池、升档差额）
// 2) 当月有效普通点赞按决策权重折算奖励，受单评价累计80%佣金上限约束
// 3) 当月产生购后验证的订单一次性发放50%佣金奖励
func (b *Batch) Run(ctx context.Context, month string) (RunSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end, err := monthWindow(month)
	if err != nil {
		return RunSummary{}, err
	}

	rules := b.rules.Current(ctx).Settlement
	summary := RunSummary{Month: month}

	log.Info().Str("month", month).Msg("settlement batch started")

	b.settlePendingEntries(ctx, month, rules, &summary)
	b.settleOrdinaryLikes(ctx, month, start, end, rules, &summary)
	b.settlePostVerify(ctx, month, start, end, rules, &summary)

	run, err := b.store.CreateSettlementRun(ctx, db.CreateSettlementRunParams{
		Month:          month,
		EntriesPaid:    int32(summary.EntriesPaid),
		LikesPaid:      int32(summary.LikesPaid),
		PostVerifyPaid: int32(summary.PostVerifyPaid),
		TotalAmount:    summary.TotalAmount,
		ErrorCount:     int32(len(summary.Errors)),
		Errors:         summary.Errors,
	})
	if err != nil {
		return summary, fmt.Errorf("create settlement run: %w", err)
	}

	log.Info().
		Str("month", month).
		Int64("run_id", run.ID).
		Int("entries_paid", summary.EntriesPaid).
		Int("likes_paid", summary.LikesPaid).
		Int("post_verify_paid", summary.PostVerifyPaid).
		Int64("total_amount", summary.TotalAmount).
		Int("errors", len(summary.Errors)).
		Msg("settlement batch finished")

	return summary, nil
}

// settlePendingEntries 阶段一：发放到期挂账
func (b *Batch) settlePendingEntries(ctx context.Context, month string, rules algorithm.SettlementRules, summary *RunSummary) {
	entries, err := b.store.ListUnsettledEntriesForMonth(ctx, month)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("list pending entries: %v", err))
		return
	}

	for _, entry := range entries {
		afterTax, tax, err := b.withholding(ctx, entry.UserID, month, entry.AmountPreTax, rules)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("entry %d withholding: %v", entry.ID, err))
			continue
		}

		_, err = b.store.SettleEntryTx(ctx, db.SettleEntryTxParams{
			EntryID:         entry.ID,
			AmountAfterTax:  afterTax,
			TaxWithheld:     tax,
			TxType:          entry.BonusType,
			SettlementMonth: month,
		})
		if err != nil {
			// 别的轮次已经结过，幂等跳过
			if errors.Is(err, db.ErrAlreadySettled) {
				continue
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("settle entry %d: %v", entry.ID, err))
			continue
		}

		summary.EntriesPaid++
		summary.TotalAmount += afterTax
	}
}

// settleOrdinaryLikes 阶段二：当月有效普通点赞折算奖励给评价作者。
// 每次重算都是幂等的：同一评价同一月只入账一次。
func (b *Batch) settleOrdinaryLikes(ctx context.Context, month string, start, end time.Time, rules algorithm.SettlementRules, summary *RunSummary) {
	likes, err := b.store.ListBonusEligibleLikesBetween(ctx, db.ListBonusEligibleLikesBetweenParams{
		Start: start,
		End:   end,
	})
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("list eligible likes: %v", err))
		return
	}

	type reviewAgg struct {
		authorID  int64
		orderID   int64
		weightSum float64
	}
	byReview := make(map[int64]*reviewAgg)
	var reviewIDs []int64
	for _, row := range likes {
		if row.ReviewLike.Kind != "normal" {
			continue
		}
		agg, ok := byReview[row.ReviewLike.ReviewID]
		if !ok {
			agg = &reviewAgg{authorID: row.ReviewAuthorID, orderID: row.ReviewOrderID}
			byReview[row.ReviewLike.ReviewID] = agg
			reviewIDs = append(reviewIDs, row.ReviewLike.ReviewID)
		}
		agg.weightSum += row.ReviewLike.DecisionWeight
	}

	for _, reviewID := range reviewIDs {
		agg := byReview[reviewID]

		amount := int64(agg.weightSum * likeWeightUnitCents)
		if amount <= 0 {
			continue
		}

		order, err := b.store.GetOrder(ctx, agg.orderID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("like bonus review %d get order: %v", reviewID, err))
			continue
		}

		// 单评价延迟奖励累计不得超过佣金的 DeferredCapRate
		capAmount := int64(float64(order.CommissionAmount) * rules.DeferredCapRate)
		paid, err := b.store.SumReviewDeferredPaid(ctx, db.SumReviewDeferredPaidParams{
			ReviewID: reviewID,
			TxTypes:  deferredTxTypes,
		})
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("like bonus review %d sum paid: %v", reviewID, err))
			continue
		}
		if amount > capAmount-paid {
			amount = capAmount - paid
		}
		if amount <= 0 {
			continue
		}

		afterTax, tax, err := b.withholding(ctx, agg.authorID, month, amount, rules)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("like bonus review %d withholding: %v", reviewID, err))
			continue
		}

		result, err := b.store.PayBonusTx(ctx, db.PayBonusTxParams{
			UserID:             agg.authorID,
			TxType:             db.TxTypeOrdinaryLikeBonus,
			Amount:             afterTax,
			TaxWithheld:        tax,
			RelatedType:        "review",
			RelatedID:          reviewID,
			SettlementMonth:    month,
			IdempotentPerMonth: true,
		})
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("like bonus review %d pay: %v", reviewID, err))
			continue
		}
		if result.Skipped {
			continue
		}

		summary.LikesPaid++
		summary.TotalAmount += afterTax
	}
}

// settlePostVerify 阶段三：当月出现购后验证点赞的被评订单，
// 给评价作者一次性发放佣金的 PostVerifyRate，终身只发一次。
func (b *Batch) settlePostVerify(ctx context.Context, month string, start, end time.Time, rules algorithm.SettlementRules, summary *RunSummary) {
	likes, err := b.store.ListBonusEligibleLikesBetween(ctx, db.ListBonusEligibleLikesBetweenParams{
		Start: start,
		End:   end,
	})
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("list post-verify likes: %v", err))
		return
	}

	seen := make(map[int64]bool)
	for _, row := range likes {
		if row.ReviewLike.Kind != "post_verify" {
			continue
		}
		orderID := row.ReviewOrderID
		if seen[orderID] {
			continue
		}
		seen[orderID] = true

		exists, err := b.store.ExistsTransactionForRelated(ctx, db.ExistsTransactionForRelatedParams{
			TxType:      db.TxTypePostVerifyBonus,
			RelatedType: "order",
			RelatedID:   orderID,
		})
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("post verify order %d check: %v", orderID, err))
			continue
		}
		if exists {
			continue
		}

		order, err := b.store.GetOrder(ctx, orderID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("post verify order %d get: %v", orderID, err))
			continue
		}

		amount := int64(float64(order.CommissionAmount) * rules.PostVerifyRate)
		if amount <= 0 {
			continue
		}

		afterTax, tax, err := b.withholding(ctx, row.ReviewAuthorID, month, amount, rules)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("post verify order %d withholding: %v", orderID, err))
			continue
		}

		_, err = b.store.PayBonusTx(ctx, db.PayBonusTxParams{
			UserID:          row.ReviewAuthorID,
			TxType:          db.TxTypePostVerifyBonus,
			Amount:          afterTax,
			TaxWithheld:     tax,
			RelatedType:     "order",
			RelatedID:       orderID,
			SettlementMonth: month,
		})
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("post verify order %d pay: %v", orderID, err))
			continue
		}

		summary.PostVerifyPaid++
		summary.TotalAmount += afterTax
	}
}

// withholding 按月累计额计算超过免税线部分的代扣税
func (b *Batch) withholding(ctx context.Context, userID int64, month string, gross int64, rules algorithm.SettlementRules) (afterTax, tax int64, err error) {
	settled, err := b.store.SumUserSettledInMonth(ctx, db.SumUserSettledInMonthParams{
		UserID:          userID,
		SettlementMonth: pgtype.Text{String: month, Valid: true},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("sum settled: %w", err)
	}

	var taxable int64
	switch {
	case settled >= rules.TaxFreeThreshold:
		taxable = gross
	case settled+gross > rules.TaxFreeThreshold:
		taxable = settled + gross - rules.TaxFreeThreshold
	}
	tax = int64(float64(taxable) * rules.TaxRate)
	return gross - tax, tax, nil
}

// monthWindow 把 YYYY-MM 展开成 [月初, 下月初)
func monthWindow(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
