package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// UpgradeReviewTxParams contains the input parameters for upgrading a review to premium quality
type UpgradeReviewTxParams struct {
	ReviewID int64
	// 升档后的新冻结权重，由调用方按原冻结权重补乘优质档因子算好
	NewWeight float64
	// 补发差额（分，税前）与触发结算月 YYYY-MM
	DiffAmount   int64
	TriggerMonth string
}

// UpgradeReviewTxResult contains the result of the upgrade review transaction
type UpgradeReviewTxResult struct {
	Review Review
	Entry  SettlementPendingEntry
}

// UpgradeReviewTx 评价升档：改判优质、更新冻结权重，并把奖励差额
// 挂账到触发月，随月度结算发放。
func (store *SQLStore) UpgradeReviewTx(ctx context.Context, arg UpgradeReviewTxParams) (UpgradeReviewTxResult, error) {
	var result UpgradeReviewTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Review, err = q.UpgradeReviewQuality(ctx, UpgradeReviewQualityParams{
			QualityLevel: "premium",
			Weight:       arg.NewWeight,
			ID:           arg.ReviewID,
		})
		if err != nil {
			return fmt.Errorf("upgrade review quality: %w", err)
		}

		if arg.DiffAmount <= 0 {
			return nil
		}

		result.Entry, err = q.CreateSettlementPendingEntry(ctx, CreateSettlementPendingEntryParams{
			UserID:       result.Review.UserID,
			OrderID:      result.Review.OrderID,
			ReviewID:     pgtype.Int8{Int64: result.Review.ID, Valid: true},
			BonusType:    BonusTypeUpgradeDiff,
			AmountPreTax: arg.DiffAmount,
			TriggerMonth: arg.TriggerMonth,
		})
		if err != nil {
			return fmt.Errorf("create upgrade diff entry: %w", err)
		}

		return nil
	})

	return result, err
}
