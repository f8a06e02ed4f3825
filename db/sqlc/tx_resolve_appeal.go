package db

import (
	"context"
	"fmt"
)

// ResolveAppealTxParams contains the input parameters for resolving an appeal
type ResolveAppealTxParams struct {
	AppealID int64
	// true 裁定商家胜诉：评价被排除出聚合
	Upheld bool
}

// ResolveAppealTxResult contains the result of the resolve appeal transaction
type ResolveAppealTxResult struct {
	Appeal Appeal
	Review *Review
}

// ResolveAppealTx 申诉裁决落库：关闭申诉，胜诉时排除对应评价。
// 排除评价后的口碑分重算由调用方另行触发。
func (store *SQLStore) ResolveAppealTx(ctx context.Context, arg ResolveAppealTxParams) (ResolveAppealTxResult, error) {
	var result ResolveAppealTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		status := "rejected"
		if arg.Upheld {
			status = "upheld"
		}

		result.Appeal, err = q.ResolveAppeal(ctx, ResolveAppealParams{
			Status: status,
			ID:     arg.AppealID,
		})
		if err != nil {
			return fmt.Errorf("resolve appeal: %w", err)
		}

		if arg.Upheld {
			review, err := q.ExcludeReview(ctx, result.Appeal.ReviewID)
			if err != nil {
				return fmt.Errorf("exclude review: %w", err)
			}
			result.Review = &review
		}

		return nil
	})

	return result, err
}
