package db

import (
	"context"
	"fmt"
)

// UpdateShopScoreTxParams contains the input parameters for recomputing a shop score
type UpdateShopScoreTxParams struct {
	ShopID int64
	// Compute 在持有 advisory lock 后被调用，拿到的是当前评价全量快照
	Compute func(shop Shop, reviews []Review) (score float64, rulesVersion int64, err error)
}

// UpdateShopScoreTxResult contains the result of the score recompute transaction
type UpdateShopScoreTxResult struct {
	Shop  Shop
	Score float64
}

// UpdateShopScoreTx 店铺口碑分重算。pg_advisory_xact_lock 串行化同店并发重算，
// 避免读-算-写交错导致旧分覆盖新分。
func (store *SQLStore) UpdateShopScoreTx(ctx context.Context, arg UpdateShopScoreTxParams) (UpdateShopScoreTxResult, error) {
	var result UpdateShopScoreTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		if err := q.LockShopScore(ctx, arg.ShopID); err != nil {
			return fmt.Errorf("lock shop score: %w", err)
		}

		shop, err := q.GetShop(ctx, arg.ShopID)
		if err != nil {
			return fmt.Errorf("get shop: %w", err)
		}

		reviews, err := q.ListShopReviewsForScoring(ctx, arg.ShopID)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}

		score, rulesVersion, err := arg.Compute(shop, reviews)
		if err != nil {
			return fmt.Errorf("compute score: %w", err)
		}

		if err = q.UpdateShopScore(ctx, UpdateShopScoreParams{
			Score:             score,
			ScoreRulesVersion: rulesVersion,
			ID:                arg.ShopID,
		}); err != nil {
			return fmt.Errorf("update shop score: %w", err)
		}

		shop.Score = score
		shop.ScoreRulesVersion = rulesVersion
		result.Shop = shop
		result.Score = score
		return nil
	})

	return result, err
}
