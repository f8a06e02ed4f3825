package algorithm

import (
	"context"
	"time"

	db "github.com/fixbid/repairbid/db/sqlc"
)

// ScoreRecomputer 店铺口碑分重算编排：取冻结权重的评价全量，
// 在 advisory lock 内聚合成 0-100 分写回店铺。
type ScoreRecomputer struct {
	store  db.Store
	rules  *RuleSource
	scorer *ShopScorer
}

// NewScoreRecomputer 创建口碑分重算器
func NewScoreRecomputer(store db.Store, rules *RuleSource) *ScoreRecomputer {
	return &ScoreRecomputer{store: store, rules: rules, scorer: NewShopScorer()}
}

// Recompute 重算一家店的口碑分并返回新值
func (r *ScoreRecomputer) Recompute(ctx context.Context, shopID int64) (float64, error) {
	rules := r.rules.Current(ctx)
	now := time.Now()

	result, err := r.store.UpdateShopScoreTx(ctx, db.UpdateShopScoreTxParams{
		ShopID: shopID,
		Compute: func(shop db.Shop, reviews []db.Review) (float64, int64, error) {
			scored := make([]ScoredReview, 0, len(reviews))
			for _, rv := range reviews {
				scored = append(scored, ScoredReview{
					Rating:    rv.Rating,
					Weight:    rv.Weight,
					CreatedAt: rv.CreatedAt,
					Excluded:  rv.Excluded,
				})
			}
			score := r.scorer.ComputeScore(scored, ShopFacts{
				QualificationClass: shop.QualificationClass,
				ComplianceRate:     shop.ComplianceRate,
				DeviationRate:      shop.DeviationRate,
			}, now)
			return score, rules.Version, nil
		},
	})
	if err != nil {
		return 0, err
	}
	return result.Score, nil
}
