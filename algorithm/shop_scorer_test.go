package algorithm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeReviewWeight(t *testing.T) {
	scorer := NewShopScorer()

	// L2 普通好评、普通活跃用户、合规店：1.0 × 1.0 × 1.0 × 1.2
	w := scorer.ComputeReviewWeight(ReviewWeightInput{
		Level:          ComplexityL2,
		Rating:         5,
		TrustWeight:    1.0,
		ComplianceRate: 96,
	})
	require.InDelta(t, 1.2, w, 1e-9)

	// L4 保险事故优质差评、核心用户：6×2 × 3×2 × 2.0 × 1.0
	w = scorer.ComputeReviewWeight(ReviewWeightInput{
		Level:            ComplexityL4,
		IsInsuranceClaim: true,
		IsPremium:        true,
		Rating:           1,
		TrustWeight:      2.0,
		ComplianceRate:   90,
	})
	require.InDelta(t, 144.0, w, 1e-9)

	// 负面放大：L1/L2 用 1.5
	w = scorer.ComputeReviewWeight(ReviewWeightInput{
		Level:          ComplexityL1,
		Rating:         2,
		TrustWeight:    1.0,
		ComplianceRate: 90,
	})
	require.InDelta(t, 0.2*1.5, w, 1e-9)

	// 高危用户权重0，整条评价权重归零
	w = scorer.ComputeReviewWeight(ReviewWeightInput{
		Level:          ComplexityL3,
		Rating:         5,
		TrustWeight:    0,
		ComplianceRate: 96,
	})
	require.Zero(t, w)
}

func TestUpgradeWeight(t *testing.T) {
	scorer := NewShopScorer()

	// 普通档改判优质档只补乘内容因子，其余因子沿用冻结值
	require.InDelta(t, 7.2, scorer.UpgradeWeight(2.4), 1e-9)

	// 升档前后权重之差恰好等于内容因子的差距
	normal := scorer.ComputeReviewWeight(ReviewWeightInput{
		Level:          ComplexityL2,
		Rating:         5,
		TrustWeight:    1.0,
		ComplianceRate: 96,
	})
	premium := scorer.ComputeReviewWeight(ReviewWeightInput{
		Level:          ComplexityL2,
		IsPremium:      true,
		Rating:         5,
		TrustWeight:    1.0,
		ComplianceRate: 96,
	})
	require.InDelta(t, premium, scorer.UpgradeWeight(normal), 1e-9)
}

func TestTimeDecay_NonIncreasing(t *testing.T) {
	now := time.Now()

	prev := 1.1
	for months := 0; months <= 14; months++ {
		createdAt := now.Add(-time.Duration(months) * 30 * 24 * time.Hour)
		decay := TimeDecay(createdAt, now)
		require.LessOrEqual(t, decay, prev, "decay must be non-increasing in age (month %d)", months)
		prev = decay
	}

	// 一年及以上整体退役
	require.Zero(t, TimeDecay(now.Add(-12*30*24*time.Hour), now))
	require.Zero(t, TimeDecay(now.Add(-36*30*24*time.Hour), now))
	require.Equal(t, 1.0, TimeDecay(now.Add(-24*time.Hour), now))
}

func TestComputeScore(t *testing.T) {
	scorer := NewShopScorer()
	now := time.Now()

	facts := ShopFacts{
		QualificationClass: QualificationClassTwo,
		ComplianceRate:     96,
		DeviationRate:      8,
	}

	reviews := []ScoredReview{
		{Rating: 5, Weight: 2.0, CreatedAt: now.Add(-10 * 24 * time.Hour)},
		{Rating: 4, Weight: 1.0, CreatedAt: now.Add(-20 * 24 * time.Hour)},
		// 被申诉剔除的差评不参与
		{Rating: 1, Weight: 10.0, CreatedAt: now.Add(-5 * 24 * time.Hour), Excluded: true},
		// 超过一年的评价衰减为0
		{Rating: 1, Weight: 10.0, CreatedAt: now.Add(-400 * 24 * time.Hour)},
	}

	// 加权平均 = (5×2 + 4×1) / 3 = 4.667；基础分 93.33；硬性分 +5+10+5 = +20 → 封顶100
	score := scorer.ComputeScore(reviews, facts, now)
	require.Equal(t, 100.0, score)

	// 去掉硬性加分优势再看未封顶的情况
	lowFacts := ShopFacts{QualificationClass: QualificationClassThree, ComplianceRate: 85, DeviationRate: 20}
	score = scorer.ComputeScore(reviews, lowFacts, now)
	require.InDelta(t, 93.33, score, 0.01)
}

func TestComputeScore_NoReviews(t *testing.T) {
	scorer := NewShopScorer()

	// 没有有效评价时只剩硬性分，负分被钳到0
	score := scorer.ComputeScore(nil, ShopFacts{
		QualificationClass: QualificationClassThree,
		ComplianceRate:     70,
		DeviationRate:      40,
	}, time.Now())
	require.Zero(t, score)
}

func TestHardBonus(t *testing.T) {
	scorer := NewShopScorer()

	require.Equal(t, 25.0, scorer.HardBonus(ShopFacts{
		QualificationClass: QualificationClassOne,
		ComplianceRate:     95,
		DeviationRate:      10,
	}))

	require.Equal(t, -40.0, scorer.HardBonus(ShopFacts{
		QualificationClass: QualificationClassThree,
		ComplianceRate:     79.9,
		DeviationRate:      30.1,
	}))
}
