package algorithm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsValidForBonus(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)

	// 45秒阅读 + 新用户权重0.3 → 有效
	require.True(t, svc.IsValidForBonus(45, 0.3))

	// 10秒不够
	require.False(t, svc.IsValidForBonus(10, 0.3))

	// 时长够但信任权重为0（高危账号）无效
	require.False(t, svc.IsValidForBonus(120, 0))

	// 恰好踩线
	require.True(t, svc.IsValidForBonus(30, 1.0))
}

func TestReadingCaps(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)

	// 单次会话封顶180秒
	require.Equal(t, int32(180), svc.CapSessionSeconds(500))
	require.Equal(t, int32(90), svc.CapSessionSeconds(90))
	require.Equal(t, int32(0), svc.CapSessionSeconds(-5))

	// 终身封顶300秒：已累计250，本次180只能再入账50
	require.Equal(t, int32(50), svc.CapLifetimeSeconds(250, 180))
	require.Equal(t, int32(0), svc.CapLifetimeSeconds(300, 60))
	require.Equal(t, int32(60), svc.CapLifetimeSeconds(0, 60))
}

func TestVehicleMatch(t *testing.T) {
	require.True(t, VehicleMatch("川A12345", "川A12345"))
	require.False(t, VehicleMatch("川A12345", "川A54321"))
	require.False(t, VehicleMatch("", ""))
}

func TestClassifyLike(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)
	now := time.Now()

	placedAt := now.Add(-20 * 24 * time.Hour)
	completedAt := now.Add(-10 * 24 * time.Hour)
	readAt := placedAt.Add(-2 * 24 * time.Hour)

	base := PostVerifyInput{
		LikedAt:             now,
		OwnOrderCompletedAt: &completedAt,
		OwnOrderPlacedAt:    &placedAt,
		LastReadBeforeOrder: &readAt,
		OwnOrderBrand:       "BMW",
		ReviewedBrand:       "BMW",
	}
	require.Equal(t, LikeKindPostVerify, svc.ClassifyLike(base))

	// 品牌不一致退回 normal
	diffBrand := base
	diffBrand.OwnOrderBrand = "Audi"
	require.Equal(t, LikeKindNormal, svc.ClassifyLike(diffBrand))

	// 下单前阅读超出7天窗口
	staleRead := base
	old := placedAt.Add(-10 * 24 * time.Hour)
	staleRead.LastReadBeforeOrder = &old
	require.Equal(t, LikeKindNormal, svc.ClassifyLike(staleRead))

	// 点赞晚于完成后30天窗口
	lateCompleted := base
	longAgo := now.Add(-40 * 24 * time.Hour)
	lateCompleted.OwnOrderCompletedAt = &longAgo
	require.Equal(t, LikeKindNormal, svc.ClassifyLike(lateCompleted))

	// 缺少订单证据直接 normal
	require.Equal(t, LikeKindNormal, svc.ClassifyLike(PostVerifyInput{LikedAt: now}))
}

func TestDecisionWeight(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)

	// 12小时、150秒阅读、车牌匹配、优质内容：1.0 × 1.2 × 1.5 × 1.5
	w := svc.DecisionWeight(DecisionWeightInput{HoursBetween: 12, ReadSeconds: 150, PlateMatch: true, IsPremium: true})
	require.InDelta(t, 2.7, w, 1e-9)

	// 阅读不足30秒整体归零
	w = svc.DecisionWeight(DecisionWeightInput{HoursBetween: 1, ReadSeconds: 20, PlateMatch: true, IsPremium: true})
	require.Zero(t, w)

	// 时间越久权重越低
	near := svc.DecisionWeight(DecisionWeightInput{HoursBetween: 10, ReadSeconds: 60})
	far := svc.DecisionWeight(DecisionWeightInput{HoursBetween: 200, ReadSeconds: 60})
	require.Greater(t, near, far)
}

func TestStaticDecisionWeight(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)

	// 点赞时冻结的静态权重不含时效因子：1.2 × 1.5 × 1.0
	static := svc.StaticDecisionWeight(DecisionWeightInput{ReadSeconds: 150, PlateMatch: true})
	require.InDelta(t, 1.8, static, 1e-9)

	// 无论冻结多久，静态值都不变
	require.Equal(t, static, svc.StaticDecisionWeight(DecisionWeightInput{ReadSeconds: 150, PlateMatch: true}))
}

func TestConversionWeight(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)
	static := svc.StaticDecisionWeight(DecisionWeightInput{ReadSeconds: 150, PlateMatch: true})

	placedAt := time.Now()

	// 点赞后1小时内成交，时效因子满额
	fresh := svc.ConversionWeight(static, placedAt.Add(-time.Hour), placedAt)
	require.InDelta(t, 1.8, fresh, 1e-9)

	// 同样的静态权重，点赞20天后才成交要打两折
	stale := svc.ConversionWeight(static, placedAt.Add(-480*time.Hour), placedAt)
	require.InDelta(t, 0.36, stale, 1e-9)

	// 下单早于点赞视为无效归因
	require.Zero(t, svc.ConversionWeight(static, placedAt.Add(time.Hour), placedAt))
}

func TestSplitConversionPool(t *testing.T) {
	svc := NewLikeService(DefaultRuleSet().Like)

	contributions := []LikeContribution{
		{LikeID: 1, UserID: 11, Weight: 2.0},
		{LikeID: 2, UserID: 12, Weight: 1.0},
		{LikeID: 3, UserID: 13, Weight: 1.0},
	}

	shares := svc.SplitConversionPool(10000, contributions)
	require.Len(t, shares, 3)

	var total int64
	for _, share := range shares {
		total += share.Amount
	}
	// 池子分完不差一分
	require.Equal(t, int64(10000), total)
	// 权重最高者居首且拿一半（含尾差）
	require.Equal(t, int64(1), shares[0].LikeID)
	require.Equal(t, int64(5000), shares[0].Amount)
}

func TestSplitConversionPool_TopN(t *testing.T) {
	rules := DefaultRuleSet().Like
	rules.TopContributors = 2
	svc := NewLikeService(rules)

	contributions := []LikeContribution{
		{LikeID: 1, UserID: 11, Weight: 3.0},
		{LikeID: 2, UserID: 12, Weight: 2.0},
		{LikeID: 3, UserID: 13, Weight: 1.0},
	}

	shares := svc.SplitConversionPool(5000, contributions)
	require.Len(t, shares, 2)
	for _, share := range shares {
		require.NotEqual(t, int64(3), share.LikeID)
	}

	require.Nil(t, svc.SplitConversionPool(0, contributions))
	require.Nil(t, svc.SplitConversionPool(1000, nil))
}
