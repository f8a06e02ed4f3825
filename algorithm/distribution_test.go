package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchScore(t *testing.T) {
	rules := DefaultRuleSet().Distribution

	// 高复杂度单吃 0.6 权重；低复杂度 0.35
	high := MatchScore(MatchScoreInput{ShopScore: 90, Level: ComplexityL4, DeviationRate: 0, HasSameProject: true, TopComplexityHit: true}, rules)
	// 90×0.6 + 20 + 15 + 5 = 94
	require.InDelta(t, 94.0, high, 1e-9)

	low := MatchScore(MatchScoreInput{ShopScore: 90, Level: ComplexityL1, DeviationRate: 30, HasSameProject: true, TopComplexityHit: false}, rules)
	// 90×0.35 + 0 + 5 + 5 = 41.5
	require.InDelta(t, 41.5, low, 1e-9)

	// 无同类项目历史不吃加分
	noHistory := MatchScore(MatchScoreInput{ShopScore: 90, Level: ComplexityL1, DeviationRate: 30}, rules)
	require.InDelta(t, 36.5, noHistory, 1e-9)
}

func TestAssignTiers_SpecExample(t *testing.T) {
	rules := DefaultRuleSet().Distribution

	// 85/70/55 三家店、默认合规：应分别落入 1/2/3 梯队
	candidates := []TierCandidate{
		{ShopID: 1, MatchScore: 85, ComplianceRate: 96},
		{ShopID: 2, MatchScore: 70, ComplianceRate: 96},
		{ShopID: 3, MatchScore: 55, ComplianceRate: 96},
	}

	assignments := AssignTiers(candidates, rules)
	require.Len(t, assignments, 3)
	require.Equal(t, int16(1), assignments[0].Tier)
	require.Equal(t, int64(1), assignments[0].ShopID)
	require.Equal(t, int16(2), assignments[1].Tier)
	require.Equal(t, int64(2), assignments[1].ShopID)
	require.Equal(t, int16(3), assignments[2].Tier)
	require.Equal(t, int64(3), assignments[2].ShopID)
}

func TestAssignTiers_ComplianceGates(t *testing.T) {
	rules := DefaultRuleSet().Distribution

	candidates := []TierCandidate{
		// 分数够一梯队但合规率不达标 → 落三梯队
		{ShopID: 1, MatchScore: 92, ComplianceRate: 90},
		// 新店豁免：合规率低也按100算
		{ShopID: 2, MatchScore: 85, ComplianceRate: 60, IsNewShop: true},
		// 二梯队合规门槛85
		{ShopID: 3, MatchScore: 75, ComplianceRate: 80},
	}

	assignments := AssignTiers(candidates, rules)
	byShop := map[int64]int16{}
	for _, a := range assignments {
		byShop[a.ShopID] = a.Tier
	}
	require.Equal(t, int16(3), byShop[1])
	require.Equal(t, int16(1), byShop[2])
	require.Equal(t, int16(3), byShop[3])
}

func TestAssignTiers_Tier3Cap(t *testing.T) {
	rules := DefaultRuleSet().Distribution

	candidates := []TierCandidate{
		{ShopID: 1, MatchScore: 40, ComplianceRate: 96},
		{ShopID: 2, MatchScore: 50, ComplianceRate: 96},
		{ShopID: 3, MatchScore: 30, ComplianceRate: 96},
		{ShopID: 4, MatchScore: 45, ComplianceRate: 96},
	}

	assignments := AssignTiers(candidates, rules)
	// 三梯队封顶2家，留分数最高的两家
	require.Len(t, assignments, 2)
	require.Equal(t, int64(2), assignments[0].ShopID)
	require.Equal(t, int64(4), assignments[1].ShopID)
}

func TestNotifyCaps(t *testing.T) {
	rules := DefaultRuleSet().Distribution

	require.Equal(t, 10, NotifyLimit(ComplexityL2, rules))
	require.Equal(t, 15, NotifyLimit(ComplexityL3, rules))

	assignments := make([]TierAssignment, 12)
	for i := range assignments {
		assignments[i] = TierAssignment{ShopID: int64(i + 1), Tier: 1, MatchScore: float64(100 - i)}
	}
	capped := CapForNotification(assignments, 10)
	require.Len(t, capped, 10)
	require.Equal(t, int64(1), capped[0].ShopID)
}

func TestQualificationAllowed(t *testing.T) {
	// L4 仅一类
	require.True(t, QualificationAllowed(QualificationClassOne, ComplexityL4, false))
	require.False(t, QualificationAllowed(QualificationClassTwo, ComplexityL4, true))

	// L3 排除三类
	require.True(t, QualificationAllowed(QualificationClassTwo, ComplexityL3, true))
	require.False(t, QualificationAllowed(QualificationClassThree, ComplexityL3, true))

	// L1/L2 三类店要看类目匹配
	require.True(t, QualificationAllowed(QualificationClassThree, ComplexityL1, true))
	require.False(t, QualificationAllowed(QualificationClassThree, ComplexityL1, false))
	require.True(t, QualificationAllowed(QualificationClassTwo, ComplexityL2, false))
}

func TestTextOverlap(t *testing.T) {
	require.True(t, TextOverlap([]string{"钣金喷漆"}, []string{"左后门钣金喷漆修复"}))
	require.True(t, TextOverlap([]string{"全车喷漆 大梁校正"}, []string{"大梁校正"}))
	require.False(t, TextOverlap([]string{"玻璃更换"}, []string{"大梁校正"}))
	require.False(t, TextOverlap(nil, []string{"大梁校正"}))
}

func TestGrowRadius(t *testing.T) {
	require.Equal(t, int32(15000), GrowRadius(10000, 1.5, 50000))
	// 封顶
	require.Equal(t, int32(50000), GrowRadius(40000, 1.5, 50000))
	// 倍率过小也必须前进，避免死循环
	require.Greater(t, GrowRadius(10, 1.0, 50000), int32(10))
}
