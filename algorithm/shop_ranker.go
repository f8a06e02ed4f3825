package algorithm

import (
	"sort"
	"time"
)

// 响应速度子分的映射区间：5分钟内满分，1小时以上0分
const (
	responseFullSeconds = 300
	responseZeroSeconds = 3600
)

// 新店曝光扶持窗口
const newShopBoostDays = 30

// rankWeights 场景化权重预设
type rankWeights struct {
	score    float64
	distance float64
	price    float64
	response float64
}

var scenarioWeights = map[RankScenario]rankWeights{
	ScenarioL1L2:  {score: 0.35, distance: 0.30, price: 0.25, response: 0.10},
	ScenarioL3L4:  {score: 0.60, distance: 0.05, price: 0.20, response: 0.15},
	ScenarioBrand: {score: 0.50, distance: 0.10, price: 0.20, response: 0.20},
}

// RankCandidate 待排序的店铺
type RankCandidate struct {
	ShopID             int64
	Score              float64 // 口碑分 0-100
	DistanceMeters     int     // 与需求点距离
	DeviationRate      float64 // 报价偏差率 0-100
	AvgResponseSeconds int     // 平均响应耗时
	ComplianceRate     float64
	QualificationClass string
	IsBrand            bool
	CreatedAt          time.Time
}

// RankedShop 排序结果
type RankedShop struct {
	ShopID        int64   `json:"shop_id"`
	Total         float64 `json:"total"`
	ScoreSub      float64 `json:"score_sub"`
	DistanceSub   float64 `json:"distance_sub"`
	PriceSub      float64 `json:"price_sub"`
	ResponseSub   float64 `json:"response_sub"`
	BoostMultiple float64 `json:"boost_multiple"`
}

// ShopRanker 报价/店铺排序器
type ShopRanker struct{}

// NewShopRanker 创建排序器
func NewShopRanker() *ShopRanker {
	return &ShopRanker{}
}

// Rank 按场景权重混合四个子分并应用乘法扶持，降序返回。
// maxRadiusMeters 用于距离归一化。
func (r *ShopRanker) Rank(candidates []RankCandidate, scenario RankScenario, maxRadiusMeters int32, now time.Time) []RankedShop {
	weights, ok := scenarioWeights[scenario]
	if !ok {
		weights = scenarioWeights[ScenarioL1L2]
	}

	ranked := make([]RankedShop, 0, len(candidates))
	for _, c := range candidates {
		item := RankedShop{
			ShopID:      c.ShopID,
			ScoreSub:    Clamp(c.Score, 0, 100),
			DistanceSub: DistanceSubScore(c.DistanceMeters, maxRadiusMeters),
			PriceSub:    PriceSubScore(c.DeviationRate),
			ResponseSub: responseSubScore(c.AvgResponseSeconds),
		}

		total := item.ScoreSub*weights.score +
			item.DistanceSub*weights.distance +
			item.PriceSub*weights.price +
			item.ResponseSub*weights.response

		// 乘法扶持（非加法）：合规、头部资质/品牌、新店曝光
		boost := 1.0
		if c.ComplianceRate >= complianceBonusLine {
			boost *= 1.1
		}
		if c.QualificationClass == QualificationClassOne || c.IsBrand {
			boost *= 1.05
		}
		if now.Sub(c.CreatedAt) <= newShopBoostDays*24*time.Hour {
			boost *= 1.05
		}

		item.BoostMultiple = boost
		item.Total = total * boost
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}

// DistanceSubScore 线性距离子分：(maxRadius − distance) / maxRadius × 100，到界及以外为0
func DistanceSubScore(distanceMeters int, maxRadiusMeters int32) float64 {
	if maxRadiusMeters <= 0 || distanceMeters >= int(maxRadiusMeters) {
		return 0
	}
	if distanceMeters < 0 {
		distanceMeters = 0
	}
	return float64(int(maxRadiusMeters)-distanceMeters) / float64(maxRadiusMeters) * 100
}

// PriceSubScore 报价合理性子分：偏差率 ≤10% 满分，≥30% 0分，中间线性
func PriceSubScore(deviationRate float64) float64 {
	switch {
	case deviationRate <= deviationBonusLine:
		return 100
	case deviationRate >= deviationPenaltyLine:
		return 0
	default:
		return (deviationPenaltyLine - deviationRate) / (deviationPenaltyLine - deviationBonusLine) * 100
	}
}

func responseSubScore(avgSeconds int) float64 {
	switch {
	case avgSeconds <= 0:
		return 50 // 无响应数据给中位值，避免新店被压底
	case avgSeconds <= responseFullSeconds:
		return 100
	case avgSeconds >= responseZeroSeconds:
		return 0
	default:
		return float64(responseZeroSeconds-avgSeconds) / float64(responseZeroSeconds-responseFullSeconds) * 100
	}
}
