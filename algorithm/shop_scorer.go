package algorithm

import "time"

// 合规率/偏差率的加减分线
const (
	complianceBonusLine   = 95.0
	compliancePenaltyLine = 80.0
	deviationBonusLine    = 10.0
	deviationPenaltyLine  = 30.0
)

// 优质档内容权重因子（普通档为1.0）
const premiumContentWeight = 3.0

// ReviewWeightInput 单条评价权重计算输入
type ReviewWeightInput struct {
	Level            ComplexityLevel // 订单复杂度
	IsInsuranceClaim bool            // 是否保险事故单
	IsPremium        bool            // 内容是否优质档
	Rating           int16           // 评分 1-5
	TrustWeight      float64         // 评价人信任权重
	ComplianceRate   float64         // 店铺当时合规率（0-100）
}

// ScoredReview 参与口碑分聚合的评价（权重用落库的冻结值）
type ScoredReview struct {
	Rating    int16
	Weight    float64 // 冻结的基础权重（不含时间衰减）
	CreatedAt time.Time
	Excluded  bool // 商户申诉「问题已解决」被支持的评价，整条剔除
}

// ShopFacts 店铺侧硬指标
type ShopFacts struct {
	QualificationClass string  // class_one / class_two / class_three
	ComplianceRate     float64 // 0-100
	DeviationRate      float64 // 报价偏差率，0-100
}

// ShopScorer 店铺口碑分计算器
type ShopScorer struct{}

// NewShopScorer 创建口碑分计算器
func NewShopScorer() *ShopScorer {
	return &ShopScorer{}
}

// orderWeight 复杂度基础权重表，保险事故单翻倍
func orderWeight(level ComplexityLevel, isInsuranceClaim bool) float64 {
	var w float64
	switch level {
	case ComplexityL1:
		w = 0.2
	case ComplexityL2:
		w = 1.0
	case ComplexityL3:
		w = 3.0
	case ComplexityL4:
		w = 6.0
	default:
		w = 1.0
	}
	if isInsuranceClaim {
		w *= 2
	}
	return w
}

// ComputeReviewWeight 计算评价的基础权重（不含时间衰减）。
// 该值计算一次后冻结到评价行上，后续重算口碑分直接复用，
// 店铺合规率等后续变化不再回溯影响已冻结的权重。
func (s *ShopScorer) ComputeReviewWeight(input ReviewWeightInput) float64 {
	contentWeight := 1.0
	if input.IsPremium {
		contentWeight = premiumContentWeight
	}
	// 负面评价刻意放大：差评比好评更该被看见
	if input.Rating <= NegativeRatingMax {
		if input.Level.IsHigh() {
			contentWeight *= 2.0
		} else {
			contentWeight *= 1.5
		}
	}

	complianceCoef := 1.0
	if input.ComplianceRate >= complianceBonusLine {
		complianceCoef = 1.2
	}

	return orderWeight(input.Level, input.IsInsuranceClaim) * contentWeight * input.TrustWeight * complianceCoef
}

// UpgradeWeight 评价内容从普通档改判为优质档后的新冻结权重。
// 原冻结权重里内容因子是1.0，改判只需补乘优质档因子，
// 信任、合规等当年因子保持原值不回溯。
func (s *ShopScorer) UpgradeWeight(frozenWeight float64) float64 {
	return frozenWeight * premiumContentWeight
}

// TimeDecay 四段时间衰减：3个月内1.0，6个月内0.5，12个月内0.2，更久为0。
// 超过一年的评价从实时口碑分中完全退役，但不删除。
func TimeDecay(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	switch {
	case age <= 3*30*24*time.Hour:
		return 1.0
	case age <= 6*30*24*time.Hour:
		return 0.5
	case age < 12*30*24*time.Hour:
		return 0.2
	default:
		return 0
	}
}

// ComputeScore 聚合店铺口碑分：
// score = clamp(0, 100, 加权平均评分 × 20 + 硬性加减分)
// 被剔除（申诉支持）和衰减为0的评价不参与；没有有效评价时只吃硬性分的基准。
func (s *ShopScorer) ComputeScore(reviews []ScoredReview, facts ShopFacts, now time.Time) float64 {
	var weightSum, ratingSum float64
	for _, r := range reviews {
		if r.Excluded {
			continue
		}
		w := r.Weight * TimeDecay(r.CreatedAt, now)
		if w <= 0 {
			continue
		}
		weightSum += w
		ratingSum += w * float64(r.Rating)
	}

	base := 0.0
	if weightSum > 0 {
		base = ratingSum / weightSum * 20
	}

	return Clamp(base+s.HardBonus(facts), 0, 100)
}

// HardBonus 资质/合规/偏差的固定加减分
func (s *ShopScorer) HardBonus(facts ShopFacts) float64 {
	bonus := 0.0

	switch facts.QualificationClass {
	case QualificationClassOne:
		bonus += 10
	case QualificationClassTwo:
		bonus += 5
	}

	if facts.ComplianceRate >= complianceBonusLine {
		bonus += 10
	} else if facts.ComplianceRate < compliancePenaltyLine {
		bonus -= 20
	}

	if facts.DeviationRate <= deviationBonusLine {
		bonus += 5
	} else if facts.DeviationRate > deviationPenaltyLine {
		bonus -= 20
	}

	return bonus
}
