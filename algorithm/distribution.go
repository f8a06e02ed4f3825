package algorithm

import "sort"

// MatchScoreInput 店铺匹配分输入
type MatchScoreInput struct {
	ShopScore         float64         // 店铺口碑分 0-100
	Level             ComplexityLevel // 竞价单最高复杂度
	DeviationRate     float64         // 店铺报价偏差率 0-100
	HasSameProject    bool            // 近90天是否有同类项目完单
	TopComplexityHit  bool            // 历史完单最高复杂度是否命中本单最高复杂度项目
}

// MatchScore 计算店铺对一张竞价单的匹配分：
// 口碑分×场景权重 + 偏差率项(0-20) + 同类项目优先加分 + 响应就绪固定项
func MatchScore(input MatchScoreInput, rules DistributionRules) float64 {
	scoreWeight := rules.ScoreWeightLow
	if input.Level.IsHigh() {
		scoreWeight = rules.ScoreWeightHigh
	}
	score := Clamp(input.ShopScore, 0, 100) * scoreWeight

	// 偏差率越低得分越高，≥30% 记0
	dev := Clamp(input.DeviationRate, 0, deviationPenaltyLine)
	score += (1 - dev/deviationPenaltyLine) * rules.DeviationPenaltyMax

	if input.HasSameProject {
		if input.TopComplexityHit {
			score += rules.SameProjectBonusTop
		} else {
			score += rules.SameProjectBonusBase
		}
	}

	score += rules.ResponseReadiness
	return score
}

// TierCandidate 参与梯队划分的店铺
type TierCandidate struct {
	ShopID         int64
	MatchScore     float64
	ComplianceRate float64
	IsNewShop      bool // 新店豁免合规率门槛（按100计）
}

// TierAssignment 梯队划分结果
type TierAssignment struct {
	ShopID     int64
	Tier       int16
	MatchScore float64
}

// AssignTiers 把候选店铺划入三个可见性梯队：
// 一梯队：匹配分 ≥ Tier1ScoreMin 且合规率 ≥ Tier1ComplianceMin（新店按100）
// 二梯队：匹配分落在 [Tier2ScoreMin, Tier1ScoreMin) 且合规率 ≥ Tier2ComplianceMin
// 其余进三梯队，人数封顶 Tier3MaxShops。
// 各梯队内按匹配分降序。
func AssignTiers(candidates []TierCandidate, rules DistributionRules) []TierAssignment {
	assignments := make([]TierAssignment, 0, len(candidates))

	var tier3 []TierAssignment
	for _, c := range candidates {
		compliance := c.ComplianceRate
		if c.IsNewShop {
			compliance = 100
		}

		var tier int16
		switch {
		case c.MatchScore >= rules.Tier1ScoreMin && compliance >= rules.Tier1ComplianceMin:
			tier = 1
		case c.MatchScore >= rules.Tier2ScoreMin && c.MatchScore < rules.Tier1ScoreMin && compliance >= rules.Tier2ComplianceMin:
			tier = 2
		default:
			tier = 3
		}

		a := TierAssignment{ShopID: c.ShopID, Tier: tier, MatchScore: c.MatchScore}
		if tier == 3 {
			tier3 = append(tier3, a)
		} else {
			assignments = append(assignments, a)
		}
	}

	// 三梯队封顶，留分数最高的
	sort.SliceStable(tier3, func(i, j int) bool { return tier3[i].MatchScore > tier3[j].MatchScore })
	if rules.Tier3MaxShops > 0 && len(tier3) > rules.Tier3MaxShops {
		tier3 = tier3[:rules.Tier3MaxShops]
	}
	assignments = append(assignments, tier3...)

	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].Tier != assignments[j].Tier {
			return assignments[i].Tier < assignments[j].Tier
		}
		return assignments[i].MatchScore > assignments[j].MatchScore
	})
	return assignments
}

// NotifyLimit 实际通知的店铺数上限：L1/L2 较少，L3/L4 放宽
func NotifyLimit(level ComplexityLevel, rules DistributionRules) int {
	if level.IsHigh() {
		return rules.NotifyCapHigh
	}
	return rules.NotifyCapLow
}

// CapForNotification 按梯队优先截取要通知的店铺（一梯队先装满）
func CapForNotification(assignments []TierAssignment, limit int) []TierAssignment {
	if limit <= 0 || len(assignments) <= limit {
		return assignments
	}
	// assignments 已按（梯队,分数）有序
	return assignments[:limit]
}

// QualificationAllowed 资质-复杂度准入矩阵：
// L4 仅一类资质；L3 排除三类；L1/L2 三类店需声明的服务类目与需求项目文本匹配。
func QualificationAllowed(class string, level ComplexityLevel, categoriesMatch bool) bool {
	switch level {
	case ComplexityL4:
		return class == QualificationClassOne
	case ComplexityL3:
		return class == QualificationClassOne || class == QualificationClassTwo
	default:
		if class == QualificationClassThree {
			return categoriesMatch
		}
		return class == QualificationClassOne || class == QualificationClassTwo
	}
}

// TextOverlap 两组项目文本是否存在交叠（子串包含，任一方向）
func TextOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == "" || y == "" {
				continue
			}
			if containsFold(x, y) || containsFold(y, x) {
				return true
			}
		}
	}
	return false
}
