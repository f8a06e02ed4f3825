// Package algorithm 实现撮合、评分与激励结算引擎的核心计算：
// 竞价分发、店铺口碑分、奖励计算、点赞决策权重等。
// 纯计算部分不依赖存储，便于测试和升级。
package algorithm

// ComplexityLevel 维修复杂度等级 L1-L4
type ComplexityLevel int16

const (
	ComplexityL1 ComplexityLevel = 1 // 轻微（补漆、换件等）
	ComplexityL2 ComplexityLevel = 2 // 一般（钣金、局部结构）
	ComplexityL3 ComplexityLevel = 3 // 较重（结构件、切割焊接）
	ComplexityL4 ComplexityLevel = 4 // 重大（大梁校正、全车骨架）
)

// IsHigh L3/L4 视为高复杂度
func (l ComplexityLevel) IsHigh() bool {
	return l >= ComplexityL3
}

// Valid 等级是否在 L1-L4 范围内
func (l ComplexityLevel) Valid() bool {
	return l >= ComplexityL1 && l <= ComplexityL4
}

// TrustTier 账号信任层级
type TrustTier string

const (
	TrustTierHighRisk     TrustTier = "high_risk"     // 黑名单/高危，权重0
	TrustTierNewUser      TrustTier = "new_user"      // 新用户，权重0.3
	TrustTierNormalActive TrustTier = "normal_active" // 普通活跃，权重1.0
	TrustTierCoreTrusted  TrustTier = "core_trusted"  // 核心可信，权重2.0
)

// Weight 返回信任层级对应的评价/点赞权重
func (t TrustTier) Weight() float64 {
	switch t {
	case TrustTierCoreTrusted:
		return 2.0
	case TrustTierNormalActive:
		return 1.0
	case TrustTierNewUser:
		return 0.3
	default:
		return 0
	}
}

// 维修资质类别（对应机动车维修经营一类/二类/三类）
const (
	QualificationClassOne   = "class_one"
	QualificationClassTwo   = "class_two"
	QualificationClassThree = "class_three"
)

// 车辆价位档
const (
	VehicleTierLow  = "low"
	VehicleTierMid  = "mid"
	VehicleTierHigh = "high"
)

// RankScenario 排序场景
type RankScenario string

const (
	ScenarioL1L2  RankScenario = "L1L2"  // 低复杂度需求
	ScenarioL3L4  RankScenario = "L3L4"  // 高复杂度需求
	ScenarioBrand RankScenario = "brand" // 品牌店浏览
)

// 点赞类型
const (
	LikeKindNormal     = "normal"
	LikeKindPostVerify = "post_verify" // 购后验证赞（先读评价、后下单、再回赞）
)

// 内容质量档
const (
	QualityNormal  = "normal"
	QualityPremium = "premium"
)

// Location 地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Clamp 把 v 限制在 [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampInt64 把 v 限制在 [min, max]
func ClampInt64(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
