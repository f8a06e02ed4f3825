package algorithm

// RuleSet 运营可调规则快照。
// 每次计算显式传入一份快照，订单/评价上记录生效版本号，
// 历史计算可按版本号回放，避免隐式全局配置导致结果不可复现。
type RuleSet struct {
	Version int64 `json:"version"`

	Distribution DistributionRules `json:"distribution"`
	Reward       RewardRules       `json:"reward"`
	Review       ReviewRules       `json:"review"`
	Like         LikeRules         `json:"like"`
	Settlement   SettlementRules   `json:"settlement"`
}

// DistributionRules 竞价分发规则
type DistributionRules struct {
	MinShopCount          int     `json:"min_shop_count"`          // 半径内至少要有的店铺数，不足则扩半径
	RadiusGrowthRate      float64 `json:"radius_growth_rate"`      // 每轮扩大倍率
	MaxRadiusMeters       int32   `json:"max_radius_meters"`       // 半径硬上限
	Tier1WindowMinutes    int     `json:"tier1_window_minutes"`    // 一梯队独占窗口
	ComplianceFloor       float64 `json:"compliance_floor"`        // 合规率下限（新店豁免）
	NewShopExemptDays     int     `json:"new_shop_exempt_days"`    // 新店豁免天数
	ViolationLookbackDays int     `json:"violation_lookback_days"` // 4级违规回溯窗口
	SameProjectDays       int     `json:"same_project_days"`       // 同类项目历史回溯天数
	NotifyCapLow          int     `json:"notify_cap_low"`          // L1/L2 通知上限
	NotifyCapHigh         int     `json:"notify_cap_high"`         // L3/L4 通知上限
	Tier1ScoreMin         float64 `json:"tier1_score_min"`         // 一梯队匹配分门槛
	Tier1ComplianceMin    float64 `json:"tier1_compliance_min"`    // 一梯队合规率门槛
	Tier2ScoreMin         float64 `json:"tier2_score_min"`         // 二梯队匹配分下限
	Tier2ComplianceMin    float64 `json:"tier2_compliance_min"`    // 二梯队合规率门槛
	Tier3MaxShops         int     `json:"tier3_max_shops"`         // 三梯队店铺上限
	Tier3MinActiveQuotes  int     `json:"tier3_min_active_quotes"` // 报价少于该数才放开三梯队
	ScoreWeightLow        float64 `json:"score_weight_low"`        // L1/L2 口碑分权重
	ScoreWeightHigh       float64 `json:"score_weight_high"`       // L3/L4 口碑分权重
	SameProjectBonusTop   float64 `json:"same_project_bonus_top"`  // 历史最高复杂度命中加分
	SameProjectBonusBase  float64 `json:"same_project_bonus_base"` // 普通同类项目加分
	ResponseReadiness     float64 `json:"response_readiness"`      // 响应就绪固定项
	DeviationPenaltyMax   float64 `json:"deviation_penalty_max"`   // 偏差率惩罚项满分
}

// RewardRules 奖励计算规则
type RewardRules struct {
	// 按复杂度 L1-L4 索引（下标 level-1）
	FixedReward    [4]int64   `json:"fixed_reward"`     // 固定奖励（分）
	BaseFloatRatio [4]float64 `json:"base_float_ratio"` // 基础浮动比例
	ItemCaps       [4]int64   `json:"item_caps"`        // 单项奖励上限（分）

	// 车辆价位档校准增量 calibration[vehicleTier][level-1]
	CalibrationDelta map[string][4]float64 `json:"calibration_delta"`

	LowEndL4Amplifier   float64 `json:"low_end_l4_amplifier"`   // 低价车 L4 放大系数
	LowVehicleCapUplift float64 `json:"low_vehicle_cap_uplift"` // 低价车上限上浮

	// 订单金额档位（分），升序；落入第 i 档则 orderTier = i+1
	OrderTierBounds [4]int64 `json:"order_tier_bounds"`
	OrderTierCaps   [4]int64 `json:"order_tier_caps"`   // 每档奖励上限（分）

	CommissionRates    [4]float64 `json:"commission_rates"`     // 每档基础佣金率
	CommissionShiftPct float64    `json:"commission_shift_pct"` // 不合规/违规时的佣金率偏移
	CommissionFloorMul float64    `json:"commission_floor_mul"` // 佣金率乘法下限
	CommissionCeilMul  float64    `json:"commission_ceil_mul"`  // 佣金率乘法上限
	ComplianceRedLine  float64    `json:"compliance_red_line"`  // 奖励不得超过佣金的比例红线
	PremiumBonusRate   float64    `json:"premium_bonus_rate"`   // 评价升为优质档时补发的奖励差额比例
}

// ReviewRules 评价内容规则
type ReviewRules struct {
	FillerWords        []string `json:"filler_words"`         // 纯灌水词表
	PremiumPhotosLow   int      `json:"premium_photos_low"`   // L1/L2 优质内容照片门槛
	PremiumPhotosHigh  int      `json:"premium_photos_high"`  // L3/L4 优质内容照片门槛
	PremiumTextMinLen  int      `json:"premium_text_min_len"` // 优质内容文字下限
	SpecificKeywords   []string `json:"specific_keywords"`    // 价格/过程特异性关键词
	VisibilityTrustMin float64  `json:"visibility_trust_min"` // 低于该信任权重的评价不参与计分
}

// LikeRules 点赞与决策权重规则
type LikeRules struct {
	MinReadSeconds         int32   `json:"min_read_seconds"`           // 有效点赞的累计阅读门槛
	SessionCapSeconds      int32   `json:"session_cap_seconds"`        // 单次会话封顶
	LifetimeCapSeconds     int32   `json:"lifetime_cap_seconds"`       // 读者-评价终身封顶
	PostVerifyWindowDays   int     `json:"post_verify_window_days"`    // 自有订单完成后的回赞窗口
	PreOrderReadWindowDays int     `json:"pre_order_read_window_days"` // 下单前的阅读回溯窗口
	ConversionPoolRate     float64 `json:"conversion_pool_rate"`       // 转化奖金池占佣金比例
	TopContributors        int     `json:"top_contributors"`           // 参与分池的点赞数上限
}

// SettlementRules 月度结算规则
type SettlementRules struct {
	DeferredCapRate  float64 `json:"deferred_cap_rate"`  // 单评价延迟奖励累计占佣金上限
	TaxFreeThreshold int64   `json:"tax_free_threshold"` // 免税额度（分）
	TaxRate          float64 `json:"tax_rate"`           // 超额部分代扣率
	PostVerifyRate   float64 `json:"post_verify_rate"`   // 购后验证奖励占佣金比例
}

// DefaultRuleSet 默认规则（与运营初始配置一致）
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Version: 1,
		Distribution: DistributionRules{
			MinShopCount:          5,
			RadiusGrowthRate:      1.5,
			MaxRadiusMeters:       50000,
			Tier1WindowMinutes:    120,
			ComplianceFloor:       80,
			NewShopExemptDays:     30,
			ViolationLookbackDays: 90,
			SameProjectDays:       90,
			NotifyCapLow:          10,
			NotifyCapHigh:         15,
			Tier1ScoreMin:         80,
			Tier1ComplianceMin:    95,
			Tier2ScoreMin:         60,
			Tier2ComplianceMin:    85,
			Tier3MaxShops:         2,
			Tier3MinActiveQuotes:  3,
			ScoreWeightLow:        0.35,
			ScoreWeightHigh:       0.6,
			SameProjectBonusTop:   15,
			SameProjectBonusBase:  5,
			ResponseReadiness:     5,
			DeviationPenaltyMax:   20,
		},
		Reward: RewardRules{
			FixedReward:    [4]int64{500, 1500, 5000, 12000},
			BaseFloatRatio: [4]float64{0.005, 0.01, 0.02, 0.03},
			ItemCaps:       [4]int64{2000, 8000, 40000, 120000},
			CalibrationDelta: map[string][4]float64{
				VehicleTierLow:  {0, 0, 0.005, 0.01},
				VehicleTierMid:  {0, 0, 0, 0},
				VehicleTierHigh: {-0.002, -0.002, -0.005, -0.01},
			},
			LowEndL4Amplifier:   2.5,
			LowVehicleCapUplift: 1.2,
			OrderTierBounds:     [4]int64{300000, 1500000, 8000000, 20000000},
			OrderTierCaps:       [4]int64{3000, 15000, 80000, 200000},
			CommissionRates:     [4]float64{0.08, 0.06, 0.05, 0.04},
			CommissionShiftPct:  0.2,
			CommissionFloorMul:  0.5,
			CommissionCeilMul:   1.5,
			ComplianceRedLine:   0.8,
			PremiumBonusRate:    0.2,
		},
		Review: ReviewRules{
			FillerWords:        []string{"好", "不错", "很好", "可以", "赞", "好评", "棒"},
			PremiumPhotosLow:   3,
			PremiumPhotosHigh:  5,
			PremiumTextMinLen:  50,
			SpecificKeywords:   []string{"元", "报价", "工时", "配件", "原厂", "定损", "理赔", "流程", "天"},
			VisibilityTrustMin: 0,
		},
		Like: LikeRules{
			MinReadSeconds:         30,
			SessionCapSeconds:      180,
			LifetimeCapSeconds:     300,
			PostVerifyWindowDays:   30,
			PreOrderReadWindowDays: 7,
			ConversionPoolRate:     0.5,
			TopContributors:        10,
		},
		Settlement: SettlementRules{
			DeferredCapRate:  0.8,
			TaxFreeThreshold: 80000,
			TaxRate:          0.2,
			PostVerifyRate:   0.5,
		},
	}
}
