package algorithm

import (
	"errors"
	"math"
)

// RewardInput 奖励计算输入
type RewardInput struct {
	OrderAmount     int64           // 订单金额（分）
	Level           ComplexityLevel // 复杂度等级
	VehicleTier     string          // 车辆价位档 low/mid/high
	WasEscalated    bool            // 是否经升级流程改判过等级（改判单不吃低价车放大）
	IsCompliant     bool            // 店铺当前是否合规
	RecentViolation bool            // 店铺近期是否有违规记录
}

// RewardStage 奖励分期
type RewardStage struct {
	Stage        int     `json:"stage"`         // 期数，从1开始
	Ratio        float64 `json:"ratio"`         // 占总奖励比例
	Amount       int64   `json:"amount"`        // 金额（分）
	OffsetMonths int     `json:"offset_months"` // 相对评价提交月的触发偏移
}

// RewardResult 奖励计算结果（下单时落快照，后续不再重算）
type RewardResult struct {
	Preview          int64           `json:"preview"`           // 税前奖励总额（分）
	OrderTier        int16           `json:"order_tier"`        // 订单金额档 1-4
	Level            ComplexityLevel `json:"level"`             // 复杂度等级
	VehicleTier      string          `json:"vehicle_tier"`      // 车辆价位档
	CommissionRate   float64         `json:"commission_rate"`   // 实际佣金率
	CommissionAmount int64           `json:"commission_amount"` // 佣金金额（分）
	Stages           []RewardStage   `json:"stages"`            // 分期拆分
}

// RewardCalculator 订单奖励计算器
type RewardCalculator struct {
	rules RewardRules
}

// NewRewardCalculator 创建奖励计算器
func NewRewardCalculator(rules RewardRules) *RewardCalculator {
	return &RewardCalculator{rules: rules}
}

// Calculate 计算订单奖励预览。
// 三道上限依次收口：单项上限 → 订单档上限 → 佣金红线。
func (c *RewardCalculator) Calculate(input RewardInput) (RewardResult, error) {
	if input.OrderAmount <= 0 {
		return RewardResult{}, errors.New("order amount must be positive")
	}
	if !input.Level.Valid() {
		return RewardResult{}, errors.New("invalid complexity level")
	}

	idx := int(input.Level) - 1
	orderTier := c.OrderTier(input.OrderAmount)

	// 基础项：固定奖励 + 金额 ×（基础比例 + 车价档校准）
	ratio := c.rules.BaseFloatRatio[idx]
	if delta, ok := c.rules.CalibrationDelta[input.VehicleTier]; ok {
		ratio += delta[idx]
	}
	reward := float64(c.rules.FixedReward[idx]) + float64(input.OrderAmount)*ratio

	// 低价车 L4 放大：仅限未经升级流程改判的单
	if input.Level == ComplexityL4 && input.VehicleTier == VehicleTierLow && !input.WasEscalated {
		reward *= c.rules.LowEndL4Amplifier
	}

	capUplift := 1.0
	if input.VehicleTier == VehicleTierLow {
		capUplift = c.rules.LowVehicleCapUplift
	}

	// 第一道：单项上限
	itemCap := float64(c.rules.ItemCaps[idx]) * capUplift
	reward = math.Min(reward, itemCap)

	// 第二道：订单金额档上限
	tierCap := float64(c.rules.OrderTierCaps[orderTier-1]) * capUplift
	reward = math.Min(reward, tierCap)

	// 第三道：佣金红线
	rate, commission := c.Commission(input.OrderAmount, orderTier, input.IsCompliant, input.RecentViolation)
	reward = math.Min(reward, float64(commission)*c.rules.ComplianceRedLine)

	preview := int64(math.Floor(reward))
	if preview < 0 {
		preview = 0
	}

	return RewardResult{
		Preview:          preview,
		OrderTier:        orderTier,
		Level:            input.Level,
		VehicleTier:      input.VehicleTier,
		CommissionRate:   rate,
		CommissionAmount: commission,
		Stages:           c.splitStages(preview, orderTier),
	}, nil
}

// PremiumUpgradeDiff 内容升档差额：评价改判为优质档后，
// 按订单奖励总额的固定比例补发差额（分），向下取整。
func (c *RewardCalculator) PremiumUpgradeDiff(rewardPreview int64) int64 {
	if rewardPreview <= 0 {
		return 0
	}
	return int64(math.Floor(float64(rewardPreview) * c.rules.PremiumBonusRate))
}

// OrderTier 按订单金额落档，1-4
func (c *RewardCalculator) OrderTier(amount int64) int16 {
	for i, bound := range c.rules.OrderTierBounds {
		if amount <= bound {
			return int16(i + 1)
		}
	}
	return int16(len(c.rules.OrderTierBounds))
}

// Commission 计算实际佣金率与佣金金额。
// 不合规或近期违规时佣金率上浮，乘数被限制在 [floor, ceil]。
func (c *RewardCalculator) Commission(amount int64, orderTier int16, isCompliant, recentViolation bool) (float64, int64) {
	rate := c.rules.CommissionRates[orderTier-1]

	multiplier := 1.0
	if !isCompliant {
		multiplier += c.rules.CommissionShiftPct
	}
	if recentViolation {
		multiplier += c.rules.CommissionShiftPct
	}
	multiplier = Clamp(multiplier, c.rules.CommissionFloorMul, c.rules.CommissionCeilMul)

	rate *= multiplier
	commission := int64(math.Floor(float64(amount) * rate))
	return rate, commission
}

// splitStages 按订单档拆分奖励发放节奏：
// 档1/2 一次性到账；档3 按 70/30 两期；档4 按 50/30/20 三期（提交/1个月/3个月）。
// 尾差归入首期，保证各期之和恒等于总额。
func (c *RewardCalculator) splitStages(total int64, orderTier int16) []RewardStage {
	var ratios []float64
	var offsets []int

	switch {
	case orderTier <= 2:
		ratios, offsets = []float64{1.0}, []int{0}
	case orderTier == 3:
		ratios, offsets = []float64{0.7, 0.3}, []int{0, 1}
	default:
		ratios, offsets = []float64{0.5, 0.3, 0.2}, []int{0, 1, 3}
	}

	stages := make([]RewardStage, len(ratios))
	var allocated int64
	for i := len(ratios) - 1; i >= 1; i-- {
		amount := int64(math.Floor(float64(total) * ratios[i]))
		stages[i] = RewardStage{Stage: i + 1, Ratio: ratios[i], Amount: amount, OffsetMonths: offsets[i]}
		allocated += amount
	}
	stages[0] = RewardStage{Stage: 1, Ratio: ratios[0], Amount: total - allocated, OffsetMonths: offsets[0]}
	return stages
}
