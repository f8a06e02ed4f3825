package algorithm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewardCalculator_MidVehicleL2(t *testing.T) {
	// 订单金额 ¥4000（400000分）、L2、中档车、默认规则：
	// 订单档 = 2，奖励一次性到账
	calc := NewRewardCalculator(DefaultRuleSet().Reward)

	result, err := calc.Calculate(RewardInput{
		OrderAmount: 400000,
		Level:       ComplexityL2,
		VehicleTier: VehicleTierMid,
		IsCompliant: true,
	})
	require.NoError(t, err)

	require.Equal(t, int16(2), result.OrderTier)
	require.Len(t, result.Stages, 1)
	require.Equal(t, 1.0, result.Stages[0].Ratio)
	require.Equal(t, result.Preview, result.Stages[0].Amount)
	require.Equal(t, 0, result.Stages[0].OffsetMonths)

	// 基础项：1500 + 400000*0.01 = 5500，低于各道上限
	require.Equal(t, int64(5500), result.Preview)
}

func TestRewardCalculator_CommissionRedLine(t *testing.T) {
	rules := DefaultRuleSet().Reward
	calc := NewRewardCalculator(rules)

	inputs := []RewardInput{
		{OrderAmount: 250000, Level: ComplexityL1, VehicleTier: VehicleTierMid, IsCompliant: true},
		{OrderAmount: 1200000, Level: ComplexityL3, VehicleTier: VehicleTierHigh, IsCompliant: true},
		{OrderAmount: 5000000, Level: ComplexityL4, VehicleTier: VehicleTierLow, IsCompliant: false, RecentViolation: true},
		{OrderAmount: 30000000, Level: ComplexityL4, VehicleTier: VehicleTierMid, IsCompliant: true},
	}

	for _, input := range inputs {
		result, err := calc.Calculate(input)
		require.NoError(t, err)

		// 红线：奖励不超过佣金 × ComplianceRedLine
		redLine := int64(math.Floor(float64(result.CommissionAmount) * rules.ComplianceRedLine))
		require.LessOrEqual(t, result.Preview, redLine)

		// 订单档上限（低价车上浮1.2）
		uplift := 1.0
		if input.VehicleTier == VehicleTierLow {
			uplift = rules.LowVehicleCapUplift
		}
		tierCap := int64(float64(rules.OrderTierCaps[result.OrderTier-1]) * uplift)
		require.LessOrEqual(t, result.Preview, tierCap)
	}
}

func TestRewardCalculator_LowEndL4Amplifier(t *testing.T) {
	calc := NewRewardCalculator(DefaultRuleSet().Reward)

	base := RewardInput{
		OrderAmount: 600000,
		Level:       ComplexityL4,
		VehicleTier: VehicleTierLow,
		IsCompliant: true,
	}

	amplified, err := calc.Calculate(base)
	require.NoError(t, err)

	escalated := base
	escalated.WasEscalated = true
	plain, err := calc.Calculate(escalated)
	require.NoError(t, err)

	// 改判单不吃放大系数
	require.Greater(t, amplified.Preview, plain.Preview)
}

func TestRewardCalculator_StageSplit(t *testing.T) {
	calc := NewRewardCalculator(DefaultRuleSet().Reward)

	// 档4 订单：50/30/20 三期，期和恒等于总额
	result, err := calc.Calculate(RewardInput{
		OrderAmount: 10000000,
		Level:       ComplexityL4,
		VehicleTier: VehicleTierMid,
		IsCompliant: true,
	})
	require.NoError(t, err)
	require.Equal(t, int16(4), result.OrderTier)
	require.Len(t, result.Stages, 3)

	var sum int64
	for _, stage := range result.Stages {
		sum += stage.Amount
	}
	require.Equal(t, result.Preview, sum)
	require.Equal(t, []int{0, 1, 3}, []int{
		result.Stages[0].OffsetMonths,
		result.Stages[1].OffsetMonths,
		result.Stages[2].OffsetMonths,
	})
}

func TestRewardCalculator_CommissionShiftBounded(t *testing.T) {
	rules := DefaultRuleSet().Reward
	calc := NewRewardCalculator(rules)

	rate, _ := calc.Commission(1000000, 2, true, false)
	shifted, _ := calc.Commission(1000000, 2, false, true)

	require.Greater(t, shifted, rate)
	require.LessOrEqual(t, shifted, rules.CommissionRates[1]*rules.CommissionCeilMul)
}

func TestRewardCalculator_PremiumUpgradeDiff(t *testing.T) {
	calc := NewRewardCalculator(DefaultRuleSet().Reward)

	// 升档差额按奖励预估的 20% 补发，向下取整
	require.Equal(t, int64(300), calc.PremiumUpgradeDiff(1500))
	require.Equal(t, int64(19), calc.PremiumUpgradeDiff(99))
	require.Zero(t, calc.PremiumUpgradeDiff(0))
	require.Zero(t, calc.PremiumUpgradeDiff(-100))
}

func TestRewardCalculator_InvalidInput(t *testing.T) {
	calc := NewRewardCalculator(DefaultRuleSet().Reward)

	_, err := calc.Calculate(RewardInput{OrderAmount: 0, Level: ComplexityL1, VehicleTier: VehicleTierMid})
	require.Error(t, err)

	_, err = calc.Calculate(RewardInput{OrderAmount: 100, Level: ComplexityLevel(7), VehicleTier: VehicleTierMid})
	require.Error(t, err)
}
