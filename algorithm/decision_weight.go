package algorithm

import (
	"math"
	"sort"
	"time"
)

// LikeService 点赞有效性与决策权重计算。纯函数集合，规则快照显式传入。
type LikeService struct {
	rules LikeRules
}

// NewLikeService 创建点赞计算器
func NewLikeService(rules LikeRules) *LikeService {
	return &LikeService{rules: rules}
}

// CapSessionSeconds 单次阅读会话封顶
func (s *LikeService) CapSessionSeconds(raw int32) int32 {
	if raw < 0 {
		return 0
	}
	if raw > s.rules.SessionCapSeconds {
		return s.rules.SessionCapSeconds
	}
	return raw
}

// CapLifetimeSeconds 读者-评价累计时长封顶：返回本次还能入账的秒数
func (s *LikeService) CapLifetimeSeconds(accumulated, incoming int32) int32 {
	if accumulated >= s.rules.LifetimeCapSeconds {
		return 0
	}
	room := s.rules.LifetimeCapSeconds - accumulated
	if incoming > room {
		return room
	}
	return incoming
}

// IsValidForBonus 点赞是否具备奖励资格：
// 累计有效阅读 ≥ 门槛（默认30秒）且点赞人信任权重 > 0
func (s *LikeService) IsValidForBonus(cumulativeReadSeconds int32, trustWeight float64) bool {
	return cumulativeReadSeconds >= s.rules.MinReadSeconds && trustWeight > 0
}

// VehicleMatch 车辆匹配：点赞人自有车辆与被评订单车辆的车牌精确相等，二值判定不做模糊
func VehicleMatch(likerPlate, reviewedPlate string) bool {
	return likerPlate != "" && likerPlate == reviewedPlate
}

// PostVerifyInput 购后验证赞的判定输入
type PostVerifyInput struct {
	LikedAt             time.Time  // 点赞时间
	OwnOrderCompletedAt *time.Time // 点赞人自己订单的完成时间
	OwnOrderPlacedAt    *time.Time // 该订单的下单时间
	LastReadBeforeOrder *time.Time // 下单前最近一次阅读目标评价的时间
	OwnOrderBrand       string     // 点赞人订单品牌
	ReviewedBrand       string     // 被评订单品牌
}

// ClassifyLike 判定点赞类型。满足全部三个条件记 post_verify（决策影响证据）：
// 1) 点赞发生在自有订单完成后的窗口内（默认30天）
// 2) 下单前窗口内（默认7天）读过目标评价
// 3) 品牌一致
func (s *LikeService) ClassifyLike(input PostVerifyInput) string {
	if input.OwnOrderCompletedAt == nil || input.OwnOrderPlacedAt == nil || input.LastReadBeforeOrder == nil {
		return LikeKindNormal
	}

	window := time.Duration(s.rules.PostVerifyWindowDays) * 24 * time.Hour
	if input.LikedAt.Before(*input.OwnOrderCompletedAt) || input.LikedAt.Sub(*input.OwnOrderCompletedAt) > window {
		return LikeKindNormal
	}

	readWindow := time.Duration(s.rules.PreOrderReadWindowDays) * 24 * time.Hour
	readGap := input.OwnOrderPlacedAt.Sub(*input.LastReadBeforeOrder)
	if readGap < 0 || readGap > readWindow {
		return LikeKindNormal
	}

	if input.OwnOrderBrand == "" || input.OwnOrderBrand != input.ReviewedBrand {
		return LikeKindNormal
	}

	return LikeKindPostVerify
}

// DecisionWeightInput 决策权重四因子输入
type DecisionWeightInput struct {
	HoursBetween float64 // 点赞到下单的小时数
	ReadSeconds  int32   // 累计有效阅读秒数
	PlateMatch   bool    // 车牌精确匹配
	BrandMatch   bool    // 品牌匹配
	IsPremium    bool    // 被赞评价是否优质档
}

// DecisionWeight 四因子阶梯乘积：时间 × 停留 × 匹配 × 内容价值。
// 用于估计该赞对后续成交的影响程度，按权重比例分转化奖金池。
func (s *LikeService) DecisionWeight(input DecisionWeightInput) float64 {
	return timeWeight(input.HoursBetween) *
		s.StaticDecisionWeight(input)
}

// StaticDecisionWeight 点赞时即可确定的三因子乘积：停留 × 匹配 × 内容价值。
// 时效因子要等成交才知道点赞距下单多久，由 ConversionWeight 在归因时补乘。
func (s *LikeService) StaticDecisionWeight(input DecisionWeightInput) float64 {
	return dwellWeight(input.ReadSeconds) *
		matchWeight(input.PlateMatch, input.BrandMatch) *
		contentValueWeight(input.IsPremium)
}

// ConversionWeight 成交归因时的完整四因子权重：
// 冻结在点赞行上的静态权重 × 点赞到下单间隔的时效因子
func (s *LikeService) ConversionWeight(staticWeight float64, likedAt, orderPlacedAt time.Time) float64 {
	return staticWeight * timeWeight(orderPlacedAt.Sub(likedAt).Hours())
}

// timeWeight 越临近下单影响越大
func timeWeight(hours float64) float64 {
	switch {
	case hours < 0:
		return 0
	case hours <= 24:
		return 1.0
	case hours <= 72:
		return 0.8
	case hours <= 168:
		return 0.5
	default:
		return 0.2
	}
}

// dwellWeight 阅读越久权重越高，不足有效门槛记0
func dwellWeight(seconds int32) float64 {
	switch {
	case seconds >= 120:
		return 1.2
	case seconds >= 60:
		return 1.0
	case seconds >= 30:
		return 0.8
	default:
		return 0
	}
}

// matchWeight 车牌精确匹配 > 品牌匹配 > 无匹配
func matchWeight(plateMatch, brandMatch bool) float64 {
	switch {
	case plateMatch:
		return 1.5
	case brandMatch:
		return 1.2
	default:
		return 1.0
	}
}

func contentValueWeight(isPremium bool) float64 {
	if isPremium {
		return 1.5
	}
	return 1.0
}

// LikeContribution 参与分池的点赞
type LikeContribution struct {
	LikeID int64
	UserID int64
	Weight float64
}

// PoolShare 分池结果
type PoolShare struct {
	LikeID int64
	UserID int64
	Amount int64
}

// SplitConversionPool 按权重比例把转化奖金池分给贡献最大的若干个赞
// （默认前10）。向下取整，尾差归权重最高者，保证分完不超池。
func (s *LikeService) SplitConversionPool(pool int64, contributions []LikeContribution) []PoolShare {
	if pool <= 0 || len(contributions) == 0 {
		return nil
	}

	sorted := make([]LikeContribution, len(contributions))
	copy(sorted, contributions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	top := s.rules.TopContributors
	if top <= 0 || top > len(sorted) {
		top = len(sorted)
	}
	sorted = sorted[:top]

	var weightSum float64
	for _, c := range sorted {
		weightSum += c.Weight
	}
	if weightSum <= 0 {
		return nil
	}

	shares := make([]PoolShare, 0, len(sorted))
	var allocated int64
	for _, c := range sorted {
		amount := int64(math.Floor(float64(pool) * c.Weight / weightSum))
		shares = append(shares, PoolShare{LikeID: c.LikeID, UserID: c.UserID, Amount: amount})
		allocated += amount
	}
	if len(shares) > 0 {
		shares[0].Amount += pool - allocated
	}
	return shares
}
