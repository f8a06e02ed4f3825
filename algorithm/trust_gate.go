package algorithm

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
)

// TrustGate 账户信任门：黑名单拦截 + 信任档位判定。
// 只读，基础设施故障一律 fail open（不拦截、按新用户计），
// 用可用性换严格性，见 DESIGN.md 的取舍记录。
type TrustGate struct {
	store db.Store
}

// NewTrustGate 创建信任门
func NewTrustGate(store db.Store) *TrustGate {
	return &TrustGate{store: store}
}

// GateResult 信任门判定结果
type GateResult struct {
	Blocked bool
	Reason  string
	Tier    TrustTier
	Weight  float64
}

const (
	newUserWindowDays      = 7
	newUserMaxOrders       = 2
	coreTrustedMinOrders   = 10
	coreTrustedMinReviews  = 3
	normalActiveMinOrders  = 3
	normalActiveMinReviews = 2
)

// Evaluate 判定一个账户的信任档位，黑名单命中直接 high_risk 并拦截。
// 黑名单按用户ID、手机号、车牌、来源IP四个维度匹配。
func (g *TrustGate) Evaluate(ctx context.Context, user db.User, clientIP string) GateResult {
	count, err := g.store.CountBlacklistMatches(ctx, db.CountBlacklistMatchesParams{
		UserID: strconv.FormatInt(user.ID, 10),
		Phone:  user.Phone,
		Plate:  user.PlateNumber,
		Ip:     clientIP,
	})
	if err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("blacklist lookup failed, failing open")
		return GateResult{Tier: TrustTierNewUser, Weight: TrustTierNewUser.Weight()}
	}
	if count > 0 {
		return GateResult{Blocked: true, Reason: "blacklisted", Tier: TrustTierHighRisk, Weight: 0}
	}

	tier := ClassifyTrust(user.CreatedAt, int(user.CompletedOrders), int(user.ReviewCount), time.Now())
	return GateResult{Tier: tier, Weight: tier.Weight()}
}

// ClassifyTrust 档位晋升规则：
// 注册 7 天内且完单 ≤2 且零评价 → new_user；
// 完单 ≥10 且评价 ≥3 → core_trusted；
// 完单 ≥3 且评价 ≥2 → normal_active；其余 new_user。
func ClassifyTrust(createdAt time.Time, completedOrders, reviewCount int, now time.Time) TrustTier {
	accountAge := now.Sub(createdAt)
	if accountAge <= newUserWindowDays*24*time.Hour && completedOrders <= newUserMaxOrders && reviewCount == 0 {
		return TrustTierNewUser
	}
	if completedOrders >= coreTrustedMinOrders && reviewCount >= coreTrustedMinReviews {
		return TrustTierCoreTrusted
	}
	if completedOrders >= normalActiveMinOrders && reviewCount >= normalActiveMinReviews {
		return TrustTierNormalActive
	}
	return TrustTierNewUser
}
