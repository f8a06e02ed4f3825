package algorithm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
)

// BiddingDistributor 竞价分发器：筛选候选店铺、算匹配分、划梯队并落库。
// 一梯队同步通知，二三梯队由店铺拉单时惰性放开 + 周期扫描补发。
type BiddingDistributor struct {
	store db.Store
	rules *RuleSource
}

// NewBiddingDistributor 创建竞价分发器
func NewBiddingDistributor(store db.Store, rules *RuleSource) *BiddingDistributor {
	return &BiddingDistributor{store: store, rules: rules}
}

// DistributeResult 一轮分发的结果
type DistributeResult struct {
	RadiusMeters int32
	Assignments  []db.BiddingAssignment
	NotifiedTier1 int
}

// Distribute 对一张竞价单执行完整分发：
// 候选不足最小家数时按增长率扩圈，直到达标或触到半径上限。
func (d *BiddingDistributor) Distribute(ctx context.Context, bidding db.Bidding) (DistributeResult, error) {
	rules := d.rules.Current(ctx)
	level := ComplexityLevel(bidding.ComplexityLevel)

	radius := bidding.SearchRadiusMeters
	var candidates []TierCandidate
	for {
		shops, err := d.candidateShops(ctx, bidding, radius, rules)
		if err != nil {
			return DistributeResult{}, err
		}
		candidates = shops

		if len(candidates) >= rules.Distribution.MinShopCount || radius >= rules.Distribution.MaxRadiusMeters {
			break
		}
		radius = GrowRadius(radius, rules.Distribution.RadiusGrowthRate, rules.Distribution.MaxRadiusMeters)
	}

	assignments := AssignTiers(candidates, rules.Distribution)
	limit := NotifyLimit(level, rules.Distribution)
	notified := CapForNotification(assignments, limit)

	notifySet := make(map[int64]bool, len(notified))
	for _, a := range notified {
		if a.Tier == 1 {
			notifySet[a.ShopID] = true
		}
	}

	inputs := make([]db.AssignmentInput, 0, len(assignments))
	for _, a := range assignments {
		inputs = append(inputs, db.AssignmentInput{
			ShopID:     a.ShopID,
			Tier:       a.Tier,
			MatchScore: a.MatchScore,
			Notify:     notifySet[a.ShopID],
		})
	}

	result, err := d.store.DistributeBiddingTx(ctx, db.DistributeBiddingTxParams{
		BiddingID:          bidding.ID,
		SearchRadiusMeters: radius,
		Assignments:        inputs,
		NotifyTitle:        "新竞价单",
		NotifyBody:         fmt.Sprintf("附近有新的维修竞价（复杂度L%d），请尽快报价", bidding.ComplexityLevel),
	})
	if err != nil {
		return DistributeResult{}, fmt.Errorf("persist distribution: %w", err)
	}

	return DistributeResult{
		RadiusMeters:  radius,
		Assignments:   result.Assignments,
		NotifiedTier1: len(result.Notifications),
	}, nil
}

// candidateShops 跑一遍完整筛选管道并算好匹配分
func (d *BiddingDistributor) candidateShops(ctx context.Context, bidding db.Bidding, radius int32, rules RuleSet) ([]TierCandidate, error) {
	center := Location{Longitude: bidding.Longitude, Latitude: bidding.Latitude}
	box := BoxAround(center, radius)

	shops, err := d.store.ListShopsInBox(ctx, db.ListShopsInBoxParams{
		MinLongitude: box.MinLng,
		MaxLongitude: box.MaxLng,
		MinLatitude:  box.MinLat,
		MaxLatitude:  box.MaxLat,
	})
	if err != nil {
		return nil, fmt.Errorf("list shops in box: %w", err)
	}

	level := ComplexityLevel(bidding.ComplexityLevel)
	now := time.Now()
	newShopCutoff := now.AddDate(0, 0, -rules.Distribution.NewShopExemptDays)
	violationCutoff := now.AddDate(0, 0, -rules.Distribution.ViolationLookbackDays)
	historyCutoff := now.AddDate(0, 0, -rules.Distribution.SameProjectDays)

	var candidates []TierCandidate
	for _, shop := range shops {
		if HaversineDistance(center, Location{Longitude: shop.Longitude, Latitude: shop.Latitude}) > int(radius) {
			continue
		}

		isNewShop := shop.CreatedAt.After(newShopCutoff)

		// 严重违规回溯
		violations, err := d.store.CountShopViolationsSince(ctx, db.CountShopViolationsSinceParams{
			ShopID:      shop.ID,
			MinSeverity: 4,
			Since:       violationCutoff,
		})
		if err != nil {
			// 读路径故障 fail open：当无违规处理
			log.Warn().Err(err).Int64("shop_id", shop.ID).Msg("violation lookback failed, failing open")
		} else if violations > 0 {
			continue
		}

		// 合规率地板，新店豁免
		if !isNewShop && shop.ComplianceRate < rules.Distribution.ComplianceFloor {
			continue
		}

		// 资质-复杂度准入
		categoriesMatch := CategoriesMatchItems(shop.ServiceCategories, bidding.Items)
		if !QualificationAllowed(shop.QualificationClass, level, categoriesMatch) {
			continue
		}

		// 近90天同类项目完单史，新店豁免
		hasSameProject := false
		topComplexityHit := false
		if !isNewShop {
			orders, err := d.store.ListShopCompletedOrdersSince(ctx, db.ListShopCompletedOrdersSinceParams{
				ShopID: shop.ID,
				Since:  historyCutoff,
			})
			if err != nil {
				return nil, fmt.Errorf("list shop history: %w", err)
			}
			var topLevel int16
			for _, o := range orders {
				if !TextOverlap(o.Items, bidding.Items) {
					continue
				}
				hasSameProject = true
				if o.ComplexityLevel > topLevel {
					topLevel = o.ComplexityLevel
				}
			}
			if !hasSameProject {
				continue
			}
			topComplexityHit = topLevel >= bidding.ComplexityLevel
		}

		score := MatchScore(MatchScoreInput{
			ShopScore:        shop.Score,
			Level:            level,
			DeviationRate:    shop.DeviationRate,
			HasSameProject:   hasSameProject,
			TopComplexityHit: topComplexityHit,
		}, rules.Distribution)

		candidates = append(candidates, TierCandidate{
			ShopID:         shop.ID,
			MatchScore:     score,
			ComplianceRate: shop.ComplianceRate,
			IsNewShop:      isNewShop,
		})
	}

	return candidates, nil
}
