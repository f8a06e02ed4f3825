package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/algorithm"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/worker"
)

type orderResponse struct {
	ID               int64                   `json:"id"`
	QuoteID          int64                   `json:"quote_id"`
	BiddingID        int64                   `json:"bidding_id"`
	ShopID           int64                   `json:"shop_id"`
	Amount           int64                   `json:"amount"`
	ComplexityLevel  int16                   `json:"complexity_level"`
	WasEscalated     bool                    `json:"was_escalated"`
	IsInsuranceClaim bool                    `json:"is_insurance_claim"`
	VehicleBrand     string                  `json:"vehicle_brand"`
	PlateNumber      string                  `json:"plate_number"`
	VehiclePriceTier string                  `json:"vehicle_price_tier"`
	Items            []string                `json:"items"`
	OrderTier        int16                   `json:"order_tier"`
	CommissionRate   float64                 `json:"commission_rate"`
	CommissionAmount int64                   `json:"commission_amount"`
	RewardPreview    int64                   `json:"reward_preview"`
	RewardStages     []algorithm.RewardStage `json:"reward_stages"`
	Status           string                  `json:"status"`
	CreatedAt        time.Time               `json:"created_at"`
	CompletedAt      *time.Time              `json:"completed_at,omitempty"`
}

func newOrderResponse(order db.Order) orderResponse {
	resp := orderResponse{
		ID:               order.ID,
		QuoteID:          order.QuoteID,
		BiddingID:        order.BiddingID,
		ShopID:           order.ShopID,
		Amount:           order.Amount,
		ComplexityLevel:  order.ComplexityLevel,
		WasEscalated:     order.WasEscalated,
		IsInsuranceClaim: order.IsInsuranceClaim,
		VehicleBrand:     order.VehicleBrand,
		PlateNumber:      order.PlateNumber,
		VehiclePriceTier: order.VehiclePriceTier,
		Items:            order.Items,
		OrderTier:        order.OrderTier,
		CommissionRate:   order.CommissionRate,
		CommissionAmount: order.CommissionAmount,
		RewardPreview:    order.RewardPreview,
		Status:           order.Status,
		CreatedAt:        order.CreatedAt,
	}
	if len(order.RewardStages) > 0 {
		_ = json.Unmarshal(order.RewardStages, &resp.RewardStages)
	}
	if order.CompletedAt.Valid {
		completedAt := order.CompletedAt.Time
		resp.CompletedAt = &completedAt
	}
	return resp
}

// selectQuote godoc
// @Summary 选标成交
// @Description 车主接受一条报价，作废其余报价并按当前规则快照计算佣金与奖励预估
// @Tags 订单
// @Produce json
// @Param id path int true "报价ID"
// @Success 200 {object} orderResponse "生成的订单"
// @Failure 403 {object} ErrorResponse "竞价单不属于当前用户"
// @Failure 409 {object} ErrorResponse "报价或竞价单状态不允许成交"
// @Router /v1/quotes/{id}/select [post]
// @Security BearerAuth
func (server *Server) selectQuote(ctx *gin.Context) {
	var req quoteIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	quote, err := server.store.GetQuote(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if quote.Status != "active" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("quote is no longer active")))
		return
	}

	bidding, err := server.store.GetBidding(ctx, quote.BiddingID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bidding.OwnerID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bidding doesn't belong to the authenticated user")))
		return
	}

	if bidding.Status != "open" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("bidding is no longer open")))
		return
	}

	shop, err := server.store.GetShop(ctx, quote.ShopID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rules := server.rules.Current(ctx)
	now := time.Now()

	// 近期违规拉高佣金率
	recentViolations, err := server.store.CountShopViolationsSince(ctx, db.CountShopViolationsSinceParams{
		ShopID:      shop.ID,
		MinSeverity: 2,
		Since:       now.AddDate(0, 0, -rules.Distribution.ViolationLookbackDays),
	})
	if err != nil {
		log.Warn().Err(err).Int64("shop_id", shop.ID).Msg("violation lookback failed, failing open")
		recentViolations = 0
	}

	calc := algorithm.NewRewardCalculator(rules.Reward)
	reward, err := calc.Calculate(algorithm.RewardInput{
		OrderAmount:     quote.Amount,
		Level:           algorithm.ComplexityLevel(bidding.ComplexityLevel),
		VehicleTier:     bidding.VehiclePriceTier,
		IsCompliant:     shop.ComplianceRate >= rules.Distribution.ComplianceFloor,
		RecentViolation: recentViolations > 0,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	stagesJSON, err := json.Marshal(reward.Stages)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	result, err := server.store.SelectQuoteTx(ctx, db.SelectQuoteTxParams{
		QuoteID:          quote.ID,
		UserID:           authPayload.UserID,
		OrderTier:        reward.OrderTier,
		CommissionRate:   reward.CommissionRate,
		CommissionAmount: reward.CommissionAmount,
		RewardPreview:    reward.Preview,
		RewardStages:     stagesJSON,
		RulesVersion:     rules.Version,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 转化归因：该买家近窗口内在这家店评价上的有效赞按权重分佣金池
	server.settleConversionPool(ctx, result.Order, rules)

	RecordOrderCreated()

	ctx.JSON(http.StatusOK, newOrderResponse(result.Order))
}

// settleConversionPool 把佣金的一部分按决策权重挂账给引导本次成交的评价作者。
// 归因失败只记日志，不影响成交主流程。
func (server *Server) settleConversionPool(ctx *gin.Context, order db.Order, rules algorithm.RuleSet) {
	pool := int64(float64(order.CommissionAmount) * rules.Like.ConversionPoolRate)
	if pool <= 0 {
		return
	}

	now := time.Now()
	window := time.Duration(rules.Like.PostVerifyWindowDays) * 24 * time.Hour

	likes, err := server.store.ListUserLikesOnShopReviews(ctx, db.ListUserLikesOnShopReviewsParams{
		UserID: order.UserID,
		ShopID: order.ShopID,
		Before: now,
		After:  now.Add(-window),
	})
	if err != nil {
		log.Error().Err(err).Int64("order_id", order.ID).Msg("conversion attribution lookup failed")
		return
	}

	likeService := algorithm.NewLikeService(rules.Like)

	type likeMeta struct {
		authorID int64
		reviewID int64
	}
	meta := make(map[int64]likeMeta, len(likes))
	contributions := make([]algorithm.LikeContribution, 0, len(likes))
	for _, row := range likes {
		if !row.ReviewLike.BonusEligible || row.ReviewLike.DecisionWeight <= 0 {
			continue
		}
		// 自己给自己的评价点赞不参与分池
		if row.ReviewAuthorID == order.UserID {
			continue
		}
		meta[row.ReviewLike.ID] = likeMeta{authorID: row.ReviewAuthorID, reviewID: row.ReviewLike.ReviewID}
		// 冻结的静态权重在这里补乘时效因子：越临近下单的赞影响越大
		contributions = append(contributions, algorithm.LikeContribution{
			LikeID: row.ReviewLike.ID,
			UserID: row.ReviewLike.UserID,
			Weight: likeService.ConversionWeight(row.ReviewLike.DecisionWeight, row.ReviewLike.CreatedAt, order.CreatedAt),
		})
	}

	shares := likeService.SplitConversionPool(pool, contributions)
	triggerMonth := now.Format("2006-01")

	for _, share := range shares {
		if share.Amount <= 0 {
			continue
		}
		m := meta[share.LikeID]

		// 先赞后买：该赞固化为购后验证赞
		if _, err := server.store.MarkLikePostVerify(ctx, share.LikeID); err != nil {
			log.Error().Err(err).Int64("like_id", share.LikeID).Msg("failed to mark like post-verify")
		}

		// 奖金给评价作者，随月度结算发放
		_, err := server.store.CreateSettlementPendingEntry(ctx, db.CreateSettlementPendingEntryParams{
			UserID:       m.authorID,
			OrderID:      order.ID,
			ReviewID:     pgtype.Int8{Int64: m.reviewID, Valid: true},
			BonusType:    db.BonusTypeConversion,
			AmountPreTax: share.Amount,
			TriggerMonth: triggerMonth,
		})
		if err != nil {
			log.Error().Err(err).
				Int64("order_id", order.ID).
				Int64("review_id", m.reviewID).
				Msg("failed to create conversion pending entry")
		}
	}
}

type listOrdersRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listUserOrders godoc
// @Summary 我的订单列表
// @Tags 订单
// @Produce json
// @Param page_id query int true "页码"
// @Param page_size query int true "每页条数(5-50)"
// @Success 200 {array} orderResponse "订单列表"
// @Router /v1/orders [get]
// @Security BearerAuth
func (server *Server) listUserOrders(ctx *gin.Context) {
	var req listOrdersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	orders, err := server.store.ListUserOrders(ctx, db.ListUserOrdersParams{
		UserID: authPayload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, order := range orders {
		resp[i] = newOrderResponse(order)
	}

	ctx.JSON(http.StatusOK, resp)
}

type orderIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getOrder godoc
// @Summary 订单详情
// @Tags 订单
// @Produce json
// @Param id path int true "订单ID"
// @Success 200 {object} orderResponse "订单"
// @Failure 404 {object} ErrorResponse "订单不存在"
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (server *Server) getOrder(ctx *gin.Context) {
	var req orderIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	order, err := server.store.GetOrder(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if order.UserID != authPayload.UserID && order.ShopID != authPayload.ShopID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("order doesn't belong to the authenticated user")))
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// listShopOrders godoc
// @Summary 店铺订单列表
// @Tags 店铺
// @Produce json
// @Param page_id query int true "页码"
// @Param page_size query int true "每页条数(5-50)"
// @Success 200 {array} orderResponse "订单列表"
// @Router /v1/shop/orders [get]
// @Security BearerAuth
func (server *Server) listShopOrders(ctx *gin.Context) {
	var req listOrdersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	orders, err := server.store.ListShopOrders(ctx, db.ListShopOrdersParams{
		ShopID: authPayload.ShopID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, order := range orders {
		resp[i] = newOrderResponse(order)
	}

	ctx.JSON(http.StatusOK, resp)
}

type completeOrderRequest struct {
	EscalatedLevel int16 `json:"escalated_level" binding:"omitempty,min=1,max=4"`
}

// completeOrder godoc
// @Summary 完工确认
// @Description 店铺确认维修完成，维修中发现新损伤可同时上调复杂度
// @Tags 店铺
// @Accept json
// @Produce json
// @Param id path int true "订单ID"
// @Param request body completeOrderRequest false "升级复杂度"
// @Success 200 {object} orderResponse "完成后的订单"
// @Failure 404 {object} ErrorResponse "订单不存在"
// @Router /v1/shop/orders/{id}/complete [post]
// @Security BearerAuth
func (server *Server) completeOrder(ctx *gin.Context) {
	var uri orderIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req completeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	order, err := server.store.GetOrder(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if order.ShopID != authPayload.ShopID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("order doesn't belong to this shop")))
		return
	}

	if order.Status != "in_progress" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("order is not in progress")))
		return
	}

	result, err := server.store.CompleteOrderTx(ctx, db.CompleteOrderTxParams{
		OrderID:        order.ID,
		ShopID:         authPayload.ShopID,
		EscalatedLevel: req.EscalatedLevel,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 完单影响响应画像与合规统计，异步重算口碑分
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskRecomputeShopScore(ctx, &worker.RecomputeShopScorePayload{
			ShopID: order.ShopID,
		})
		if err != nil {
			log.Error().Err(err).Int64("shop_id", order.ShopID).Msg("failed to enqueue shop score recompute")
		}
	}

	ctx.JSON(http.StatusOK, newOrderResponse(result.Order))
}
