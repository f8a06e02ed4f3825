package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/algorithm"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/worker"
)

// 首轮搜索半径，不足最小店铺数时由分发任务按倍率扩大
const defaultSearchRadiusMeters = 5000

type createBiddingRequest struct {
	VehiclePriceTier string   `json:"vehicle_price_tier" binding:"required,vehicle_tier"`
	IsInsuranceClaim bool     `json:"is_insurance_claim"`
	Items            []string `json:"items" binding:"required,min=1,max=20,dive,min=1,max=100"`
	Description      string   `json:"description" binding:"max=2000"`
	Longitude        float64  `json:"longitude" binding:"required,min=-180,max=180"`
	Latitude         float64  `json:"latitude" binding:"required,min=-90,max=90"`
	PhotoURLs        []string `json:"photo_urls" binding:"omitempty,max=9,dive,url"`
}

type biddingResponse struct {
	ID                 int64      `json:"id"`
	VehicleBrand       string     `json:"vehicle_brand"`
	PlateNumber        string     `json:"plate_number"`
	VehiclePriceTier   string     `json:"vehicle_price_tier"`
	IsInsuranceClaim   bool       `json:"is_insurance_claim"`
	Items              []string   `json:"items"`
	Description        string     `json:"description"`
	Longitude          float64    `json:"longitude"`
	Latitude           float64    `json:"latitude"`
	SearchRadiusMeters int32      `json:"search_radius_meters"`
	ComplexityLevel    int16      `json:"complexity_level"`
	Status             string     `json:"status"`
	Tier1Deadline      time.Time  `json:"tier1_deadline"`
	CreatedAt          time.Time  `json:"created_at"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
}

func newBiddingResponse(bidding db.Bidding) biddingResponse {
	resp := biddingResponse{
		ID:                 bidding.ID,
		VehicleBrand:       bidding.VehicleBrand,
		PlateNumber:        bidding.PlateNumber,
		VehiclePriceTier:   bidding.VehiclePriceTier,
		IsInsuranceClaim:   bidding.IsInsuranceClaim,
		Items:              bidding.Items,
		Description:        bidding.Description,
		Longitude:          bidding.Longitude,
		Latitude:           bidding.Latitude,
		SearchRadiusMeters: bidding.SearchRadiusMeters,
		ComplexityLevel:    bidding.ComplexityLevel,
		Status:             bidding.Status,
		Tier1Deadline:      bidding.Tier1Deadline,
		CreatedAt:          bidding.CreatedAt,
	}
	if bidding.ClosedAt.Valid {
		closedAt := bidding.ClosedAt.Time
		resp.ClosedAt = &closedAt
	}
	return resp
}

// createBidding godoc
// @Summary 发布竞价单
// @Description 车主发布维修需求，复杂度按关键词表解析，随后异步分发给周边店铺
// @Tags 竞价
// @Accept json
// @Produce json
// @Param request body createBiddingRequest true "竞价单内容"
// @Success 200 {object} biddingResponse "竞价单"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "账号受限"
// @Router /v1/biddings [post]
// @Security BearerAuth
func (server *Server) createBidding(ctx *gin.Context) {
	var req createBiddingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	gate := server.trustGate.Evaluate(ctx, user, ctx.ClientIP())
	if gate.Blocked {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("account is not allowed to publish biddings")))
		return
	}

	rules := server.rules.Current(ctx)

	// 关键词快照在发布时解析，之后关键词表变更不影响本单
	keywords, err := server.store.ListRepairKeywords(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	resolver := algorithm.NewComplexityResolver(toAlgorithmKeywords(keywords))
	level := resolver.Resolve(req.Items)

	tier1Window := time.Duration(rules.Distribution.Tier1WindowMinutes) * time.Minute

	bidding, err := server.store.CreateBidding(ctx, db.CreateBiddingParams{
		OwnerID:            user.ID,
		VehicleBrand:       user.VehicleBrand,
		PlateNumber:        user.PlateNumber,
		VehiclePriceTier:   req.VehiclePriceTier,
		IsInsuranceClaim:   req.IsInsuranceClaim,
		Items:              req.Items,
		Description:        req.Description,
		Longitude:          req.Longitude,
		Latitude:           req.Latitude,
		SearchRadiusMeters: defaultSearchRadiusMeters,
		ComplexityLevel:    int16(level),
		Tier1Deadline:      time.Now().Add(tier1Window),
		RulesVersion:       rules.Version,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 有照片时走AI定损复核，可能升档复杂度
	if len(req.PhotoURLs) > 0 {
		task, err := server.store.CreateAnalysisTask(ctx, db.CreateAnalysisTaskParams{
			TaskType:  "damage_analysis",
			RelatedID: bidding.ID,
		})
		if err != nil {
			log.Error().Err(err).Int64("bidding_id", bidding.ID).Msg("failed to create damage analysis task")
		} else if server.taskDistributor != nil {
			err = server.taskDistributor.DistributeTaskDamageAnalysis(ctx, &worker.DamageAnalysisPayload{
				TaskID:    task.ID,
				BiddingID: bidding.ID,
				PhotoURLs: req.PhotoURLs,
			})
			if err != nil {
				log.Error().Err(err).Int64("task_id", task.ID).Msg("failed to enqueue damage analysis")
			}
		}
	}

	// 异步分发给周边店铺
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskDistributeBidding(ctx, &worker.DistributeBiddingPayload{
			BiddingID: bidding.ID,
		})
		if err != nil {
			log.Error().Err(err).Int64("bidding_id", bidding.ID).Msg("failed to enqueue bidding distribution")
		}
	}

	RecordBiddingCreated()

	ctx.JSON(http.StatusOK, newBiddingResponse(bidding))
}

func toAlgorithmKeywords(keywords []db.RepairKeyword) []algorithm.RepairKeyword {
	result := make([]algorithm.RepairKeyword, len(keywords))
	for i, kw := range keywords {
		result[i] = algorithm.RepairKeyword{
			Keyword: kw.Keyword,
			Level:   algorithm.ComplexityLevel(kw.Level),
		}
	}
	return result
}

type listBiddingsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listOwnerBiddings godoc
// @Summary 我的竞价单列表
// @Tags 竞价
// @Produce json
// @Param page_id query int true "页码"
// @Param page_size query int true "每页条数(5-50)"
// @Success 200 {array} biddingResponse "竞价单列表"
// @Router /v1/biddings [get]
// @Security BearerAuth
func (server *Server) listOwnerBiddings(ctx *gin.Context) {
	var req listBiddingsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	biddings, err := server.store.ListOwnerBiddings(ctx, db.ListOwnerBiddingsParams{
		OwnerID: authPayload.UserID,
		Limit:   req.PageSize,
		Offset:  (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]biddingResponse, len(biddings))
	for i, b := range biddings {
		resp[i] = newBiddingResponse(b)
	}

	ctx.JSON(http.StatusOK, resp)
}

type biddingIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getBidding godoc
// @Summary 竞价单详情
// @Tags 竞价
// @Produce json
// @Param id path int true "竞价单ID"
// @Success 200 {object} biddingResponse "竞价单"
// @Failure 404 {object} ErrorResponse "竞价单不存在"
// @Router /v1/biddings/{id} [get]
// @Security BearerAuth
func (server *Server) getBidding(ctx *gin.Context) {
	var req biddingIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bidding, err := server.store.GetBidding(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bidding.OwnerID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bidding doesn't belong to the authenticated user")))
		return
	}

	ctx.JSON(http.StatusOK, newBiddingResponse(bidding))
}

type rankedQuoteResponse struct {
	ID              int64     `json:"id"`
	ShopID          int64     `json:"shop_id"`
	ShopName        string    `json:"shop_name"`
	ShopScore       float64   `json:"shop_score"`
	IsBrand         bool      `json:"is_brand"`
	DistanceMeters  int       `json:"distance_meters"`
	Amount          int64     `json:"amount"`
	Note            string    `json:"note"`
	ResponseSeconds int32     `json:"response_seconds"`
	RankTotal       float64   `json:"rank_total"`
	CreatedAt       time.Time `json:"created_at"`
}

// listBiddingQuotes godoc
// @Summary 竞价单报价列表
// @Description 返回按场景化权重排序后的有效报价
// @Tags 竞价
// @Produce json
// @Param id path int true "竞价单ID"
// @Success 200 {array} rankedQuoteResponse "报价列表"
// @Failure 404 {object} ErrorResponse "竞价单不存在"
// @Router /v1/biddings/{id}/quotes [get]
// @Security BearerAuth
func (server *Server) listBiddingQuotes(ctx *gin.Context) {
	var req biddingIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bidding, err := server.store.GetBidding(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bidding.OwnerID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bidding doesn't belong to the authenticated user")))
		return
	}

	quotes, err := server.store.ListQuotesForBidding(ctx, bidding.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	center := algorithm.Location{Longitude: bidding.Longitude, Latitude: bidding.Latitude}

	type quoteWithShop struct {
		quote db.Quote
		shop  db.Shop
	}
	active := make(map[int64]quoteWithShop, len(quotes))
	candidates := make([]algorithm.RankCandidate, 0, len(quotes))

	for _, quote := range quotes {
		if quote.Status != "active" {
			continue
		}
		shop, err := server.store.GetShop(ctx, quote.ShopID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		active[shop.ID] = quoteWithShop{quote: quote, shop: shop}
		candidates = append(candidates, algorithm.RankCandidate{
			ShopID:             shop.ID,
			Score:              shop.Score,
			DistanceMeters:     algorithm.HaversineDistance(center, algorithm.Location{Longitude: shop.Longitude, Latitude: shop.Latitude}),
			DeviationRate:      shop.DeviationRate,
			AvgResponseSeconds: int(shop.AvgResponseSeconds),
			ComplianceRate:     shop.ComplianceRate,
			QualificationClass: shop.QualificationClass,
			IsBrand:            shop.IsBrand,
			CreatedAt:          shop.CreatedAt,
		})
	}

	scenario := algorithm.ScenarioL1L2
	if algorithm.ComplexityLevel(bidding.ComplexityLevel).IsHigh() {
		scenario = algorithm.ScenarioL3L4
	}

	ranked := server.ranker.Rank(candidates, scenario, bidding.SearchRadiusMeters, time.Now())

	resp := make([]rankedQuoteResponse, 0, len(ranked))
	for _, r := range ranked {
		qs := active[r.ShopID]
		resp = append(resp, rankedQuoteResponse{
			ID:              qs.quote.ID,
			ShopID:          qs.shop.ID,
			ShopName:        qs.shop.Name,
			ShopScore:       qs.shop.Score,
			IsBrand:         qs.shop.IsBrand,
			DistanceMeters:  algorithm.HaversineDistance(center, algorithm.Location{Longitude: qs.shop.Longitude, Latitude: qs.shop.Latitude}),
			Amount:          qs.quote.Amount,
			Note:            qs.quote.Note,
			ResponseSeconds: qs.quote.ResponseSeconds,
			RankTotal:       r.Total,
			CreatedAt:       qs.quote.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}

// closeBidding godoc
// @Summary 关闭竞价单
// @Description 车主主动关闭未成交的竞价单
// @Tags 竞价
// @Produce json
// @Param id path int true "竞价单ID"
// @Success 200 {object} biddingResponse "关闭后的竞价单"
// @Failure 409 {object} ErrorResponse "状态不允许关闭"
// @Router /v1/biddings/{id}/close [post]
// @Security BearerAuth
func (server *Server) closeBidding(ctx *gin.Context) {
	var req biddingIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	bidding, err := server.store.GetBidding(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bidding.OwnerID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bidding doesn't belong to the authenticated user")))
		return
	}

	if bidding.Status != "open" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("bidding is not open")))
		return
	}

	closed, err := server.store.CloseBidding(ctx, db.CloseBiddingParams{
		Status: "closed",
		ID:     bidding.ID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newBiddingResponse(closed))
}
