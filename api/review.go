package api

import (
	"encoding/json"
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

type createReviewRequest struct {
	OrderID          int64  `json:"order_id" binding:"required,min=1"`
	Rating           int16  `json:"rating" binding:"required,min=1,max=5"`
	Content          string `json:"content" binding:"required,min=1,max=5000"`
	ProblemPhotos    int16  `json:"problem_photos" binding:"min=0,max=30"`
	CorePhotos       int16  `json:"core_photos" binding:"min=0,max=30"`
	MaterialPhotos   int16  `json:"material_photos" binding:"min=0,max=30"`
	HasSettlementDoc bool   `json:"has_settlement_doc"`
}

type reviewResponse struct {
	ID               int64     `json:"id"`
	OrderID          int64     `json:"order_id"`
	UserID           int64     `json:"user_id"`
	ShopID           int64     `json:"shop_id"`
	Rating           int16     `json:"rating"`
	Content          string    `json:"content"`
	ProblemPhotos    int16     `json:"problem_photos"`
	CorePhotos       int16     `json:"core_photos"`
	MaterialPhotos   int16     `json:"material_photos"`
	HasSettlementDoc bool      `json:"has_settlement_doc"`
	QualityLevel     string    `json:"quality_level"`
	Excluded         bool      `json:"excluded"`
	CreatedAt        time.Time `json:"created_at"`
}

func newReviewResponse(review db.Review) reviewResponse {
	return reviewResponse{
		ID:               review.ID,
		OrderID:          review.OrderID,
		UserID:           review.UserID,
		ShopID:           review.ShopID,
		Rating:           review.Rating,
		Content:          review.Content,
		ProblemPhotos:    review.ProblemPhotos,
		CorePhotos:       review.CorePhotos,
		MaterialPhotos:   review.MaterialPhotos,
		HasSettlementDoc: review.HasSettlementDoc,
		QualityLevel:     review.QualityLevel,
		Excluded:         review.Excluded,
		CreatedAt:        review.CreatedAt,
	}
}

type createReviewResponse struct {
	Review          reviewResponse `json:"review"`
	ImmediateAmount int64          `json:"immediate_amount"`
	PendingStages   int            `json:"pending_stages"`
}

// createReview godoc
// @Summary 提交评价
// @Description 按订单复杂度校验证据矩阵，通过后冻结权重并发放首期奖励
// @Tags 评价
// @Accept json
// @Produce json
// @Param request body createReviewRequest true "评价内容"
// @Success 200 {object} createReviewResponse "评价与奖励"
// @Failure 400 {object} ErrorResponse "证据不足或内容不合规"
// @Failure 409 {object} ErrorResponse "该订单已评价"
// @Router /v1/reviews [post]
// @Security BearerAuth
func (server *Server) createReview(ctx *gin.Context) {
	var req createReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	order, err := server.store.GetOrder(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if order.UserID != authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("order doesn't belong to the authenticated user")))
		return
	}

	if order.Status != "completed" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("order is not completed yet")))
		return
	}

	if _, err := server.store.GetReviewByOrder(ctx, order.ID); err == nil {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("order has already been reviewed")))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rules := server.rules.Current(ctx)
	level := algorithm.ComplexityLevel(order.ComplexityLevel)

	validator := algorithm.NewReviewValidator(rules.Review)
	validation := validator.Validate(level, req.Rating, algorithm.ReviewEvidence{
		ProblemPhotos:    int(req.ProblemPhotos),
		CorePhotos:       int(req.CorePhotos),
		MaterialPhotos:   int(req.MaterialPhotos),
		HasSettlementDoc: req.HasSettlementDoc,
	}, req.Content)
	if !validation.Valid {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New(validation.Reason)))
		return
	}

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	gate := server.trustGate.Evaluate(ctx, user, ctx.ClientIP())
	if gate.Blocked {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("account is not allowed to post reviews")))
		return
	}

	shop, err := server.store.GetShop(ctx, order.ShopID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 评价权重在提交时冻结，后续信任档位变化不追溯
	weight := server.scorer.ComputeReviewWeight(algorithm.ReviewWeightInput{
		Level:            level,
		IsInsuranceClaim: order.IsInsuranceClaim,
		IsPremium:        validation.Premium,
		Rating:           req.Rating,
		TrustWeight:      gate.Weight,
		ComplianceRate:   shop.ComplianceRate,
	})

	qualityLevel := algorithm.QualityNormal
	if validation.Premium {
		qualityLevel = algorithm.QualityPremium
	}

	// 分期触发月以评价提交月为基准推算
	now := time.Now()
	reviewMonth := now.Format("2006-01")
	monthBase := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var stages []algorithm.RewardStage
	if len(order.RewardStages) > 0 {
		if err := json.Unmarshal(order.RewardStages, &stages); err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
	}

	var immediateAmount int64
	var stageMonths []string
	for _, stage := range stages {
		if stage.Stage == 1 {
			immediateAmount = stage.Amount
			continue
		}
		stageMonths = append(stageMonths, monthBase.AddDate(0, stage.OffsetMonths, 0).Format("2006-01"))
	}

	result, err := server.store.SubmitReviewTx(ctx, db.SubmitReviewTxParams{
		CreateReviewParams: db.CreateReviewParams{
			OrderID:          order.ID,
			UserID:           authPayload.UserID,
			ShopID:           order.ShopID,
			Rating:           req.Rating,
			Content:          req.Content,
			ProblemPhotos:    req.ProblemPhotos,
			CorePhotos:       req.CorePhotos,
			MaterialPhotos:   req.MaterialPhotos,
			HasSettlementDoc: req.HasSettlementDoc,
			QualityLevel:     qualityLevel,
			Weight:           weight,
			RulesVersion:     rules.Version,
		},
		ReviewMonth:     reviewMonth,
		StageMonths:     stageMonths,
		ImmediateAmount: immediateAmount,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("order has already been reviewed")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 新评价进入口碑分聚合
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskRecomputeShopScore(ctx, &worker.RecomputeShopScorePayload{
			ShopID: order.ShopID,
		})
		if err != nil {
			log.Error().Err(err).Int64("shop_id", order.ShopID).Msg("failed to enqueue shop score recompute")
		}
	}

	RecordReviewSubmitted(validation.Premium)

	ctx.JSON(http.StatusOK, createReviewResponse{
		Review:          newReviewResponse(result.Review),
		ImmediateAmount: immediateAmount,
		PendingStages:   len(result.PendingEntries),
	})
}

type reviewIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getReview godoc
// @Summary 评价详情
// @Tags 评价
// @Produce json
// @Param id path int true "评价ID"
// @Success 200 {object} reviewResponse "评价"
// @Failure 404 {object} ErrorResponse "评价不存在"
// @Router /v1/reviews/{id} [get]
// @Security BearerAuth
func (server *Server) getReview(ctx *gin.Context) {
	var req reviewIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	review, err := server.store.GetReview(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newReviewResponse(review))
}

type listShopReviewsURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type listShopReviewsQuery struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

// listShopReviews godoc
// @Summary 店铺评价列表
// @Tags 评价
// @Produce json
// @Param id path int true "店铺ID"
// @Param page_id query int true "页码"
// @Param page_size query int true "每页条数(5-50)"
// @Success 200 {array} reviewResponse "评价列表"
// @Router /v1/shops/{id}/reviews [get]
// @Security BearerAuth
func (server *Server) listShopReviews(ctx *gin.Context) {
	var uri listShopReviewsURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var query listShopReviewsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	reviews, err := server.store.ListShopReviews(ctx, db.ListShopReviewsParams{
		ShopID: uri.ID,
		Limit:  query.PageSize,
		Offset: (query.PageID - 1) * query.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]reviewResponse, len(reviews))
	for i, review := range reviews {
		resp[i] = newReviewResponse(review)
	}

	ctx.JSON(http.StatusOK, resp)
}

type createAppealRequest struct {
	ReviewID int64  `json:"review_id" binding:"required,min=1"`
	Reason   string `json:"reason" binding:"required,min=10,max=2000"`
}

type appealResponse struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	ShopID    int64     `json:"shop_id"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// createAppeal godoc
// @Summary 评价申诉
// @Description 店铺对不实或已解决的差评发起申诉，交AI判定
// @Tags 店铺
// @Accept json
// @Produce json
// @Param request body createAppealRequest true "申诉内容"
// @Success 200 {object} appealResponse "申诉"
// @Failure 403 {object} ErrorResponse "评价不属于本店"
// @Failure 409 {object} ErrorResponse "重复申诉"
// @Router /v1/shop/appeals [post]
// @Security BearerAuth
func (server *Server) createAppeal(ctx *gin.Context) {
	var req createAppealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	review, err := server.store.GetReview(ctx, req.ReviewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if review.ShopID != authPayload.ShopID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("review doesn't belong to this shop")))
		return
	}

	appeal, err := server.store.CreateAppeal(ctx, db.CreateAppealParams{
		ReviewID: review.ID,
		ShopID:   authPayload.ShopID,
		Reason:   req.Reason,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("review has already been appealed")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if _, err := server.store.CreateAnalysisTask(ctx, db.CreateAnalysisTaskParams{
		TaskType:  "appeal_analysis",
		RelatedID: appeal.ID,
	}); err != nil {
		log.Error().Err(err).Int64("appeal_id", appeal.ID).Msg("failed to create appeal analysis task")
	}

	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskAnalyzeAppeal(ctx, &worker.AnalyzeAppealPayload{
			AppealID: appeal.ID,
		})
		if err != nil {
			log.Error().Err(err).Int64("appeal_id", appeal.ID).Msg("failed to enqueue appeal analysis")
		}
	}

	ctx.JSON(http.StatusOK, appealResponse{
		ID:        appeal.ID,
		ReviewID:  appeal.ReviewID,
		ShopID:    appeal.ShopID,
		Reason:    appeal.Reason,
		Status:    appeal.Status,
		CreatedAt: appeal.CreatedAt,
	})
}
