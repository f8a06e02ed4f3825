package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/fixbid/repairbid/algorithm"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
)

type createReadSessionRequest struct {
	Seconds int32 `json:"seconds" binding:"required,min=1,max=86400"`
}

type readSessionResponse struct {
	ReviewID          int64 `json:"review_id"`
	EffectiveSeconds  int32 `json:"effective_seconds"`
	CumulativeSeconds int32 `json:"cumulative_seconds"`
}

// createReadSession godoc
// @Summary 上报阅读时长
// @Description 记录一次评价阅读会话，单次与累计时长均封顶
// @Tags 评价
// @Accept json
// @Produce json
// @Param id path int true "评价ID"
// @Param request body createReadSessionRequest true "阅读秒数"
// @Success 200 {object} readSessionResponse "入账结果"
// @Failure 404 {object} ErrorResponse "评价不存在"
// @Router /v1/reviews/{id}/read-sessions [post]
// @Security BearerAuth
func (server *Server) createReadSession(ctx *gin.Context) {
	var uri reviewIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req createReadSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	if _, err := server.store.GetReview(ctx, uri.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rules := server.rules.Current(ctx)
	likeService := algorithm.NewLikeService(rules.Like)

	accumulated, err := server.store.SumReadSeconds(ctx, db.SumReadSecondsParams{
		ReviewID: uri.ID,
		UserID:   authPayload.UserID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	capped := likeService.CapSessionSeconds(req.Seconds)
	effective := likeService.CapLifetimeSeconds(int32(accumulated), capped)

	if effective > 0 {
		if _, err := server.store.CreateReadSession(ctx, db.CreateReadSessionParams{
			ReviewID:         uri.ID,
			UserID:           authPayload.UserID,
			EffectiveSeconds: effective,
		}); err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
	}

	ctx.JSON(http.StatusOK, readSessionResponse{
		ReviewID:          uri.ID,
		EffectiveSeconds:  effective,
		CumulativeSeconds: int32(accumulated) + effective,
	})
}

type reviewLikeResponse struct {
	ID             int64     `json:"id"`
	ReviewID       int64     `json:"review_id"`
	Kind           string    `json:"kind"`
	BonusEligible  bool      `json:"bonus_eligible"`
	DecisionWeight float64   `json:"decision_weight"`
	CreatedAt      time.Time `json:"created_at"`
}

// likeReview godoc
// @Summary 点赞评价
// @Description 点赞时判定奖励资格、购后验证类型与决策权重
// @Tags 评价
// @Produce json
// @Param id path int true "评价ID"
// @Success 200 {object} reviewLikeResponse "点赞"
// @Failure 403 {object} ErrorResponse "不能给自己的评价点赞"
// @Failure 409 {object} ErrorResponse "已点赞"
// @Router /v1/reviews/{id}/likes [post]
// @Security BearerAuth
func (server *Server) likeReview(ctx *gin.Context) {
	var uri reviewIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	review, err := server.store.GetReview(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if review.UserID == authPayload.UserID {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("cannot like your own review")))
		return
	}

	if _, err := server.store.GetReviewLike(ctx, db.GetReviewLikeParams{
		ReviewID: review.ID,
		UserID:   authPayload.UserID,
	}); err == nil {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("review already liked")))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	user, err := server.store.GetUser(ctx, authPayload.UserID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	gate := server.trustGate.Evaluate(ctx, user, ctx.ClientIP())
	if gate.Blocked {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("account is not allowed to like reviews")))
		return
	}

	cumulative, err := server.store.SumReadSeconds(ctx, db.SumReadSecondsParams{
		ReviewID: review.ID,
		UserID:   authPayload.UserID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	reviewedOrder, err := server.store.GetOrder(ctx, review.OrderID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rules := server.rules.Current(ctx)
	likeService := algorithm.NewLikeService(rules.Like)
	now := time.Now()

	// 购后验证判定：找点赞人在同店的自有完单，回溯下单前的阅读记录
	kind := algorithm.LikeKindNormal
	window := time.Duration(rules.Like.PostVerifyWindowDays) * 24 * time.Hour
	ownOrders, err := server.store.ListUserOrdersCompletedBetween(ctx, db.ListUserOrdersCompletedBetweenParams{
		UserID: authPayload.UserID,
		Start:  now.Add(-window),
		End:    now,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	for _, own := range ownOrders {
		if own.ShopID != review.ShopID || !own.CompletedAt.Valid {
			continue
		}

		input := algorithm.PostVerifyInput{
			LikedAt:       now,
			OwnOrderBrand: own.VehicleBrand,
			ReviewedBrand: reviewedOrder.VehicleBrand,
		}
		completedAt := own.CompletedAt.Time
		placedAt := own.CreatedAt
		input.OwnOrderCompletedAt = &completedAt
		input.OwnOrderPlacedAt = &placedAt

		lastRead, err := server.store.GetLastReadBefore(ctx, db.GetLastReadBeforeParams{
			UserID:   authPayload.UserID,
			ReviewID: review.ID,
			Before:   own.CreatedAt,
		})
		if err == nil {
			readAt := lastRead.CreatedAt
			input.LastReadBeforeOrder = &readAt
		} else if !errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if likeService.ClassifyLike(input) == algorithm.LikeKindPostVerify {
			kind = algorithm.LikeKindPostVerify
			break
		}
	}

	bonusEligible := likeService.IsValidForBonus(int32(cumulative), gate.Weight)

	// 冻结时效外的三个因子；时效因子在成交归因时按点赞距下单的时长补乘
	weight := likeService.StaticDecisionWeight(algorithm.DecisionWeightInput{
		ReadSeconds: int32(cumulative),
		PlateMatch:  algorithm.VehicleMatch(user.PlateNumber, reviewedOrder.PlateNumber),
		BrandMatch:  user.VehicleBrand != "" && user.VehicleBrand == reviewedOrder.VehicleBrand,
		IsPremium:   review.QualityLevel == algorithm.QualityPremium,
	})
	if !bonusEligible {
		weight = 0
	}

	like, err := server.store.CreateReviewLike(ctx, db.CreateReviewLikeParams{
		ReviewID:       review.ID,
		UserID:         authPayload.UserID,
		Kind:           kind,
		BonusEligible:  bonusEligible,
		DecisionWeight: weight,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("review already liked")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, reviewLikeResponse{
		ID:             like.ID,
		ReviewID:       like.ReviewID,
		Kind:           like.Kind,
		BonusEligible:  like.BonusEligible,
		DecisionWeight: like.DecisionWeight,
		CreatedAt:      like.CreatedAt,
	})
}
