package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/token"
)

type createQuoteRequest struct {
	BiddingID int64  `json:"bidding_id" binding:"required,min=1"`
	Amount    int64  `json:"amount" binding:"required,min=1"`
	Note      string `json:"note" binding:"max=1000"`
}

type quoteResponse struct {
	ID              int64     `json:"id"`
	BiddingID       int64     `json:"bidding_id"`
	ShopID          int64     `json:"shop_id"`
	Amount          int64     `json:"amount"`
	Note            string    `json:"note"`
	ResponseSeconds int32     `json:"response_seconds"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func newQuoteResponse(quote db.Quote) quoteResponse {
	return quoteResponse{
		ID:              quote.ID,
		BiddingID:       quote.BiddingID,
		ShopID:          quote.ShopID,
		Amount:          quote.Amount,
		Note:            quote.Note,
		ResponseSeconds: quote.ResponseSeconds,
		Status:          quote.Status,
		CreatedAt:       quote.CreatedAt,
	}
}

// createQuote godoc
// @Summary 提交报价
// @Description 店铺对已分发的竞价单报价，二三梯队受放量窗口限制
// @Tags 店铺
// @Accept json
// @Produce json
// @Param request body createQuoteRequest true "报价内容"
// @Success 200 {object} quoteResponse "报价"
// @Failure 403 {object} ErrorResponse "未分发到本店或梯队未放开"
// @Failure 409 {object} ErrorResponse "已报价或竞价单已关闭"
// @Router /v1/shop/quotes [post]
// @Security BearerAuth
func (server *Server) createQuote(ctx *gin.Context) {
	var req createQuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	assignment, err := server.store.GetBiddingAssignment(ctx, db.GetBiddingAssignmentParams{
		BiddingID: req.BiddingID,
		ShopID:    authPayload.ShopID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bidding is not visible to this shop")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	bidding, err := server.store.GetBidding(ctx, req.BiddingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if bidding.Status != "open" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("bidding is no longer open")))
		return
	}

	now := time.Now()

	// 梯队放量：一梯队独占窗口内只有一梯队可报价，
	// 窗口过后放开二梯队，三梯队还需报价量不足
	switch {
	case assignment.Tier <= 1:
	case now.Before(bidding.Tier1Deadline):
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("quoting is not yet open for this tier")))
		return
	case assignment.Tier >= 3:
		quotes, err := server.store.ListQuotesForBidding(ctx, bidding.ID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		activeCount := 0
		for _, q := range quotes {
			if q.Status == "active" {
				activeCount++
			}
		}
		rules := server.rules.Current(ctx)
		if activeCount >= rules.Distribution.Tier3MinActiveQuotes {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("bidding already has enough active quotes")))
			return
		}
	}

	// 响应耗时从通知时刻起算，用于店铺响应速度画像
	notifiedAt := bidding.CreatedAt
	if assignment.NotifiedAt.Valid {
		notifiedAt = assignment.NotifiedAt.Time
	}
	responseSeconds := int32(now.Sub(notifiedAt) / time.Second)
	if responseSeconds < 0 {
		responseSeconds = 0
	}

	quote, err := server.store.CreateQuote(ctx, db.CreateQuoteParams{
		BiddingID:       bidding.ID,
		ShopID:          authPayload.ShopID,
		Amount:          req.Amount,
		Note:            req.Note,
		ResponseSeconds: responseSeconds,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("shop has already quoted this bidding")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	RecordQuoteSubmitted()

	ctx.JSON(http.StatusOK, newQuoteResponse(quote))
}

type quoteIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// withdrawQuote godoc
// @Summary 撤回报价
// @Tags 店铺
// @Produce json
// @Param id path int true "报价ID"
// @Success 200 {object} quoteResponse "撤回后的报价"
// @Failure 404 {object} ErrorResponse "报价不存在或不属于本店"
// @Router /v1/shop/quotes/{id}/withdraw [post]
// @Security BearerAuth
func (server *Server) withdrawQuote(ctx *gin.Context) {
	var req quoteIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	quote, err := server.store.WithdrawQuote(ctx, db.WithdrawQuoteParams{
		ID:     req.ID,
		ShopID: authPayload.ShopID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("active quote not found for this shop")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newQuoteResponse(quote))
}
