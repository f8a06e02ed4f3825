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

type shopResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	QualificationClass string    `json:"qualification_class"`
	IsBrand            bool      `json:"is_brand"`
	ServiceCategories  []string  `json:"service_categories"`
	ComplianceRate     float64   `json:"compliance_rate"`
	AvgResponseSeconds int32     `json:"avg_response_seconds"`
	Longitude          float64   `json:"longitude"`
	Latitude           float64   `json:"latitude"`
	Score              float64   `json:"score"`
	CreatedAt          time.Time `json:"created_at"`
}

func newShopResponse(shop db.Shop) shopResponse {
	return shopResponse{
		ID:                 shop.ID,
		Name:               shop.Name,
		Status:             shop.Status,
		QualificationClass: shop.QualificationClass,
		IsBrand:            shop.IsBrand,
		ServiceCategories:  shop.ServiceCategories,
		ComplianceRate:     shop.ComplianceRate,
		AvgResponseSeconds: shop.AvgResponseSeconds,
		Longitude:          shop.Longitude,
		Latitude:           shop.Latitude,
		Score:              shop.Score,
		CreatedAt:          shop.CreatedAt,
	}
}

type registerShopRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=100"`
	QualificationClass string   `json:"qualification_class" binding:"required,oneof=class_one class_two class_three"`
	IsBrand            bool     `json:"is_brand"`
	ServiceCategories  []string `json:"service_categories" binding:"required,min=1,max=20,dive,min=1,max=50"`
	Longitude          float64  `json:"longitude" binding:"required,min=-180,max=180"`
	Latitude           float64  `json:"latitude" binding:"required,min=-90,max=90"`
}

// registerShop godoc
// @Summary 注册店铺
// @Description 登录用户提交店铺入驻，资质审核通过前不参与分发
// @Tags 店铺
// @Accept json
// @Produce json
// @Param request body registerShopRequest true "店铺信息"
// @Success 200 {object} shopResponse "店铺"
// @Failure 409 {object} ErrorResponse "已有店铺"
// @Router /v1/shops [post]
// @Security BearerAuth
func (server *Server) registerShop(ctx *gin.Context) {
	var req registerShopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	shop, err := server.store.CreateShop(ctx, db.CreateShopParams{
		Name:               req.Name,
		OwnerUserID:        authPayload.UserID,
		QualificationClass: req.QualificationClass,
		IsBrand:            req.IsBrand,
		ServiceCategories:  req.ServiceCategories,
		Longitude:          req.Longitude,
		Latitude:           req.Latitude,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("a shop is already registered for this account")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newShopResponse(shop))
}

// getCurrentShop godoc
// @Summary 当前店铺信息
// @Tags 店铺
// @Produce json
// @Success 200 {object} shopResponse "店铺"
// @Failure 404 {object} ErrorResponse "店铺不存在"
// @Router /v1/shop/me [get]
// @Security BearerAuth
func (server *Server) getCurrentShop(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	shop, err := server.store.GetShop(ctx, authPayload.ShopID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newShopResponse(shop))
}

type shopIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getShop godoc
// @Summary 店铺公开信息
// @Tags 店铺
// @Produce json
// @Param id path int true "店铺ID"
// @Success 200 {object} shopResponse "店铺"
// @Failure 404 {object} ErrorResponse "店铺不存在"
// @Router /v1/shops/{id} [get]
// @Security BearerAuth
func (server *Server) getShop(ctx *gin.Context) {
	var req shopIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	shop, err := server.store.GetShop(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newShopResponse(shop))
}

type visibleBiddingResponse struct {
	Bidding    biddingResponse `json:"bidding"`
	Tier       int16           `json:"tier"`
	MatchScore float64         `json:"match_score"`
	CanQuote   bool            `json:"can_quote"`
}

// listShopVisibleBiddings godoc
// @Summary 店铺可见竞价单
// @Description 按梯队放量规则返回当前可见的竞价单
// @Tags 店铺
// @Produce json
// @Success 200 {array} visibleBiddingResponse "竞价单列表"
// @Router /v1/shop/biddings [get]
// @Security BearerAuth
func (server *Server) listShopVisibleBiddings(ctx *gin.Context) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	rules := server.rules.Current(ctx)

	rows, err := server.store.ListShopVisibleBiddings(ctx, db.ListShopVisibleBiddingsParams{
		ShopID:              authPayload.ShopID,
		Tier3MinActiveQuote: int32(rules.Distribution.Tier3MinActiveQuotes),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	now := time.Now()
	resp := make([]visibleBiddingResponse, len(rows))
	for i, row := range rows {
		canQuote := row.Tier <= 1 || now.After(row.Bidding.Tier1Deadline)
		resp[i] = visibleBiddingResponse{
			Bidding:    newBiddingResponse(row.Bidding),
			Tier:       row.Tier,
			MatchScore: row.MatchScore,
			CanQuote:   canQuote,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
