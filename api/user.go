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

type userResponse struct {
	ID              int64     `json:"id"`
	Phone           string    `json:"phone"`
	Nickname        string    `json:"nickname"`
	PlateNumber     string    `json:"plate_number"`
	VehicleBrand    string    `json:"vehicle_brand"`
	Balance         int64     `json:"balance"`
	CompletedOrders int32     `json:"completed_orders"`
	ReviewCount     int32     `json:"review_count"`
	CreatedAt       time.Time `json:"created_at"`
}

func newUserResponse(user db.User) userResponse {
	return userResponse{
		ID:              user.ID,
		Phone:           user.Phone,
		Nickname:        user.Nickname,
		PlateNumber:     user.PlateNumber,
		VehicleBrand:    user.VehicleBrand,
		Balance:         user.Balance,
		CompletedOrders: user.CompletedOrders,
		ReviewCount:     user.ReviewCount,
		CreatedAt:       user.CreatedAt,
	}
}

type registerUserRequest struct {
	Phone        string `json:"phone" binding:"required,min=8,max=20"`
	Nickname     string `json:"nickname" binding:"required,min=1,max=50"`
	PlateNumber  string `json:"plate_number" binding:"required,min=4,max=16"`
	VehicleBrand string `json:"vehicle_brand" binding:"required,min=1,max=50"`
}

// registerUser godoc
// @Summary 注册用户
// @Description 以手机号注册车主账号并绑定车辆信息
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerUserRequest true "注册请求"
// @Success 200 {object} userResponse "用户信息"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "命中黑名单"
// @Failure 409 {object} ErrorResponse "手机号已注册"
// @Router /v1/auth/register [post]
func (server *Server) registerUser(ctx *gin.Context) {
	var req registerUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// 黑名单手机号/车牌不允许注册
	matches, err := server.store.CountBlacklistMatches(ctx, db.CountBlacklistMatchesParams{
		Phone: req.Phone,
		Plate: req.PlateNumber,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if matches > 0 {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("registration is not allowed for this account")))
		return
	}

	user, err := server.store.CreateUser(ctx, db.CreateUserParams{
		Phone:        req.Phone,
		Nickname:     req.Nickname,
		PlateNumber:  req.PlateNumber,
		VehicleBrand: req.VehicleBrand,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("phone number already registered")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type loginUserRequest struct {
	Phone string `json:"phone" binding:"required,min=8,max=20"`
	Role  string `json:"role" binding:"omitempty,oneof=owner shop operator"`
}

type loginUserResponse struct {
	AccessToken           string       `json:"access_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshToken          string       `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	Role                  string       `json:"role"`
	ShopID                int64        `json:"shop_id,omitempty"`
	User                  userResponse `json:"user"`
}

// loginUser godoc
// @Summary 用户登录
// @Description 按手机号登录，可选 role 指定以店铺或运营身份签发令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginUserRequest true "登录请求"
// @Success 200 {object} loginUserResponse "登录成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 403 {object} ErrorResponse "无对应角色"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /v1/auth/login [post]
func (server *Server) loginUser(ctx *gin.Context) {
	var req loginUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	user, err := server.store.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("user not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	role := req.Role
	if role == "" {
		role = RoleOwner
	}

	var shopID int64
	switch role {
	case RoleShop:
		// 店铺身份需要名下有店铺
		shop, err := server.store.GetShopByOwner(ctx, user.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				ctx.JSON(http.StatusForbidden, errorResponse(errors.New("no shop registered for this account")))
				return
			}
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		shopID = shop.ID
	case RoleOperator:
		// 运营身份需要在白名单内
		if !server.isOperatorPhone(user.Phone) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("operator access denied")))
			return
		}
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		user.ID, role, shopID, server.config.AccessTokenDuration, token.TokenTypeAccessToken)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	refreshToken, refreshPayload, err := server.tokenMaker.CreateToken(
		user.ID, role, shopID, server.config.RefreshTokenDuration, token.TokenTypeRefreshToken)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, loginUserResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessPayload.ExpiredAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshPayload.ExpiredAt,
		Role:                  role,
		ShopID:                shopID,
		User:                  newUserResponse(user),
	})
}

func (server *Server) isOperatorPhone(phone string) bool {
	for _, p := range server.config.OperatorPhones {
		if p == phone {
			return true
		}
	}
	return false
}

type renewAccessTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type renewAccessTokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

// renewAccessToken godoc
// @Summary 刷新访问令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body renewAccessTokenRequest true "刷新请求"
// @Success 200 {object} renewAccessTokenResponse "新的访问令牌"
// @Failure 401 {object} ErrorResponse "刷新令牌无效或过期"
// @Router /v1/auth/refresh [post]
func (server *Server) renewAccessToken(ctx *gin.Context) {
	var req renewAccessTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	refreshPayload, err := server.tokenMaker.VerifyToken(req.RefreshToken, token.TokenTypeRefreshToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(
		refreshPayload.UserID,
		refreshPayload.Role,
		refreshPayload.ShopID,
		server.config.AccessTokenDuration,
		token.TokenTypeAccessToken,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, renewAccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiredAt,
	})
}

// getCurrentUser godoc
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Success 200 {object} userResponse "用户信息"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /v1/users/me [get]
// @Security BearerAuth
func (server *Server) getCurrentUser(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type updateUserVehicleRequest struct {
	PlateNumber  string `json:"plate_number" binding:"required,min=4,max=16"`
	VehicleBrand string `json:"vehicle_brand" binding:"required,min=1,max=50"`
}

// updateUserVehicle godoc
// @Summary 更新车辆信息
// @Description 更新当前用户绑定的车牌与品牌
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body updateUserVehicleRequest true "车辆信息"
// @Success 200 {object} userResponse "更新后的用户信息"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /v1/users/me/vehicle [patch]
// @Security BearerAuth
func (server *Server) updateUserVehicle(ctx *gin.Context) {
	var req updateUserVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.store.UpdateUserVehicle(ctx, db.UpdateUserVehicleParams{
		PlateNumber:  req.PlateNumber,
		VehicleBrand: req.VehicleBrand,
		ID:           authPayload.UserID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

type listUserTransactionsRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=50"`
}

type transactionResponse struct {
	ID              int64     `json:"id"`
	TxType          string    `json:"tx_type"`
	Amount          int64     `json:"amount"`
	TaxWithheld     int64     `json:"tax_withheld"`
	RelatedType     string    `json:"related_type"`
	RelatedID       int64     `json:"related_id"`
	SettlementMonth string    `json:"settlement_month,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// listUserTransactions godoc
// @Summary 资金流水
// @Description 分页查询当前用户的奖励与结算流水
// @Tags 用户
// @Produce json
// @Param page_id query int true "页码"
// @Param page_size query int true "每页条数(5-50)"
// @Success 200 {array} transactionResponse "流水列表"
// @Router /v1/users/me/transactions [get]
// @Security BearerAuth
func (server *Server) listUserTransactions(ctx *gin.Context) {
	var req listUserTransactionsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	records, err := server.store.ListUserTransactions(ctx, db.ListUserTransactionsParams{
		UserID: authPayload.UserID,
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]transactionResponse, len(records))
	for i, r := range records {
		resp[i] = transactionResponse{
			ID:              r.ID,
			TxType:          r.TxType,
			Amount:          r.Amount,
			TaxWithheld:     r.TaxWithheld,
			RelatedType:     r.RelatedType,
			RelatedID:       r.RelatedID,
			SettlementMonth: r.SettlementMonth.String,
			CreatedAt:       r.CreatedAt,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
