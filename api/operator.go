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
	"github.com/fixbid/repairbid/worker"
)

type listPageRequest struct {
	Limit  int32 `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int32 `form:"offset,default=0" binding:"min=0"`
}

type platformConfigResponse struct {
	Version   int64           `json:"version"`
	Payload   json.RawMessage `json:"payload"`
	Remark    string          `json:"remark"`
	CreatedAt time.Time       `json:"created_at"`
}

func newPlatformConfigResponse(cfg db.PlatformConfig) platformConfigResponse {
	return platformConfigResponse{
		Version:   cfg.Version,
		Payload:   json.RawMessage(cfg.Payload),
		Remark:    cfg.Remark,
		CreatedAt: cfg.CreatedAt,
	}
}

// listPlatformConfigs godoc
// @Summary 规则配置历史
// @Description 按版本倒序返回平台规则配置
// @Tags 运营
// @Produce json
// @Param limit query int false "每页数量(默认20, 最大100)"
// @Param offset query int false "分页偏移量(默认0)"
// @Success 200 {array} platformConfigResponse "配置列表"
// @Router /v1/operator/configs [get]
// @Security BearerAuth
func (server *Server) listPlatformConfigs(ctx *gin.Context) {
	var req listPageRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	configs, err := server.store.ListPlatformConfigs(ctx, db.ListPlatformConfigsParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]platformConfigResponse, len(configs))
	for i, cfg := range configs {
		resp[i] = newPlatformConfigResponse(cfg)
	}

	ctx.JSON(http.StatusOK, resp)
}

// getCurrentRules godoc
// @Summary 当前生效规则
// @Description 返回当前生效的规则集（含默认值兜底）
// @Tags 运营
// @Produce json
// @Success 200 {object} algorithm.RuleSet "规则集"
// @Router /v1/operator/configs/current [get]
// @Security BearerAuth
func (server *Server) getCurrentRules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, server.rules.Current(ctx))
}

type createPlatformConfigRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
	Remark  string          `json:"remark" binding:"required,min=1,max=200"`
}

// createPlatformConfig godoc
// @Summary 发布规则配置
// @Description 发布新版本规则，发布后立即生效并刷新缓存
// @Tags 运营
// @Accept json
// @Produce json
// @Param request body createPlatformConfigRequest true "规则载荷与备注"
// @Success 200 {object} platformConfigResponse "新配置"
// @Failure 400 {object} ErrorResponse "规则载荷不合法"
// @Router /v1/operator/configs [post]
// @Security BearerAuth
func (server *Server) createPlatformConfig(ctx *gin.Context) {
	var req createPlatformConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// 载荷必须可以解析为完整规则集，未填字段回落默认值
	rules := algorithm.DefaultRuleSet()
	if err := json.Unmarshal(req.Payload, &rules); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("payload is not a valid rule set")))
		return
	}

	cfg, err := server.store.CreatePlatformConfig(ctx, db.CreatePlatformConfigParams{
		Payload: req.Payload,
		Remark:  req.Remark,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	server.rules.Invalidate()

	ctx.JSON(http.StatusOK, newPlatformConfigResponse(cfg))
}

type repairKeywordResponse struct {
	ID        int64     `json:"id"`
	Keyword   string    `json:"keyword"`
	Level     int16     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// listRepairKeywords godoc
// @Summary 定损关键词列表
// @Tags 运营
// @Produce json
// @Success 200 {array} repairKeywordResponse "关键词列表"
// @Router /v1/operator/keywords [get]
// @Security BearerAuth
func (server *Server) listRepairKeywords(ctx *gin.Context) {
	keywords, err := server.store.ListRepairKeywords(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]repairKeywordResponse, len(keywords))
	for i, kw := range keywords {
		resp[i] = repairKeywordResponse{
			ID:        kw.ID,
			Keyword:   kw.Keyword,
			Level:     kw.Level,
			CreatedAt: kw.CreatedAt,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

type createRepairKeywordRequest struct {
	Keyword string `json:"keyword" binding:"required,min=1,max=50"`
	Level   int16  `json:"level" binding:"required,min=1,max=4"`
}

// createRepairKeyword godoc
// @Summary 新增定损关键词
// @Description 关键词命中项目描述时映射到对应复杂度档位
// @Tags 运营
// @Accept json
// @Produce json
// @Param request body createRepairKeywordRequest true "关键词与档位"
// @Success 200 {object} repairKeywordResponse "关键词"
// @Failure 409 {object} ErrorResponse "关键词已存在"
// @Router /v1/operator/keywords [post]
// @Security BearerAuth
func (server *Server) createRepairKeyword(ctx *gin.Context) {
	var req createRepairKeywordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	kw, err := server.store.CreateRepairKeyword(ctx, db.CreateRepairKeywordParams{
		Keyword: req.Keyword,
		Level:   req.Level,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("keyword already exists")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, repairKeywordResponse{
		ID:        kw.ID,
		Keyword:   kw.Keyword,
		Level:     kw.Level,
		CreatedAt: kw.CreatedAt,
	})
}

type operatorIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// deleteRepairKeyword godoc
// @Summary 删除定损关键词
// @Tags 运营
// @Produce json
// @Param id path int true "关键词ID"
// @Success 200 {object} map[string]string "已删除"
// @Router /v1/operator/keywords/{id} [delete]
// @Security BearerAuth
func (server *Server) deleteRepairKeyword(ctx *gin.Context) {
	var req operatorIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.store.DeleteRepairKeyword(ctx, req.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type blacklistEntryResponse struct {
	ID        int64     `json:"id"`
	ValueType string    `json:"value_type"`
	Value     string    `json:"value"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// listBlacklistEntries godoc
// @Summary 黑名单列表
// @Tags 运营
// @Produce json
// @Param limit query int false "每页数量(默认20, 最大100)"
// @Param offset query int false "分页偏移量(默认0)"
// @Success 200 {array} blacklistEntryResponse "黑名单"
// @Router /v1/operator/blacklist [get]
// @Security BearerAuth
func (server *Server) listBlacklistEntries(ctx *gin.Context) {
	var req listPageRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	entries, err := server.store.ListBlacklistEntries(ctx, db.ListBlacklistEntriesParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]blacklistEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = blacklistEntryResponse{
			ID:        e.ID,
			ValueType: e.ValueType,
			Value:     e.Value,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

type createBlacklistEntryRequest struct {
	ValueType string `json:"value_type" binding:"required,oneof=user_id phone plate ip"`
	Value     string `json:"value" binding:"required,min=1,max=50"`
	Reason    string `json:"reason" binding:"required,min=1,max=200"`
}

// createBlacklistEntry godoc
// @Summary 新增黑名单
// @Description 黑名单命中用户ID、手机号、车牌或IP时拦截发单、评价与点赞
// @Tags 运营
// @Accept json
// @Produce json
// @Param request body createBlacklistEntryRequest true "黑名单条目"
// @Success 200 {object} blacklistEntryResponse "条目"
// @Failure 409 {object} ErrorResponse "条目已存在"
// @Router /v1/operator/blacklist [post]
// @Security BearerAuth
func (server *Server) createBlacklistEntry(ctx *gin.Context) {
	var req createBlacklistEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	entry, err := server.store.CreateBlacklistEntry(ctx, db.CreateBlacklistEntryParams{
		ValueType: req.ValueType,
		Value:     req.Value,
		Reason:    req.Reason,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("blacklist entry already exists")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, blacklistEntryResponse{
		ID:        entry.ID,
		ValueType: entry.ValueType,
		Value:     entry.Value,
		Reason:    entry.Reason,
		CreatedAt: entry.CreatedAt,
	})
}

// deleteBlacklistEntry godoc
// @Summary 删除黑名单
// @Tags 运营
// @Produce json
// @Param id path int true "条目ID"
// @Success 200 {object} map[string]string "已删除"
// @Router /v1/operator/blacklist/{id} [delete]
// @Security BearerAuth
func (server *Server) deleteBlacklistEntry(ctx *gin.Context) {
	var req operatorIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.store.DeleteBlacklistEntry(ctx, req.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type createShopViolationRequest struct {
	ShopID      int64  `json:"shop_id" binding:"required,min=1"`
	Severity    int16  `json:"severity" binding:"required,min=1,max=5"`
	Description string `json:"description" binding:"required,min=1,max=500"`
}

type shopViolationResponse struct {
	ID          int64     `json:"id"`
	ShopID      int64     `json:"shop_id"`
	Severity    int16     `json:"severity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// createShopViolation godoc
// @Summary 记录店铺违规
// @Description 重度违规会影响店铺分发资格与奖励合规判定
// @Tags 运营
// @Accept json
// @Produce json
// @Param request body createShopViolationRequest true "违规记录"
// @Success 200 {object} shopViolationResponse "违规"
// @Failure 404 {object} ErrorResponse "店铺不存在"
// @Router /v1/operator/violations [post]
// @Security BearerAuth
func (server *Server) createShopViolation(ctx *gin.Context) {
	var req createShopViolationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	violation, err := server.store.CreateShopViolation(ctx, db.CreateShopViolationParams{
		ShopID:      req.ShopID,
		Severity:    req.Severity,
		Description: req.Description,
	})
	if err != nil {
		if db.ErrorCode(err) == db.ForeignKeyViolation {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("shop not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, shopViolationResponse{
		ID:          violation.ID,
		ShopID:      violation.ShopID,
		Severity:    violation.Severity,
		Description: violation.Description,
		CreatedAt:   violation.CreatedAt,
	})
}

type setShopStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended banned"`
}

// setShopStatus godoc
// @Summary 调整店铺状态
// @Description 暂停或封禁的店铺不再进入分发与报价
// @Tags 运营
// @Accept json
// @Produce json
// @Param id path int true "店铺ID"
// @Param request body setShopStatusRequest true "目标状态"
// @Success 200 {object} map[string]string "已更新"
// @Router /v1/operator/shops/{id}/status [post]
// @Security BearerAuth
func (server *Server) setShopStatus(ctx *gin.Context) {
	var uri operatorIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req setShopStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.store.SetShopStatus(ctx, db.SetShopStatusParams{
		Status: req.Status,
		ID:     uri.ID,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": req.Status})
}

type upgradeReviewResponse struct {
	ReviewID     int64   `json:"review_id"`
	QualityLevel string  `json:"quality_level"`
	Weight       float64 `json:"weight"`
	DiffAmount   int64   `json:"diff_amount"`
	TriggerMonth string  `json:"trigger_month"`
}

// upgradeReviewQuality godoc
// @Summary 评价内容升档
// @Description 把普通档评价改判为优质档：冻结权重补乘优质档因子，
// @Description 奖励差额按订单奖励总额的固定比例挂账到当月结算
// @Tags 运营
// @Produce json
// @Param id path int true "评价ID"
// @Success 200 {object} upgradeReviewResponse "升档结果"
// @Failure 404 {object} ErrorResponse "评价不存在"
// @Failure 409 {object} ErrorResponse "评价已是优质档或已被剔除"
// @Router /v1/operator/reviews/{id}/upgrade [post]
// @Security BearerAuth
func (server *Server) upgradeReviewQuality(ctx *gin.Context) {
	var req operatorIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	review, err := server.store.GetReview(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("review not found")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if review.Excluded {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("review has been excluded")))
		return
	}
	if review.QualityLevel == algorithm.QualityPremium {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("review is already premium")))
		return
	}

	order, err := server.store.GetOrder(ctx, review.OrderID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	rules := server.rules.Current(ctx)
	diff := algorithm.NewRewardCalculator(rules.Reward).PremiumUpgradeDiff(order.RewardPreview)
	month := time.Now().Format("2006-01")

	result, err := server.store.UpgradeReviewTx(ctx, db.UpgradeReviewTxParams{
		ReviewID:     review.ID,
		NewWeight:    server.scorer.UpgradeWeight(review.Weight),
		DiffAmount:   diff,
		TriggerMonth: month,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 权重变了，口碑分跟着重算
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskRecomputeShopScore(ctx, &worker.RecomputeShopScorePayload{
			ShopID: review.ShopID,
		})
		if err != nil {
			log.Error().Err(err).Int64("shop_id", review.ShopID).Msg("failed to enqueue shop score recompute")
		}
	}

	ctx.JSON(http.StatusOK, upgradeReviewResponse{
		ReviewID:     result.Review.ID,
		QualityLevel: result.Review.QualityLevel,
		Weight:       result.Review.Weight,
		DiffAmount:   diff,
		TriggerMonth: month,
	})
}

type settlementRunResponse struct {
	ID             int64     `json:"id"`
	Month          string    `json:"month"`
	EntriesPaid    int32     `json:"entries_paid"`
	LikesPaid      int32     `json:"likes_paid"`
	PostVerifyPaid int32     `json:"post_verify_paid"`
	TotalAmount    int64     `json:"total_amount"`
	ErrorCount     int32     `json:"error_count"`
	Errors         []string  `json:"errors"`
	CreatedAt      time.Time `json:"created_at"`
}

func newSettlementRunResponse(run db.SettlementRun) settlementRunResponse {
	return settlementRunResponse{
		ID:             run.ID,
		Month:          run.Month,
		EntriesPaid:    run.EntriesPaid,
		LikesPaid:      run.LikesPaid,
		PostVerifyPaid: run.PostVerifyPaid,
		TotalAmount:    run.TotalAmount,
		ErrorCount:     run.ErrorCount,
		Errors:         run.Errors,
		CreatedAt:      run.CreatedAt,
	}
}

// listSettlementRuns godoc
// @Summary 结算批次列表
// @Tags 运营
// @Produce json
// @Param limit query int false "每页数量(默认20, 最大100)"
// @Param offset query int false "分页偏移量(默认0)"
// @Success 200 {array} settlementRunResponse "批次列表"
// @Router /v1/operator/settlements [get]
// @Security BearerAuth
func (server *Server) listSettlementRuns(ctx *gin.Context) {
	var req listPageRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	runs, err := server.store.ListSettlementRuns(ctx, db.ListSettlementRunsParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]settlementRunResponse, len(runs))
	for i, run := range runs {
		resp[i] = newSettlementRunResponse(run)
	}

	ctx.JSON(http.StatusOK, resp)
}

type runSettlementRequest struct {
	Month string `uri:"month" binding:"required,month"`
}

type runSettlementResponse struct {
	Month          string   `json:"month"`
	EntriesPaid    int      `json:"entries_paid"`
	LikesPaid      int      `json:"likes_paid"`
	PostVerifyPaid int      `json:"post_verify_paid"`
	TotalAmount    int64    `json:"total_amount"`
	Errors         []string `json:"errors"`
}

// runSettlement godoc
// @Summary 手动触发月度结算
// @Description 结算指定月份（YYYY-MM）的挂账、点赞与购后验证奖励
// @Tags 运营
// @Produce json
// @Param month path string true "结算月份 YYYY-MM"
// @Success 200 {object} runSettlementResponse "结算汇总"
// @Failure 409 {object} ErrorResponse "该月已结算"
// @Router /v1/operator/settlements/{month}/run [post]
// @Security BearerAuth
func (server *Server) runSettlement(ctx *gin.Context) {
	var req runSettlementRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	summary, err := server.batch.Run(ctx, req.Month)
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("settlement for this month has already run")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, runSettlementResponse{
		Month:          summary.Month,
		EntriesPaid:    summary.EntriesPaid,
		LikesPaid:      summary.LikesPaid,
		PostVerifyPaid: summary.PostVerifyPaid,
		TotalAmount:    summary.TotalAmount,
		Errors:         summary.Errors,
	})
}
