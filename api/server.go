package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/algorithm"
	db "github.com/fixbid/repairbid/db/sqlc"
	"github.com/fixbid/repairbid/settlement"
	"github.com/fixbid/repairbid/token"
	"github.com/fixbid/repairbid/util"
	"github.com/fixbid/repairbid/websocket"
	"github.com/fixbid/repairbid/worker"
)

// Server serves HTTP requests for the repair bidding platform.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	taskDistributor worker.TaskDistributor
	rules           *algorithm.RuleSource
	trustGate       *algorithm.TrustGate
	ranker          *algorithm.ShopRanker
	scorer          *algorithm.ShopScorer
	batch           *settlement.Batch
	wsHub           *websocket.Hub           // WebSocket连接管理（店铺实时通知）
	wsPubSub        *websocket.PubSubManager // Redis Pub/Sub管理（跨进程推送）
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	rules := algorithm.NewRuleSource(store, time.Minute)

	// 创建WebSocket Hub（店铺实时接单通知）
	wsHub := websocket.NewHub(context.Background())

	// 创建Redis Pub/Sub管理器（worker进程的推送经Redis转发到本进程）
	var wsPubSub *websocket.PubSubManager
	if config.RedisAddress != "" {
		wsPubSub, err = websocket.NewPubSubManager(config.RedisAddress, config.RedisPassword, wsHub)
		if err != nil {
			log.Warn().Err(err).Msg("failed to create PubSub manager, WebSocket push will be disabled")
		} else {
			wsPubSub.Start()
		}
	}

	// 初始化 Casbin 权限控制（仅当尚未初始化时）
	if GetGlobalCasbinEnforcer() == nil {
		if err := InitCasbin("casbin"); err != nil {
			log.Warn().Err(err).Msg("failed to initialize Casbin, RBAC will rely on token role checks only")
		}
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		taskDistributor: taskDistributor,
		rules:           rules,
		trustGate:       algorithm.NewTrustGate(store),
		ranker:          algorithm.NewShopRanker(),
		scorer:          algorithm.NewShopScorer(),
		batch:           settlement.NewBatch(store, rules),
		wsHub:           wsHub,
		wsPubSub:        wsPubSub,
	}

	server.setupRouter()
	return server, nil
}

// GetWebSocketHub returns the WebSocket hub for external access
func (server *Server) GetWebSocketHub() *websocket.Hub {
	return server.wsHub
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	registerCustomValidators()

	// 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// 安全响应头中间件
	router.Use(SecurityHeadersMiddleware())
	if server.config.Environment == "production" {
		router.Use(HSTSMiddleware(31536000))
	}

	// 请求追踪中间件（生成 X-Request-ID）
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())

	// Prometheus 指标中间件
	router.Use(PrometheusMiddleware())

	// 速率限制中间件
	rateLimiter := NewRateLimiter(DefaultRateLimiterConfig())
	router.Use(rateLimiter.Middleware())

	// 全局超时：防止慢查询、AI外部服务卡死导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// Prometheus 指标端点（供监控系统抓取）
	router.GET("/metrics", MetricsHandler())

	// 健康检查端点（供 Nginx/K8s 使用，无需认证）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	// API v1
	v1 := router.Group("/v1")

	// 认证路由（无需认证，但需要额外的速率限制）
	authPublicGroup := v1.Group("/auth")
	authPublicGroup.Use(rateLimiter.SensitiveAPIMiddleware(10))
	authPublicGroup.POST("/register", server.registerUser)
	authPublicGroup.POST("/login", server.loginUser)
	authPublicGroup.POST("/refresh", server.renewAccessToken)

	// 需要认证的路由
	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	// 用户
	authGroup.GET("/users/me", server.getCurrentUser)
	authGroup.PATCH("/users/me/vehicle", server.updateUserVehicle)
	authGroup.GET("/users/me/transactions", server.listUserTransactions)

	// 车主：竞价单
	biddingsGroup := authGroup.Group("/biddings")
	{
		biddingsGroup.POST("", server.createBidding)
		biddingsGroup.GET("", server.listOwnerBiddings)
		biddingsGroup.GET("/:id", server.getBidding)
		biddingsGroup.GET("/:id/quotes", server.listBiddingQuotes)
		biddingsGroup.POST("/:id/close", server.closeBidding)
	}

	// 车主：选标与订单
	authGroup.POST("/quotes/:id/select", server.selectQuote)
	authGroup.GET("/orders", server.listUserOrders)
	authGroup.GET("/orders/:id", server.getOrder)

	// 车主：评价与点赞
	reviewsGroup := authGroup.Group("/reviews")
	{
		reviewsGroup.POST("", server.createReview)
		reviewsGroup.GET("/:id", server.getReview)
		reviewsGroup.POST("/:id/read-sessions", server.createReadSession)
		reviewsGroup.POST("/:id/likes", server.likeReview)
	}
	authGroup.GET("/shops/:id/reviews", server.listShopReviews)
	authGroup.GET("/shops/:id", server.getShop)

	// 店铺端
	shopGroup := authGroup.Group("/shop")
	shopGroup.Use(server.CasbinRoleMiddleware(RoleShop))
	{
		shopGroup.GET("/me", server.getCurrentShop)
		shopGroup.GET("/biddings", server.listShopVisibleBiddings)
		shopGroup.POST("/quotes", server.createQuote)
		shopGroup.POST("/quotes/:id/withdraw", server.withdrawQuote)
		shopGroup.GET("/orders", server.listShopOrders)
		shopGroup.POST("/orders/:id/complete", server.completeOrder)
		shopGroup.POST("/appeals", server.createAppeal)
		shopGroup.GET("/notifications", server.listShopNotifications)
		shopGroup.PUT("/notifications/:id/read", server.markNotificationRead)
	}

	// 店铺注册（任意登录用户，成功后需重新登录获取店铺角色令牌）
	authGroup.POST("/shops", server.registerShop)

	// 店铺WebSocket路由（实时接单通知）
	authGroup.GET("/ws", server.handleWebSocket)

	// 运营端
	operatorGroup := authGroup.Group("/operator")
	operatorGroup.Use(server.CasbinRoleMiddleware(RoleOperator))
	{
		operatorGroup.GET("/configs", server.listPlatformConfigs)
		operatorGroup.GET("/configs/current", server.getCurrentRules)
		operatorGroup.POST("/configs", server.createPlatformConfig)

		operatorGroup.GET("/keywords", server.listRepairKeywords)
		operatorGroup.POST("/keywords", server.createRepairKeyword)
		operatorGroup.DELETE("/keywords/:id", server.deleteRepairKeyword)

		operatorGroup.GET("/blacklist", server.listBlacklistEntries)
		operatorGroup.POST("/blacklist", server.createBlacklistEntry)
		operatorGroup.DELETE("/blacklist/:id", server.deleteBlacklistEntry)

		operatorGroup.POST("/violations", server.createShopViolation)
		operatorGroup.POST("/shops/:id/status", server.setShopStatus)
		operatorGroup.POST("/reviews/:id/upgrade", server.upgradeReviewQuality)

		operatorGroup.GET("/settlements", server.listSettlementRuns)
		operatorGroup.POST("/settlements/:month/run", server.runSettlement)
	}

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "repairbid-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "repairbid-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// Postgres 错误补充结构化字段，方便定位
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
