package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP 请求计数器
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP 请求延迟直方图
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// 活跃请求数
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// 数据库连接池指标（需要从外部注入）
	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// 在线店铺WebSocket连接数
	wsShopConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_shop_connections",
			Help: "Number of shops currently connected via WebSocket",
		},
	)

	// 业务指标
	biddingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "biddings_created_total",
			Help: "Total number of repair biddings created",
		},
	)

	quotesSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_submitted_total",
			Help: "Total number of quotes submitted by shops",
		},
	)

	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created from accepted quotes",
		},
	)

	reviewsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_submitted_total",
			Help: "Total number of reviews submitted",
		},
		[]string{"quality"}, // basic, premium
	)
)

// PrometheusMiddleware 记录 HTTP 请求指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// 404 时 FullPath 为空，退回真实路径
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler 返回 Prometheus 指标处理器
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateDBMetrics 更新数据库连接池指标（应该定期调用）
func UpdateDBMetrics(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}

// UpdateWSMetrics 更新在线店铺连接数指标
func UpdateWSMetrics(shops int) {
	wsShopConnections.Set(float64(shops))
}

// RecordBiddingCreated 记录竞价单创建
func RecordBiddingCreated() {
	biddingsCreatedTotal.Inc()
}

// RecordQuoteSubmitted 记录店铺报价
func RecordQuoteSubmitted() {
	quotesSubmittedTotal.Inc()
}

// RecordOrderCreated 记录订单创建
func RecordOrderCreated() {
	ordersCreatedTotal.Inc()
}

// RecordReviewSubmitted 记录评价提交
func RecordReviewSubmitted(premium bool) {
	quality := "basic"
	if premium {
		quality = "premium"
	}
	reviewsSubmittedTotal.WithLabelValues(quality).Inc()
}
