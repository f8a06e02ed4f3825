package api

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware 安全响应头中间件
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 防止点击劫持
		ctx.Header("X-Frame-Options", "DENY")

		// 防止 MIME 类型嗅探攻击
		ctx.Header("X-Content-Type-Options", "nosniff")

		// 启用 XSS 过滤（现代浏览器已内置，兜底）
		ctx.Header("X-XSS-Protection", "1; mode=block")

		// Referrer 策略：只在同源请求时发送完整 referrer
		ctx.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// 纯 API 服务：禁止内联脚本和外部资源
		ctx.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// 禁止浏览器缓存 API 响应
		ctx.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		ctx.Header("Pragma", "no-cache")
		ctx.Header("Expires", "0")

		ctx.Next()
	}
}

// HSTSMiddleware 强制 HTTPS 中间件
// 在 Nginx 后面时通常由 Nginx 设置此头
func HSTSMiddleware(maxAge int) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https" {
			ctx.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		ctx.Next()
	}
}

// CORSMiddleware 跨域资源共享中间件
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originsMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originsMap[origin] = true
	}

	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")

		if origin != "" && (len(allowedOrigins) == 0 || originsMap[origin] || originsMap["*"]) {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Access-Control-Allow-Credentials", "true")
			ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			ctx.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")
			ctx.Header("Access-Control-Expose-Headers", "X-Request-ID")
			ctx.Header("Access-Control-Max-Age", "86400")
		}

		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}

		ctx.Next()
	}
}
