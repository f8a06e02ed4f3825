package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fixbid/repairbid/token"
)

// 系统角色
const (
	RoleOwner    = "owner"    // 车主
	RoleShop     = "shop"     // 修理厂
	RoleOperator = "operator" // 平台运营
)

// CasbinEnforcer 封装 Casbin enforcer 并提供线程安全访问
type CasbinEnforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewCasbinEnforcer 创建新的 Casbin enforcer
// modelPath: model.conf 文件路径
// policyPath: policy.csv 文件路径
func NewCasbinEnforcer(modelPath, policyPath string) (*CasbinEnforcer, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	// 加载策略
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load casbin policy: %w", err)
	}

	log.Info().
		Str("model", modelPath).
		Str("policy", policyPath).
		Msg("✅ Casbin enforcer initialized")

	return &CasbinEnforcer{
		enforcer: enforcer,
	}, nil
}

// NewCasbinEnforcerFromString 从字符串创建 Casbin enforcer（用于测试）
func NewCasbinEnforcerFromString(modelText, policyText string) (*CasbinEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	// 解析策略文本并添加
	lines := strings.Split(policyText, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		ptype := parts[0]
		values := parts[1:]

		args := make([]interface{}, len(values))
		for i, v := range values {
			args[i] = v
		}

		switch ptype {
		case "p":
			if _, err := enforcer.AddPolicy(args...); err != nil {
				log.Warn().Err(err).Str("policy", line).Msg("failed to add policy")
			}
		case "g":
			if _, err := enforcer.AddGroupingPolicy(args...); err != nil {
				log.Warn().Err(err).Str("grouping", line).Msg("failed to add grouping policy")
			}
		}
	}

	return &CasbinEnforcer{
		enforcer: enforcer,
	}, nil
}

// Enforce 检查权限
// sub: 角色 (owner, shop, operator)
// obj: 资源路径 (/v1/biddings/:id)
// act: 操作 (GET, POST, PUT, DELETE, PATCH)
func (ce *CasbinEnforcer) Enforce(sub, obj, act string) (bool, error) {
	ce.mu.RLock()
	defer ce.mu.RUnlock()
	return ce.enforcer.Enforce(sub, obj, act)
}

// AddPolicy 动态添加策略
func (ce *CasbinEnforcer) AddPolicy(sub, obj, act string) (bool, error) {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.enforcer.AddPolicy(sub, obj, act)
}

// RemovePolicy 动态移除策略
func (ce *CasbinEnforcer) RemovePolicy(sub, obj, act string) (bool, error) {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.enforcer.RemovePolicy(sub, obj, act)
}

// ReloadPolicy 重新加载策略
func (ce *CasbinEnforcer) ReloadPolicy() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.enforcer.LoadPolicy()
}

// GetEnforcer 获取底层 enforcer（用于测试）
func (ce *CasbinEnforcer) GetEnforcer() *casbin.Enforcer {
	return ce.enforcer
}

// ==================== Server 集成 ====================

var globalCasbinEnforcer *CasbinEnforcer

// InitCasbin 初始化 Casbin enforcer
// 应在 server 启动时调用
func InitCasbin(casbinDir string) error {
	modelPath := filepath.Join(casbinDir, "model.conf")
	policyPath := filepath.Join(casbinDir, "policy.csv")

	enforcer, err := NewCasbinEnforcer(modelPath, policyPath)
	if err != nil {
		return err
	}

	globalCasbinEnforcer = enforcer
	return nil
}

// SetGlobalCasbinEnforcer 设置全局 enforcer（用于测试）
func SetGlobalCasbinEnforcer(enforcer *CasbinEnforcer) {
	globalCasbinEnforcer = enforcer
}

// GetGlobalCasbinEnforcer 获取全局 enforcer
func GetGlobalCasbinEnforcer() *CasbinEnforcer {
	return globalCasbinEnforcer
}

// ==================== Casbin 中间件 ====================

// CasbinMiddleware 创建基于 Casbin 的权限验证中间件
// 角色直接取自 token payload，登录时已经按角色签发
//
// 注意：此中间件必须在 authMiddleware 之后使用
func (server *Server) CasbinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if globalCasbinEnforcer == nil {
			log.Warn().Msg("Casbin enforcer not initialized, skipping permission check")
			ctx.Next()
			return
		}

		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		obj := ctx.Request.URL.Path
		act := ctx.Request.Method

		allowed, err := globalCasbinEnforcer.Enforce(authPayload.Role, obj, act)
		if err != nil {
			log.Error().Err(err).
				Str("path", obj).
				Str("method", act).
				Str("role", authPayload.Role).
				Msg("Casbin enforcement error")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if !allowed {
			log.Debug().
				Str("path", obj).
				Str("method", act).
				Str("role", authPayload.Role).
				Msg("Permission denied by Casbin")
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				errors.New("you don't have permission to access this resource"),
			))
			return
		}

		ctx.Next()
	}
}

// CasbinRoleMiddleware 创建指定角色的 Casbin 权限验证中间件
// 除了 Casbin 权限检查外，还会验证 token 必须携带指定角色
// 适用于需要特定角色的路由组
func (server *Server) CasbinRoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		if authPayload.Role != requiredRole {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				fmt.Errorf("this endpoint requires %s role", requiredRole),
			))
			return
		}

		if globalCasbinEnforcer == nil {
			log.Warn().Msg("Casbin enforcer not initialized, skipping permission check")
			ctx.Next()
			return
		}

		obj := ctx.Request.URL.Path
		act := ctx.Request.Method

		allowed, err := globalCasbinEnforcer.Enforce(requiredRole, obj, act)
		if err != nil {
			log.Error().Err(err).
				Str("path", obj).
				Str("method", act).
				Str("role", requiredRole).
				Msg("Casbin enforcement error")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				errors.New("you don't have permission to access this resource"),
			))
			return
		}

		ctx.Next()
	}
}
