package algorithm

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	db "github.com/fixbid/repairbid/db/sqlc"
)

// RuleSource 平台规则快照源：读 platform_configs 最新版本并短期缓存。
// 读不到配置（表空、解析失败、连接故障）回退到内置默认规则（version 0），
// 保证匹配与计价永远有规则可用。
type RuleSource struct {
	store db.Store
	ttl   time.Duration

	mu        sync.Mutex
	cached    RuleSet
	expiresAt time.Time
}

// NewRuleSource 创建规则源，ttl 控制缓存刷新周期
func NewRuleSource(store db.Store, ttl time.Duration) *RuleSource {
	return &RuleSource{store: store, ttl: ttl}
}

// Current 返回当前生效的规则快照
func (rs *RuleSource) Current(ctx context.Context) RuleSet {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	now := time.Now()
	if now.Before(rs.expiresAt) {
		return rs.cached
	}

	rules := rs.load(ctx)
	rs.cached = rules
	rs.expiresAt = now.Add(rs.ttl)
	return rules
}

// Invalidate 强制下一次读取回源（运营端改完配置后调用）
func (rs *RuleSource) Invalidate() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.expiresAt = time.Time{}
}

func (rs *RuleSource) load(ctx context.Context) RuleSet {
	cfg, err := rs.store.GetLatestPlatformConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load platform config failed, using default rule set")
		return DefaultRuleSet()
	}

	rules := DefaultRuleSet()
	if err := json.Unmarshal(cfg.Payload, &rules); err != nil {
		log.Error().Err(err).Int64("version", cfg.Version).Msg("decode platform config failed, using default rule set")
		return DefaultRuleSet()
	}
	rules.Version = cfg.Version
	return rules
}
