package algorithm

import "strings"

// RepairKeyword 运营维护的关键词→复杂度映射表中的一条
type RepairKeyword struct {
	Keyword string
	Level   ComplexityLevel
}

// ComplexityResolver 把自由文本维修项目解析为复杂度等级。
// 关键词表由运营维护，作为数据快照传入，保证表编辑后历史解析可复现。
type ComplexityResolver struct {
	keywords []RepairKeyword
}

// NewComplexityResolver 创建解析器
func NewComplexityResolver(keywords []RepairKeyword) *ComplexityResolver {
	return &ComplexityResolver{keywords: keywords}
}

// DefaultComplexity 无任何关键词命中时的保底等级
const DefaultComplexity = ComplexityL2

// Resolve 返回所有项目命中关键词中的最高等级。
// 取最高而非平均：只要有一项命中 L4，整单就是 L4。
// 零命中返回 L2 保底。
func (r *ComplexityResolver) Resolve(items []string) ComplexityLevel {
	highest := ComplexityLevel(0)
	for _, item := range items {
		if level, ok := r.ResolveItem(item); ok && level > highest {
			highest = level
		}
	}
	if highest == 0 {
		return DefaultComplexity
	}
	return highest
}

// ResolveItem 解析单个项目。返回该项目命中的最高等级，未命中时 ok=false。
// 匹配规则为子串包含，忽略大小写和首尾空白。
func (r *ComplexityResolver) ResolveItem(item string) (ComplexityLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(item))
	if normalized == "" {
		return 0, false
	}

	highest := ComplexityLevel(0)
	for _, kw := range r.keywords {
		keyword := strings.ToLower(strings.TrimSpace(kw.Keyword))
		if keyword == "" || !kw.Level.Valid() {
			continue
		}
		if strings.Contains(normalized, keyword) && kw.Level > highest {
			highest = kw.Level
		}
	}

	if highest == 0 {
		return 0, false
	}
	return highest, true
}
