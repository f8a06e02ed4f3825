package algorithm

import "strings"

// containsFold 忽略大小写与首尾空白的子串包含
func containsFold(s, substr string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return false
	}
	return strings.Contains(s, substr)
}

// CategoriesMatchItems 店铺声明的服务类目是否覆盖需求项目（任一类目与任一项目文本交叠即算）
func CategoriesMatchItems(categories, items []string) bool {
	return TextOverlap(categories, items)
}
