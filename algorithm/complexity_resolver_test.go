package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testKeywords() []RepairKeyword {
	return []RepairKeyword{
		{Keyword: "补漆", Level: ComplexityL1},
		{Keyword: "划痕", Level: ComplexityL1},
		{Keyword: "钣金", Level: ComplexityL2},
		{Keyword: "保险杠", Level: ComplexityL2},
		{Keyword: "纵梁", Level: ComplexityL3},
		{Keyword: "切割", Level: ComplexityL3},
		{Keyword: "大梁校正", Level: ComplexityL4},
		{Keyword: "气囊", Level: ComplexityL4},
	}
}

func TestComplexityResolver_MaxOverMatches(t *testing.T) {
	resolver := NewComplexityResolver(testKeywords())

	// 单个 L4 关键词命中即整单 L4
	level := resolver.Resolve([]string{"左前门补漆", "前保险杠更换", "主驾气囊更换"})
	require.Equal(t, ComplexityL4, level)

	// 多个同级命中取最高，不取平均
	level = resolver.Resolve([]string{"划痕处理", "后翼子板钣金"})
	require.Equal(t, ComplexityL2, level)
}

func TestComplexityResolver_DefaultWhenNoMatch(t *testing.T) {
	resolver := NewComplexityResolver(testKeywords())

	level := resolver.Resolve([]string{"玻璃水加注", "不知道什么项目"})
	require.Equal(t, DefaultComplexity, level)

	// 空项目列表同样走保底
	require.Equal(t, DefaultComplexity, resolver.Resolve(nil))
}

func TestComplexityResolver_ItemMatch(t *testing.T) {
	resolver := NewComplexityResolver(testKeywords())

	level, ok := resolver.ResolveItem("  右侧纵梁切割修复 ")
	require.True(t, ok)
	require.Equal(t, ComplexityL3, level)

	_, ok = resolver.ResolveItem("")
	require.False(t, ok)

	_, ok = resolver.ResolveItem("轮胎换位")
	require.False(t, ok)
}

func TestComplexityResolver_IgnoresInvalidTableRows(t *testing.T) {
	resolver := NewComplexityResolver([]RepairKeyword{
		{Keyword: "", Level: ComplexityL4},
		{Keyword: "补漆", Level: ComplexityLevel(9)},
		{Keyword: "补漆", Level: ComplexityL1},
	})

	level := resolver.Resolve([]string{"车门补漆"})
	require.Equal(t, ComplexityL1, level)
}
