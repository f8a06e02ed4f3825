package algorithm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReviewValidator_L3NoPhotosShortText(t *testing.T) {
	v := NewReviewValidator(DefaultRuleSet().Review)

	// L3 订单、0张照片、3个字：无论评分如何都因证据不足被驳回
	for _, rating := range []int16{1, 3, 5} {
		result := v.Validate(ComplexityL3, rating, ReviewEvidence{}, "还行吧")
		require.False(t, result.Valid)
		require.Equal(t, ReviewRejectInsufficientEvidence, result.ReasonCode)
	}
}

func TestReviewValidator_EvidenceMatrix(t *testing.T) {
	v := NewReviewValidator(DefaultRuleSet().Review)

	// 负面 L1/L2：1张问题照片即可
	result := v.Validate(ComplexityL1, 1, ReviewEvidence{ProblemPhotos: 1}, "补漆有色差，返工两次")
	require.True(t, result.Valid)

	// 负面 L3/L4：1张问题照片不够
	result = v.Validate(ComplexityL4, 2, ReviewEvidence{ProblemPhotos: 1}, "大梁校正后跑偏，方向盘抖动明显")
	require.False(t, result.Valid)
	require.Equal(t, ReviewRejectInsufficientEvidence, result.ReasonCode)

	// 负面 L3/L4：1张问题照片 + 结算单可以
	result = v.Validate(ComplexityL4, 2, ReviewEvidence{ProblemPhotos: 1, HasSettlementDoc: true}, "大梁校正后跑偏，方向盘抖动明显")
	require.True(t, result.Valid)

	// 正面 L3/L4：2张核心照片
	result = v.Validate(ComplexityL3, 5, ReviewEvidence{CorePhotos: 2}, "纵梁切割焊接做得很规整，提车验收没问题")
	require.True(t, result.Valid)
}

func TestReviewValidator_TextLengthFloors(t *testing.T) {
	v := NewReviewValidator(DefaultRuleSet().Review)

	// L1/L2 下限5字
	result := v.Validate(ComplexityL2, 5, ReviewEvidence{CorePhotos: 1}, "修好")
	require.False(t, result.Valid)
	require.Equal(t, ReviewRejectTextTooShort, result.ReasonCode)

	// L3/L4 下限15字
	result = v.Validate(ComplexityL3, 5, ReviewEvidence{CorePhotos: 2}, "修得很好没有问题")
	require.False(t, result.Valid)
	require.Equal(t, ReviewRejectTextTooShort, result.ReasonCode)
}

func TestReviewValidator_FillerRejected(t *testing.T) {
	v := NewReviewValidator(DefaultRuleSet().Review)

	// 长度够但全是口水词
	result := v.Validate(ComplexityL1, 5, ReviewEvidence{CorePhotos: 1}, "好好好，不错不错，赞！")
	require.False(t, result.Valid)
	require.Equal(t, ReviewRejectFillerContent, result.ReasonCode)
}

func TestReviewValidator_PremiumQualification(t *testing.T) {
	rules := DefaultRuleSet().Review
	v := NewReviewValidator(rules)

	// 结算单直接够格
	result := v.Validate(ComplexityL2, 5, ReviewEvidence{CorePhotos: 1, HasSettlementDoc: true}, "修完效果不错的")
	require.True(t, result.Valid)
	require.True(t, result.Premium)

	// L1/L2 三张照片够格
	result = v.Validate(ComplexityL1, 5, ReviewEvidence{CorePhotos: 2, MaterialPhotos: 1}, "补漆颜色对得很准")
	require.True(t, result.Valid)
	require.True(t, result.Premium)

	// L3/L4 三张不够，要五张
	result = v.Validate(ComplexityL4, 5, ReviewEvidence{CorePhotos: 3}, "气囊更换后各项功能正常，做工可以")
	require.True(t, result.Valid)
	require.False(t, result.Premium)

	// 带价格/流程细节的长文够格
	longText := "本次大梁校正加钣金喷漆总共花了8600元，店里先做定损再走保险理赔流程，" +
		strings.Repeat("过程透明，", 6) + "原厂配件都有标签可查。"
	result = v.Validate(ComplexityL4, 5, ReviewEvidence{CorePhotos: 2}, longText)
	require.True(t, result.Valid)
	require.True(t, result.Premium)
}
