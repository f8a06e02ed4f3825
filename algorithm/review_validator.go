package algorithm

import (
	"strings"
	"unicode/utf8"
)

// 评价驳回原因码
const (
	ReviewRejectInsufficientEvidence = "insufficient_evidence" // 照片/凭证不足
	ReviewRejectTextTooShort         = "text_too_short"        // 文字长度不够
	ReviewRejectFillerContent        = "filler_content"        // 纯灌水内容
)

// 负面评价判定线：评分 ≤2 视为负面
const NegativeRatingMax = 2

// ReviewEvidence 评价附带的结构化凭证
type ReviewEvidence struct {
	ProblemPhotos    int  // 问题照片数（负面评价用）
	CorePhotos       int  // 核心完工照片数
	MaterialPhotos   int  // 材料/配件照片数
	HasSettlementDoc bool // 是否上传结算单
}

// TotalPhotos 全部照片数
func (e ReviewEvidence) TotalPhotos() int {
	return e.ProblemPhotos + e.CorePhotos + e.MaterialPhotos
}

// ReviewValidation 校验结果
type ReviewValidation struct {
	Valid      bool   // 是否达到最低证据要求
	ReasonCode string // 未通过时的原因码
	Reason     string // 未通过时的说明
	Premium    bool   // 是否够得上优质内容（奖励加成资格）
}

// ReviewValidator 评价内容规则校验器。纯函数，不依赖存储。
type ReviewValidator struct {
	rules ReviewRules
}

// NewReviewValidator 创建校验器
func NewReviewValidator(rules ReviewRules) *ReviewValidator {
	return &ReviewValidator{rules: rules}
}

// Validate 校验一条评价是否满足其复杂度档位的最低证据要求，
// 并判定是否具备优质内容资格。rating ≤2 按负面评价走更严的证据矩阵。
func (v *ReviewValidator) Validate(level ComplexityLevel, rating int16, evidence ReviewEvidence, text string) ReviewValidation {
	isNegative := rating <= NegativeRatingMax
	highTier := level.IsHigh()

	// 1. 证据矩阵
	if !v.evidenceSufficient(highTier, isNegative, evidence) {
		return ReviewValidation{
			Valid:      false,
			ReasonCode: ReviewRejectInsufficientEvidence,
			Reason:     "照片或结算凭证不足，无法核实维修情况",
		}
	}

	// 2. 文字长度（按字符数，中文一字算一个）
	minLen := 5
	if highTier {
		minLen = 15
	}
	textLen := utf8.RuneCountInString(strings.TrimSpace(text))
	if textLen < minLen {
		return ReviewValidation{
			Valid:      false,
			ReasonCode: ReviewRejectTextTooShort,
			Reason:     "评价内容过短",
		}
	}

	// 3. 灌水检测：达到长度但全是口水词仍然驳回
	if v.isFiller(text) {
		return ReviewValidation{
			Valid:      false,
			ReasonCode: ReviewRejectFillerContent,
			Reason:     "评价内容缺乏有效信息",
		}
	}

	return ReviewValidation{
		Valid:   true,
		Premium: v.isPremium(highTier, evidence, text, textLen),
	}
}

// evidenceSufficient 按（档位、正负面）二维矩阵检查证据。
// 负面 L1/L2：≥1张问题照片
// 负面 L3/L4：≥2张问题照片，或1张问题照片+结算单
// 正面 L1/L2：≥1张完工照片
// 正面 L3/L4：≥2张核心照片，或1张照片+结算单
func (v *ReviewValidator) evidenceSufficient(highTier, isNegative bool, e ReviewEvidence) bool {
	if isNegative {
		if highTier {
			return e.ProblemPhotos >= 2 || (e.ProblemPhotos >= 1 && e.HasSettlementDoc)
		}
		return e.ProblemPhotos >= 1
	}
	if highTier {
		return e.CorePhotos >= 2 || (e.TotalPhotos() >= 1 && e.HasSettlementDoc)
	}
	return e.CorePhotos >= 1
}

// isFiller 去掉词表中的口水词和标点空白后不剩有效内容，即视为灌水
func (v *ReviewValidator) isFiller(text string) bool {
	stripped := strings.TrimSpace(text)
	for _, word := range v.rules.FillerWords {
		stripped = strings.ReplaceAll(stripped, word, "")
	}
	stripped = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '，', '。', '！', '!', '~', '、', ',', '.':
			return -1
		}
		return r
	}, stripped)
	return utf8.RuneCountInString(stripped) == 0
}

// isPremium 优质内容三选一：结算单、照片数达标、或带价格/流程细节的长文
func (v *ReviewValidator) isPremium(highTier bool, e ReviewEvidence, text string, textLen int) bool {
	if e.HasSettlementDoc {
		return true
	}

	photoMin := v.rules.PremiumPhotosLow
	if highTier {
		photoMin = v.rules.PremiumPhotosHigh
	}
	if e.TotalPhotos() >= photoMin {
		return true
	}

	if textLen >= v.rules.PremiumTextMinLen {
		for _, kw := range v.rules.SpecificKeywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
	}
	return false
}
