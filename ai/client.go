package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Client 视觉/文本分析预言机客户端。
// 模型本身是外部黑盒，这里只负责请求编解码与超时控制。
type Client interface {
	// AnalyzeDamage 从事故照片推断维修复杂度 L1-L4
	AnalyzeDamage(ctx context.Context, req DamageRequest) (DamageVerdict, error)
	// JudgeAppeal 判定商家「问题已解决」申诉是否成立
	JudgeAppeal(ctx context.Context, req AppealRequest) (AppealVerdict, error)
}

// DamageRequest 损伤分析请求
type DamageRequest struct {
	BiddingID   int64    `json:"bidding_id"`
	PhotoURLs   []string `json:"photo_urls"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// DamageVerdict 损伤分析结论
type DamageVerdict struct {
	Level      int16   `json:"level"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

// AppealRequest 申诉判定请求
type AppealRequest struct {
	AppealID      int64  `json:"appeal_id"`
	ReviewContent string `json:"review_content"`
	AppealReason  string `json:"appeal_reason"`
}

// AppealVerdict 申诉判定结论
type AppealVerdict struct {
	Upheld     bool    `json:"upheld"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

type httpClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient 创建预言机客户端
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *httpClient) AnalyzeDamage(ctx context.Context, req DamageRequest) (DamageVerdict, error) {
	var verdict DamageVerdict
	err := c.post(ctx, "/v1/analyze/damage", req, &verdict)
	return verdict, err
}

func (c *httpClient) JudgeAppeal(ctx context.Context, req AppealRequest) (AppealVerdict, error) {
	var verdict AppealVerdict
	err := c.post(ctx, "/v1/analyze/appeal", req, &verdict)
	return verdict, err
}

func (c *httpClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call oracle: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().Str("path", path).Int("status", resp.StatusCode).
			Bytes("body", respBody).Msg("oracle returned non-200")
		return fmt.Errorf("oracle status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
