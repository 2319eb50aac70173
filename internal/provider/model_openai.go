package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/aitting/daily-stock-analysis/internal/logger"
)

// 中文说明：
// OpenAIChatClient：兼容 OpenAI / DeepSeek / Qwen 的聊天补全接口（/v1/chat/completions）。

type OpenAIChatClient struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	// 简易重试（用于 429/5xx）：若为 0 则默认重试 2 次
	MaxRetries   int
	ExtraHeaders map[string]string
}

func (c *OpenAIChatClient) CallWithMessages(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
	maxRetries := c.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 2
	}
	// 规范化 BaseURL，避免配置里带上完整的 /chat/completions 导致重复路径
	url := strings.TrimRight(c.BaseURL, "/")
	if url == "" {
		url = "https://api.openai.com/v1"
	}
	url = strings.TrimSuffix(url, "/chat/completions") + "/chat/completions"

	messages := []map[string]string{}
	if systemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": userPrompt})

	body := map[string]any{"model": c.Model, "messages": messages, "temperature": 0.5}
	b, _ := json.Marshal(body)

	httpc := &http.Client{Timeout: c.Timeout}
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt == 0 {
			logger.Debugf("[AI] 请求: POST %s, model=%s, body=%d bytes", url, c.Model, len(b))
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
		}
		for k, v := range c.ExtraHeaders {
			req.Header.Set(k, v)
		}

		resp, err := httpc.Do(req)
		if err != nil {
			lastErr = err
			break
		}
		raw, rerr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if rerr != nil {
			lastErr = rerr
			break
		}
		if resp.StatusCode/100 == 2 {
			content := gjson.GetBytes(raw, "choices.0.message.content")
			if !content.Exists() {
				lastErr = fmt.Errorf("empty choices")
				break
			}
			return content.String(), nil
		}
		// 非 2xx：尝试解析错误消息
		msg := strings.TrimSpace(gjson.GetBytes(raw, "error.message").String())
		if msg == "" {
			msg = resp.Status
		}
		// 对 429/5xx 进行有限重试（带 Retry-After 支持）
		if retryableStatus(resp.StatusCode) && attempt < maxRetries {
			wait := time.Duration(0)
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, perr := strconv.Atoi(ra); perr == nil {
					wait = time.Duration(secs) * time.Second
				}
			}
			if wait == 0 {
				// 基本指数退避：0.8s, 1.6s, 3.2s ...
				wait = (800 * time.Millisecond) << attempt
				if wait > 8*time.Second {
					wait = 8 * time.Second
				}
			}
			time.Sleep(wait)
			lastErr = fmt.Errorf("status=%d: %s", resp.StatusCode, msg)
			continue
		}
		lastErr = fmt.Errorf("status=%d: %s", resp.StatusCode, msg)
		break
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("chat completion failed")
	}
	return "", lastErr
}

func retryableStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}
