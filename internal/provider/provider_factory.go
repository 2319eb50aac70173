package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aitting/daily-stock-analysis/internal/config"
	"github.com/aitting/daily-stock-analysis/internal/logger"
)

type openAIModelProvider struct {
	id     string
	client *OpenAIChatClient
}

func (p *openAIModelProvider) ID() string { return p.id }

func (p *openAIModelProvider) Call(ctx context.Context, payload ChatPayload) (string, error) {
	logger.LogLLMRequest(p.id, payload.System, payload.User)
	out, err := p.client.CallWithMessages(ctx, payload.System, payload.User)
	if err != nil {
		return "", err
	}
	logger.LogLLMResponse(p.id, out)
	return out, nil
}

// BuildProvidersFromConfig 按配置构造启用的模型提供方（保持配置顺序）。
func BuildProvidersFromConfig(models []config.AIModelConfig, timeout time.Duration) []ModelProvider {
	out := make([]ModelProvider, 0, len(models))
	for _, m := range models {
		if !m.Enabled {
			continue
		}
		id := strings.TrimSpace(m.ID)
		if id == "" {
			base := strings.TrimSpace(m.Provider)
			if base == "" {
				base = "provider"
			}
			if model := strings.TrimSpace(m.Model); model != "" {
				id = fmt.Sprintf("%s:%s", base, model)
			} else {
				id = base
			}
			logger.Warnf("未配置 ai.models.id，已为 %q 生成 ID: %s", m.Provider, id)
		}
		client := &OpenAIChatClient{
			BaseURL:      m.APIURL,
			APIKey:       m.APIKey,
			Model:        m.Model,
			ExtraHeaders: m.Headers,
		}
		if timeout > 0 {
			client.Timeout = timeout
		}
		out = append(out, &openAIModelProvider{id: id, client: client})
	}
	return out
}
