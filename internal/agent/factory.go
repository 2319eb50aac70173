package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/aitting/daily-stock-analysis/internal/config"
	"github.com/aitting/daily-stock-analysis/internal/provider"
)

// BuildExecutor 按配置和技能列表构造执行器。
// 任何构造失败（未知技能、无可用模型）都返回错误，不做重试。
func BuildExecutor(cfg *config.Config, skills []string) (Executor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("at least one skill is required")
	}
	prompts := make([]string, 0, len(skills))
	for _, skill := range skills {
		prompt, err := ResolveSkillPrompt(skill, cfg.AI.PromptDir)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, prompt)
	}
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	providers := provider.BuildProvidersFromConfig(cfg.AI.Models, timeout)
	if len(providers) == 0 {
		return nil, fmt.Errorf("ai.models 中没有启用的模型")
	}
	return &LLMExecutor{
		Providers:    providers,
		SystemPrompt: strings.Join(prompts, "\n\n"),
	}, nil
}
