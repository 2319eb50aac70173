package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/aitting/daily-stock-analysis/internal/logger"
	"github.com/aitting/daily-stock-analysis/internal/pkg/text"
	"github.com/aitting/daily-stock-analysis/internal/provider"
)

// previewBytes 限制 debug 日志里报告预览的长度。
const previewBytes = 200

// LLMExecutor 将任务交给配置的模型依次执行，首个成功者胜出。
type LLMExecutor struct {
	Providers    []provider.ModelProvider
	SystemPrompt string
}

// Run 执行任务并返回 Agent 报告。
// 所有模型都失败时 Success=false，Err 为最后一个错误。
func (e *LLMExecutor) Run(ctx context.Context, task string, rc RunContext) Result {
	if len(e.Providers) == 0 {
		return Result{Err: fmt.Errorf("no model providers configured")}
	}
	payload := provider.ChatPayload{System: e.SystemPrompt, User: task}
	var lastErr error
	for _, p := range e.Providers {
		out, err := p.Call(ctx, payload)
		if err != nil {
			logger.Warnf("[agent] 模型 %s 调用失败（query_id=%s）: %v", p.ID(), rc.QueryID, err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(out) == "" {
			logger.Warnf("[agent] 模型 %s 返回空内容（query_id=%s）", p.ID(), rc.QueryID)
			lastErr = fmt.Errorf("provider %s returned empty content", p.ID())
			continue
		}
		logger.Debugf("[agent] 模型 %s 返回预览: %s", p.ID(), text.Truncate(out, previewBytes))
		return Result{Success: true, Content: out}
	}
	return Result{Err: lastErr}
}
