// Package app wires configuration, the agent executor and the code
// extractor into the one-shot selection pipeline.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aitting/daily-stock-analysis/internal/agent"
	"github.com/aitting/daily-stock-analysis/internal/config"
	"github.com/aitting/daily-stock-analysis/internal/logger"
	"github.com/aitting/daily-stock-analysis/internal/notifier"
	"github.com/aitting/daily-stock-analysis/internal/pkg/text"
	"github.com/aitting/daily-stock-analysis/internal/report"
	"github.com/aitting/daily-stock-analysis/internal/selection"
	"github.com/aitting/daily-stock-analysis/internal/store"
)

// snippetChars 是无结果告警时输出的报告片段长度（字符数）。
const snippetChars = 500

// Options 是一次运行的参数（命令行已完成解析与校验）。
// HistoryPath/ChartPath 非空时覆盖配置文件里的 storage.* 路径。
type Options struct {
	Strategy    string
	MaxStocks   int
	Market      selection.Market
	OutputPath  string
	ReportPath  string
	HistoryPath string
	ChartPath   string
}

// App 承载一次选股运行所需的全部协作对象。
type App struct {
	opts      Options
	executor  agent.Executor
	history   *store.HistoryStore   // 可为 nil（未配置历史库）
	chartPath string                // 为空则不渲染频次图
	notify    notifier.TextNotifier // 可为 nil（未启用通知）
	out       io.Writer             // 代码列表的唯一输出口（默认 os.Stdout）
}

// New 构造应用：执行器构建失败即返回错误，由入口转成非零退出码。
func New(cfg *config.Config, opts Options) (*App, error) {
	logger.Infof("✓ 配置加载成功（环境=%s，策略=%s，市场=%s）", cfg.App.Env, opts.Strategy, opts.Market)
	logger.Infof("[agent_select] Building executor with strategy: %s", opts.Strategy)
	executor, err := agent.BuildExecutor(cfg, []string{opts.Strategy})
	if err != nil {
		return nil, fmt.Errorf("构建执行器失败: %w", err)
	}
	a := &App{
		opts:      opts,
		executor:  executor,
		chartPath: firstNonEmpty(opts.ChartPath, cfg.Storage.ChartPath),
		out:       os.Stdout,
	}
	if path := firstNonEmpty(opts.HistoryPath, cfg.Storage.HistoryPath); path != "" {
		history, err := store.NewHistoryStore(path)
		if err != nil {
			// 历史库属于增强功能，打不开不阻断选股
			logger.Warnf("[agent_select] 历史库初始化失败，本次运行不记录历史: %v", err)
		} else {
			a.history = history
		}
	}
	if cfg.Notify.Telegram.Ready() {
		a.notify = notifier.NewTelegram(cfg.Notify.Telegram.BotToken, cfg.Notify.Telegram.ChatID)
	}
	return a, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Run 执行完整流程并返回进程退出码。
// 只有执行器报告失败才返回 1；零结果是合法的成功。
func (a *App) Run(ctx context.Context) int {
	task := selection.BuildPrompt(a.opts.MaxStocks)
	queryID := uuid.NewString()
	logger.Infof("[agent_select] Sending selection prompt to agent (query_id=%s)...", queryID)

	result := a.executor.Run(ctx, task, agent.RunContext{QueryID: queryID})
	if !result.Success {
		logger.Errorf("[agent_select] Agent execution failed: %v", result.Err)
		fmt.Fprintln(a.out)
		return 1
	}

	reportText := result.Content
	logger.Infof("[agent_select] Agent returned %d chars", len(reportText))

	if a.opts.ReportPath != "" {
		if err := writeFile(a.opts.ReportPath, reportText); err != nil {
			logger.Warnf("[agent_select] 报告写入失败: %v", err)
		} else {
			logger.Infof("[agent_select] Full report saved to %s", a.opts.ReportPath)
		}
	}

	codes := selection.ExtractCodes(reportText, a.opts.Market)
	if len(codes) > a.opts.MaxStocks {
		codes = codes[:a.opts.MaxStocks]
	}

	if len(codes) == 0 {
		logger.Warnf("[agent_select] No stock codes found in agent output.")
		logger.WarnBlock(text.Snippet(reportText, snippetChars))
		fmt.Fprintln(a.out)
		return 0
	}

	csvCodes := strings.Join(codes, ",")
	logger.Infof("[agent_select] Selected %d stocks: %s", len(codes), csvCodes)

	if a.opts.OutputPath != "" {
		if err := writeFile(a.opts.OutputPath, csvCodes); err != nil {
			logger.Warnf("[agent_select] 代码列表写入失败: %v", err)
		} else {
			logger.Infof("[agent_select] Codes saved to %s", a.opts.OutputPath)
		}
	}

	a.recordHistory(ctx, queryID, codes, reportText)
	a.pushNotification(codes)

	fmt.Fprintln(a.out, csvCodes)
	return 0
}

func (a *App) recordHistory(ctx context.Context, queryID string, codes []string, reportText string) {
	if a.history == nil {
		return
	}
	err := a.history.SaveSelection(ctx, queryID, a.opts.Strategy, string(a.opts.Market), codes, reportText)
	if err != nil {
		logger.Warnf("[agent_select] 历史记录写入失败: %v", err)
		return
	}
	if a.chartPath == "" {
		return
	}
	stats, err := a.history.CodeFrequency(ctx)
	if err != nil {
		logger.Warnf("[agent_select] 频次统计失败: %v", err)
		return
	}
	if err := report.RenderFrequencyChart(a.chartPath, stats); err != nil {
		logger.Warnf("[agent_select] 频次图渲染失败: %v", err)
		return
	}
	logger.Infof("[agent_select] Frequency chart saved to %s", a.chartPath)
}

func (a *App) pushNotification(codes []string) {
	if a.notify == nil {
		return
	}
	msg := notifier.FormatSelection(a.opts.Strategy, string(a.opts.Market), codes)
	if err := a.notify.SendText(msg); err != nil {
		logger.Warnf("[agent_select] Telegram 推送失败: %v", err)
	}
}

// writeFile 整体写入 UTF-8 文本，自动创建父目录；不提供原子性保证。
func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
