package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aitting/daily-stock-analysis/internal/app"
	"github.com/aitting/daily-stock-analysis/internal/config"
	"github.com/aitting/daily-stock-analysis/internal/logger"
	"github.com/aitting/daily-stock-analysis/internal/selection"
)

func main() {
	defaultConfig := os.Getenv("AGENT_SELECT_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "configs/config.yaml"
	}

	exitCode := 0
	cmd := &cli.Command{
		Name:  "agentselect",
		Usage: "Agent 驱动的 A 股每日选股：输出逗号分隔的股票代码列表",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "strategy", Value: "short_term_selection", Usage: "要激活的策略/技能 ID"},
			&cli.IntFlag{Name: "max-stocks", Value: 10, Usage: "最多入选数量"},
			&cli.StringFlag{Name: "output", Usage: "把代码列表写入该文件"},
			&cli.StringFlag{Name: "report", Usage: "把完整报告写入该文件"},
			&cli.StringFlag{Name: "history", Usage: "选股历史库路径（覆盖 storage.history_path）"},
			&cli.StringFlag{Name: "chart", Usage: "频次图输出路径（覆盖 storage.chart_path）"},
			&cli.StringFlag{Name: "market", Value: "cn", Usage: "代码提取的市场范围 (cn/hk/us/mixed)"},
			&cli.StringFlag{Name: "config", Value: defaultConfig, Usage: "配置文件路径"},
			&cli.BoolFlag{Name: "debug", Usage: "开启 debug 日志"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			exitCode = run(ctx, cmd)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}
	os.Exit(exitCode)
}

func run(ctx context.Context, cmd *cli.Command) int {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		logger.Errorf("[agent_select] 读取配置失败: %v", err)
		return 1
	}

	if cmd.Bool("debug") {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel(cfg.App.LogLevel)
	}
	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		logger.Errorf("[agent_select] 初始化日志文件失败: %v", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	llmFile, err := setupLLMLogOutput(cfg)
	if err != nil {
		logger.Errorf("[agent_select] 初始化 LLM 日志失败: %v", err)
		return 1
	}
	if llmFile != nil {
		defer llmFile.Close()
	}

	opts, err := buildOptions(cfg, cmd)
	if err != nil {
		logger.Errorf("[agent_select] %v", err)
		return 1
	}

	application, err := app.New(cfg, opts)
	if err != nil {
		logger.Errorf("[agent_select] Failed to build executor: %v", err)
		return 1
	}
	return application.Run(ctx)
}

// buildOptions 合并运行参数：命令行显式指定的优先于配置文件。
func buildOptions(cfg *config.Config, cmd *cli.Command) (app.Options, error) {
	opts := app.Options{
		Strategy:    cfg.Select.Strategy,
		MaxStocks:   cfg.Select.MaxStocks,
		OutputPath:  cmd.String("output"),
		ReportPath:  cmd.String("report"),
		HistoryPath: cmd.String("history"),
		ChartPath:   cmd.String("chart"),
	}
	if cmd.IsSet("strategy") {
		opts.Strategy = cmd.String("strategy")
	}
	if cmd.IsSet("max-stocks") {
		opts.MaxStocks = int(cmd.Int("max-stocks"))
	}
	if opts.MaxStocks <= 0 {
		return opts, fmt.Errorf("max-stocks 必须为正整数")
	}
	marketArg := cfg.Select.Market
	if cmd.IsSet("market") {
		marketArg = cmd.String("market")
	}
	market, err := selection.ParseMarket(marketArg)
	if err != nil {
		return opts, err
	}
	opts.Market = market
	return opts, nil
}

// setupLogOutput 配置日志落盘（stderr 同时保留，stdout 只留给代码列表）。
func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, file))
	return file, nil
}

func setupLLMLogOutput(cfg *config.Config) (*os.File, error) {
	if !cfg.App.LLMDump || strings.TrimSpace(cfg.App.LLMLog) == "" {
		return nil, nil
	}
	path := strings.TrimSpace(cfg.App.LLMLog)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logger.SetLLMWriter(f)
	logger.EnableLLMDump(true)
	return f, nil
}
