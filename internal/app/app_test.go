package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aitting/daily-stock-analysis/internal/agent"
	"github.com/aitting/daily-stock-analysis/internal/config"
	"github.com/aitting/daily-stock-analysis/internal/logger"
	"github.com/aitting/daily-stock-analysis/internal/selection"
	"github.com/aitting/daily-stock-analysis/internal/store"
)

// stubExecutor 以固定结果代替真实 Agent 后端。
type stubExecutor struct {
	result agent.Result
	tasks  []string
}

func (s *stubExecutor) Run(ctx context.Context, task string, rc agent.RunContext) agent.Result {
	s.tasks = append(s.tasks, task)
	return s.result
}

func newTestApp(result agent.Result, opts Options) (*App, *bytes.Buffer, *stubExecutor) {
	out := &bytes.Buffer{}
	exec := &stubExecutor{result: result}
	a := &App{
		opts:     opts,
		executor: exec,
		out:      out,
	}
	return a, out, exec
}

func TestRunPrintsCommaSeparatedCodes(t *testing.T) {
	report := "入选代码：600519,000001,300750"
	a, out, _ := newTestApp(
		agent.Result{Success: true, Content: report},
		Options{Strategy: "short_term_selection", MaxStocks: 10, Market: selection.MarketCN},
	)

	code := a.Run(context.Background())

	assert.Equal(t, 0, code)
	assert.Equal(t, "600519,000001,300750\n", out.String())
}

func TestRunTruncatesToMaxStocks(t *testing.T) {
	report := "候选：111111, 222222, 666666"
	a, out, _ := newTestApp(
		agent.Result{Success: true, Content: report},
		Options{Strategy: "short_term_selection", MaxStocks: 2, Market: selection.MarketCN},
	)

	code := a.Run(context.Background())

	assert.Equal(t, 0, code)
	assert.Equal(t, "111111,222222\n", out.String())
}

func TestRunEmptyExtractionIsSuccess(t *testing.T) {
	a, out, _ := newTestApp(
		agent.Result{Success: true, Content: "冰点期，市场风险提示。"},
		Options{Strategy: "short_term_selection", MaxStocks: 10, Market: selection.MarketCN},
	)

	code := a.Run(context.Background())

	assert.Equal(t, 0, code)
	assert.Equal(t, "\n", out.String())
}

func TestRunExecutorFailure(t *testing.T) {
	a, out, _ := newTestApp(
		agent.Result{Success: false, Err: errors.New("backend down")},
		Options{Strategy: "short_term_selection", MaxStocks: 10, Market: selection.MarketCN},
	)

	code := a.Run(context.Background())

	assert.Equal(t, 1, code)
	assert.Equal(t, "\n", out.String())
}

func TestRunSendsPromptWithMaxStocks(t *testing.T) {
	a, _, exec := newTestApp(
		agent.Result{Success: true, Content: "600519"},
		Options{Strategy: "short_term_selection", MaxStocks: 3, Market: selection.MarketCN},
	)

	a.Run(context.Background())

	require.Len(t, exec.tasks, 1)
	assert.Contains(t, exec.tasks[0], "精选不超过 3 只短线个股")
}

func TestRunWritesOutputFiles(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "nested", "codes.txt")
	reportPath := filepath.Join(dir, "nested", "report.txt")
	reportText := "今日入选 600519，理由：主线板块龙头。"
	a, _, _ := newTestApp(
		agent.Result{Success: true, Content: reportText},
		Options{
			Strategy:   "short_term_selection",
			MaxStocks:  10,
			Market:     selection.MarketCN,
			OutputPath: outputPath,
			ReportPath: reportPath,
		},
	)

	code := a.Run(context.Background())
	require.Equal(t, 0, code)

	codes, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "600519", string(codes))

	saved, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, reportText, string(saved))
}

func validAppConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "prod"},
		AI: config.AIConfig{
			TimeoutSeconds: 30,
			Models: []config.AIModelConfig{{
				ID:      "test:model",
				APIURL:  "https://example.invalid/v1",
				Model:   "test-model",
				Enabled: true,
			}},
		},
	}
}

func TestNewHistoryPathOverride(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), "history.db")
	a, err := New(validAppConfig(), Options{
		Strategy:    "short_term_selection",
		MaxStocks:   5,
		Market:      selection.MarketCN,
		HistoryPath: historyPath,
	})
	require.NoError(t, err)
	require.NotNil(t, a.history)

	_, err = os.Stat(historyPath)
	assert.NoError(t, err)
}

func TestNewChartPathOverridesConfig(t *testing.T) {
	cfg := validAppConfig()
	cfg.Storage.ChartPath = filepath.Join(t.TempDir(), "configured.html")
	override := filepath.Join(t.TempDir(), "override.html")

	a, err := New(cfg, Options{
		Strategy:  "short_term_selection",
		MaxStocks: 5,
		Market:    selection.MarketCN,
		ChartPath: override,
	})
	require.NoError(t, err)
	assert.Equal(t, override, a.chartPath)
}

func TestNewLogsEnvironment(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	_, err := New(validAppConfig(), Options{
		Strategy:  "short_term_selection",
		MaxStocks: 5,
		Market:    selection.MarketCN,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "环境=prod")
}

func TestRunRecordsHistoryAndRendersChart(t *testing.T) {
	dir := t.TempDir()
	history, err := store.NewHistoryStore(filepath.Join(dir, "sel.db"))
	require.NoError(t, err)
	chartPath := filepath.Join(dir, "freq.html")

	a := &App{
		opts:      Options{Strategy: "short_term_selection", MaxStocks: 10, Market: selection.MarketCN},
		executor:  &stubExecutor{result: agent.Result{Success: true, Content: "入选代码：600519"}},
		history:   history,
		chartPath: chartPath,
		out:       &bytes.Buffer{},
	}
	require.Equal(t, 0, a.Run(context.Background()))

	rows, err := history.RecentSelections(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "600519", rows[0].Codes)

	_, err = os.Stat(chartPath)
	assert.NoError(t, err)
}

func TestRunIdempotentExtraction(t *testing.T) {
	report := "入选代码：600519,300750，关注 HK00700"
	opts := Options{Strategy: "short_term_selection", MaxStocks: 10, Market: selection.MarketMixed}

	a1, out1, _ := newTestApp(agent.Result{Success: true, Content: report}, opts)
	a2, out2, _ := newTestApp(agent.Result{Success: true, Content: report}, opts)

	a1.Run(context.Background())
	a2.Run(context.Background())

	assert.Equal(t, out1.String(), out2.String())
}
