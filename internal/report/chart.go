// Package report renders an HTML chart of historical selection frequency.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aitting/daily-stock-analysis/internal/store"
)

// maxChartBars 限制图表展示的代码数量，避免横轴挤成一团。
const maxChartBars = 30

// RenderFrequencyChart 把历史入选次数画成柱状图并写入 path。
func RenderFrequencyChart(path string, stats []store.CodeStat) error {
	if path == "" {
		return fmt.Errorf("chart path cannot be empty")
	}
	if len(stats) > maxChartBars {
		stats = stats[:maxChartBars]
	}
	codes := make([]string, 0, len(stats))
	values := make([]opts.BarData, 0, len(stats))
	for _, s := range stats {
		codes = append(codes, s.Code)
		values = append(values, opts.BarData{Value: s.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "历史入选频次",
			Subtitle: "agentselect 选股历史统计",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(codes).AddSeries("入选次数", values)

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
