package notifier

import (
	"fmt"
	"strings"
	"time"
)

// FormatSelection 生成推送用的选股摘要消息。
func FormatSelection(strategy, market string, codes []string) string {
	var b strings.Builder
	b.WriteString("*📈 今日选股结果*\n")
	fmt.Fprintf(&b, "策略: `%s`  市场: `%s`\n", strategy, market)
	fmt.Fprintf(&b, "日期: %s\n", time.Now().Format("2006-01-02"))
	if len(codes) == 0 {
		b.WriteString("今日无入选标的。")
		return b.String()
	}
	fmt.Fprintf(&b, "入选 %d 只:\n", len(codes))
	for _, code := range codes {
		fmt.Fprintf(&b, "- `%s`\n", code)
	}
	return strings.TrimRight(b.String(), "\n")
}
