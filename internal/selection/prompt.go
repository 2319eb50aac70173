package selection

import "fmt"

// BuildPrompt 生成选股任务提示词，max 为最多入选数量。
// 模板固定，输出完全由 max 决定。
func BuildPrompt(max int) string {
	return fmt.Sprintf(
		"请立即执行【A股短线选股策略】，完成三步选股流程：\n"+
			"1. 先用 get_market_indices 判断当前大盘环境；\n"+
			"2. 再用 get_sector_rankings 定位今日最强主线板块；\n"+
			"3. 最后在主线板块中，结合技术面和资金面，精选不超过 %d 只短线个股。\n\n"+
			"输出格式要求：\n"+
			"- 首先给出市场状态判断（好行情 / 轮动市 / 冰点期）；\n"+
			"- 冰点期则直接输出「市场风险提示」，不输出选股结果；\n"+
			"- 其他状态：对每只入选股票输出：股票代码（6位）、股票名称、"+
			"所属主线板块、核心入选理由（一句话）、建议入场区间和止损位。\n"+
			"- 最后单独一行输出：「入选代码：XXXXXX,YYYYYY,...」",
		max)
}
