package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// 中文说明：
// 技能注册表：每个技能对应一段 System 提示词。内置技能可被
// prompt_dir 下的同名 .md 文件覆盖，方便运营侧调整措辞而不改代码。

const shortTermSelectionPrompt = `你是一名 A 股短线选股策略师，代号 short_term_selection。
你可以调用 get_market_indices（大盘指数与情绪）和 get_sector_rankings
（板块涨幅与资金流排名）两类数据能力。

工作准则：
- 先判断大盘环境，再定位主线板块，最后在板块内精选个股；
- 只推荐主板/创业板/科创板标的，股票代码一律使用 6 位数字；
- 冰点期宁可空仓，不硬选；
- 结论必须落实到具体代码、入场区间和止损位，不输出模糊建议。`

var builtinSkills = map[string]string{
	"short_term_selection": shortTermSelectionPrompt,
}

// ResolveSkillPrompt 返回技能对应的 System 提示词。
// promptDir 非空时优先读取 <dir>/<skill>.md；找不到再回退内置。
func ResolveSkillPrompt(skill, promptDir string) (string, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return "", fmt.Errorf("skill id cannot be empty")
	}
	if promptDir != "" {
		path := filepath.Join(promptDir, skill+".md")
		if data, err := os.ReadFile(path); err == nil {
			txt := strings.TrimSpace(string(data))
			if txt != "" {
				return txt, nil
			}
		}
	}
	if prompt, ok := builtinSkills[skill]; ok {
		return prompt, nil
	}
	return "", fmt.Errorf("未知技能: %s", skill)
}
