package selection

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// 中文说明：
// 从 Agent 自由文本报告中提取股票代码。纯文本匹配，不校验标的是否真实存在。

// A 股：6 位数字，可带 SH/SZ 前缀或 .SH/.SZ 后缀（提取后剥离）。
var aShareRE = regexp.MustCompile(`(?i)\b(?:SH|SZ)?([0-36]\d{5})(?:\.(?:SH|SZ))?\b`)

// 港股：HK + 5 位数字，整体保留并转大写。
var hkShareRE = regexp.MustCompile(`(?i)\bHK\d{5}\b`)

// 美股：1-5 个连续大写字母（区分大小写，避免匹配普通词首大写）。
var usTickerRE = regexp.MustCompile(`\b[A-Z]{1,5}\b`)

// 美股 ticker 上下文启发：窗口内出现货币符号/百分号/数字才算数。
var tickerContextRE = regexp.MustCompile(`[$%￥¥\d]`)

// tickerContextWindow 是 ticker 前后参与启发式判断的字符数。
// 报告以中文为主，必须按 rune 计数；按字节算窗口会缩成三分之一。
const tickerContextWindow = 20

// validFirstDigits 列出允许的 A 股首位数字：
// 6=沪市主板，0=深市主板，3=创业板/科创，1/2=B 股。
const validFirstDigits = "01236"

// ExtractCodes 按市场范围从文本中提取去重后的代码列表。
//
// 三类模式按固定顺序扫描（A 股 → 港股 → 美股），同类内按出现顺序；
// 去重保留首次出现。输入与范围相同则输出完全确定。
func ExtractCodes(text string, market Market) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0, 16)
	keep := func(code string) {
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	for _, m := range aShareRE.FindAllStringSubmatch(text, -1) {
		code := m[1]
		if !isValidFirstDigit(code) {
			continue
		}
		keep(code)
	}

	if market.includeHK() {
		for _, m := range hkShareRE.FindAllString(text, -1) {
			keep(strings.ToUpper(m))
		}
	}

	if market.includeUS() {
		for _, loc := range usTickerRE.FindAllStringIndex(text, -1) {
			if !tickerInContext(text, loc[0], loc[1]) {
				continue
			}
			keep(text[loc[0]:loc[1]])
		}
	}

	return codes
}

// isValidFirstDigit 独立于正则再查一次首位白名单；
// 4/5/7/8/9 开头的六位数字即使被模式命中也一律丢弃。
func isValidFirstDigit(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(validFirstDigits); i++ {
		if code[0] == validFirstDigits[i] {
			return true
		}
	}
	return false
}

// tickerInContext 检查匹配位置前后各 tickerContextWindow 个字符的窗口，
// 窗口内含货币符号、百分号或数字才认为是行情语境下的 ticker。
func tickerInContext(text string, start, end int) bool {
	lo := start
	for i := 0; i < tickerContextWindow && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < tickerContextWindow && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return tickerContextRE.MatchString(text[lo:hi])
}
