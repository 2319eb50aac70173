package selection

import (
	"fmt"
	"strings"
)

// Market 控制代码提取时启用的模式族。
type Market string

const (
	MarketCN    Market = "cn"
	MarketHK    Market = "hk"
	MarketUS    Market = "us"
	MarketMixed Market = "mixed"
)

// ParseMarket 校验并归一化市场范围参数。
func ParseMarket(s string) (Market, error) {
	switch Market(strings.ToLower(strings.TrimSpace(s))) {
	case MarketCN:
		return MarketCN, nil
	case MarketHK:
		return MarketHK, nil
	case MarketUS:
		return MarketUS, nil
	case MarketMixed:
		return MarketMixed, nil
	}
	return "", fmt.Errorf("未知市场范围 %q（可用: cn/hk/us/mixed）", s)
}

func (m Market) includeHK() bool {
	return m == MarketHK || m == MarketMixed
}

func (m Market) includeUS() bool {
	return m == MarketUS || m == MarketMixed
}
