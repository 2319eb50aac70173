package config

import "strings"

// 默认值常量
const (
	defaultAppEnv       = "dev"
	defaultAppLogLevel  = "info"
	defaultAITimeout    = 300
	defaultStrategy     = "short_term_selection"
	defaultMaxStocks    = 10
	defaultMarket       = "cn"
	defaultProviderName = "openai"
)

// applyDefaults 为所有子配置应用默认值。
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.App.Env) == "" {
		c.App.Env = defaultAppEnv
	}
	if strings.TrimSpace(c.App.LogLevel) == "" {
		c.App.LogLevel = defaultAppLogLevel
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = defaultAITimeout
	}
	for i := range c.AI.Models {
		if strings.TrimSpace(c.AI.Models[i].Provider) == "" {
			c.AI.Models[i].Provider = defaultProviderName
		}
	}
	if strings.TrimSpace(c.Select.Strategy) == "" {
		c.Select.Strategy = defaultStrategy
	}
	if c.Select.MaxStocks <= 0 {
		c.Select.MaxStocks = defaultMaxStocks
	}
	if strings.TrimSpace(c.Select.Market) == "" {
		c.Select.Market = defaultMarket
	}
}
