package config

import (
	"fmt"
	"strings"
)

// validate 对配置进行基础校验。
func validate(c *Config) error {
	if err := c.AI.validate(); err != nil {
		return err
	}
	if err := c.Select.validate(); err != nil {
		return err
	}
	return nil
}

func (a *AIConfig) validate() error {
	models := a.EnabledModels()
	if len(models) == 0 {
		return fmt.Errorf("ai.models requires at least one enabled model")
	}
	for _, m := range models {
		if strings.TrimSpace(m.Model) == "" {
			return fmt.Errorf("ai.models contains entry without model (id=%s)", m.ID)
		}
		if strings.TrimSpace(m.APIURL) == "" {
			return fmt.Errorf("ai.models.%s missing api_url", m.ID)
		}
	}
	return nil
}

func (s *SelectConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Market)) {
	case "cn", "hk", "us", "mixed":
	default:
		return fmt.Errorf("select.market must be one of cn/hk/us/mixed, got %q", s.Market)
	}
	if s.MaxStocks <= 0 {
		return fmt.Errorf("select.max_stocks must be positive")
	}
	return nil
}
