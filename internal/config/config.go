package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Load 读取 YAML 配置并完成默认值与校验。
// 整个进程只调用一次，结果显式传给后续的构造函数。
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path cannot be empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "toml"
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	cfg.applyDefaults()
	cfg.expandEnv()
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandEnv 展开密钥类字段中的 ${VAR} 引用，密钥不必写进配置文件。
func (c *Config) expandEnv() {
	for i := range c.AI.Models {
		c.AI.Models[i].APIKey = os.ExpandEnv(c.AI.Models[i].APIKey)
	}
	c.Notify.Telegram.BotToken = os.ExpandEnv(c.Notify.Telegram.BotToken)
	c.Notify.Telegram.ChatID = os.ExpandEnv(c.Notify.Telegram.ChatID)
}
