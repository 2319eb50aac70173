package config

import "strings"

// Config 是 agentselect 的主配置载体。
type Config struct {
	App     AppConfig     `toml:"app"`
	AI      AIConfig      `toml:"ai"`
	Select  SelectConfig  `toml:"select"`
	Storage StorageConfig `toml:"storage"`
	Notify  NotifyConfig  `toml:"notify"`
}

type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	LogPath  string `toml:"log_path"`
	LLMLog   string `toml:"llm_log_path"`
	LLMDump  bool   `toml:"llm_dump"`
}

// AIConfig 描述可用的模型列表与调用参数。
type AIConfig struct {
	TimeoutSeconds int             `toml:"timeout_seconds"`
	PromptDir      string          `toml:"prompt_dir"`
	Models         []AIModelConfig `toml:"models"`
}

type AIModelConfig struct {
	ID       string            `toml:"id"`
	Provider string            `toml:"provider"`
	APIURL   string            `toml:"api_url"`
	APIKey   string            `toml:"api_key"`
	Model    string            `toml:"model"`
	Headers  map[string]string `toml:"headers"`
	Enabled  bool              `toml:"enabled"`
}

// EnabledModels 返回启用的模型配置（保持文件内顺序）。
func (a AIConfig) EnabledModels() []AIModelConfig {
	out := make([]AIModelConfig, 0, len(a.Models))
	for _, m := range a.Models {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}

// SelectConfig 是选股流程的缺省参数，可被命令行覆盖。
type SelectConfig struct {
	Strategy  string `toml:"strategy"`
	MaxStocks int    `toml:"max_stocks"`
	Market    string `toml:"market"`
}

// StorageConfig 控制选股历史库与频次图的落盘位置；留空则不启用。
type StorageConfig struct {
	HistoryPath string `toml:"history_path"`
	ChartPath   string `toml:"chart_path"`
}

type NotifyConfig struct {
	Telegram TelegramConfig `toml:"telegram"`
}

type TelegramConfig struct {
	Enabled  bool   `toml:"enabled"`
	BotToken string `toml:"bot_token"`
	ChatID   string `toml:"chat_id"`
}

func (t TelegramConfig) Ready() bool {
	return t.Enabled && strings.TrimSpace(t.BotToken) != "" && strings.TrimSpace(t.ChatID) != ""
}
