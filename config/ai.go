package config

// AI 生成服务配置 兼容 OpenAI Chat Completions 协议
type AI struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	APIKey  string `json:"api_key" yaml:"api_key"`
	Model   string `json:"model" yaml:"model"`
}

func ProvideAIConfig(cfg *Config) *AI {
	return cfg.AI
}
