package config

const (
	defaultPort          = 5000
	defaultMonPort       = 8888
	defaultLogLevel      = "info"
	defaultServiceName   = "feishu-llm-relay"
	defaultLLMBaseURL    = "https://api.minimaxi.chat/v1"
	defaultLLMModel      = "MiniMax-Text-01"
	defaultFeishuBaseURL = "https://open.feishu.cn"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// LLMAPIKey authenticates against the OpenAI-compatible completion endpoint.
	LLMAPIKey  string `env:"MINIMAX_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL"`
	LLMModel   string `env:"LLM_MODEL"`

	FeishuAppID     string `env:"FEISHU_APP_ID"`
	FeishuAppSecret string `env:"FEISHU_APP_SECRET"`
	FeishuBaseURL   string `env:"FEISHU_BASE_URL"`
	// FeishuTokenCache keeps the tenant access token until shortly before it expires
	// instead of exchanging credentials on every send.
	FeishuTokenCache bool `env:"FEISHU_TOKEN_CACHE"`
}

// ApplyDefaults fills every unset field with its default value.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.LLMBaseURL == "" {
		s.LLMBaseURL = defaultLLMBaseURL
	}
	if s.LLMModel == "" {
		s.LLMModel = defaultLLMModel
	}
	if s.FeishuBaseURL == "" {
		s.FeishuBaseURL = defaultFeishuBaseURL
	}
}

// MissingCredentials returns the names of the credential variables that are not set.
// The relay still starts without them; every downstream call will fail and be logged.
func (s *Settings) MissingCredentials() []string {
	var missing []string
	if s.LLMAPIKey == "" {
		missing = append(missing, "MINIMAX_API_KEY")
	}
	if s.FeishuAppID == "" {
		missing = append(missing, "FEISHU_APP_ID")
	}
	if s.FeishuAppSecret == "" {
		missing = append(missing, "FEISHU_APP_SECRET")
	}
	return missing
}
