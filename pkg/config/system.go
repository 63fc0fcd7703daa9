package config

import "time"

// SystemConfig groups external-service connection settings: the DMS, the
// LLM endpoint(s), the OCR provider, the vector store, and Slack
// notifications.
type SystemConfig struct {
	DMS         *DMSConfig         `yaml:"dms"`
	LLM         *LLMConfig         `yaml:"llm"`
	OCR         *OCRConfig         `yaml:"ocr"`
	VectorStore *VectorStoreConfig `yaml:"vector_store"`
	Slack       *SlackConfig       `yaml:"slack,omitempty"`
}

// DMSConfig holds connection settings for the external document-management
// service.
type DMSConfig struct {
	BaseURL      string        `yaml:"base_url" validate:"required,url"`
	TokenEnv     string        `yaml:"token_env,omitempty"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries   int           `yaml:"max_retries" validate:"omitempty,min=0,max=20"`
}

// LLMConfig holds the model endpoint and the role → concrete-model mapping
// consumed by pkg/llmclient.
type LLMConfig struct {
	Transport LLMTransport         `yaml:"transport"`
	BaseURL   string               `yaml:"base_url,omitempty"`
	APIKeyEnv string               `yaml:"api_key_env,omitempty"`
	Models    map[ModelRole]string `yaml:"models"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
}

// OCRConfig holds connection settings for the external OCR provider.
type OCRConfig struct {
	BaseURL        string        `yaml:"base_url,omitempty"`
	TokenEnv       string        `yaml:"token_env,omitempty"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries" validate:"omitempty,min=0,max=20"`
	Mock           bool          `yaml:"mock,omitempty"`
}

// VectorStoreConfig holds connection settings for the vector store backing
// C7 and the Document Links stage.
type VectorStoreConfig struct {
	Addr           string `yaml:"addr,omitempty"`
	APIKeyEnv      string `yaml:"api_key_env,omitempty"`
	Collection     string `yaml:"collection"`
	VectorSize     int    `yaml:"vector_size" validate:"omitempty,min=1"`
}

// SlackConfig holds Slack notification settings: notify when a document
// lands in manual review or fails.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// DefaultSystemConfig returns conservative defaults; BaseURL/endpoints are
// expected to be supplied by the operator's YAML.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DMS: &DMSConfig{
			TokenEnv:       "DMS_API_TOKEN",
			RequestTimeout: 30 * time.Second,
			MaxRetries:     5,
		},
		LLM: &LLMConfig{
			Transport:      LLMTransportHTTP,
			APIKeyEnv:      "LLM_API_KEY",
			RequestTimeout: 60 * time.Second,
			Models:         map[ModelRole]string{},
		},
		OCR: &OCRConfig{
			TokenEnv:       "OCR_API_TOKEN",
			RequestTimeout: 60 * time.Second,
			MaxRetries:     3,
		},
		VectorStore: &VectorStoreConfig{
			Collection: "corvid_documents",
			VectorSize: 1536,
		},
		Slack: &SlackConfig{
			Enabled:  false,
			TokenEnv: "SLACK_BOT_TOKEN",
		},
	}
}
