package config

// DebugConfig holds observability toggles.
type DebugConfig struct {
	LogLevel            string `yaml:"log_level"`
	LogPrompts          bool   `yaml:"log_prompts"`
	LogResponses        bool   `yaml:"log_responses"`
	SaveProcessingHistory bool `yaml:"save_processing_history"`
}

// DefaultDebugConfig disables verbose/sensitive logging by default; prompts
// and responses may contain masked document content and should only be
// logged when an operator opts in.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		LogLevel:              "info",
		LogPrompts:            false,
		LogResponses:          false,
		SaveProcessingHistory: true,
	}
}
