package config

// Config represents the full AIHistoryLine configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Web server configuration
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Generative model configuration
	GenAI GenAIConfig `yaml:"genai" mapstructure:"genai"`
}

// ServerConfig configures the web server
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// GenAIConfig configures the Gemini request cycle. The API credential is
// never stored here; it comes from the GEMINI_API_KEY environment variable.
type GenAIConfig struct {
	Model          string `yaml:"model" mapstructure:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}
