package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			Addr: ":8080",
		},
		GenAI: GenAIConfig{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 60,
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# AIHistoryLine Configuration
version: "1"

# Web server
server:
  addr: ":8080"

# Generative model
# The API credential is read from the GEMINI_API_KEY environment variable,
# never from this file.
genai:
  model: gemini-2.0-flash
  timeout_seconds: 60
`
	return os.WriteFile(path, []byte(content), 0644)
}
