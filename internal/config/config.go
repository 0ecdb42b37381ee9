package config

import "os"

// Defaults applied when neither environment nor config file specify a value.
const (
	DefaultOllamaHost   = "localhost"
	DefaultOllamaPort   = "11434"
	DefaultDefaultModel = "llama3.2:1b"
	DefaultAddr         = ":8000"
	DefaultLogLevel     = "info"
)

// Config holds runtime parameters for the gateway.
// Zero values mean "unspecified"; ApplyDefaults fills them in.
// The struct is immutable after startup: it is built once in main and
// passed by value from there on.
type Config struct {
	// Addr is the HTTP listen address of the gateway itself.
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// OllamaHost/OllamaPort locate the backend inference service.
	OllamaHost string `json:"ollama_host" yaml:"ollama_host" toml:"ollama_host"`
	OllamaPort string `json:"ollama_port" yaml:"ollama_port" toml:"ollama_port"`
	// DefaultModel is substituted when a request omits the model or uses
	// the legacy placeholder.
	DefaultModel string `json:"default_model" yaml:"default_model" toml:"default_model"`
	// LogLevel: debug|info|warn|error.
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// FromEnv overlays environment variables onto c. Env wins over file values;
// unset variables leave the existing value alone.
func (c Config) FromEnv() Config {
	c.Addr = envStr("GATEWAY_ADDR", c.Addr)
	c.OllamaHost = envStr("OLLAMA_HOST", c.OllamaHost)
	c.OllamaPort = envStr("OLLAMA_PORT", c.OllamaPort)
	c.DefaultModel = envStr("DEFAULT_MODEL", c.DefaultModel)
	c.LogLevel = envStr("GATEWAY_LOG_LEVEL", c.LogLevel)
	return c
}

// ApplyDefaults fills unspecified fields with package defaults.
func (c Config) ApplyDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.OllamaHost == "" {
		c.OllamaHost = DefaultOllamaHost
	}
	if c.OllamaPort == "" {
		c.OllamaPort = DefaultOllamaPort
	}
	if c.DefaultModel == "" {
		c.DefaultModel = DefaultDefaultModel
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c
}

// OllamaBaseURL builds the backend base URL from host and port.
func (c Config) OllamaBaseURL() string {
	return "http://" + c.OllamaHost + ":" + c.OllamaPort
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
