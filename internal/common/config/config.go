// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Search    SearchConfig    `mapstructure:"search"`
	AI        AIConfig        `mapstructure:"ai"`
	Vector    VectorConfig    `mapstructure:"vector"`
	Listings  ListingsConfig  `mapstructure:"listings"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address        string `mapstructure:"address"`
	MetricsAddress string `mapstructure:"metrics_address"`
	AllowOrigins   string `mapstructure:"allow_origins"`
	ReadTimeout    int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout   int    `mapstructure:"write_timeout"` // milliseconds
}

// SearchConfig selects and configures the search provider. Provider is
// "hosted" (neural search HTTP API) or "elasticsearch".
type SearchConfig struct {
	Provider      string              `mapstructure:"provider"`
	Hosted        HostedSearchConfig  `mapstructure:"hosted"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	NumResults    int                 `mapstructure:"num_results"`
}

type HostedSearchConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
	MaxRetries int    `mapstructure:"max_retries"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

// AIConfig configures the OpenAI-compatible chat/embedding endpoint.
type AIConfig struct {
	BaseURL        string  `mapstructure:"base_url"`
	APIKey         string  `mapstructure:"api_key"`
	ChatModel      string  `mapstructure:"chat_model"`
	EmbeddingModel string  `mapstructure:"embedding_model"`
	Temperature    float32 `mapstructure:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	Timeout        int     `mapstructure:"timeout"` // milliseconds
}

// VectorConfig configures the vector index REST endpoint.
type VectorConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Index   string `mapstructure:"index"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// ListingsConfig holds normalization-layer knobs.
type ListingsConfig struct {
	DefaultCurrency string `mapstructure:"default_currency"`
	DefaultPerPage  int    `mapstructure:"default_per_page"`
	MaxPerPage      int    `mapstructure:"max_per_page"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
