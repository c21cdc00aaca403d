// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like SEARCH_HOSTED_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored if not found
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env from the working directory upward, since the server
// and the tests run from different depths.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig applies well-known env var names for secrets that are
// usually not written into the yaml files.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Search.Hosted.APIKey == "" {
		if val := os.Getenv("SEARCH_API_KEY"); val != "" {
			cfg.Search.Hosted.APIKey = val
		}
	}
	if cfg.AI.APIKey == "" {
		if val := os.Getenv("OPENAI_API_KEY"); val != "" {
			cfg.AI.APIKey = val
		}
	}
	if cfg.AI.BaseURL == "" {
		if val := os.Getenv("OPENAI_BASE_URL"); val != "" {
			cfg.AI.BaseURL = val
		}
	}
	if cfg.Vector.APIKey == "" {
		if val := os.Getenv("VECTOR_API_KEY"); val != "" {
			cfg.Vector.APIKey = val
		}
	}
	if cfg.Search.Elasticsearch.Password == "" {
		if val := os.Getenv("ELASTICSEARCH_PASSWORD"); val != "" {
			cfg.Search.Elasticsearch.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "handbag-explorer"
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.MetricsAddress == "" {
		cfg.Server.MetricsAddress = ":9090"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60000
	}

	if cfg.Search.Provider == "" {
		cfg.Search.Provider = "hosted"
	}
	if cfg.Search.NumResults == 0 {
		cfg.Search.NumResults = 25
	}
	if cfg.Search.Hosted.Timeout == 0 {
		cfg.Search.Hosted.Timeout = 15000
	}
	if cfg.Search.Hosted.MaxRetries == 0 {
		cfg.Search.Hosted.MaxRetries = 2
	}
	if cfg.Search.Elasticsearch.Index == "" {
		cfg.Search.Elasticsearch.Index = "handbag-listings"
	}

	if cfg.AI.ChatModel == "" {
		cfg.AI.ChatModel = "gpt-4o-mini"
	}
	if cfg.AI.EmbeddingModel == "" {
		cfg.AI.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = 500
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30000
	}

	if cfg.Vector.Index == "" {
		cfg.Vector.Index = "luxury-handbags"
	}
	if cfg.Vector.Timeout == 0 {
		cfg.Vector.Timeout = 10000
	}

	if cfg.Listings.DefaultCurrency == "" {
		cfg.Listings.DefaultCurrency = "USD"
	}
	if cfg.Listings.DefaultPerPage == 0 {
		cfg.Listings.DefaultPerPage = 12
	}
	if cfg.Listings.MaxPerPage == 0 {
		cfg.Listings.MaxPerPage = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields. Provider keys may
// legitimately be empty (the routes degrade per the API contract), but a
// selected elasticsearch provider needs an address to talk to.
func validateConfig(cfg *Config) error {
	switch cfg.Search.Provider {
	case "hosted", "elasticsearch":
	default:
		return fmt.Errorf("search.provider must be \"hosted\" or \"elasticsearch\", got %q", cfg.Search.Provider)
	}

	if cfg.Search.Provider == "elasticsearch" && len(cfg.Search.Elasticsearch.Addresses) == 0 {
		return fmt.Errorf("search.elasticsearch.addresses is required for the elasticsearch provider")
	}

	if cfg.Listings.DefaultPerPage > cfg.Listings.MaxPerPage {
		return fmt.Errorf("listings.default_per_page (%d) exceeds listings.max_per_page (%d)",
			cfg.Listings.DefaultPerPage, cfg.Listings.MaxPerPage)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
