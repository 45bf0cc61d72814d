package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/viper"

	"github.com/pushchain/ccip-receiver/ccipreceiver/constant"
	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	// Validate log level
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return fmt.Errorf("log level must be between 0 and 5")
	}

	// Validate log format
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("log format must be 'json' or 'console'")
	}

	// Set defaults for program identities
	if cfg.ProgramID == "" {
		cfg.ProgramID = types.DefaultProgramID.String()
	}
	if cfg.TokenProgramID == "" {
		cfg.TokenProgramID = solana.TokenProgramID.String()
	}
	if _, err := solana.PublicKeyFromBase58(cfg.ProgramID); err != nil {
		return fmt.Errorf("invalid program_id: %w", err)
	}
	if _, err := solana.PublicKeyFromBase58(cfg.TokenProgramID); err != nil {
		return fmt.Errorf("invalid token_program_id: %w", err)
	}

	// Set defaults for message limits
	if cfg.Limits.MaxDataSize == 0 {
		cfg.Limits.MaxDataSize = types.DefaultMaxDataSize
	}
	if cfg.Limits.MaxSenderSize == 0 {
		cfg.Limits.MaxSenderSize = types.DefaultMaxSenderSize
	}
	if cfg.Limits.MaxTokens == 0 {
		cfg.Limits.MaxTokens = types.DefaultMaxTokens
	}
	if cfg.Limits.MaxDataSize < 0 || cfg.Limits.MaxSenderSize < 0 || cfg.Limits.MaxTokens < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if cfg.Limits.MaxTokens > types.MaxTokensCeiling {
		return fmt.Errorf("max_tokens must not exceed %d", types.MaxTokensCeiling)
	}

	// Set defaults for query server
	if cfg.QueryServerPort == 0 {
		cfg.QueryServerPort = 8080
	}

	// Validate event sinks
	if cfg.EventSinks.Redis.Enabled {
		if cfg.EventSinks.Redis.Addr == "" {
			return fmt.Errorf("redis sink requires addr")
		}
		if cfg.EventSinks.Redis.Channel == "" && cfg.EventSinks.Redis.ListKey == "" {
			return fmt.Errorf("redis sink requires channel or list_key")
		}
		if cfg.EventSinks.Redis.ListMaxLen == 0 {
			cfg.EventSinks.Redis.ListMaxLen = 1000
		}
	}
	if cfg.EventSinks.Kafka.Enabled {
		if len(cfg.EventSinks.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka sink requires at least one broker")
		}
		if cfg.EventSinks.Kafka.Topic == "" {
			return fmt.Errorf("kafka sink requires topic")
		}
	}

	return nil
}

// Params converts the validated config into receiver program parameters.
func (c *Config) Params() (types.Params, error) {
	programID, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return types.Params{}, fmt.Errorf("invalid program_id: %w", err)
	}
	tokenProgram, err := solana.PublicKeyFromBase58(c.TokenProgramID)
	if err != nil {
		return types.Params{}, fmt.Errorf("invalid token_program_id: %w", err)
	}

	params := types.Params{
		ProgramID:    programID,
		TokenProgram: tokenProgram,
		Limits: types.Limits{
			MaxDataSize:   c.Limits.MaxDataSize,
			MaxSenderSize: c.Limits.MaxSenderSize,
			MaxTokens:     c.Limits.MaxTokens,
		},
	}
	return params, params.Validate()
}

// Save writes the given config to <NodeDir>/config/receiver_config.json.
func Save(cfg *Config, basePath string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(basePath, constant.ConfigSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, constant.ConfigFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the config from <BasePath>/config/receiver_config.json on top of
// the embedded defaults. Any key can be overridden through the environment,
// e.g. CCIPR_LOG_LEVEL or CCIPR_LIMITS_MAX_TOKENS.
func Load(basePath string) (Config, error) {
	v, err := newViper()
	if err != nil {
		return Config{}, err
	}

	configFile := filepath.Join(basePath, constant.ConfigSubdir, constant.ConfigFileName)
	v.SetConfigFile(filepath.Clean(configFile))
	if err := v.MergeInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.NodeHome == "" {
		cfg.NodeHome = basePath
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(defaultConfigJSON)); err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}
