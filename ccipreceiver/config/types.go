package config

// Config is the node configuration stored at <NodeHome>/config/receiver_config.json.
type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level" mapstructure:"log_level"`     // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format" mapstructure:"log_format"`   // "json" or "console"
	LogSampler bool   `json:"log_sampler" mapstructure:"log_sampler"` // if true, samples logs (e.g., 1 in 5)

	// Node Config
	NodeHome string `json:"node_home" mapstructure:"node_home"` // Node home directory (default: ~/.ccipreceiver)

	// Program configuration
	ProgramID      string `json:"program_id" mapstructure:"program_id"`             // Receiver program id, base58; seeds the token admin PDA
	TokenProgramID string `json:"token_program_id" mapstructure:"token_program_id"` // Token program that must own holding accounts, base58

	Limits LimitsConfig `json:"limits" mapstructure:"limits"`

	// Query Server Config
	QueryServerPort int `json:"query_server_port" mapstructure:"query_server_port"` // Port for HTTP query server (default: 8080)

	EventSinks EventSinksConfig `json:"event_sinks" mapstructure:"event_sinks"`
}

// LimitsConfig bounds inbound messages.
type LimitsConfig struct {
	MaxDataSize   int `json:"max_data_size" mapstructure:"max_data_size"`     // bytes (default: 1024)
	MaxSenderSize int `json:"max_sender_size" mapstructure:"max_sender_size"` // bytes (default: 64)
	MaxTokens     int `json:"max_tokens" mapstructure:"max_tokens"`           // token transfers per message (default: 5)
}

// EventSinksConfig selects where committed receiver events are published.
type EventSinksConfig struct {
	Log   bool            `json:"log" mapstructure:"log"`
	Redis RedisSinkConfig `json:"redis" mapstructure:"redis"`
	Kafka KafkaSinkConfig `json:"kafka" mapstructure:"kafka"`
}

type RedisSinkConfig struct {
	Enabled    bool   `json:"enabled" mapstructure:"enabled"`
	Addr       string `json:"addr" mapstructure:"addr"`
	Password   string `json:"password" mapstructure:"password"`
	DB         int    `json:"db" mapstructure:"db"`
	Channel    string `json:"channel" mapstructure:"channel"`           // pub/sub channel
	ListKey    string `json:"list_key" mapstructure:"list_key"`         // capped list of recent events, empty disables
	ListMaxLen int64  `json:"list_max_len" mapstructure:"list_max_len"` // default: 1000
}

type KafkaSinkConfig struct {
	Enabled bool     `json:"enabled" mapstructure:"enabled"`
	Brokers []string `json:"brokers" mapstructure:"brokers"`
	Topic   string   `json:"topic" mapstructure:"topic"`
}
