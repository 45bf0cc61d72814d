package constant

import "os"

// <NodeDir>/                    (e.g., /home/receiver/.ccipreceiver)
// └── config/
//	└── receiver_config.json
// └── databases/
//	└── receiver.db

const (
	NodeDir = ".ccipreceiver"

	ConfigSubdir   = "config"
	ConfigFileName = "receiver_config.json"

	DatabasesSubdir  = "databases"
	DatabaseFileName = "receiver.db"

	// EnvPrefix is the prefix for environment variable overrides (e.g. CCIPR_LOG_LEVEL).
	EnvPrefix = "CCIPR"
)

var DefaultNodeHome = os.ExpandEnv("$HOME/") + NodeDir
