package constants

// Directory names used by rcli for its own data.
const (
	// RcliHome is the hidden directory name where rcli stores configuration and logs.
	// This directory is created in the user's home directory.
	RcliHome = ".rcli"

	// RcliHomeEnv overrides the location of RcliHome when set.
	RcliHomeEnv = "RCLI_HOME"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log file names and rotation settings.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.rcli/logs/rcli.log
	CLILogFileName = "rcli.log"

	// LogMaxSizeMB is the size at which the CLI log is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of rotated log files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated logs.
	LogCompress = true
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file inside RcliHome.
	GlobalConfigName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides (RCLI_TEXT_FORMAT, ...).
	EnvPrefix = "RCLI"
)
