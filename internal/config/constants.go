package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Extractor Defaults
	DefaultExtractorMaxContentSize     = 10 * 1024 * 1024 // 10MB
	DefaultExtractorContextSnippetSize = 100
	DefaultExtractorScriptExtensions   = ".js,.jsx,.ts,.tsx,.mjs,.cjs"

	// Config file discovery
	ConfigPathEnvVar = "MOOURL_CONFIG_PATH"
)
