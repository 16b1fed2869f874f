package config

const (
	SchemaVersion = 1

	// DefaultMinToolVersion is the oldest git-ai CLI that understands the
	// `checkpoint agent-v1` hook subcommand.
	DefaultMinToolVersion = "1.0.23"
)

// Build metadata, overridden via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// DefaultConfig returns a fully-populated v1 config document.
func DefaultConfig() Config {
	return Config{
		Version: SchemaVersion,
		Tool: ToolConfig{
			Path:              "git-ai",
			MinVersion:        DefaultMinToolVersion,
			ProbeTimeout:      "5s",
			CheckpointTimeout: "30s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "~/.git-ai/logs/hook-events.log",
		},
		Attribution: AttributionConfig{
			MaxStackFrames: 50,
		},
	}
}
