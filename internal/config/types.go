package config

// Config is the frozen v1 hook configuration schema.
type Config struct {
	Version     int               `toml:"version"`
	Tool        ToolConfig        `toml:"tool"`
	Logging     LoggingConfig     `toml:"logging"`
	Audit       AuditConfig       `toml:"audit"`
	Attribution AttributionConfig `toml:"attribution"`
}

// ToolConfig locates and gates the external git-ai CLI.
type ToolConfig struct {
	Path              string `toml:"path"`
	MinVersion        string `toml:"min_version"`
	ProbeTimeout      string `toml:"probe_timeout"`
	CheckpointTimeout string `toml:"checkpoint_timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// AuditConfig controls the JSONL event trail of hook invocations.
type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// AttributionConfig tunes the analyzer and extends the signature registry.
type AttributionConfig struct {
	MaxStackFrames int               `toml:"max_stack_frames"`
	Signatures     []SignatureConfig `toml:"signatures,omitempty"`
}

// SignatureConfig declares an extra agent signature appended after the
// built-in registry.
type SignatureConfig struct {
	Name              string   `toml:"name" json:"name"`
	PackagePrefixes   []string `toml:"package_prefixes" json:"packagePrefixes"`
	TypeNameFragments []string `toml:"type_name_fragments,omitempty" json:"typeNameFragments,omitempty"`
}
