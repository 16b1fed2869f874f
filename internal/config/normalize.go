package config

func Normalize(cfg Config) Config {
	if cfg.Version == 0 {
		cfg.Version = SchemaVersion
	}
	def := DefaultConfig()
	if cfg.Tool.Path == "" {
		cfg.Tool.Path = def.Tool.Path
	}
	if cfg.Tool.MinVersion == "" {
		cfg.Tool.MinVersion = def.Tool.MinVersion
	}
	if cfg.Tool.ProbeTimeout == "" {
		cfg.Tool.ProbeTimeout = def.Tool.ProbeTimeout
	}
	if cfg.Tool.CheckpointTimeout == "" {
		cfg.Tool.CheckpointTimeout = def.Tool.CheckpointTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	if cfg.Audit.Path == "" {
		cfg.Audit.Path = def.Audit.Path
	}
	if cfg.Attribution.MaxStackFrames == 0 {
		cfg.Attribution.MaxStackFrames = def.Attribution.MaxStackFrames
	}
	return cfg
}
