package hook

import (
	"context"

	"go.uber.org/zap"

	"github.com/bernoussama/git-ai/internal/attribution"
	"github.com/bernoussama/git-ai/internal/audit"
	"github.com/bernoussama/git-ai/internal/checkpoint"
	"github.com/bernoussama/git-ai/internal/config"
	"github.com/bernoussama/git-ai/internal/logging"
)

type Options struct {
	ConfigPath string
	Logger     *zap.Logger
}

// Service wires the attributor and the checkpoint dispatcher together per
// the loaded configuration. One Service is built per process; every method
// is safe for concurrent use.
type Service struct {
	Config     config.Config
	Analyzer   *attribution.Analyzer
	Dispatcher *checkpoint.Dispatcher
	Audit      *audit.Logger

	logger *zap.Logger
}

func New(opts Options) (*Service, error) {
	cfg, err := config.Ensure(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger, err = logging.Build(cfg.Logging)
		if err != nil {
			return nil, err
		}
	}

	extras := make([]attribution.Signature, 0, len(cfg.Attribution.Signatures))
	for _, s := range cfg.Attribution.Signatures {
		extras = append(extras, attribution.Signature{
			Name:              s.Name,
			PackagePrefixes:   s.PackagePrefixes,
			TypeNameFragments: s.TypeNameFragments,
		})
	}

	minVersion, err := checkpoint.ParseToolVersion(cfg.Tool.MinVersion)
	if err != nil {
		return nil, err
	}

	svc := &Service{
		Config:   cfg,
		Analyzer: attribution.NewAnalyzer(extras...),
		Dispatcher: checkpoint.NewDispatcher(checkpoint.Options{
			Tool:              cfg.Tool.Path,
			MinVersion:        minVersion,
			ProbeTimeout:      cfg.Tool.ProbeTimeoutDuration(),
			CheckpointTimeout: cfg.Tool.CheckpointTimeoutDuration(),
			Logger:            logger,
		}),
		logger: logger,
	}
	if cfg.Audit.Enabled {
		if path, err := config.ExpandPath(cfg.Audit.Path); err == nil {
			svc.Audit = audit.New(path)
		}
	}
	return svc, nil
}

// Analyze attributes a captured stack without touching the external tool.
func (s *Service) Analyze(frames []attribution.Frame) attribution.Result {
	return s.Analyzer.Analyze(frames)
}

// Report is the outcome of one checkpoint hook invocation.
type Report struct {
	Agent        string `json:"agent,omitempty"`
	Confidence   string `json:"confidence"`
	Checkpointed bool   `json:"checkpointed"`
}

// Checkpoint attributes the change and records it through the external tool.
// A missing or failing tool is not an error: the report just comes back with
// Checkpointed false.
func (s *Service) Checkpoint(ctx context.Context, frames []attribution.Frame, workingDir string) Report {
	res := s.Analyzer.Analyze(frames)

	input := checkpoint.Human()
	if res.AgentName != "" {
		input = checkpoint.Agent(res.AgentName)
	}

	ok := s.Dispatcher.Checkpoint(ctx, input, workingDir)
	s.logger.Debug("checkpoint hook finished",
		zap.String("agent", res.AgentName),
		zap.String("confidence", res.Confidence.String()),
		zap.Bool("checkpointed", ok),
	)

	status := "ok"
	if !ok {
		status = "skipped"
	}
	if err := s.Audit.Log(audit.Event{
		Operation:    "checkpoint",
		Status:       status,
		Agent:        res.AgentName,
		Confidence:   res.Confidence.String(),
		Checkpointed: ok,
		Fields:       map[string]string{"dir": workingDir},
	}); err != nil {
		s.logger.Warn("audit log write failed", zap.Error(err))
	}

	return Report{
		Agent:        res.AgentName,
		Confidence:   res.Confidence.String(),
		Checkpointed: ok,
	}
}

// ToolStatus describes the probed external tool.
type ToolStatus struct {
	Tool       string `json:"tool"`
	Available  bool   `json:"available"`
	Version    string `json:"version,omitempty"`
	MinVersion string `json:"minVersion"`
}

// Status probes (or re-probes, when recheck is set) the external tool.
func (s *Service) Status(ctx context.Context, recheck bool) ToolStatus {
	if recheck {
		s.Dispatcher.ResetAvailability()
	}
	st := ToolStatus{
		Tool:       s.Config.Tool.Path,
		Available:  s.Dispatcher.CheckAvailable(ctx),
		MinVersion: s.Dispatcher.MinVersion().String(),
	}
	if v, ok := s.Dispatcher.ToolVersion(); ok {
		st.Version = v.String()
	}
	return st
}
