package checkpoint

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTool is the external CLI probed and invoked by the dispatcher.
	DefaultTool = "git-ai"

	defaultProbeTimeout      = 5 * time.Second
	defaultCheckpointTimeout = 30 * time.Second
)

// execFunc runs the external tool and returns its combined stdout/stderr.
// The context deadline must forcibly terminate the process.
type execFunc func(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) ([]byte, error)

func defaultExec(ctx context.Context, dir string, stdin io.Reader, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if stdin != nil {
		cmd.Stdin = stdin
	}
	return cmd.CombinedOutput()
}

// Options configures a Dispatcher. Zero values fall back to defaults.
type Options struct {
	Tool              string
	MinVersion        ToolVersion
	ProbeTimeout      time.Duration
	CheckpointTimeout time.Duration
	Logger            *zap.Logger
}

// Dispatcher gates checkpoint creation on the external git-ai tool. The
// availability probe runs at most once per cache epoch; ResetAvailability
// starts a new epoch. All tool failures are downgraded to boolean outcomes —
// no method returns an error or panics across this boundary.
type Dispatcher struct {
	tool              string
	minVersion        ToolVersion
	probeTimeout      time.Duration
	checkpointTimeout time.Duration
	run               execFunc
	logger            *zap.Logger

	mu        sync.Mutex
	checked   bool
	available bool
	version   ToolVersion
}

// NewDispatcher builds a dispatcher. Construct one per process and share it;
// the availability cache is the only state it holds.
func NewDispatcher(opts Options) *Dispatcher {
	d := &Dispatcher{
		tool:              opts.Tool,
		minVersion:        opts.MinVersion,
		probeTimeout:      opts.ProbeTimeout,
		checkpointTimeout: opts.CheckpointTimeout,
		run:               defaultExec,
		logger:            opts.Logger,
	}
	if d.tool == "" {
		d.tool = DefaultTool
	}
	if d.probeTimeout <= 0 {
		d.probeTimeout = defaultProbeTimeout
	}
	if d.checkpointTimeout <= 0 {
		d.checkpointTimeout = defaultCheckpointTimeout
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d
}

// CheckAvailable reports whether the tool is installed at an accepted
// version. The underlying probe runs at most once even under concurrent
// callers; later calls return the cached result until ResetAvailability.
func (d *Dispatcher) CheckAvailable(ctx context.Context) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.checked {
		return d.available
	}
	d.available, d.version = d.probe(ctx)
	d.checked = true
	return d.available
}

// ToolVersion returns the cached probed version. ok is false until a probe
// has succeeded in the current cache epoch.
func (d *Dispatcher) ToolVersion() (v ToolVersion, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version, d.checked && d.available
}

// MinVersion returns the minimum accepted tool version.
func (d *Dispatcher) MinVersion() ToolVersion {
	return d.minVersion
}

// ResetAvailability clears the cached probe result so the next
// CheckAvailable probes again. Lets a session pick up a tool installed after
// the first probe failed.
func (d *Dispatcher) ResetAvailability() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checked = false
	d.available = false
	d.version = ToolVersion{}
}

// probe runs `git-ai version` under the probe deadline. Caller holds d.mu.
func (d *Dispatcher) probe(ctx context.Context) (bool, ToolVersion) {
	ctx, cancel := context.WithTimeout(ctx, d.probeTimeout)
	defer cancel()
	out, err := d.run(ctx, "", nil, d.tool, "version")
	if err != nil {
		d.logger.Debug("git-ai probe failed",
			zap.String("tool", d.tool),
			zap.Error(err),
			zap.ByteString("output", out),
		)
		return false, ToolVersion{}
	}
	v, err := ParseToolVersion(strings.TrimSpace(string(out)))
	if err != nil {
		d.logger.Debug("git-ai version output unparseable",
			zap.String("output", strings.TrimSpace(string(out))),
			zap.Error(err),
		)
		return false, ToolVersion{}
	}
	if v.Compare(d.minVersion) < 0 {
		d.logger.Warn("git-ai version below minimum",
			zap.String("found", v.String()),
			zap.String("minimum", d.minVersion.String()),
		)
		return false, ToolVersion{}
	}
	d.logger.Debug("git-ai available", zap.String("version", v.String()))
	return true, v
}

// Checkpoint records one attributed change in workingDir. Returns false
// without spawning anything when the tool is unavailable; otherwise feeds
// the serialized input to `git-ai checkpoint agent-v1 --hook-input stdin`
// under the checkpoint deadline. Timeouts, launch errors and non-zero exits
// all come back as false.
func (d *Dispatcher) Checkpoint(ctx context.Context, in Input, workingDir string) bool {
	if !d.CheckAvailable(ctx) {
		return false
	}
	record, err := in.record()
	if err != nil {
		d.logger.Error("checkpoint input serialization failed", zap.Error(err))
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, d.checkpointTimeout)
	defer cancel()
	out, err := d.run(ctx, workingDir, bytes.NewReader(record), d.tool, "checkpoint", "agent-v1", "--hook-input", "stdin")
	if err != nil {
		d.logger.Warn("git-ai checkpoint failed",
			zap.String("dir", workingDir),
			zap.Error(err),
			zap.ByteString("output", out),
		)
		return false
	}
	d.logger.Debug("git-ai checkpoint recorded", zap.String("dir", workingDir))
	return true
}
