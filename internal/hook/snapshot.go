package hook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bernoussama/git-ai/internal/attribution"
)

// DecodeSnapshot parses the stack snapshot the editor plugin pipes in: a
// JSON array of frames, innermost first. Empty input is a valid empty stack,
// not an error.
func DecodeSnapshot(r io.Reader) ([]attribution.Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("HOK_SNAPSHOT_READ: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var frames []attribution.Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("HOK_SNAPSHOT_PARSE: %w", err)
	}
	return frames, nil
}
