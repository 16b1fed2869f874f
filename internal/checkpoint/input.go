package checkpoint

import (
	"encoding/json"
	"fmt"
)

type inputKind int

const (
	kindHuman inputKind = iota
	kindAgent
)

// Input tags a checkpoint as human- or agent-authored. It has exactly these
// two variants; construct values with Human or Agent.
type Input struct {
	kind  inputKind
	agent string
}

// Human marks a checkpoint as authored by the user.
func Human() Input {
	return Input{kind: kindHuman}
}

// Agent marks a checkpoint as authored by the named AI assistant.
func Agent(name string) Input {
	return Input{kind: kindAgent, agent: name}
}

// IsAgent reports whether the input carries an agent attribution.
func (in Input) IsAgent() bool {
	return in.kind == kindAgent
}

// AgentName returns the attributed agent's display name, empty for human.
func (in Input) AgentName() string {
	return in.agent
}

// hookRecord is the wire shape consumed by `git-ai checkpoint agent-v1`.
type hookRecord struct {
	Kind      string `json:"kind"`
	AgentName string `json:"agent_name,omitempty"`
}

// record serializes the input to the single JSON line fed to the tool's
// standard input.
func (in Input) record() ([]byte, error) {
	var rec hookRecord
	switch in.kind {
	case kindHuman:
		rec = hookRecord{Kind: "human"}
	case kindAgent:
		rec = hookRecord{Kind: "ai_agent", AgentName: in.agent}
	default:
		return nil, fmt.Errorf("CKP_INPUT: unknown kind %d", in.kind)
	}
	return json.Marshal(rec)
}
