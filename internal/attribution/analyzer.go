package attribution

import "strings"

// Frame is one entry of a captured call stack, innermost first. FileName and
// Line are optional; a zero Line means unknown.
type Frame struct {
	TypeName   string `json:"typeName"`
	MethodName string `json:"methodName"`
	FileName   string `json:"fileName,omitempty"`
	Line       int    `json:"line,omitempty"`
}

// Confidence ranks how strongly the evidence supports an attribution.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

// MarshalJSON encodes the confidence as its lowercase name.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// String returns the lowercase confidence name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	default:
		return "none"
	}
}

// Result is the outcome of one Analyze call. AgentName is empty when no
// agent was attributed. RelevantFrames holds every frame that matched some
// signature or generic pattern, in stack order, duplicates allowed.
type Result struct {
	AgentName      string     `json:"agent,omitempty"`
	Confidence     Confidence `json:"confidence"`
	RelevantFrames []Frame    `json:"relevantFrames,omitempty"`
}

// Analyzer matches stack snapshots against a fixed signature registry.
// Build one at startup and share it; Analyze is pure and reentrant.
type Analyzer struct {
	signatures []Signature
}

// NewAnalyzer returns an analyzer over the builtin registry followed by any
// extra signatures, in that priority order.
func NewAnalyzer(extra ...Signature) *Analyzer {
	sigs := BuiltinSignatures()
	sigs = append(sigs, extra...)
	return &Analyzer{signatures: sigs}
}

// Signatures returns the registry in priority order.
func (a *Analyzer) Signatures() []Signature {
	return a.signatures
}

// Analyze attributes a captured stack to an agent. The first signature whose
// package prefix matches wins at high confidence; a type-name fragment match
// wins at medium confidence if nothing matched before it. Detection is
// written at most once per scan, but package-level matches keep appending to
// RelevantFrames afterwards so the evidence trail stays complete. When no
// signature matches at all, a second pass looks for generic
// inline-suggestion machinery and reports it at low confidence.
func (a *Analyzer) Analyze(frames []Frame) Result {
	var res Result
	for _, frame := range frames {
		typeName := strings.ToLower(frame.TypeName)
		for _, sig := range a.signatures {
			if matchesPrefix(typeName, sig.PackagePrefixes) {
				res.RelevantFrames = append(res.RelevantFrames, frame)
				if res.AgentName == "" {
					res.AgentName = sig.Name
					res.Confidence = ConfidenceHigh
				}
				continue
			}
			if res.AgentName == "" && matchesFragment(typeName, sig.TypeNameFragments) {
				res.RelevantFrames = append(res.RelevantFrames, frame)
				res.AgentName = sig.Name
				res.Confidence = ConfidenceMedium
			}
		}
	}
	if res.AgentName != "" {
		return res
	}
	for _, frame := range frames {
		if matchesFragment(strings.ToLower(frame.TypeName), genericFragments) {
			res.RelevantFrames = append(res.RelevantFrames, frame)
			if res.AgentName == "" {
				res.AgentName = GenericAgentName
				res.Confidence = ConfidenceLow
			}
		}
	}
	return res
}

func matchesPrefix(lowerTypeName string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(lowerTypeName, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func matchesFragment(lowerTypeName string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(lowerTypeName, strings.ToLower(f)) {
			return true
		}
	}
	return false
}
