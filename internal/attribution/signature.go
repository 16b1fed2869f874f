package attribution

// Signature describes how stack frames produced by one AI coding assistant
// look. PackagePrefixes are qualified-namespace prefixes: a frame whose type
// name starts with one of them lives inside the vendor's code and is treated
// as high-confidence evidence. TypeNameFragments are lowercase substrings
// that only suggest authorship (medium confidence) since unrelated code can
// mention the same word.
type Signature struct {
	Name              string
	PackagePrefixes   []string
	TypeNameFragments []string
}

// GenericAgentName is reported when no registered signature matched but a
// frame still looks like inline-suggestion machinery.
const GenericAgentName = "Unknown AI Assistant (generic pattern)"

// genericFragments catch automated-suggestion frames from assistants we have
// no signature for.
var genericFragments = []string{
	"inlinecompletion",
	"codesuggestion",
	"aicompletion",
	"mlcompletion",
}

// BuiltinSignatures returns the known-agent table. Order matters: it is the
// tie-break priority when a stack matches more than one signature.
func BuiltinSignatures() []Signature {
	return []Signature{
		{
			Name:              "GitHub Copilot",
			PackagePrefixes:   []string{"com.github.copilot."},
			TypeNameFragments: []string{"copilot"},
		},
		{
			Name:              "JetBrains AI Assistant",
			PackagePrefixes:   []string{"com.intellij.ml.llm.", "com.jetbrains.ml."},
			TypeNameFragments: []string{"aiassistant"},
		},
		{
			Name:              "Codeium",
			PackagePrefixes:   []string{"com.codeium."},
			TypeNameFragments: []string{"codeium", "windsurf"},
		},
		{
			Name:              "Tabnine",
			PackagePrefixes:   []string{"com.tabnine."},
			TypeNameFragments: []string{"tabnine"},
		},
		{
			Name:              "Amazon Q",
			PackagePrefixes:   []string{"software.aws.toolkits.", "com.amazonaws.codewhisperer."},
			TypeNameFragments: []string{"codewhisperer", "amazonq"},
		},
		{
			Name:              "Supermaven",
			PackagePrefixes:   []string{"com.supermaven."},
			TypeNameFragments: []string{"supermaven"},
		},
		{
			Name:              "Sourcegraph Cody",
			PackagePrefixes:   []string{"com.sourcegraph."},
			TypeNameFragments: []string{"cody"},
		},
	}
}
