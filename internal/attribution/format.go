package attribution

import (
	"fmt"
	"strings"
)

// DefaultMaxStackFrames bounds how much of a raw stack FormatStack renders.
const DefaultMaxStackFrames = 50

// FormatStack renders up to max frames as human-readable lines. A max of
// zero or less falls back to DefaultMaxStackFrames.
func FormatStack(frames []Frame, max int) string {
	if max <= 0 {
		max = DefaultMaxStackFrames
	}
	if len(frames) > max {
		frames = frames[:max]
	}
	var b strings.Builder
	for _, f := range frames {
		b.WriteString("  at ")
		b.WriteString(FormatFrame(f))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatRelevant renders the relevant-frames subset of a Result.
func FormatRelevant(frames []Frame) string {
	if len(frames) == 0 {
		return "  (no relevant frames)\n"
	}
	return FormatStack(frames, len(frames))
}

// FormatFrame renders one frame, with source location when known.
func FormatFrame(f Frame) string {
	name := f.TypeName
	if f.MethodName != "" {
		name += "." + f.MethodName
	}
	if f.FileName == "" {
		return name
	}
	if f.Line > 0 {
		return fmt.Sprintf("%s(%s:%d)", name, f.FileName, f.Line)
	}
	return fmt.Sprintf("%s(%s)", name, f.FileName)
}
