package checkpoint

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ToolVersion is the git-ai CLI version, ordered by (major, minor, patch).
type ToolVersion struct {
	Major int
	Minor int
	Patch int
}

// ParseToolVersion extracts a version from free-form `git-ai version` output.
// Only the first whitespace-delimited token is considered; it must carry at
// least three dot-separated numeric components. The patch component may have
// a trailing `-` or `+` qualifier (e.g. "1.0.23-rc1"), which is discarded.
func ParseToolVersion(text string) (ToolVersion, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ToolVersion{}, fmt.Errorf("CKP_VERSION_PARSE: empty version output")
	}
	token := strings.TrimPrefix(fields[0], "v")
	parts := strings.Split(token, ".")
	if len(parts) < 3 {
		return ToolVersion{}, fmt.Errorf("CKP_VERSION_PARSE: %q has fewer than three components", token)
	}
	patchPart := parts[2]
	if i := strings.IndexAny(patchPart, "-+"); i >= 0 {
		patchPart = patchPart[:i]
	}
	major, err := parseComponent(parts[0])
	if err != nil {
		return ToolVersion{}, err
	}
	minor, err := parseComponent(parts[1])
	if err != nil {
		return ToolVersion{}, err
	}
	patch, err := parseComponent(patchPart)
	if err != nil {
		return ToolVersion{}, err
	}
	return ToolVersion{Major: major, Minor: minor, Patch: patch}, nil
}

func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("CKP_VERSION_PARSE: component %q is not a non-negative integer", s)
	}
	return n, nil
}

// String renders the canonical dotted form without a "v" prefix.
func (v ToolVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions lexicographically by (major, minor, patch),
// returning -1, 0 or +1.
func (v ToolVersion) Compare(o ToolVersion) int {
	return semver.Compare("v"+v.String(), "v"+o.String())
}
