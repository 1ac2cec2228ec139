package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// Component is a named part of the image with a placeholder display
// position in percentage coordinates.
type Component struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// numberedItemPattern matches a numbered, bold-labeled list item such as
// "1. **Engine Block**" in the generated analysis text.
var numberedItemPattern = regexp.MustCompile(`(\d+)\.\s*\*\*([^*]+)\*\*`)

// placeholderPositions assigns rough display anchors by list ordinal.
// Real object detection is out of scope; these are illustrative slots only.
var placeholderPositions = []Component{
	{X: 30, Y: 30},
	{X: 70, Y: 30},
	{X: 30, Y: 70},
	{X: 70, Y: 70},
	{X: 50, Y: 50},
}

// ExtractComponents scans analysis text for numbered bold labels and maps
// each to a placeholder position. Ordinal N picks slot N-1; matches whose
// ordinal falls outside the 5-slot table are dropped silently. Matches with
// the same ordinal each consume that ordinal's slot, and the result keeps
// text appearance order. Best-effort heuristic, never errors.
func ExtractComponents(analysis string) []Component {
	matches := numberedItemPattern.FindAllStringSubmatch(analysis, -1)
	out := make([]Component, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		idx := n - 1
		if idx < 0 || idx >= len(placeholderPositions) {
			continue
		}
		name := strings.TrimSpace(m[2])
		if name == "" {
			continue
		}
		slot := placeholderPositions[idx]
		out = append(out, Component{Name: name, X: slot.X, Y: slot.Y})
	}
	return out
}
