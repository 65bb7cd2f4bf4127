package disclosure

import "strings"

// LineMerger rejoins chemical names the source layout wraps across two
// consecutive lines, which would otherwise defeat marker matching.
type LineMerger struct {
	rules []MergeRule
}

// NewLineMerger creates a merger with the default rule set
func NewLineMerger() *LineMerger {
	return &LineMerger{rules: DefaultMergeRules()}
}

// NewLineMergerWithRules creates a merger with a custom rule set
func NewLineMergerWithRules(rules []MergeRule) *LineMerger {
	return &LineMerger{rules: rules}
}

// Merge performs a single greedy left-to-right pass over the line stream.
// When a line matches a rule prefix and the following line starts with the
// paired suffix, the two are joined with one space and the consumed line is
// not re-emitted; scanning resumes after the pair. All other lines pass
// through unchanged. Merging already-merged output is a no-op.
func (m *LineMerger) Merge(lines []string) []string {
	merged := make([]string, 0, len(lines))

	skipNext := false
	for i := 0; i < len(lines); i++ {
		if skipNext {
			skipNext = false
			continue
		}

		current := strings.TrimSpace(lines[i])
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if m.matchesPair(current, next) {
				merged = append(merged, current+" "+next)
				skipNext = true
				continue
			}
		}

		merged = append(merged, current)
	}

	return merged
}

// matchesPair reports whether two consecutive lines form a known split name
func (m *LineMerger) matchesPair(current, next string) bool {
	currentNorm := strings.ToLower(current)
	nextNorm := strings.ToLower(next)

	for _, rule := range m.rules {
		if currentNorm == rule.Prefix && strings.HasPrefix(nextNorm, rule.Suffix) {
			return true
		}
	}
	return false
}
