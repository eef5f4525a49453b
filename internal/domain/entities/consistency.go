package entities

// IssueKind classifies a mapping inconsistency.
type IssueKind string

const (
	// IssueMissingReverse: m[L][s] = t but m[L.Other()] has no entry for t.
	IssueMissingReverse IssueKind = "missing_reverse"
	// IssueMismatch: m[L][s] = t but m[L.Other()][t] is neither s nor absent.
	IssueMismatch IssueKind = "mismatch"
	// IssueUnmappedNavigation: a navigation slug has no primary entry.
	IssueUnmappedNavigation IssueKind = "unmapped_navigation"
)

type ConsistencyIssue struct {
	Kind     IssueKind
	Language Language
	Slug     string
	Target   string
	// Actual is what the other table maps Target to, for mismatches.
	Actual string
}
