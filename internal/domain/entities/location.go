package entities

// Location is what a page knows about itself: its path and the lang
// attribute of its root element ("" when absent).
type Location struct {
	Path     string
	LangAttr string
}

// ResolvedLocation is a page identified by language and slug.
type ResolvedLocation struct {
	Language Language
	Slug     string
}

// Stage tells which lookup produced a resolution.
type Stage string

const (
	StageDirect   Stage = "direct"
	StageReverse  Stage = "reverse"
	StageFallback Stage = "fallback"
)

// Resolution is the outcome of resolving the equivalent page of a location.
type Resolution struct {
	From  ResolvedLocation
	To    ResolvedLocation
	Path  string
	Stage Stage
}
