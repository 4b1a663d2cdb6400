package schedule

import (
	"strings"

	"tutorly/models"
)

// levelSeparator joins multiple grade labels on a single session
// (e.g. "L1 + L2"). The delimited form is a storage/display detail; inside
// the engine levels travel as slices.
const levelSeparator = " + "

// Levels splits a level label into its individual grade labels. An empty
// label yields nil.
func Levels(label string) []string {
	if label == "" {
		return nil
	}
	return strings.Split(label, levelSeparator)
}

// JoinLevels is the inverse of Levels; it produces the verbatim display and
// storage form.
func JoinLevels(levels []string) string {
	return strings.Join(levels, levelSeparator)
}

// SessionLevels returns the grade labels a session serves.
func SessionLevels(s models.Session) []string {
	return Levels(s.Level)
}

// HasLevel reports whether the session serves target. Matching is exact:
// no case folding, no whitespace trimming. A session without a level never
// matches.
func HasLevel(s models.Session, target string) bool {
	for _, lvl := range SessionLevels(s) {
		if lvl == target {
			return true
		}
	}
	return false
}
