package domain

import "math"

// Progress records how far a reader has gotten through one book.
// Books are keyed by title throughout the progress and favorites stores;
// that identity is inherited from the client data model and is known to be
// fragile under renames (see DESIGN.md).
type Progress struct {
	// Percent complete, 0-100.
	Percent int `json:"progress"`
	// PageIndex is the zero-based index of the last viewed page.
	PageIndex int `json:"pageNumber"`
}

// ProgressMap is the persisted form of the progress store:
// one entry per book title, serialized as a single blob.
type ProgressMap map[string]Progress

// PercentFor computes the completion percentage for a page position.
// Returns 0 when totalPages is 0 so empty books never divide by zero.
func PercentFor(pageIndex, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	return int(math.Round(float64(pageIndex) / float64(totalPages) * 100))
}

// IsZero reports whether the progress is the untouched default.
func (p Progress) IsZero() bool {
	return p.Percent == 0 && p.PageIndex == 0
}
