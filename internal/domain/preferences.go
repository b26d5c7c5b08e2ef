package domain

// Preferences holds per-device reader settings.
type Preferences struct {
	// DarkMode selects the dark reading theme. Defaults to false.
	DarkMode bool `json:"dark_mode"`
	// NativeLanguage is the reader's target language code for translations
	// (e.g. "ES", "TR"). Empty until the reader picks one.
	NativeLanguage string `json:"native_language,omitempty"`
}

// FavoriteList is the persisted set of favorited book titles, in the order
// they were added. Membership is independent of the book existing locally.
type FavoriteList []string

// Contains reports whether title is favorited.
func (f FavoriteList) Contains(title string) bool {
	for _, t := range f {
		if t == title {
			return true
		}
	}
	return false
}

// Without returns a copy with title removed.
func (f FavoriteList) Without(title string) FavoriteList {
	out := make(FavoriteList, 0, len(f))
	for _, t := range f {
		if t != title {
			out = append(out, t)
		}
	}
	return out
}
