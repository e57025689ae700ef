package models

// Preferences are the per-installation UI settings persisted in the
// key-value store under the "preferences" key.
type Preferences struct {
	// Notifications toggles local notification prompts.
	Notifications bool `json:"notifications"`

	// DarkMode toggles the dark color scheme.
	DarkMode bool `json:"dark_mode"`

	// Language is the ISO 639-1 UI language code.
	Language string `json:"language"`
}

// DefaultPreferences returns the values seeded on first launch.
func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		DarkMode:      false,
		Language:      "es",
	}
}
