package models

// AccentColor is one named theme color with its glow variant.
type AccentColor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Main string `json:"main"`
	Glow string `json:"glow"`
}

// StyleSettings is the singleton visual configuration. Remotely it lives as
// a single JSON document in the admin_settings table; locally it is part of
// the snapshot.
type StyleSettings struct {
	ParticleCount int           `json:"particleCount"`
	AccentColors  []AccentColor `json:"accentColors"`
}
