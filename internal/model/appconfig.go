package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new plans
	DefaultDepth int       `json:"default_depth"` // mm
	FitBounds    FitBounds `json:"fit_bounds"`

	// Application preferences
	RecentExports []string `json:"recent_exports"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultDepth:  600,
		FitBounds:     DefaultFitBounds(),
		RecentExports: []string{},
	}
}

// Bounds returns the configured fit bounds, falling back to the defaults
// when the stored value is invalid or zero.
func (c AppConfig) Bounds() FitBounds {
	if c.FitBounds.Valid() {
		return c.FitBounds
	}
	return DefaultFitBounds()
}
