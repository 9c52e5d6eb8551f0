package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultSheetWidth  int   `json:"default_sheet_width"`
	DefaultSheetHeight int   `json:"default_sheet_height"`
	DefaultSeed        int64 `json:"default_seed"`    // 0 = time based
	DefaultWorkers     int   `json:"default_workers"` // fitness evaluation workers

	// Smallest side of a remnant reported as an offcut
	MinOffcutDimension int `json:"min_offcut_dimension"`

	RecentProjects []string `json:"recent_projects"`
}

// maxRecentProjects bounds the recent projects list.
const maxRecentProjects = 10

// DefaultAppConfig returns an AppConfig populated with defaults matching
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSheetWidth:  1220,
		DefaultSheetHeight: 2440,
		DefaultSeed:        defaults.Seed,
		DefaultWorkers:     defaults.Workers,
		MinOffcutDimension: DefaultMinOffcutDimension,
		RecentProjects:     []string{},
	}
}

// ApplyToSettings copies the defaults into s where s does not set them.
func (c AppConfig) ApplyToSettings(s *Settings) {
	if s.Seed == 0 {
		s.Seed = c.DefaultSeed
	}
	if s.Workers <= 1 && c.DefaultWorkers > 1 {
		s.Workers = c.DefaultWorkers
	}
}

// DefaultSheet returns the configured default sheet.
func (c AppConfig) DefaultSheet() Sheet {
	return Sheet{Width: c.DefaultSheetWidth, Height: c.DefaultSheetHeight}
}

// AddRecentProject moves path to the front of the recent list.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
