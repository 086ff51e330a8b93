package colors

// ColorScheme defines all configurable color values used by CLI output
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers and ids)
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text, e.g. empty-list messages
	Normal string `yaml:"normal"`

	// Task status colors
	Done    string `yaml:"done"`
	Pending string `yaml:"pending"`

	// Label chips (foreground/background pair)
	LabelFg string `yaml:"label_fg"`
	LabelBg string `yaml:"label_bg"`

	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Done == "" {
		c.Done = preset.Done
	}
	if c.Pending == "" {
		c.Pending = preset.Pending
	}
	if c.LabelFg == "" {
		c.LabelFg = preset.LabelFg
	}
	if c.LabelBg == "" {
		c.LabelBg = preset.LabelBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
}

// MergeFrom copies every non-empty field of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.Done != "" {
		c.Done = other.Done
	}
	if other.Pending != "" {
		c.Pending = other.Pending
	}
	if other.LabelFg != "" {
		c.LabelFg = other.LabelFg
	}
	if other.LabelBg != "" {
		c.LabelBg = other.LabelBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
}
