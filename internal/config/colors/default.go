package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Done:    "#5FD75F",
		Pending: "#FFD700",

		LabelFg: "#FFFFFF",
		LabelBg: "#5F87D7",

		ErrorFg: "#FF0000",
	}
}
