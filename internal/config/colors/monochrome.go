package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		Done:    "#FFFFFF",
		Pending: "#808080",

		LabelFg: "#000000",
		LabelBg: "#D0D0D0",

		ErrorFg: "#FFFFFF",
	}
}
