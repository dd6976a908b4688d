package tui

// Color constants for the lacak timer theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Titles, the clock itself
	ColorSecondaryText = "#B1B8C7" // Subtle purple-tinted grey
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#7C3AED" // Task id, active borders
	ColorAccentBright = "#A78BFA" // Header, highlights

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
)
