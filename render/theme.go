package render

// StyleGroup is a foreground/background pair used for one named highlight
// group (a status-line segment, a popup row, a syntax capture).
type StyleGroup struct {
	Fg Color `toml:"fg"`
	Bg Color `toml:"bg"`
}

// Theme collects every named color a View paints, loaded from a TOML file
// via config.LoadTheme. Grounded on render/colors.go's named RGB-constant
// palette plus GetStyleForSequence's category-to-style lookup, generalized
// from fixed tcell.Color constants assigned per game sequence-type to TOML-
// configurable OKLCH StyleGroups assigned per editor concern.
type Theme struct {
	Background Color `toml:"background"`
	Foreground Color `toml:"foreground"`

	LineNumber       Color `toml:"line_number"`
	CursorLineNumber Color `toml:"cursor_line_number"`
	CursorLine       Color `toml:"cursor_line"`
	Selection        Color `toml:"selection"`

	SearchMatch        Color `toml:"search_match"`
	SearchMatchCurrent Color `toml:"search_match_current"`

	StatusNormal  StyleGroup `toml:"status_normal"`
	StatusInsert  StyleGroup `toml:"status_insert"`
	StatusVisual  StyleGroup `toml:"status_visual"`
	StatusReplace StyleGroup `toml:"status_replace"`
	StatusCommand StyleGroup `toml:"status_command"`
	StatusSearch  StyleGroup `toml:"status_search"`

	Pmenu       StyleGroup `toml:"pmenu"`
	PmenuSel    StyleGroup `toml:"pmenu_sel"`
	PmenuBorder StyleGroup `toml:"pmenu_border"`
}

// StatusGroupFor returns the status-line style for the given mode.
func (th Theme) StatusGroupFor(mode Mode) StyleGroup {
	switch mode {
	case ModeInsert:
		return th.StatusInsert
	case ModeVisual:
		return th.StatusVisual
	case ModeReplace:
		return th.StatusReplace
	case ModeCommand:
		return th.StatusCommand
	case ModeSearch:
		return th.StatusSearch
	default:
		return th.StatusNormal
	}
}

// DefaultTheme is used when no theme file is configured or found, carrying
// the Tokyo Night palette render/colors.go hard-coded as tcell constants,
// converted to OKLCH.
func DefaultTheme() Theme {
	return Theme{
		Background:       RGBToColor(26, 27, 38),
		Foreground:       RGBToColor(192, 202, 245),
		LineNumber:       RGBToColor(180, 180, 180),
		CursorLineNumber: RGBToColor(255, 255, 255),
		CursorLine:       RGBToColor(41, 46, 66),
		Selection:        RGBToColor(68, 71, 90),
		SearchMatch:      RGBToColor(255, 165, 0),
		SearchMatchCurrent: RGBToColor(255, 120, 120),

		StatusNormal:  StyleGroup{Fg: RGBToColor(0, 0, 0), Bg: RGBToColor(135, 206, 250)},
		StatusInsert:  StyleGroup{Fg: RGBToColor(0, 0, 0), Bg: RGBToColor(144, 238, 144)},
		StatusVisual:  StyleGroup{Fg: RGBToColor(0, 0, 0), Bg: RGBToColor(255, 192, 203)},
		StatusReplace: StyleGroup{Fg: RGBToColor(255, 255, 255), Bg: RGBToColor(200, 50, 50)},
		StatusCommand: StyleGroup{Fg: RGBToColor(255, 255, 255), Bg: RGBToColor(128, 0, 128)},
		StatusSearch:  StyleGroup{Fg: RGBToColor(0, 0, 0), Bg: RGBToColor(255, 165, 0)},

		Pmenu:       StyleGroup{Fg: RGBToColor(192, 202, 245), Bg: RGBToColor(41, 46, 66)},
		PmenuSel:    StyleGroup{Fg: RGBToColor(26, 27, 38), Bg: RGBToColor(122, 162, 247)},
		PmenuBorder: StyleGroup{Fg: RGBToColor(86, 95, 137), Bg: RGBToColor(26, 27, 38)},
	}
}
