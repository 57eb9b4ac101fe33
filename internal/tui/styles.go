package tui

import "github.com/charmbracelet/lipgloss"

// palette is one color theme.
type palette struct {
	Primary    lipgloss.Color // saffron accent
	Accent     lipgloss.Color // gold, ratings and badges
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Muted      lipgloss.Color
	MutedLight lipgloss.Color
	Text       lipgloss.Color
	Emphatic   lipgloss.Color
	Surface    lipgloss.Color
	SurfaceDim lipgloss.Color
}

// Semantic palettes for the dark and light themes.
var (
	colorsDark = palette{
		Primary:    lipgloss.Color("#F97316"),
		Accent:     lipgloss.Color("#FFD700"),
		Success:    lipgloss.Color("#10B981"),
		Danger:     lipgloss.Color("#FF5252"),
		Muted:      lipgloss.Color("#636363"),
		MutedLight: lipgloss.Color("#8C8C8C"),
		Text:       lipgloss.Color("#EEEEEE"),
		Emphatic:   lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#1E1E2E"),
		SurfaceDim: lipgloss.Color("#181825"),
	}
	colorsLight = palette{
		Primary:    lipgloss.Color("#C2410C"),
		Accent:     lipgloss.Color("#B45309"),
		Success:    lipgloss.Color("#047857"),
		Danger:     lipgloss.Color("#B91C1C"),
		Muted:      lipgloss.Color("#9CA3AF"),
		MutedLight: lipgloss.Color("#6B7280"),
		Text:       lipgloss.Color("#1F2937"),
		Emphatic:   lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#F3F4F6"),
		SurfaceDim: lipgloss.Color("#E5E7EB"),
	}
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Glyphs.
const (
	iconStar     = "★"
	iconFavorite = "♥"
	iconPin      = "⌖"
)

// Styles is the full set of lipgloss styles for one theme.
type Styles struct {
	Light bool

	Header       lipgloss.Style
	HeaderTab    lipgloss.Style
	HeaderActive lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Dim          lipgloss.Style

	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	Indicator   lipgloss.Style
	Rating      lipgloss.Style
	Badge       lipgloss.Style
	Favorite    lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Input      lipgloss.Style
	InputFocus lipgloss.Style

	DetailBorder lipgloss.Style
	DetailTitle  lipgloss.Style
	DetailLabel  lipgloss.Style
	DetailValue  lipgloss.Style
	Scroll       lipgloss.Style

	NoticeInfo  lipgloss.Style
	NoticeWarn  lipgloss.Style
	NoticeError lipgloss.Style

	Good lipgloss.Style
	Bad  lipgloss.Style

	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	FooterSep  lipgloss.Style
}

// NewStyles builds the styles for the dark or light theme.
func NewStyles(light bool) Styles {
	c := colorsDark
	if light {
		c = colorsLight
	}
	return Styles{
		Light: light,

		Header:       lipgloss.NewStyle().Background(c.Surface).Foreground(c.Text).Bold(true).Padding(0, 1),
		HeaderTab:    lipgloss.NewStyle().Background(c.Surface).Foreground(c.MutedLight),
		HeaderActive: lipgloss.NewStyle().Background(c.Surface).Foreground(c.Primary).Bold(true).Underline(true),
		Title:        lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(c.Text),
		Dim:          lipgloss.NewStyle().Foreground(c.Muted),

		RowSelected: lipgloss.NewStyle().Foreground(c.Emphatic).Bold(true),
		RowNormal:   lipgloss.NewStyle().Foreground(c.MutedLight),
		Indicator:   lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Rating:      lipgloss.NewStyle().Foreground(c.Accent),
		Badge:       lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		Favorite:    lipgloss.NewStyle().Foreground(c.Danger),

		TabActive:   lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		TabInactive: lipgloss.NewStyle().Foreground(c.Muted),

		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.Muted).Padding(0, 1),
		InputFocus: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.Primary).Padding(0, 1),

		DetailBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.Primary).Padding(0, 1),
		DetailTitle:  lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		DetailLabel:  lipgloss.NewStyle().Foreground(c.Muted),
		DetailValue:  lipgloss.NewStyle().Foreground(c.Text),
		Scroll:       lipgloss.NewStyle().Foreground(c.Muted).Italic(true),

		NoticeInfo:  lipgloss.NewStyle().Foreground(c.Success).Bold(true),
		NoticeWarn:  lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		NoticeError: lipgloss.NewStyle().Foreground(c.Danger).Bold(true),

		Good: lipgloss.NewStyle().Foreground(c.Success).Bold(true),
		Bad:  lipgloss.NewStyle().Foreground(c.Danger).Bold(true),

		Footer:     lipgloss.NewStyle().Background(c.SurfaceDim).Foreground(c.MutedLight).Padding(0, 1),
		FooterKey:  lipgloss.NewStyle().Background(c.SurfaceDim).Foreground(c.Primary).Bold(true),
		FooterDesc: lipgloss.NewStyle().Background(c.SurfaceDim).Foreground(c.MutedLight),
		FooterSep:  lipgloss.NewStyle().Background(c.SurfaceDim).Foreground(c.Muted),
	}
}
