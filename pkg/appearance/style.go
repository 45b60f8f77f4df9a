package appearance

import "fmt"

// Style selects the button's layout variant.
type Style int

const (
	// StyleStandard is the default fixed-width box with the short label.
	StyleStandard Style = iota
	// StyleWide is the widest box, sized for the full provider label.
	StyleWide
	// StyleIconOnly is a fixed square that draws the icon and no text.
	StyleIconOnly
)

const styleCount = 3

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= StyleStandard && s <= StyleIconOnly
}

func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "standard"
	case StyleWide:
		return "wide"
	case StyleIconOnly:
		return "icon-only"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle converts a configuration string into a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "standard":
		return StyleStandard, nil
	case "wide":
		return StyleWide, nil
	case "icon-only":
		return StyleIconOnly, nil
	default:
		return 0, fmt.Errorf("unknown style %q (want standard, wide or icon-only)", s)
	}
}

// ColorScheme selects which half of the color table is active. It is
// orthogonal to Style.
type ColorScheme int

const (
	// SchemeLight is the white rendition with a hairline border. It is the
	// zero value, so unconfigured buttons come up light.
	SchemeLight ColorScheme = iota
	// SchemeDark is the filled brand-blue rendition.
	SchemeDark
)

const schemeCount = 2

// Valid reports whether c is one of the defined color schemes.
func (c ColorScheme) Valid() bool {
	return c == SchemeLight || c == SchemeDark
}

func (c ColorScheme) String() string {
	switch c {
	case SchemeDark:
		return "dark"
	case SchemeLight:
		return "light"
	default:
		return fmt.Sprintf("scheme(%d)", int(c))
	}
}

// ParseColorScheme converts a configuration string into a ColorScheme.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch s {
	case "dark":
		return SchemeDark, nil
	case "light":
		return SchemeLight, nil
	default:
		return 0, fmt.Errorf("unknown color scheme %q (want dark or light)", s)
	}
}

// State is the button's interaction state. Exactly one state is active at any
// time; transitions are owned by the button state machine.
type State int

const (
	// StateNormal is the idle, enabled state.
	StateNormal State = iota
	// StateDisabled suppresses press interactions and dims the icon.
	StateDisabled
	// StatePressed is active while a press is in flight.
	StatePressed
)

const stateCount = 3

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDisabled:
		return "disabled"
	case StatePressed:
		return "pressed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ColorRole is the semantic slot a resolved color fills.
type ColorRole int

const (
	// RoleBackground fills the button box.
	RoleBackground ColorRole = iota
	// RoleForeground colors the label text.
	RoleForeground
)

const roleCount = 2

func (r ColorRole) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleForeground:
		return "foreground"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}
