package appearance

import (
	"fmt"
	"sync"
)

// Combo identifies one cell of the color table.
type Combo struct {
	Scheme ColorScheme
	State  State
	Role   ColorRole
}

func (c Combo) String() string {
	return fmt.Sprintf("(%s, %s, %s)", c.Scheme, c.State, c.Role)
}

// Entry pins one (scheme, state, role) combination to a color.
type Entry struct {
	Scheme ColorScheme
	State  State
	Role   ColorRole
	Color  RGBA
}

func (e Entry) combo() Combo {
	return Combo{Scheme: e.Scheme, State: e.State, Role: e.Role}
}

// StyleTable resolves colors and geometry for every button configuration.
// Construction verifies the color table exhaustively, so lookups are total;
// the table is immutable afterwards and safe for concurrent readers.
type StyleTable struct {
	colors map[Combo]RGBA
}

// DefaultEntries returns the canonical color table: twelve entries, one per
// (scheme, state, role) combination. The brand accents serve as the dark
// scheme's normal and pressed backgrounds; every other cell uses the shared
// greys and white.
func DefaultEntries() []Entry {
	return []Entry{
		{SchemeDark, StateNormal, RoleBackground, BrandBlue},
		{SchemeDark, StateNormal, RoleForeground, White},
		{SchemeDark, StateDisabled, RoleBackground, LightestGrey},
		{SchemeDark, StateDisabled, RoleForeground, DisabledGrey},
		{SchemeDark, StatePressed, RoleBackground, BrandBlueDark},
		{SchemeDark, StatePressed, RoleForeground, White},

		{SchemeLight, StateNormal, RoleBackground, White},
		{SchemeLight, StateNormal, RoleForeground, DarkestGrey},
		{SchemeLight, StateDisabled, RoleBackground, LightestGrey},
		{SchemeLight, StateDisabled, RoleForeground, DisabledGrey},
		{SchemeLight, StatePressed, RoleBackground, LightGrey},
		{SchemeLight, StatePressed, RoleForeground, DarkestGrey},
	}
}

// NewStyleTable builds a table from entries and verifies that every
// combination of scheme, state and role is defined exactly once. A missing or
// duplicated combination returns a *ConfigurationError; a partial table is
// never produced.
func NewStyleTable(entries []Entry) (*StyleTable, error) {
	cfgErr := &ConfigurationError{}
	colors := make(map[Combo]RGBA, schemeCount*stateCount*roleCount)
	for _, e := range entries {
		key := e.combo()
		if _, dup := colors[key]; dup {
			cfgErr.Duplicate = append(cfgErr.Duplicate, key)
			continue
		}
		colors[key] = e.Color
	}

	for scheme := SchemeLight; scheme < ColorScheme(schemeCount); scheme++ {
		for state := StateNormal; state < State(stateCount); state++ {
			for role := RoleBackground; role < ColorRole(roleCount); role++ {
				key := Combo{Scheme: scheme, State: state, Role: role}
				if _, ok := colors[key]; !ok {
					cfgErr.Missing = append(cfgErr.Missing, key)
				}
			}
		}
	}

	if len(cfgErr.Missing) > 0 || len(cfgErr.Duplicate) > 0 {
		return nil, cfgErr
	}
	return &StyleTable{colors: colors}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *StyleTable
)

// Default returns the shared table built from DefaultEntries. It is
// constructed once per process and handed to every button explicitly rather
// than read as ambient state.
func Default() *StyleTable {
	defaultOnce.Do(func() {
		table, err := NewStyleTable(DefaultEntries())
		if err != nil {
			// The built-in entries are a compile-time artifact; failing to
			// cover the table is a bug, not a runtime condition.
			panic(err)
		}
		defaultTable = table
	})
	return defaultTable
}

// ColorFor resolves the color for one combination. Identical inputs always
// yield identical outputs. Inputs must be defined enum members; the button
// layer rejects anything else before it can reach the table.
func (t *StyleTable) ColorFor(scheme ColorScheme, state State, role ColorRole) RGBA {
	c, ok := t.colors[Combo{Scheme: scheme, State: state, Role: role}]
	if !ok {
		panic(fmt.Sprintf("appearance: no color for %s", Combo{scheme, state, role}))
	}
	return c
}

// LayoutFor resolves the geometry and text metrics for a style. Total over
// the three defined styles.
func (t *StyleTable) LayoutFor(style Style) LayoutSpec {
	return layoutFor(style)
}

// ConfigurationError reports an incomplete or contradictory color table. It
// only ever surfaces at construction time; a table that exists resolves every
// combination.
type ConfigurationError struct {
	Missing   []Combo
	Duplicate []Combo
}

func (e *ConfigurationError) Error() string {
	switch {
	case len(e.Missing) > 0 && len(e.Duplicate) > 0:
		return fmt.Sprintf("style table: %d missing and %d duplicated combinations (first missing %s)",
			len(e.Missing), len(e.Duplicate), e.Missing[0])
	case len(e.Missing) > 0:
		return fmt.Sprintf("style table: %d missing combinations (first %s)", len(e.Missing), e.Missing[0])
	case len(e.Duplicate) > 0:
		return fmt.Sprintf("style table: %d duplicated combinations (first %s)", len(e.Duplicate), e.Duplicate[0])
	default:
		return "style table: invalid"
	}
}
