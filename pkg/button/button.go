// Package button implements the sign-in button control: a small state machine
// over the interaction states (normal, disabled, pressed) that keeps a fully
// resolved appearance in sync with every input event. The package owns no
// drawing and no timers; hosts feed it events and read the appearance back.
package button

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/signet-ui/signet/pkg/appearance"
)

// AccessibilityIdentifier is the fixed identifier hosts attach to the control
// for assistive tooling and UI tests.
const AccessibilityIdentifier = "SignInButton"

// Options configures a new Button. The zero value is a standard-style, light
// scheme, enabled button resolving against the shared default table.
type Options struct {
	// Style selects the layout variant.
	Style appearance.Style
	// ColorScheme selects the dark or light color table half.
	ColorScheme appearance.ColorScheme
	// Provider is the display name used by the wide style's label. Empty
	// falls back to the generic label.
	Provider string
	// Disabled constructs the button already disabled.
	Disabled bool
	// Table overrides the shared default style table.
	Table *appearance.StyleTable
	// Logger receives one debug event per state transition. Nil disables
	// transition logging.
	Logger *zerolog.Logger
}

// Button owns the interaction state and the chosen style/scheme, and exposes
// the resolved appearance for the current combination. A Button is not safe
// for concurrent use; hosts deliver events from a single goroutine.
type Button struct {
	table    *appearance.StyleTable
	style    appearance.Style
	scheme   appearance.ColorScheme
	state    appearance.State
	provider string
	log      zerolog.Logger
	current  appearance.Appearance
}

// New validates opts and returns a Button with its appearance resolved.
func New(opts Options) (*Button, error) {
	if !opts.Style.Valid() {
		return nil, fmt.Errorf("invalid button style %s", opts.Style)
	}
	if !opts.ColorScheme.Valid() {
		return nil, fmt.Errorf("invalid color scheme %s", opts.ColorScheme)
	}

	table := opts.Table
	if table == nil {
		table = appearance.Default()
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	state := appearance.StateNormal
	if opts.Disabled {
		state = appearance.StateDisabled
	}

	b := &Button{
		table:    table,
		style:    opts.Style,
		scheme:   opts.ColorScheme,
		state:    state,
		provider: opts.Provider,
		log:      log,
	}
	b.rebuild()
	return b, nil
}

// SetEnabled enables or disables the button. Disabling abandons any in-flight
// press; re-enabling always lands in the normal state. Redundant calls are
// no-ops.
func (b *Button) SetEnabled(enabled bool) {
	if enabled == b.Enabled() {
		return
	}
	if enabled {
		b.transition("enable", appearance.StateNormal)
		return
	}
	b.transition("disable", appearance.StateDisabled)
}

// TouchDown begins a press. It is a no-op while disabled or while a press is
// already in flight.
func (b *Button) TouchDown() {
	if b.state != appearance.StateNormal {
		return
	}
	b.transition("touch_down", appearance.StatePressed)
}

// TouchUp completes a press. Outside the pressed state it is a no-op, so
// duplicate or out-of-order release events are harmless.
func (b *Button) TouchUp() {
	b.endPress("touch_up")
}

// TouchCancel abandons a press without completing it. It shares TouchUp's
// transition; the distinction matters only to the host.
func (b *Button) TouchCancel() {
	b.endPress("touch_cancel")
}

func (b *Button) endPress(event string) {
	if b.state != appearance.StatePressed {
		return
	}
	b.transition(event, appearance.StateNormal)
}

// SetStyle records a new layout style and resolves the appearance for it.
// Invalid values are rejected and leave the button untouched. The interaction
// state never changes.
func (b *Button) SetStyle(s appearance.Style) error {
	if !s.Valid() {
		return fmt.Errorf("invalid button style %s", s)
	}
	b.style = s
	b.rebuild()
	return nil
}

// SetColorScheme records a new color scheme and resolves the appearance for
// it. Invalid values are rejected and leave the button untouched. The
// interaction state never changes.
func (b *Button) SetColorScheme(c appearance.ColorScheme) error {
	if !c.Valid() {
		return fmt.Errorf("invalid color scheme %s", c)
	}
	b.scheme = c
	b.rebuild()
	return nil
}

// Appearance returns the latest resolved appearance. It is a pure read; the
// bundle is rebuilt by the event handlers, never here.
func (b *Button) Appearance() appearance.Appearance {
	return b.current
}

// State returns the current interaction state.
func (b *Button) State() appearance.State {
	return b.state
}

// Style returns the configured layout style.
func (b *Button) Style() appearance.Style {
	return b.style
}

// ColorScheme returns the configured color scheme.
func (b *Button) ColorScheme() appearance.ColorScheme {
	return b.scheme
}

// Provider returns the provider name used by the wide label.
func (b *Button) Provider() string {
	return b.provider
}

// Enabled reports whether the button accepts presses.
func (b *Button) Enabled() bool {
	return b.state != appearance.StateDisabled
}

func (b *Button) transition(event string, next appearance.State) {
	prev := b.state
	b.state = next
	b.rebuild()
	b.log.Debug().
		Str("event", event).
		Stringer("from", prev).
		Stringer("to", next).
		Msg("button state changed")
}

// rebuild resolves a fresh appearance for the current (style, scheme, state)
// triple. Every field is recomputed so no stale value can survive an event.
func (b *Button) rebuild() {
	iconAlpha := 1.0
	if b.state == appearance.StateDisabled {
		iconAlpha = appearance.DisabledIconAlpha
	}

	b.current = appearance.Appearance{
		Background:  b.table.ColorFor(b.scheme, b.state, appearance.RoleBackground),
		Foreground:  b.table.ColorFor(b.scheme, b.state, appearance.RoleForeground),
		BorderWidth: appearance.BorderWidth,
		HaloShadow:  appearance.HaloShadow,
		DropShadow:  appearance.DropShadow,
		IconAlpha:   iconAlpha,
		Label:       appearance.LabelFor(b.style, b.provider),
		Layout:      b.table.LayoutFor(b.style),
	}
}
