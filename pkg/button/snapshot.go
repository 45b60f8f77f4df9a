package button

import (
	"github.com/signet-ui/signet/pkg/appearance"
)

// Archival keys under which the persisted configuration fields are stored.
// The interaction state has no key on purpose: it is never persisted, so a
// restored button always starts in the normal state (or disabled, when the
// host re-applies its own disabled flag).
const (
	StyleKey       = "style"
	ColorSchemeKey = "color_scheme"
)

// Snapshot is the persistable slice of a button's configuration, with both
// fields in their parseable string forms.
type Snapshot struct {
	Style       string
	ColorScheme string
}

// Snapshot captures the current style and color scheme.
func (b *Button) Snapshot() Snapshot {
	return Snapshot{
		Style:       b.style.String(),
		ColorScheme: b.scheme.String(),
	}
}

// Restore applies a previously captured snapshot and resolves the appearance
// for it. Unknown values are rejected before anything is applied, so a bad
// snapshot leaves the button untouched. The interaction state is unaffected
// either way.
func (b *Button) Restore(snap Snapshot) error {
	style, err := appearance.ParseStyle(snap.Style)
	if err != nil {
		return err
	}
	scheme, err := appearance.ParseColorScheme(snap.ColorScheme)
	if err != nil {
		return err
	}

	b.style = style
	b.scheme = scheme
	b.rebuild()
	return nil
}
