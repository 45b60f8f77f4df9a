// Package restore persists the button configuration between runs. Only the
// style and color scheme are stored, one property per archival key; the
// interaction state is deliberately never written.
package restore

import (
	"github.com/quasilyte/gdata/v2"

	"github.com/signet-ui/signet/pkg/button"
	signeterrors "github.com/signet-ui/signet/pkg/errors"
)

const (
	appName      = "signet"
	buttonObject = "button"
)

// Store keeps button snapshots in the platform's per-user data directory.
// A Store with a nil manager degrades to a no-op, so hosts still run on
// platforms without a usable data directory.
type Store struct {
	manager *gdata.Manager
}

// Open initializes the application's data directory and returns a Store
// backed by it.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, signeterrors.NewRestoreError("", err)
	}
	return &Store{manager: m}, nil
}

// NewStore wraps an existing data manager. Nil is allowed and yields a store
// that keeps nothing.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Save writes the snapshot, one property per archival key.
func (s *Store) Save(snap button.Snapshot) error {
	if s == nil || s.manager == nil {
		return nil
	}

	if err := s.manager.SaveObjectProp(buttonObject, button.StyleKey, []byte(snap.Style)); err != nil {
		return signeterrors.NewRestoreError(button.StyleKey, err)
	}
	if err := s.manager.SaveObjectProp(buttonObject, button.ColorSchemeKey, []byte(snap.ColorScheme)); err != nil {
		return signeterrors.NewRestoreError(button.ColorSchemeKey, err)
	}
	return nil
}

// Load reads the previously saved snapshot. The boolean reports whether one
// was found; a degraded or never-written store is not an error.
func (s *Store) Load() (button.Snapshot, bool, error) {
	var snap button.Snapshot
	if s == nil || s.manager == nil {
		return snap, false, nil
	}

	if !s.manager.ObjectPropExists(buttonObject, button.StyleKey) ||
		!s.manager.ObjectPropExists(buttonObject, button.ColorSchemeKey) {
		return snap, false, nil
	}

	style, err := s.manager.LoadObjectProp(buttonObject, button.StyleKey)
	if err != nil {
		return snap, false, signeterrors.NewRestoreError(button.StyleKey, err)
	}
	scheme, err := s.manager.LoadObjectProp(buttonObject, button.ColorSchemeKey)
	if err != nil {
		return snap, false, signeterrors.NewRestoreError(button.ColorSchemeKey, err)
	}

	snap.Style = string(style)
	snap.ColorScheme = string(scheme)
	return snap, true, nil
}
