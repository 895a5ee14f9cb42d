// Package store persists the three input groups as independent JSON snapshots.
// A missing snapshot means the built-in defaults apply.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/wlbtid/calculator/internal/config"
	"github.com/wlbtid/calculator/internal/domain"
)

// ErrUnknownGroup is returned for a group name outside Groups.
var ErrUnknownGroup = errors.New("unknown input group")

const (
	filePerm fs.FileMode = 0600
	dirPerm  fs.FileMode = 0700
	keyPrefix            = "wl-btid-"
)

// Group names one independently stored input snapshot.
type Group string

const (
	GroupProfile   Group = "profile"
	GroupWholeLife Group = "wholelife"
	GroupBTID      Group = "btid"
)

// Groups lists every stored group in a stable order.
var Groups = []Group{GroupProfile, GroupWholeLife, GroupBTID}

// Key is the storage key for the group.
func (g Group) Key() string { return keyPrefix + string(g) }

// ParseGroup accepts a group name or its storage key.
func ParseGroup(s string) (Group, error) {
	for _, g := range Groups {
		if s == string(g) || s == g.Key() {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}

// Store is a directory of JSON snapshots, one file per group.
type Store struct {
	dir    string
	logger *slog.Logger
	mu     sync.RWMutex
}

// New opens (and creates if needed) a snapshot directory.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger.With("component", "store")}, nil
}

// DefaultDir returns the per-user snapshot directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "wlbtid"), nil
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(g Group) string {
	return filepath.Join(s.dir, g.Key()+".json")
}

// Has reports whether a snapshot exists for the group.
func (s *Store) Has(g Group) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := os.Stat(s.path(g))
	return err == nil
}

// Load builds a configuration from the defaults overlaid with every stored snapshot.
// Unreadable or corrupt snapshots are logged and ignored so the defaults apply.
func (s *Store) Load() (*domain.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := config.DefaultConfiguration()
	for _, g := range Groups {
		data, err := os.ReadFile(s.path(g))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot %s: %w", g.Key(), err)
		}
		if err := decodeSection(g, data, cfg); err != nil {
			s.logger.Warn("ignoring corrupt snapshot", "key", g.Key(), "error", err)
			resetSection(g, cfg)
		}
	}
	return config.Sanitize(cfg), nil
}

// Save writes the group's section of cfg.
func (s *Store) Save(g Group, cfg *domain.Configuration) error {
	section, err := Section(g, cfg)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(section, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", g.Key(), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, g.Key()+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", g.Key(), err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", g.Key(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", g.Key(), err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", g.Key(), err)
	}
	if err := os.Rename(tmp.Name(), s.path(g)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", g.Key(), err)
	}
	s.logger.Debug("snapshot saved", "key", g.Key())
	return nil
}

// SaveAll writes every group of cfg.
func (s *Store) SaveAll(cfg *domain.Configuration) error {
	for _, g := range Groups {
		if err := s.Save(g, cfg); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the group's snapshot. Removing a missing snapshot is not an error.
func (s *Store) Remove(g Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(g)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove snapshot %s: %w", g.Key(), err)
	}
	return nil
}

// Reset removes every snapshot so the defaults apply again.
func (s *Store) Reset() error {
	for _, g := range Groups {
		if err := s.Remove(g); err != nil {
			return err
		}
	}
	s.logger.Info("inputs reset to defaults")
	return nil
}

// Section returns the part of cfg stored under g.
func Section(g Group, cfg *domain.Configuration) (any, error) {
	switch g {
	case GroupProfile:
		return cfg.Profile, nil
	case GroupWholeLife:
		return cfg.WholeLife, nil
	case GroupBTID:
		return cfg.BTID, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, string(g))
}

// DecodeSection overlays JSON for group g onto cfg. Fields absent from data keep their
// current values.
func DecodeSection(g Group, data []byte, cfg *domain.Configuration) error {
	return decodeSection(g, data, cfg)
}

func decodeSection(g Group, data []byte, cfg *domain.Configuration) error {
	switch g {
	case GroupProfile:
		p := cfg.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		cfg.Profile = p
	case GroupWholeLife:
		wl := cfg.WholeLife
		if err := json.Unmarshal(data, &wl); err != nil {
			return err
		}
		cfg.WholeLife = wl
	case GroupBTID:
		btid := cfg.BTID
		if err := json.Unmarshal(data, &btid); err != nil {
			return err
		}
		cfg.BTID = btid
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroup, string(g))
	}
	return nil
}

func resetSection(g Group, cfg *domain.Configuration) {
	switch g {
	case GroupProfile:
		cfg.Profile = config.DefaultProfile()
	case GroupWholeLife:
		cfg.WholeLife = config.DefaultWholeLife()
	case GroupBTID:
		cfg.BTID = config.DefaultBTID()
	}
}
