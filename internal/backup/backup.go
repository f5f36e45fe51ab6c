// Package backup manages JSON snapshots of the whole store: timestamped
// export files with rotation, and the restore path that replaces the store
// contents from a snapshot document.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wellandco/wishwell/internal/constants"
	"github.com/wellandco/wishwell/internal/models"
	"github.com/wellandco/wishwell/internal/storage"
	"github.com/wellandco/wishwell/internal/validation"
)

// SnapshotInfo describes one snapshot file on disk.
type SnapshotInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot operations for one store.
type Manager struct {
	store       storage.Provider
	snapshotDir string
}

func NewManager(store storage.Provider) *Manager {
	configDir := filepath.Dir(store.GetConfigPath())
	return &Manager{
		store:       store,
		snapshotDir: filepath.Join(configDir, constants.SnapshotDirName),
	}
}

// GetSnapshotDir returns the snapshot directory path.
func (m *Manager) GetSnapshotDir() string {
	return m.snapshotDir
}

func (m *Manager) ensureSnapshotDir() error {
	return os.MkdirAll(m.snapshotDir, 0700)
}

// CreateSnapshot exports the store into a new timestamped snapshot file and
// rotates old snapshots beyond the retention limit.
func (m *Manager) CreateSnapshot() (string, error) {
	return m.createSnapshot(false)
}

func (m *Manager) createSnapshot(skipRotation bool) (string, error) {
	if err := m.ensureSnapshotDir(); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	snap, err := m.store.ExportData()
	if err != nil {
		return "", fmt.Errorf("failed to export data: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Minute precision first; fall back to second precision on collision.
	name := snapshotFileName(snap.ExportedAt.Format("20060102-1504"))
	path := filepath.Join(m.snapshotDir, name)
	if _, err := os.Stat(path); err == nil {
		name = snapshotFileName(snap.ExportedAt.Format("20060102-150405"))
		path = filepath.Join(m.snapshotDir, name)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if !skipRotation {
		if err := m.rotateSnapshots(); err != nil {
			return path, fmt.Errorf("snapshot created but rotation failed: %w", err)
		}
	}

	return path, nil
}

func snapshotFileName(stamp string) string {
	return constants.SnapshotFilePrefix + stamp + constants.SnapshotFileSuffix
}

// ListSnapshots returns snapshots on disk, newest first.
func (m *Manager) ListSnapshots() ([]SnapshotInfo, error) {
	entries, err := os.ReadDir(m.snapshotDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snapshots []SnapshotInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.SnapshotFilePrefix) || !strings.HasSuffix(name, constants.SnapshotFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.SnapshotFilePrefix), constants.SnapshotFileSuffix)
		ts, err := time.ParseInLocation("20060102-1504", stamp, time.Local)
		if err != nil {
			ts, err = time.ParseInLocation("20060102-150405", stamp, time.Local)
			if err != nil {
				continue
			}
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat snapshot %s: %w", name, err)
		}

		snapshots = append(snapshots, SnapshotInfo{
			Path:      filepath.Join(m.snapshotDir, name),
			Timestamp: ts,
			Size:      info.Size(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})

	return snapshots, nil
}

func (m *Manager) rotateSnapshots() error {
	snapshots, err := m.ListSnapshots()
	if err != nil {
		return err
	}

	for i := constants.MaxSnapshots; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}

	return nil
}

// ReadSnapshot loads and validates a snapshot document without touching the
// store. Callers use it to inspect a file before a destructive restore.
func (m *Manager) ReadSnapshot(path string) (models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	if err := validation.ValidateSnapshot(snap); err != nil {
		return models.Snapshot{}, err
	}

	return snap, nil
}

// RestoreSnapshot replaces the store contents with the given snapshot file.
// The document is validated before anything is cleared, and a safety
// snapshot of the current state is written first.
func (m *Manager) RestoreSnapshot(path string) error {
	snap, err := m.ReadSnapshot(path)
	if err != nil {
		return err
	}

	if _, err := m.createSnapshot(true); err != nil {
		return fmt.Errorf("failed to create pre-restore snapshot: %w", err)
	}

	return m.store.ImportData(snap)
}
