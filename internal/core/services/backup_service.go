package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"sacco-ledger/internal/core/domain"
)

// BackupService snapshots and restores the embedded database file. Backup
// and restore are whole-file operations, not incremental.
type BackupService struct {
	dbPath    string
	backupDir string
}

// NewBackupService creates a new backup service
func NewBackupService(dbPath, backupDir string) *BackupService {
	return &BackupService{dbPath: dbPath, backupDir: backupDir}
}

// Snapshot copies the database file into the backup directory and returns
// the snapshot path. Run it between interactive operations; a write in
// flight during the copy would be torn.
func (s *BackupService) Snapshot() (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	name := fmt.Sprintf("sacco-%s.db", time.Now().Format("20060102-150405"))
	dst := filepath.Join(s.backupDir, name)

	if err := copyFile(s.dbPath, dst); err != nil {
		return "", fmt.Errorf("snapshotting database: %w", err)
	}
	return dst, nil
}

// Restore overwrites the database file wholesale from a snapshot. The
// process must be restarted afterwards so the store handle reopens the
// restored file.
func (s *BackupService) Restore(snapshotName string) error {
	// Reject path traversal; snapshots are addressed by bare file name
	if snapshotName == "" || strings.ContainsAny(snapshotName, "/\\") {
		return domain.NewValidationError("snapshot", "must be a bare snapshot file name")
	}

	src := filepath.Join(s.backupDir, snapshotName)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return err
	}

	if err := copyFile(src, s.dbPath); err != nil {
		return fmt.Errorf("restoring database: %w", err)
	}
	return nil
}

// List returns available snapshot file names, newest first
func (s *BackupService) List() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".db") {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
