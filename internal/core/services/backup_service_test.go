package services

import (
	"os"
	"path/filepath"
	"testing"

	"sacco-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAndRestore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sacco.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("original contents"), 0o644))

	svc := NewBackupService(dbPath, filepath.Join(dir, "backups"))

	snapshot, err := svc.Snapshot()
	require.NoError(t, err)
	assert.FileExists(t, snapshot)

	// Clobber the live file, then restore the snapshot wholesale
	require.NoError(t, os.WriteFile(dbPath, []byte("corrupted"), 0o644))

	require.NoError(t, svc.Restore(filepath.Base(snapshot)))
	restored, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, "original contents", string(restored))

	names, err := svc.List()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, filepath.Base(snapshot), names[0])
}

func TestRestoreRejectsPaths(t *testing.T) {
	dir := t.TempDir()
	svc := NewBackupService(filepath.Join(dir, "sacco.db"), filepath.Join(dir, "backups"))

	assert.True(t, domain.IsValidation(svc.Restore("../evil.db")))
	assert.True(t, domain.IsValidation(svc.Restore("")))
}

func TestRestoreMissingSnapshot(t *testing.T) {
	dir := t.TempDir()
	svc := NewBackupService(filepath.Join(dir, "sacco.db"), filepath.Join(dir, "backups"))

	assert.ErrorIs(t, svc.Restore("sacco-20240101-000000.db"), domain.ErrNotFound)
}

func TestListNoBackupDir(t *testing.T) {
	svc := NewBackupService("sacco.db", filepath.Join(t.TempDir(), "missing"))

	names, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
