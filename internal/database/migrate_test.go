package database

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrationStore struct {
	applied  []int
	ran      []int
	reverted []int
	failWith error
}

func (s *fakeMigrationStore) Applied(_ context.Context) ([]int, error) {
	return s.applied, nil
}

func (s *fakeMigrationStore) Apply(_ context.Context, m Migration) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.ran = append(s.ran, m.Version)
	s.applied = append(s.applied, m.Version)
	return nil
}

func (s *fakeMigrationStore) Revert(_ context.Context, m Migration) error {
	s.reverted = append(s.reverted, m.Version)
	return nil
}

func TestEmbeddedMigrationsRegistered(t *testing.T) {
	all := GetMigrations()
	require.NotEmpty(t, all)
	assert.Equal(t, 1, all[0].Version)
	assert.Equal(t, "init_schema", all[0].Name)
	assert.Contains(t, all[0].UpScript, "CREATE TABLE IF NOT EXISTS favorites")
	assert.Contains(t, all[0].UpScript, "chk_favorites_target")
	assert.Contains(t, all[0].DownScript, "DROP TABLE IF EXISTS users")
	assert.Equal(t, "000001_init_schema", all[0].String())

	m := GetMigrationByVersion(1)
	require.NotNil(t, m)
	assert.Nil(t, GetMigrationByVersion(999))
}

func TestLoadMigrationsSortsAndPairs(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/000002_second.up.sql":   {Data: []byte("UP 2")},
		"migrations/000002_second.down.sql": {Data: []byte("DOWN 2")},
		"migrations/000001_first.up.sql":    {Data: []byte("UP 1")},
		"migrations/000001_first.down.sql":  {Data: []byte("DOWN 1")},
		"migrations/README.md":              {Data: []byte("ignored")},
	}

	loaded, err := LoadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].Version)
	assert.Equal(t, "first", loaded[0].Name)
	assert.Equal(t, "DOWN 2", loaded[1].DownScript)
}

func TestLoadMigrationsRequiresDownScript(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/000001_first.up.sql": {Data: []byte("UP 1")},
	}
	_, err := LoadMigrations(fsys)
	assert.ErrorContains(t, err, "down migration")
}

func TestLoadMigrationsRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/000001_a.up.sql":   {Data: []byte("")},
		"migrations/000001_a.down.sql": {Data: []byte("")},
		"migrations/000001_b.up.sql":   {Data: []byte("")},
		"migrations/000001_b.down.sql": {Data: []byte("")},
	}
	_, err := LoadMigrations(fsys)
	assert.ErrorContains(t, err, "duplicate migration version")
}

func TestRunPendingSkipsApplied(t *testing.T) {
	store := &fakeMigrationStore{applied: []int{1}}
	registered := []Migration{{Version: 1, Name: "a"}, {Version: 2, Name: "b"}, {Version: 3, Name: "c"}}

	require.NoError(t, runPending(context.Background(), store, registered))
	assert.Equal(t, []int{2, 3}, store.ran)
}

func TestRunPendingRejectsUnknownAppliedVersions(t *testing.T) {
	store := &fakeMigrationStore{applied: []int{1, 42}}
	err := runPending(context.Background(), store, []Migration{{Version: 1, Name: "a"}})
	assert.ErrorContains(t, err, "000042")
	assert.Empty(t, store.ran)
}

func TestRunPendingStopsOnFailure(t *testing.T) {
	store := &fakeMigrationStore{failWith: errors.New("syntax error")}
	err := runPending(context.Background(), store, []Migration{{Version: 1, Name: "a"}})
	assert.ErrorContains(t, err, "syntax error")
}

func TestRollback(t *testing.T) {
	registered := []Migration{{Version: 1, Name: "a"}, {Version: 2, Name: "b"}}
	store := &fakeMigrationStore{applied: []int{1}}
	ctx := context.Background()

	assert.ErrorContains(t, rollback(ctx, store, registered, 9), "not found")
	assert.ErrorContains(t, rollback(ctx, store, registered, 2), "has not been applied")
	require.NoError(t, rollback(ctx, store, registered, 1))
	assert.Equal(t, []int{1}, store.reverted)
}

func TestIsMissingTableError(t *testing.T) {
	assert.True(t, isMissingTableError(errors.New(`ERROR: relation "migration_logs" does not exist`)))
	assert.True(t, isMissingTableError(errors.New("no such table: migration_logs")))
	assert.False(t, isMissingTableError(errors.New("connection refused")))
}
