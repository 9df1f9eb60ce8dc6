package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusjobs/jobboard/internal/core/ports"
)

var (
	_ ports.TokenStore = (*File)(nil)
	_ ports.TokenStore = (*Memory)(nil)
)

func exerciseStore(t *testing.T, s ports.TokenStore) {
	t.Helper()
	ctx := context.Background()

	tok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok, "fresh slot must be empty")

	require.NoError(t, s.Save(ctx, "abc.def.ghi"))
	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, s.Save(ctx, "second"))
	tok, _ = s.Load(ctx)
	assert.Equal(t, "second", tok)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "clearing an empty slot is a no-op")
	tok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStore(t, NewFile(path, "token"))
}

func TestFile_SurvivesNewInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFile(path, "token").Save(context.Background(), "persisted"))

	tok, err := NewFile(path, "token").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFile_KeysAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	a := NewFile(path, "token")
	b := NewFile(path, "staging")
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, "prod-token"))
	require.NoError(t, b.Save(ctx, "staging-token"))
	require.NoError(t, a.Clear(ctx))

	tok, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "staging-token", tok)
}

func TestFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFile(path, "token").Load(context.Background())
	require.Error(t, err)
}
