package draft

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	text, err := s.Load("buyer-1", "conv-1")
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, s.Save("buyer-1", "conv-1", "half a thought "))
	require.NoError(t, s.Save("buyer-1", "conv-2", "other"))

	text, err = s.Load("buyer-1", "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "half a thought ", text, "text is kept as typed")

	text, err = s.Load("seller-1", "conv-1")
	require.NoError(t, err)
	assert.Empty(t, text, "drafts are per viewer")

	require.NoError(t, s.Save("buyer-1", "conv-1", "   "))
	text, err = s.Load("buyer-1", "conv-1")
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, s.Clear("buyer-1", "conv-2"))
	text, err = s.Load("buyer-1", "conv-2")
	require.NoError(t, err)
	assert.Empty(t, text)

	assert.ErrorIs(t, s.Save("", "conv-1", "x"), ErrInvalidKey)
	_, err = s.Load("buyer-1", "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestBoltStore(t *testing.T) {
	s, err := OpenBolt(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("buyer-1", "conv-1", "unsent"))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	text, err := s.Load("buyer-1", "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "unsent", text)
}
