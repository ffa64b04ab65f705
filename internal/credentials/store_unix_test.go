//go:build unix

package credentials

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_FilePermissions(t *testing.T) {
	t.Run("new file is world readable", func(t *testing.T) {
		s := newTestStore(t)

		res, err := s.Register("alice", "pw1")
		require.NoError(t, err)
		require.Equal(t, RegisterSuccess, res)

		info, err := os.Stat(s.Path())
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("existing mode is kept", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte(`{"users": {}}`), 0o600))
		require.NoError(t, os.Chmod(s.Path(), 0o640))

		_, err := s.Register("bob", "pw2")
		require.NoError(t, err)

		info, err := os.Stat(s.Path())
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
	})
}
