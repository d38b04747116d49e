package activitylog_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DoroteyaTodorova/Crypto/internal/activitylog"
)

func TestAppendAndLast(t *testing.T) {
	t.Parallel()

	store := activitylog.New(filepath.Join(t.TempDir(), "logs.json"))

	require.NoError(t, store.Append("portfolio uploaded"))
	require.NoError(t, store.Append("sentiment toggled"))

	entries, err := store.Last(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "portfolio uploaded", entries[0].Message)
	require.Equal(t, "sentiment toggled", entries[1].Message)
	require.False(t, entries[0].Timestamp.IsZero())
}

func TestLast_CapsToNewestEntries(t *testing.T) {
	t.Parallel()

	store := activitylog.New(filepath.Join(t.TempDir(), "logs.json"))
	for i := 0; i < 13; i++ {
		require.NoError(t, store.Append(fmt.Sprintf("message %d", i)))
	}

	entries, err := store.Last(10)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	require.Equal(t, "message 3", entries[0].Message)
	require.Equal(t, "message 12", entries[9].Message)
}

func TestLast_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := activitylog.New(filepath.Join(t.TempDir(), "logs.json"))

	entries, err := store.Last(10)
	require.NoError(t, err)
	require.Empty(t, entries)
}
