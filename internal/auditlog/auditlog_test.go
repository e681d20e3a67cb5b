package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	err := Append(dir, []Entry{
		{Timestamp: ts, Action: "account.create", Details: "1.01 Caja", RefID: "a1"},
	})
	require.NoError(t, err)

	err = Append(dir, []Entry{
		{Timestamp: ts.Add(time.Minute), Action: "entry.post", Details: "venta de contado", RefID: "e1"},
	})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "account.create", entries[0].Action)
	assert.Equal(t, "a1", entries[0].RefID)
	assert.True(t, ts.Equal(entries[0].Timestamp))
	assert.Equal(t, "entry.post", entries[1].Action)
}

func TestRead_NoFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	ts := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, Append(dir, []Entry{{Timestamp: ts, Action: "a"}}))
	require.NoError(t, Append(dir, []Entry{{Timestamp: ts, Action: "b"}}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "timestamp,action"))
}

func TestUnmarshalEntry_BadRow(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"not-a-time", "a", "d", "r"})
	assert.Error(t, err)
}
