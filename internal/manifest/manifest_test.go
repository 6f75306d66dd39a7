package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asanas.json")

	records := []Record{
		{ID: "pose-a", Name: "Pose-A", SourceURL: "https://example.com/uploads/2019/07/pose-a.png", LocalPath: "asanas/images/pose-a.png"},
		{ID: "pose-b", Name: "Pose-B", SourceURL: "https://example.com/uploads/2019/07/pose-b.png", LocalPath: "asanas/images/pose-b.png"},
	}
	require.NoError(t, Write(path, records))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWrite_FormatsTwoSpaceIndentAndKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asanas.json")
	require.NoError(t, Write(path, []Record{{ID: "a", Name: "A", SourceURL: "https://example.com/a.png?x=1&y=2", LocalPath: "a.png"}}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)

	assert.Contains(t, text, "  {\n    \"id\": \"a\",\n    \"name\": \"A\",")
	// URLs stay readable, no HTML escaping of ampersands
	assert.Contains(t, text, "?x=1&y=2")
	idx := strings.Index(text, "\"source_url\"")
	require.Greater(t, idx, strings.Index(text, "\"name\""))
	assert.Greater(t, strings.Index(text, "\"local_path\""), idx)
}

func TestWriteProcessed_AppendsSimilarIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	recs := []ProcessedRecord{{
		Record:     Record{ID: "a", Name: "A", SourceURL: "u", LocalPath: "p"},
		SimilarIDs: []string{"b", "c"},
	}}
	require.NoError(t, WriteProcessed(path, recs))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\"similar_ids\": [\n      \"b\",\n      \"c\"\n    ]")
}

func TestWrite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "asanas.json")
	require.NoError(t, Write(path, nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestProcessedPath(t *testing.T) {
	assert.Equal(t, "asanas_processed.json", ProcessedPath("asanas.json"))
	assert.Equal(t, filepath.Join("out", "asanas_processed.json"), ProcessedPath(filepath.Join("out", "asanas.json")))
	assert.Equal(t, "asanas_processed", ProcessedPath("asanas"))
}
