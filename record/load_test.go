package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_YAMLList(t *testing.T) {
	path := writeFile(t, "people.yaml", `
- "@id": urn:person:alice
  ex:name: Alice
  ex:age: 30
- ex:name: Bob
  ex:tags:
    - a
    - b
`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "urn:person:alice", records[0].NodeID)
	assert.Equal(t, KindNumber, records[0].Get("ex:age")[0].Kind)
	assert.Len(t, records[1].Get("ex:tags"), 2)
}

func TestLoadFile_YAMLSingleMapping(t *testing.T) {
	path := writeFile(t, "one.yml", "ex:name: Alice\n")

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Get("ex:name")[0].Str)
}

func TestLoadFile_YAMLUnquotedDates(t *testing.T) {
	// yaml.v3 decodes unquoted date-like scalars into time.Time; they
	// must come back out in the lexical form date/dateTime checks use.
	path := writeFile(t, "dates.yaml", `
ex:born: 1990-05-17
ex:updated: 2023-01-02T03:04:05Z
`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	born := records[0].Get("ex:born")
	require.Len(t, born, 1)
	assert.Equal(t, KindString, born[0].Kind)
	assert.Equal(t, "1990-05-17", born[0].Str)

	updated := records[0].Get("ex:updated")
	require.Len(t, updated, 1)
	assert.Equal(t, "2023-01-02T03:04:05Z", updated[0].Str)
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "people.json", `[
  {"@id": "urn:person:alice", "ex:name": "Alice", "ex:age": 30, "ex:active": true}
]`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "urn:person:alice", rec.NodeID)
	assert.Equal(t, KindNumber, rec.Get("ex:age")[0].Kind)
	assert.Equal(t, KindBoolean, rec.Get("ex:active")[0].Kind)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "people.txt", "whatever")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported record file extension")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", ":\n  - not: [valid")

	_, err := LoadFile(path)
	require.Error(t, err)
}
