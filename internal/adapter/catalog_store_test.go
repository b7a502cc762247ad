package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/excat/internal/model"
)

func sampleCatalog() m.Catalog {
	return m.Catalog{Errors: []m.ExceptionSite{
		{
			FilePath:        "src/Client/Connection.cpp",
			ErrorCodeNumber: 106,
			ErrorCodeName:   "NO_ELEMENTS_IN_CONFIG",
			ClassName:       "Exception",
			MessageTemplate: "No such connection '{}' <é>",
			Variables:       []string{"connection"},
			Severity:        m.SeverityError,
			OriginalText:    `throw Exception(ErrorCodes::NO_ELEMENTS_IN_CONFIG, "No such connection '{}' <é>", connection)`,
		},
		{
			FilePath:        "src/a.cpp",
			ErrorCodeNumber: 0,
			ErrorCodeName:   "UNKNOWN",
			ClassName:       "Exception",
			MessageTemplate: "x",
			Severity:        m.SeverityError,
			OriginalText:    `throw Exception(ErrorCodes::UNKNOWN, "x")`,
		},
	}}
}

func TestCatalogStore_SaveCatalog_Format(t *testing.T) {
	fs := memfs.New()
	store := NewCatalogStoreFS(fs)

	require.NoError(t, store.SaveCatalog("/data/errors_clickhouse.json", sampleCatalog()))

	data, err := util.ReadFile(fs, "/data/errors_clickhouse.json")
	require.NoError(t, err)

	want := `{
    "errors": [
        {
            "file_path": "src/Client/Connection.cpp",
            "error_code": 106,
            "error_code_name": "NO_ELEMENTS_IN_CONFIG",
            "error_class_name": "Exception",
            "error_message_template": "No such connection '{}' <é>",
            "error_message_variables": [
                "connection"
            ],
            "severity_level": "ERROR",
            "original_text": "throw Exception(ErrorCodes::NO_ELEMENTS_IN_CONFIG, \"No such connection '{}' <é>\", connection)"
        },
        {
            "file_path": "src/a.cpp",
            "error_code": 0,
            "error_code_name": "UNKNOWN",
            "error_class_name": "Exception",
            "error_message_template": "x",
            "error_message_variables": [],
            "severity_level": "ERROR",
            "original_text": "throw Exception(ErrorCodes::UNKNOWN, \"x\")"
        }
    ]
}
`
	assert.Equal(t, want, string(data))
}

func TestCatalogStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "nested", "out", "catalog.json"))

	store := NewCatalogStore()
	require.NoError(t, store.SaveCatalog(path, sampleCatalog()))

	loaded, err := store.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, m.NewCatalog(sampleCatalog().Errors), loaded)

	t.Run("overwrites existing file", func(t *testing.T) {
		require.NoError(t, store.SaveCatalog(path, m.NewCatalog(sampleCatalog().Errors[:1])))

		loaded, err := store.LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Len())
	})
}

func TestCatalogStore_LoadCatalog_Errors(t *testing.T) {
	dir := t.TempDir()
	store := NewCatalogStore()

	_, err := store.LoadCatalog(m.Path(filepath.Join(dir, "missing.json")))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"errors": [`), 0o644))

	_, err = store.LoadCatalog(m.Path(broken))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
