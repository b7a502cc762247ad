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

func TestLocalSourceFSAdapter_Discover(t *testing.T) {
	root := t.TempDir()

	for _, rel := range []string{
		"a.cpp",
		"b.hpp",
		"notes.txt",
		"Tests/upper.cpp",
		"lib/tests/nested.h",
		"third_party/zlib/z.cc",
		"src/x.cc",
		"src/gen/y.cpp",
		"src/gen/keep.h",
	} {
		writeTestFile(t, filepath.Join(root, rel), "int x;\n")
	}

	adapter := NewLocalSourceFSAdapter()

	t.Run("default extensions and excluded directories", func(t *testing.T) {
		files, err := adapter.Discover(m.Path(root), DiscoverOptions{ExcludeDirs: DefaultExcludeDirs})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"a.cpp",
			"b.hpp",
			"src/gen/keep.h",
			"src/gen/y.cpp",
			"src/x.cc",
			"third_party/zlib/z.cc",
		}, relPaths(files))

		assert.Equal(t, m.Path(filepath.Join(root, "a.cpp")), files[0].Path)
	})

	t.Run("ignore globs prune directories and files", func(t *testing.T) {
		files, err := adapter.Discover(m.Path(root), DiscoverOptions{
			ExcludeDirs: DefaultExcludeDirs,
			Ignore:      []string{"third_party/**", "**/gen/*.cpp"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.cpp", "b.hpp", "src/gen/keep.h", "src/x.cc"}, relPaths(files))
	})

	t.Run("custom extensions", func(t *testing.T) {
		files, err := adapter.Discover(m.Path(root), DiscoverOptions{Extensions: []string{".txt"}})
		require.NoError(t, err)

		assert.Equal(t, []string{"notes.txt"}, relPaths(files))
	})

	t.Run("default exclusions", func(t *testing.T) {
		files, err := adapter.Discover(m.Path(root), DiscoverOptions{})
		require.NoError(t, err)

		assert.NotContains(t, relPaths(files), "Tests/upper.cpp")
		assert.NotContains(t, relPaths(files), "lib/tests/nested.h")
	})

	t.Run("configured exclusions replace defaults", func(t *testing.T) {
		files, err := adapter.Discover(m.Path(root), DiscoverOptions{ExcludeDirs: []string{"vendor"}})
		require.NoError(t, err)

		assert.Contains(t, relPaths(files), "Tests/upper.cpp")
		assert.Contains(t, relPaths(files), "lib/tests/nested.h")
	})

	t.Run("invalid ignore pattern", func(t *testing.T) {
		_, err := adapter.Discover(m.Path(root), DiscoverOptions{Ignore: []string{"src/[gen"}})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestLocalSourceFSAdapter_DiscoverInMemory(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/repo/src/Common/ErrorCodes.cpp", []byte("M(1, A)\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/repo/src/Common/tests/gtest.cpp", []byte(""), 0o644))
	require.NoError(t, util.WriteFile(fs, "/repo/README.md", []byte(""), 0o644))

	adapter := NewSourceFSAdapter(fs)

	files, err := adapter.Discover("/repo", DiscoverOptions{ExcludeDirs: DefaultExcludeDirs})
	require.NoError(t, err)

	assert.Equal(t, []m.SourceFile{{
		Path:    "/repo/src/Common/ErrorCodes.cpp",
		RelPath: "src/Common/ErrorCodes.cpp",
	}}, files)

	assert.Equal(t, m.Path("/repo/src/Common/ErrorCodes.cpp"), adapter.JoinPath("/repo", "src/Common/ErrorCodes.cpp"))
}

func TestLocalSourceFSAdapter_DiscoverDefaultExcludeDirs(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/r/src/a.cpp", []byte("int a;\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/r/Tests/b.cpp", []byte("int b;\n"), 0o644))

	files, err := NewSourceFSAdapter(fs).Discover("/r", DiscoverOptions{})
	require.NoError(t, err)

	assert.Equal(t, []m.SourceFile{{
		Path:    "/r/src/a.cpp",
		RelPath: "src/a.cpp",
	}}, files)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	info, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = adapter.FileInfo(m.Path(filepath.Join(root, "missing")))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLocalSourceFSAdapter_ReadText(t *testing.T) {
	root := t.TempDir()
	adapter := NewLocalSourceFSAdapter()

	utf8Path := filepath.Join(root, "utf8.cpp")
	writeTestFile(t, utf8Path, "// café\nthrow Exception(ErrorCodes::A, \"naïve\");\n")

	latin1Path := filepath.Join(root, "latin1.cpp")
	writeTestBytes(t, latin1Path, []byte{'c', 'a', 'f', 0xe9})

	t.Run("utf-8 by default", func(t *testing.T) {
		text, err := adapter.ReadText(m.Path(utf8Path), "")
		require.NoError(t, err)
		assert.Contains(t, text, "naïve")
	})

	t.Run("invalid utf-8 is rejected", func(t *testing.T) {
		_, err := adapter.ReadText(m.Path(latin1Path), "utf-8")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		assert.Contains(t, err.Error(), "as utf-8")
	})

	t.Run("configured encoding", func(t *testing.T) {
		text, err := adapter.ReadText(m.Path(latin1Path), "ISO-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "café", text)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := adapter.ReadText(m.Path(utf8Path), "klingon")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ReadText(m.Path(filepath.Join(root, "gone.cpp")), "")
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func relPaths(files []m.SourceFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, string(f.RelPath))
	}

	return out
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}

	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
