// Package adapter contains filesystem and persistence adapters for the excat CLI.
package adapter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/gobwas/glob"
	"github.com/jmgilman/go/errors"

	m "github.com/mouse-blink/excat/internal/model"
)

// DefaultExtensions are the source file suffixes scanned when none are configured.
var DefaultExtensions = []string{".cpp", ".hpp", ".h", ".cxx", ".cc"}

// DefaultExcludeDirs are directory names pruned from discovery when none are configured.
var DefaultExcludeDirs = []string{"tests"}

// DiscoverOptions selects which files under a root are scanned.
type DiscoverOptions struct {
	// Extensions are file name suffixes to keep, e.g. ".cpp".
	Extensions []string
	// ExcludeDirs are directory names pruned anywhere in the tree (case-insensitive).
	ExcludeDirs []string
	// Ignore are glob patterns matched against slash-separated relative paths.
	Ignore []string
}

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when scanning a tree, so workflow logic can run against an in-memory
// filesystem in tests.
type SourceFSAdapter interface {
	// FileInfo returns metadata for path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Discover walks root and returns the matching files in walk order.
	Discover(root m.Path, opts DiscoverOptions) ([]m.SourceFile, error)

	// ReadText loads a file and decodes it under the named encoding.
	ReadText(path m.Path, encoding string) (string, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of a go-billy
// filesystem.
type LocalSourceFSAdapter struct {
	fs       billy.Filesystem
	absolute bool
}

// NewLocalSourceFSAdapter returns an adapter over the host filesystem.
// Relative paths are resolved against the working directory.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: osfs.New("/"), absolute: true}
}

// NewSourceFSAdapter returns an adapter over fs, using paths as given.
func NewSourceFSAdapter(fs billy.Filesystem) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// FileInfo returns metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	resolved, err := a.resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := a.fs.Stat(resolved)
	if err != nil {
		return nil, wrapFSError(err, "stat %s", path)
	}

	return info, nil
}

// Discover collects source files under root.
func (a *LocalSourceFSAdapter) Discover(root m.Path, opts DiscoverOptions) ([]m.SourceFile, error) {
	rootStr, err := a.resolve(root)
	if err != nil {
		return nil, err
	}

	ignore, err := compileGlobs(opts.Ignore)
	if err != nil {
		return nil, err
	}

	excludeDirs := opts.ExcludeDirs
	if len(excludeDirs) == 0 {
		excludeDirs = DefaultExcludeDirs
	}
	excluded := make(map[string]struct{}, len(excludeDirs))
	for _, dir := range excludeDirs {
		excluded[strings.ToLower(dir)] = struct{}{}
	}

	files := []m.SourceFile{}

	err = util.Walk(a.fs, rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped rather than failing the walk.
			if info != nil && info.IsDir() && path != rootStr {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(rootStr, path)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == rootStr {
				return nil
			}

			if _, skip := excluded[strings.ToLower(info.Name())]; skip {
				return filepath.SkipDir
			}

			if ignore.matchDir(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !hasExtension(info.Name(), opts.Extensions) || ignore.match(rel) {
			return nil
		}

		files = append(files, m.SourceFile{Path: m.Path(path), RelPath: m.Path(rel)})

		return nil
	})
	if err != nil {
		return nil, wrapFSError(err, "walk %s", root)
	}

	return files, nil
}

// ReadText loads file contents and decodes them.
func (a *LocalSourceFSAdapter) ReadText(path m.Path, encoding string) (string, error) {
	resolved, err := a.resolve(path)
	if err != nil {
		return "", err
	}

	data, err := util.ReadFile(a.fs, resolved)
	if err != nil {
		return "", wrapFSError(err, "read %s", path)
	}

	text, err := decodeText(data, encoding)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidInput, "decode %s as %s", path, encodingName(encoding))
	}

	return text, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(a.fs.Join(elem...))
}

func (a *LocalSourceFSAdapter) resolve(path m.Path) (string, error) {
	p := string(path)
	if p == "" {
		p = "."
	}

	if !a.absolute {
		return filepath.Clean(p), nil
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidInput, "resolve %s", path)
	}

	return abs, nil
}

func hasExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

func encodingName(name string) string {
	if name == "" {
		return DefaultEncoding
	}

	return name
}

func wrapFSError(err error, format string, args ...interface{}) error {
	code := errors.CodeInternal
	if os.IsNotExist(err) {
		code = errors.CodeNotFound
	} else if os.IsPermission(err) {
		code = errors.CodeForbidden
	}

	return errors.Wrapf(err, code, format, args...)
}

// globSet holds compiled ignore patterns.
type globSet []compiledPattern

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

func compileGlobs(patterns []string) (globSet, error) {
	set := make(globSet, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid ignore pattern %q", pattern)
		}

		set = append(set, compiledPattern{pattern: pattern, glob: g})
	}

	return set, nil
}

func (s globSet) match(rel string) bool {
	for _, cp := range s {
		if cp.glob.Match(rel) {
			return true
		}
	}

	return false
}

// matchDir reports whether a directory is covered by a "dir/**" style pattern.
func (s globSet) matchDir(rel string) bool {
	return s.match(rel) || s.match(rel+"/**")
}
