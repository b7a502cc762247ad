// Package domain contains the exception mining engine and the scan workflow.
package domain

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/jmgilman/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/excat/internal/adapter"
	"github.com/mouse-blink/excat/internal/controller"
	m "github.com/mouse-blink/excat/internal/model"
)

// SampleSize is the number of registry entries echoed at debug level after
// the registry is built.
const SampleSize = 30

// RegistryArgs locates the code definitions for a tree.
type RegistryArgs struct {
	Root m.Path
	// Definitions is the definitions file; relative paths are resolved
	// against Root.
	Definitions m.Path
	Overrides   []m.ErrorCodeEntry
	Encoding    string
}

// ScanArgs configures a full scan.
type ScanArgs struct {
	RegistryArgs
	Output   m.Path
	Keywords []string
	Discover adapter.DiscoverOptions
	Threads  int
}

// CodesArgs configures a registry listing.
type CodesArgs struct {
	RegistryArgs
	Limit int
}

// ViewArgs configures browsing a saved catalog.
type ViewArgs struct {
	Catalog m.Path
}

// Workflow defines the user-facing operations.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) (m.Catalog, error)
	Codes(args CodesArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.CatalogStore
	ui        controller.UI
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.CatalogStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		logger:    logger,
	}
}

// Scan builds the registry, extracts sites from every discovered file and
// saves the catalog. Only a missing scan root or a failed catalog write is
// fatal; unreadable inputs are logged and contribute nothing.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.Catalog, error) {
	if err := w.checkRoot(args.Root); err != nil {
		return m.Catalog{}, err
	}

	registry := w.buildRegistry(args.RegistryArgs)
	w.logSample(registry)

	files, err := w.fsAdapter.Discover(args.Root, args.Discover)
	if err != nil {
		return m.Catalog{}, err
	}

	w.ui.DisplayScanStart(args.Root, len(files))

	extractor := NewExtractor(registry, args.Keywords, w.logger)

	sites, err := w.extractAll(ctx, extractor, files, args.Encoding, args.Threads)
	if err != nil {
		return m.Catalog{}, err
	}

	catalog := m.NewCatalog(sites)

	w.logger.Info("scan complete", "files", len(files), "sites", catalog.Len(), "unresolved", catalog.Unresolved())

	if catalog.Len() == 0 {
		w.logger.Info("no exception sites found")
	} else {
		if err := w.store.SaveCatalog(args.Output, catalog); err != nil {
			return m.Catalog{}, err
		}

		w.logger.Info("catalog saved", "path", args.Output)
	}

	if err := w.ui.DisplayCatalog(catalog, args.Output); err != nil {
		return m.Catalog{}, err
	}

	return catalog, nil
}

// Codes builds the registry as Scan would and lists it.
func (w *workflow) Codes(args CodesArgs) error {
	if err := w.checkRoot(args.Root); err != nil {
		return err
	}

	registry := w.buildRegistry(args.RegistryArgs)

	return w.ui.DisplayCodes(registry.Entries(), args.Limit)
}

// View loads a saved catalog and opens it in the UI.
func (w *workflow) View(args ViewArgs) error {
	catalog, err := w.store.LoadCatalog(args.Catalog)
	if err != nil {
		return err
	}

	return w.ui.DisplayCatalogBrowser(catalog)
}

func (w *workflow) checkRoot(root m.Path) error {
	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return errors.Wrapf(err, errors.CodeNotFound, "scan root %s", root)
	}

	if !info.IsDir() {
		return errors.Newf(errors.CodeInvalidInput, "scan root %s is not a directory", root)
	}

	return nil
}

// buildRegistry never fails: an unreadable definitions file leaves only the
// overrides in the registry.
func (w *workflow) buildRegistry(args RegistryArgs) *Registry {
	path := w.definitionsPath(args)

	definitions, err := w.fsAdapter.ReadText(path, args.Encoding)
	if err != nil {
		w.logger.Error("failed to read error code definitions", "path", path, "error", err)

		definitions = ""
	} else {
		w.logger.Info("parsed error code definitions", "path", path)
	}

	return BuildRegistry(definitions, args.Overrides, w.logger)
}

func (w *workflow) definitionsPath(args RegistryArgs) m.Path {
	if args.Definitions == "" || filepath.IsAbs(string(args.Definitions)) {
		return args.Definitions
	}

	return w.fsAdapter.JoinPath(string(args.Root), string(args.Definitions))
}

func (w *workflow) logSample(registry *Registry) {
	entries := registry.Entries()
	if len(entries) > SampleSize {
		entries = entries[:SampleSize]
	}

	w.logger.Debug("error code registry", "codes", registry.Len())

	for _, entry := range entries {
		w.logger.Debug("error code", "code", entry.Name, "number", entry.Number)
	}
}

// extractAll runs the extractor over files with up to threads workers. Each
// file's sites land in that file's slot, so the concatenated result is in
// discovery order regardless of scheduling.
func (w *workflow) extractAll(
	ctx context.Context,
	extractor *Extractor,
	files []m.SourceFile,
	encoding string,
	threads int,
) ([]m.ExceptionSite, error) {
	if threads <= 0 {
		threads = 1
	}

	perFile := make([][]m.ExceptionSite, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			perFile[i] = w.extractFile(extractor, file, encoding)
			w.ui.DisplayFileScanned(file.RelPath, len(perFile[i]))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, errors.CodeExecutionFailed, "scan interrupted")
	}

	var sites []m.ExceptionSite
	for _, fileSites := range perFile {
		sites = append(sites, fileSites...)
	}

	return sites, nil
}

func (w *workflow) extractFile(extractor *Extractor, file m.SourceFile, encoding string) []m.ExceptionSite {
	text, err := w.fsAdapter.ReadText(file.Path, encoding)
	if err != nil {
		w.logger.Error("failed to read source file", "path", file.Path, "error", err)

		return nil
	}

	return extractor.Extract(text, file.RelPath)
}
