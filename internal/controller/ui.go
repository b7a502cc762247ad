// Package controller provides output adapters for displaying scan progress and catalogs.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/excat/internal/model"
)

// sampleRecords is the number of catalog records echoed after a scan.
const sampleRecords = 5

// UI defines how scan progress, catalogs and registries are presented.
// DisplayFileScanned may be called from several goroutines at once.
type UI interface {
	DisplayScanStart(root m.Path, files int)
	DisplayFileScanned(file m.Path, sites int)
	DisplayCatalog(catalog m.Catalog, output m.Path) error
	DisplayCodes(entries []m.ErrorCodeEntry, limit int) error
	DisplayCatalogBrowser(catalog m.Catalog) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true it returns a TUI, otherwise a SimpleUI.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func limitEntries(entries []m.ErrorCodeEntry, limit int) []m.ErrorCodeEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}

	return entries
}
