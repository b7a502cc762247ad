package controller

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	m "github.com/mouse-blink/excat/internal/model"
)

// TUI implements UI for interactive terminals.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	bar     *progressbar.ProgressBar
	scanned int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayScanStart starts a progress bar over the files to scan.
func (t *TUI) DisplayScanStart(root m.Path, files int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintf(t.output, "Scanning %s\n", root)

	t.scanned = 0
	t.bar = progressbar.NewOptions(files,
		progressbar.OptionSetWriter(t.output),
		progressbar.OptionSetDescription("Extracting exception sites"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(t.output)
		}),
	)
}

// DisplayFileScanned advances the progress bar.
func (t *TUI) DisplayFileScanned(_ m.Path, _ int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.scanned++

	if t.bar != nil {
		_ = t.bar.Add(1)
	}
}

// DisplayCatalog renders a styled scan summary.
func (t *TUI) DisplayCatalog(catalog m.Catalog, output m.Path) error {
	t.mu.Lock()
	if t.bar != nil {
		_ = t.bar.Finish()
		t.bar = nil
	}
	scanned := t.scanned
	t.mu.Unlock()

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	title := titleStyle.Render("Exception Catalog")

	if catalog.Len() == 0 {
		summary := summaryStyle.Render(fmt.Sprintf("No exception sites found in %s files",
			accentStyle.Render(fmt.Sprintf("%d", scanned))))
		_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, title, summary))

		return err
	}

	_, paths := catalog.CountByFile()

	unresolved := fmt.Sprintf("%d", catalog.Unresolved())
	if catalog.Unresolved() > 0 {
		unresolved = warnStyle.Render(unresolved)
	} else {
		unresolved = accentStyle.Render(unresolved)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Sites: %s   Files with sites: %s   Files scanned: %s   Unresolved: %s\nCatalog: %s",
		accentStyle.Render(fmt.Sprintf("%d", catalog.Len())),
		accentStyle.Render(fmt.Sprintf("%d", len(paths))),
		accentStyle.Render(fmt.Sprintf("%d", scanned)),
		unresolved,
		accentStyle.Render(string(output)),
	))

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, title, summary))

	return err
}

// DisplayCodes renders the registry as styled rows.
func (t *TUI) DisplayCodes(entries []m.ErrorCodeEntry, limit int) error {
	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(8).Align(lipgloss.Right)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(1, 0, 0, 2)

	shown := limitEntries(entries, limit)
	for _, entry := range shown {
		_, err := fmt.Fprintf(t.output, "%s  %s\n",
			numberStyle.Render(fmt.Sprintf("%d", entry.Number)),
			nameStyle.Render(entry.Name))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(t.output, footerStyle.Render(fmt.Sprintf("%d of %d error codes", len(shown), len(entries))))

	return err
}

// DisplayCatalogBrowser opens an interactive, filterable list of catalog sites.
// Short catalogs are printed and the function returns immediately.
func (t *TUI) DisplayCatalogBrowser(catalog m.Catalog) error {
	model := newCatalogModel()
	model = model.handleCatalogMsg(newCatalogMsg(catalog))

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
