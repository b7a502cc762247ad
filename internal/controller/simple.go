package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/excat/internal/model"
)

// SimpleUI implements UI with plain text and tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command

	mu      sync.Mutex
	total   int
	scanned int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScanStart announces the number of files about to be scanned.
func (s *SimpleUI) DisplayScanStart(root m.Path, files int) {
	s.mu.Lock()
	s.total = files
	s.scanned = 0
	s.mu.Unlock()

	s.printf("Scanning %d source files under %s\n", files, root)
}

// DisplayFileScanned records a finished file.
func (s *SimpleUI) DisplayFileScanned(_ m.Path, _ int) {
	s.mu.Lock()
	s.scanned++
	s.mu.Unlock()
}

// DisplayCatalog prints per-file site counts and a few sample records.
func (s *SimpleUI) DisplayCatalog(catalog m.Catalog, output m.Path) error {
	s.mu.Lock()
	scanned := s.scanned
	s.mu.Unlock()

	s.printf("Total files processed: %d\n", scanned)

	if catalog.Len() == 0 {
		s.printf("No exception sites found\n")
		return nil
	}

	counts, paths := catalog.CountByFile()

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Sites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, path := range paths {
		table.Append([]string{string(path), fmt.Sprintf("%d", counts[path])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		fmt.Sprintf("%d", catalog.Len()),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if unresolved := catalog.Unresolved(); unresolved > 0 {
		s.printf("Unresolved error codes: %d\n", unresolved)
	}

	s.printf("Catalog written to %s\n", output)

	return s.printSample(catalog)
}

func (s *SimpleUI) printSample(catalog m.Catalog) error {
	sample := catalog.Errors
	if len(sample) > sampleRecords {
		sample = sample[:sampleRecords]
	}

	s.printf("\nSample records:\n")

	for _, site := range sample {
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")

		if err := enc.Encode(site); err != nil {
			return err
		}

		s.printf("%s", buf.String())
	}

	return nil
}

// DisplayCodes prints the registry as a table.
func (s *SimpleUI) DisplayCodes(entries []m.ErrorCodeEntry, limit int) error {
	if len(entries) == 0 {
		s.printf("No error codes found\n")
		return nil
	}

	shown := limitEntries(entries, limit)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Code", "Number"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, entry := range shown {
		table.Append([]string{entry.Name, fmt.Sprintf("%d", entry.Number)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Showing %d of %d", len(shown), len(entries)),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCatalogBrowser prints every site of a saved catalog.
func (s *SimpleUI) DisplayCatalogBrowser(catalog m.Catalog) error {
	if catalog.Len() == 0 {
		s.printf("Catalog is empty\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Code", "Name", "Template"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, site := range catalog.Errors {
		table.Append([]string{
			string(site.FilePath),
			fmt.Sprintf("%d", site.ErrorCodeNumber),
			site.ErrorCodeName,
			site.MessageTemplate,
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
