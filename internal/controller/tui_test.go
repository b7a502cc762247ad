package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	m "github.com/mouse-blink/excat/internal/model"
)

func testEntries(n int) []m.ErrorCodeEntry {
	entries := make([]m.ErrorCodeEntry, 0, n)
	for i := range n {
		entries = append(entries, m.ErrorCodeEntry{Name: fmt.Sprintf("CODE_%d", i), Number: i + 1})
	}

	return entries
}

func TestTUI_ScanProgressAndSummary(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayScanStart("/repo", 3)

	var wg sync.WaitGroup
	for i := range 3 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			tui.DisplayFileScanned(m.Path(fmt.Sprintf("f%d.cpp", i)), 1)
		}()
	}
	wg.Wait()

	catalog := m.NewCatalog([]m.ExceptionSite{
		testSite("f0.cpp", 36, "BAD_ARGUMENTS", "a"),
		testSite("f1.cpp", 0, "MISSING", "b"),
	})

	if err := tui.DisplayCatalog(catalog, "data/out.json"); err != nil {
		t.Fatalf("DisplayCatalog() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Scanning /repo",
		"Exception Catalog",
		"Sites: 2",
		"Files with sites: 2",
		"Files scanned: 3",
		"Unresolved: 1",
		"Catalog: data/out.json",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}

	if tui.bar != nil {
		t.Fatalf("progress bar not finished")
	}
}

func TestTUI_DisplayCatalog_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayScanStart("/repo", 1)
	tui.DisplayFileScanned("a.cpp", 0)

	if err := tui.DisplayCatalog(m.NewCatalog(nil), "out.json"); err != nil {
		t.Fatalf("DisplayCatalog() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No exception sites found in 1 files") {
		t.Fatalf("output missing empty summary\n%s", buf.String())
	}
}

func TestTUI_DisplayCodes(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayCodes(testEntries(5), 3); err != nil {
		t.Fatalf("DisplayCodes() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"CODE_0", "CODE_2", "3 of 5 error codes"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}

	if strings.Contains(output, "CODE_3") {
		t.Fatalf("limit not applied\n%s", output)
	}
}

func TestTUI_DisplayCatalogBrowser_PrintsShortCatalog(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	catalog := m.NewCatalog([]m.ExceptionSite{
		testSite("src/a.cpp", 36, "BAD_ARGUMENTS", "Bad argument"),
		testSite("src/b.cpp", 60, "UNKNOWN_TABLE", "No table"),
	})

	if err := tui.DisplayCatalogBrowser(catalog); err != nil {
		t.Fatalf("DisplayCatalogBrowser() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Exception Catalog", "Sites: 2", "BAD_ARGUMENTS", "src/b.cpp"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}
}
