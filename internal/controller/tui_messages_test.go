package controller

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/excat/internal/model"
)

func TestNewCatalogMsg(t *testing.T) {
	msg := newCatalogMsg(m.NewCatalog([]m.ExceptionSite{
		testSite("a.cpp", 1, "A", "x"),
		testSite("a.cpp", 0, "B", "y"),
		testSite("b.cpp", 2, "C", "z"),
	}))

	if len(msg.sites) != 3 || msg.files != 2 || msg.unresolved != 1 {
		t.Fatalf("newCatalogMsg() = %d sites, %d files, %d unresolved", len(msg.sites), msg.files, msg.unresolved)
	}
}

func TestSiteItem(t *testing.T) {
	item := newSiteItem(testSite("src/a.cpp", 36, "BAD_ARGUMENTS", "Bad {}"))

	for _, want := range []string{"src/a.cpp", "BAD_ARGUMENTS", "Bad {}"} {
		if !strings.Contains(item.FilterValue(), want) {
			t.Fatalf("FilterValue() = %q, missing %q", item.FilterValue(), want)
		}
	}

	if got, want := item.label(), `BAD_ARGUMENTS  src/a.cpp  "Bad {}"`; got != want {
		t.Fatalf("label() = %q, want %q", got, want)
	}
}
