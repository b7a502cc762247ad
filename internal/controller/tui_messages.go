package controller

import (
	"fmt"

	m "github.com/mouse-blink/excat/internal/model"
)

// Message types.
type catalogMsg struct {
	sites      []m.ExceptionSite
	files      int
	unresolved int
}

func newCatalogMsg(catalog m.Catalog) catalogMsg {
	_, paths := catalog.CountByFile()

	return catalogMsg{
		sites:      catalog.Errors,
		files:      len(paths),
		unresolved: catalog.Unresolved(),
	}
}

// List item types.
type siteItem struct {
	path     string
	name     string
	number   int
	template string
}

func newSiteItem(site m.ExceptionSite) siteItem {
	return siteItem{
		path:     string(site.FilePath),
		name:     site.ErrorCodeName,
		number:   site.ErrorCodeNumber,
		template: site.MessageTemplate,
	}
}

func (s siteItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", s.path, s.name, s.template)
}

func (s siteItem) label() string {
	return fmt.Sprintf("%s  %s  %q", s.name, s.path, s.template)
}
