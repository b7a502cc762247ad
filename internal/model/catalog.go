package model

// Catalog is the serialised result of a scan.
type Catalog struct {
	Errors []ExceptionSite `json:"errors"`
}

// NewCatalog wraps sites, normalising nil slices so they encode as [].
func NewCatalog(sites []ExceptionSite) Catalog {
	out := make([]ExceptionSite, len(sites))
	for i, site := range sites {
		if site.Variables == nil {
			site.Variables = []string{}
		}

		out[i] = site
	}

	return Catalog{Errors: out}
}

// Len returns the number of sites in the catalog.
func (c Catalog) Len() int {
	return len(c.Errors)
}

// CountByFile returns the number of sites per file path together with the
// paths in first-seen order.
func (c Catalog) CountByFile() (map[Path]int, []Path) {
	counts := make(map[Path]int)

	var order []Path

	for _, site := range c.Errors {
		if _, ok := counts[site.FilePath]; !ok {
			order = append(order, site.FilePath)
		}

		counts[site.FilePath]++
	}

	return counts, order
}

// Unresolved returns the number of sites carrying the unresolved sentinel.
func (c Catalog) Unresolved() int {
	n := 0

	for _, site := range c.Errors {
		if !site.Resolved() {
			n++
		}
	}

	return n
}
