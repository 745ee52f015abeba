package model

import "slices"

// Table maps property names to example values. It keeps insertion order so
// anything derived from it is reproducible for a given random seed.
type Table struct {
	names  []string
	values map[string][]string
}

// NewTable builds table from property/value pairs in the given order.
func NewTable(entries ...Entry) Table {
	t := Table{values: make(map[string][]string, len(entries))}
	for _, e := range entries {
		if _, exists := t.values[e.Property]; !exists {
			t.names = append(t.names, e.Property)
		}
		t.values[e.Property] = append(t.values[e.Property], e.Values...)
	}
	return t
}

// Entry is a single table row.
type Entry struct {
	Property string
	Values   []string
}

// Properties returns property names in table order.
func (t Table) Properties() []string {
	return slices.Clone(t.names)
}

// Values returns example values for property.
func (t Table) Values(property string) []string {
	return t.values[property]
}

// Len returns number of properties in the table.
func (t Table) Len() int {
	return len(t.names)
}

// DefaultTable is used when nothing (or not enough) has been learned.
var DefaultTable = NewTable(
	Entry{"position", []string{"absolute", "relative", "fixed", "static", "sticky"}},
	Entry{"display", []string{"block", "flex", "grid", "inline", "none", "inline-block"}},
	Entry{"flex-direction", []string{"row", "column", "row-reverse", "column-reverse"}},
	Entry{"justify-content", []string{"center", "flex-start", "flex-end", "space-between", "space-around"}},
	Entry{"align-items", []string{"center", "flex-start", "flex-end", "stretch", "baseline"}},
	Entry{"gap", []string{"10px", "20px", "1rem", "2rem"}},
	Entry{"color", []string{"red", "blue", "green", "#fff", "#000", "rgba(0,0,0,0.5)"}},
	Entry{"background-color", []string{"#fff", "#f5f5f5", "transparent", "rgba(0,0,0,0.1)"}},
	Entry{"margin", []string{"0", "10px", "1rem", "auto"}},
	Entry{"padding", []string{"0", "10px", "1rem", "2em"}},
	Entry{"width", []string{"100%", "auto", "50%", "300px"}},
	Entry{"height", []string{"100%", "auto", "50vh", "200px"}},
	Entry{"font-size", []string{"16px", "1rem", "1.2em", "larger"}},
	Entry{"font-weight", []string{"normal", "bold", "400", "700"}},
	Entry{"text-align", []string{"left", "center", "right", "justify"}},
	Entry{"border", []string{"none", "1px solid black", "2px dashed red"}},
	Entry{"border-radius", []string{"0", "5px", "50%", "10px"}},
)

// DefaultSelectors are common selector idioms used when no selector has
// been learned.
var DefaultSelectors = []string{
	"body", "header", "main", "footer", "nav", ".container", ".header",
	".nav", ".main", "#header", "#footer", "#main", "h1", "h2", "p", "a",
	"button", ".btn", ".card", ".section", "div", "span", "ul", "li",
}
