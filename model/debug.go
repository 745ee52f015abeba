package model

import (
	"slices"
	"sort"
	"strconv"

	"github.com/maruel/natural"

	"csslearn/css"
	"csslearn/utils/debug"
)

// String returns a readable tree of everything model has learned.
// It exists solely for manual inspection during debugging.
func (m *Model) String() string {
	if m == nil {
		return "<nil Model>"
	}

	st := m.Stats()
	tw := debug.NewTreeWriter()
	tw.Line(0, "Model: %d selectors, %d properties, %d values, %d observations",
		st.Selectors, st.Properties, st.Values, st.Observations)

	tw.Line(1, "Properties by usage:")
	for _, p := range m.CommonProperties(len(m.order)) {
		tw.List(2, p+" ["+strconv.Itoa(m.counts[p])+"]", m.Values(p))
	}

	selectors := m.Selectors()
	sort.Sort(natural.StringSlice(selectors))
	tw.Line(1, "Selectors:")
	for _, s := range selectors {
		var props []string
		if sp := m.selectorProperties[s]; sp != nil {
			props = slices.Clone(sp.items)
		}
		tw.List(2, s+" ("+css.Classify(s).String()+")", props)
	}

	tw.Line(1, "Fallback table: %d properties", m.defaults.Len())
	return tw.String()
}
