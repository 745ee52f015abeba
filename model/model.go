// Package model accumulates CSS usage statistics: which selectors appear,
// how often every property is used, which properties go with which
// selectors and what values every property takes.
//
// Model only grows. It is built by a single writer (corpus scan) and read
// afterwards (synthesis), it is not safe for concurrent use.
package model

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"csslearn/css"
)

// DefaultCommonLimit is how many common properties are considered when
// nothing more specific is known.
const DefaultCommonLimit = 10

// orderedSet keeps strings in order of first insertion.
type orderedSet struct {
	items []string
	index map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, exists := s.index[v]; exists {
		return
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) has(v string) bool {
	_, exists := s.index[v]
	return exists
}

func (s *orderedSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Model is the frequency model learned from stylesheets.
type Model struct {
	defaults Table
	rng      *rand.Rand

	selectors          *orderedSet
	counts             map[string]int
	order              []string // properties in order of first observation
	selectorProperties map[string]*orderedSet
	propertyValues     map[string]*orderedSet
}

// Option customizes Model.
type Option func(*Model)

// WithTable replaces fallback table.
func WithTable(t Table) Option {
	return func(m *Model) {
		m.defaults = t
	}
}

// WithRand sets source of randomness for value selection.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// New creates empty model backed by DefaultTable.
func New(opts ...Option) *Model {
	m := &Model{
		defaults:           DefaultTable,
		selectors:          newOrderedSet(),
		counts:             make(map[string]int),
		selectorProperties: make(map[string]*orderedSet),
		propertyValues:     make(map[string]*orderedSet),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m
}

// Rand returns random source shared with model consumers.
func (m *Model) Rand() *rand.Rand {
	return m.rng
}

// Table returns fallback table.
func (m *Model) Table() Table {
	return m.defaults
}

// Observe records single use of property with value under selector.
// Observations with empty selector or property are ignored.
func (m *Model) Observe(selector, property, value string) {
	if selector == "" || property == "" {
		return
	}

	if _, seen := m.counts[property]; !seen {
		m.order = append(m.order, property)
	}
	m.counts[property]++

	m.selectors.add(selector)

	sp, ok := m.selectorProperties[selector]
	if !ok {
		sp = newOrderedSet()
		m.selectorProperties[selector] = sp
	}
	sp.add(property)

	if value == "" {
		return
	}
	pv, ok := m.propertyValues[property]
	if !ok {
		pv = newOrderedSet()
		m.propertyValues[property] = pv
	}
	pv.add(value)
}

// ObserveRule records rule selector (even when it has no declarations) and
// all of its declarations.
func (m *Model) ObserveRule(rule css.Rule) {
	if rule.Selector == "" {
		return
	}
	m.selectors.add(rule.Selector)
	for _, d := range rule.Declarations {
		m.Observe(rule.Selector, d.Property, d.Value)
	}
}

// Selectors returns observed selectors in order of first appearance.
func (m *Model) Selectors() []string {
	return slices.Clone(m.selectors.items)
}

// Count returns how many times property has been observed.
func (m *Model) Count(property string) int {
	return m.counts[property]
}

// Values returns distinct observed values of property in order of first appearance.
func (m *Model) Values(property string) []string {
	if pv, ok := m.propertyValues[property]; ok {
		return slices.Clone(pv.items)
	}
	return nil
}

// CommonProperties returns up to limit property names, most used first.
// Properties used equally often keep order of first observation.
func (m *Model) CommonProperties(limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	props := slices.Clone(m.order)
	slices.SortStableFunc(props, func(a, b string) int {
		return cmp.Compare(m.counts[b], m.counts[a])
	})
	return props[:min(limit, len(props))]
}

// PropertiesForSelector returns properties observed with selector. When
// selector itself has not been seen, properties of all selectors of the
// same kind are combined, and failing that most common properties are
// returned.
func (m *Model) PropertiesForSelector(selector string) []string {
	if sp := m.selectorProperties[selector]; sp.len() > 0 {
		return slices.Clone(sp.items)
	}

	kind := css.Classify(selector)
	similar := newOrderedSet()
	for _, s := range m.selectors.items {
		if css.Classify(s) != kind {
			continue
		}
		if sp := m.selectorProperties[s]; sp != nil {
			for _, p := range sp.items {
				similar.add(p)
			}
		}
	}
	if similar.len() > 0 {
		return similar.items
	}
	return m.CommonProperties(DefaultCommonLimit)
}

// ValueFor picks one of the values observed for property. Unobserved
// properties get a value from the fallback table, unknown ones get empty
// string.
func (m *Model) ValueFor(property string) string {
	if pv := m.propertyValues[property]; pv.len() > 0 {
		return pv.items[m.rng.IntN(len(pv.items))]
	}
	if values := m.defaults.Values(property); len(values) > 0 {
		return values[m.rng.IntN(len(values))]
	}
	return ""
}

// KnownProperties returns observed properties followed by fallback table
// properties which were never observed.
func (m *Model) KnownProperties() []string {
	known := slices.Clone(m.order)
	for _, p := range m.defaults.names {
		if _, seen := m.counts[p]; !seen {
			known = append(known, p)
		}
	}
	return known
}

// Stats summarizes what has been learned.
type Stats struct {
	Selectors    int
	Properties   int
	Values       int
	Observations int
}

// Stats returns model summary.
func (m *Model) Stats() Stats {
	st := Stats{Selectors: m.selectors.len(), Properties: len(m.order)}
	for _, c := range m.counts {
		st.Observations += c
	}
	for _, pv := range m.propertyValues {
		st.Values += pv.len()
	}
	return st
}
