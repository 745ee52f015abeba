package model

import (
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// SnapshotVersion is the only snapshot layout understood by Restore.
const SnapshotVersion = 1

type (
	SelectorSnapshot struct {
		Selector   string   `yaml:"selector"`
		Properties []string `yaml:"properties,omitempty,flow"`
	}

	PropertySnapshot struct {
		Property string   `yaml:"property"`
		Count    int      `yaml:"count"`
		Values   []string `yaml:"values,omitempty,flow"`
	}

	// Snapshot is serializable form of the model. Properties are listed in
	// order of first observation, selectors in order of appearance.
	Snapshot struct {
		Version    int                `yaml:"version"`
		Selectors  []SelectorSnapshot `yaml:"selectors"`
		Properties []PropertySnapshot `yaml:"properties"`
	}
)

// Snapshot captures model state.
func (m *Model) Snapshot() Snapshot {
	s := Snapshot{
		Version:    SnapshotVersion,
		Selectors:  make([]SelectorSnapshot, 0, m.selectors.len()),
		Properties: make([]PropertySnapshot, 0, len(m.order)),
	}
	for _, sel := range m.selectors.items {
		ss := SelectorSnapshot{Selector: sel}
		if sp := m.selectorProperties[sel]; sp != nil {
			ss.Properties = append(ss.Properties, sp.items...)
		}
		s.Selectors = append(s.Selectors, ss)
	}
	for _, p := range m.order {
		s.Properties = append(s.Properties, PropertySnapshot{
			Property: p,
			Count:    m.counts[p],
			Values:   m.Values(p),
		})
	}
	return s
}

// Restore adds snapshot content to the model. Snapshot is checked first, on
// error model is left untouched.
func (m *Model) Restore(s Snapshot) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", s.Version)
	}

	known := newOrderedSet()
	for _, ps := range s.Properties {
		if ps.Property == "" {
			return errors.New("snapshot has property without name")
		}
		if ps.Count < 1 {
			return fmt.Errorf("snapshot property %q has invalid count %d", ps.Property, ps.Count)
		}
		known.add(ps.Property)
	}
	for _, ss := range s.Selectors {
		if ss.Selector == "" {
			return errors.New("snapshot has empty selector")
		}
		for _, p := range ss.Properties {
			if !known.has(p) {
				return fmt.Errorf("snapshot selector %q refers to unknown property %q", ss.Selector, p)
			}
		}
	}

	for _, ps := range s.Properties {
		if _, seen := m.counts[ps.Property]; !seen {
			m.order = append(m.order, ps.Property)
		}
		m.counts[ps.Property] += ps.Count

		if len(ps.Values) == 0 {
			continue
		}
		pv, ok := m.propertyValues[ps.Property]
		if !ok {
			pv = newOrderedSet()
			m.propertyValues[ps.Property] = pv
		}
		for _, v := range ps.Values {
			if v != "" {
				pv.add(v)
			}
		}
	}
	for _, ss := range s.Selectors {
		m.selectors.add(ss.Selector)
		if len(ss.Properties) == 0 {
			continue
		}
		sp, ok := m.selectorProperties[ss.Selector]
		if !ok {
			sp = newOrderedSet()
			m.selectorProperties[ss.Selector] = sp
		}
		for _, p := range ss.Properties {
			sp.add(p)
		}
	}
	return nil
}

// Save writes model snapshot to w as YAML.
func (m *Model) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m.Snapshot()); err != nil {
		return fmt.Errorf("failed to encode model snapshot: %w", err)
	}
	return enc.Close()
}

// Load creates new model from YAML snapshot.
func Load(r io.Reader, opts ...Option) (*Model, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode model snapshot: %w", err)
	}
	m := New(opts...)
	if err := m.Restore(s); err != nil {
		return nil, err
	}
	return m, nil
}
