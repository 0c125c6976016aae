// =============================================================================
// Workday Report Flattener - Report Schema Module
// =============================================================================
//
// This module defines the declarative schema that drives the flattening
// engine. Each Workday report type is described entirely by data: the
// namespace URI, the repeated entry element, the canonical ordered column
// list, and the extraction rules that populate those columns. The engine
// itself contains no per-report logic; adding a report type means adding a
// declaration, not a code fork.
//
// SCHEMA LIFECYCLE:
//   Schemas are constructed once at process start, validated on
//   registration, and never mutated afterwards. The registry is read-only
//   after startup and safe for concurrent access.
//
// =============================================================================

package schema

import (
	"fmt"
)

// =============================================================================
// EXTRACTION RULES
// =============================================================================

// Kind selects how a FieldRule pulls its value out of the resolved element.
type Kind int

const (
	// Text takes the element's character data.
	Text Kind = iota

	// Attribute takes the value of a namespace-qualified attribute.
	Attribute

	// TypedID scans the element's direct <ID> children for the one whose
	// namespaced "type" attribute matches the rule's TypeValue.
	TypedID
)

// FieldRule maps one output column to a location in the document.
//
// Anchor is a path from the current scope root (the report entry, or the
// expansion child while expanding) to the element the extraction starts
// from; an empty Anchor means the scope root itself. Path is a further path
// from the anchor to the target element; an empty Path means the anchor.
// When the anchor or target is absent the column keeps its initialized
// empty value.
type FieldRule struct {
	Column    string
	Anchor    string
	Path      string
	Kind      Kind
	Attr      string // attribute local name, Kind == Attribute
	TypeValue string // requested type value, Kind == TypedID
}

// ExpansionRule unrolls a repeated sub-element into one output row per
// occurrence. An entry with zero occurrences still yields exactly one row
// with the expansion-owned columns empty; an entry with N occurrences
// yields N rows sharing the entry-level values.
type ExpansionRule struct {
	// Element is the local name of the repeated direct child of the entry.
	Element string

	// Fields are resolved against each occurrence as scope root.
	Fields []FieldRule
}

// GroupRule collects a repeated sub-element group into a single column as a
// serialized JSON array, one object per occurrence, instead of expanding
// rows. Zero occurrences leave the column empty.
type GroupRule struct {
	Column string
	Anchor string // path from the entry to the group container
	Element string
	// Fields' columns are JSON object keys here, not output columns.
	Fields []FieldRule
}

// ClassifierRule routes repeated children into different column groups by
// the prefix of a namespaced attribute value. The first case whose Prefix
// matches wins for a given child; when several children match the same
// case, the last one in document order wins.
type ClassifierRule struct {
	Element string
	Attr    string
	Cases   []ClassifierCase
}

// ClassifierCase is one dispatch target of a ClassifierRule.
type ClassifierCase struct {
	Prefix           string
	DescriptorColumn string
	Fields           []FieldRule
}

// =============================================================================
// REPORT SCHEMA
// =============================================================================

// Report is the complete, immutable description of one report type.
type Report struct {
	// Name identifies the report type in configuration and logs.
	Name string

	// Namespace is the URI all elements of the report are qualified with.
	Namespace string

	// EntryElement is the local name of the repeated top-level record.
	EntryElement string

	// InputFile and OutputFile are the default file names, resolved against
	// the configured input/output directories and overridable per report.
	InputFile  string
	OutputFile string

	// Columns is the canonical ordered output column list. The header row
	// is exactly this list, always, regardless of the input's content.
	Columns []string

	// ProvenanceColumn receives the input file's last-modified date.
	ProvenanceColumn string

	Fields      []FieldRule
	Expansion   *ExpansionRule
	Groups      []GroupRule
	Classifiers []ClassifierRule

	colIndex map[string]int
}

// ColumnIndex returns the position of a column in the canonical list.
func (r *Report) ColumnIndex(name string) (int, bool) {
	i, ok := r.colIndex[name]
	return i, ok
}

// ColumnCount returns the width of every row this report produces.
func (r *Report) ColumnCount() int {
	return len(r.Columns)
}

// validate checks the schema's internal consistency. Every rule column must
// appear in the canonical column list; downstream consumers depend on rows
// never growing past the declared shape.
func (r *Report) validate() error {
	if r.Name == "" {
		return fmt.Errorf("schema has no name")
	}
	if r.Namespace == "" {
		return fmt.Errorf("schema %s: namespace is required", r.Name)
	}
	if r.EntryElement == "" {
		return fmt.Errorf("schema %s: entry element is required", r.Name)
	}
	if len(r.Columns) == 0 {
		return fmt.Errorf("schema %s: column list is empty", r.Name)
	}

	r.colIndex = make(map[string]int, len(r.Columns))
	for i, col := range r.Columns {
		if _, dup := r.colIndex[col]; dup {
			return fmt.Errorf("schema %s: duplicate column %q", r.Name, col)
		}
		r.colIndex[col] = i
	}

	if r.ProvenanceColumn == "" {
		return fmt.Errorf("schema %s: provenance column is required", r.Name)
	}
	if _, ok := r.colIndex[r.ProvenanceColumn]; !ok {
		return fmt.Errorf("schema %s: provenance column %q not declared", r.Name, r.ProvenanceColumn)
	}

	if err := r.checkRules(r.Fields, "field"); err != nil {
		return err
	}
	if r.Expansion != nil {
		if r.Expansion.Element == "" {
			return fmt.Errorf("schema %s: expansion element is required", r.Name)
		}
		if err := r.checkRules(r.Expansion.Fields, "expansion field"); err != nil {
			return err
		}
	}
	for _, g := range r.Groups {
		if g.Element == "" {
			return fmt.Errorf("schema %s: group %q: element is required", r.Name, g.Column)
		}
		if _, ok := r.colIndex[g.Column]; !ok {
			return fmt.Errorf("schema %s: group column %q not declared", r.Name, g.Column)
		}
		// Group fields name JSON keys, not output columns; no column check.
	}
	for _, c := range r.Classifiers {
		if c.Element == "" || c.Attr == "" {
			return fmt.Errorf("schema %s: classifier needs element and attribute", r.Name)
		}
		for _, cs := range c.Cases {
			if _, ok := r.colIndex[cs.DescriptorColumn]; !ok {
				return fmt.Errorf("schema %s: classifier column %q not declared", r.Name, cs.DescriptorColumn)
			}
			if err := r.checkRules(cs.Fields, "classifier field"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Report) checkRules(rules []FieldRule, context string) error {
	for _, rule := range rules {
		if _, ok := r.colIndex[rule.Column]; !ok {
			return fmt.Errorf("schema %s: %s column %q not declared", r.Name, context, rule.Column)
		}
	}
	return nil
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds the report schemas known to the process. It is populated
// at startup and read-only afterwards.
type Registry struct {
	byName map[string]*Report
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Report)}
}

// Register validates a schema and adds it to the registry. Registering an
// invalid schema or a duplicate name is a startup-time configuration error.
func (reg *Registry) Register(r *Report) error {
	if err := r.validate(); err != nil {
		return err
	}
	if _, exists := reg.byName[r.Name]; exists {
		return fmt.Errorf("schema %s: already registered", r.Name)
	}
	reg.byName[r.Name] = r
	reg.order = append(reg.order, r.Name)
	return nil
}

// Get returns the schema for a report type. An unknown name is a
// configuration error, surfaced before any processing begins.
func (reg *Registry) Get(name string) (*Report, error) {
	r, ok := reg.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown report type %q", name)
	}
	return r, nil
}

// All returns the registered schemas in registration order.
func (reg *Registry) All() []*Report {
	out := make([]*Report, 0, len(reg.order))
	for _, name := range reg.order {
		out = append(out, reg.byName[name])
	}
	return out
}
