// =============================================================================
// Workday Report Flattener - Record Flattening Module
// =============================================================================
//
// This module walks the repeated entries of a parsed report document and
// produces flat rows against the schema's canonical column list. It is the
// single generic engine behind every report type; all per-report knowledge
// lives in the schema declarations.
//
// INVARIANTS:
//   - Every row has exactly the schema's column count. The working row is
//     initialized all-empty before any rule runs, so absent elements leave
//     holes filled with empty strings, never a short row.
//   - One entry yields max(1, N) rows, where N is the count of expansion
//     children. Entry-level values are shared across the N rows.
//   - Output order is input document order, entry by entry, expansion
//     child by expansion child. No sorting, merging, or deduplication.
//
// =============================================================================

package flatten

import (
	"encoding/json"
	"strings"

	"github.com/beevik/etree"

	"github.com/nshe-dis/wdreports/internal/schema"
	"github.com/nshe-dis/wdreports/internal/xmlpath"
)

// Row is one flat output record, indexed by the schema's column order.
type Row = []string

// Flattener applies one report schema to report entries. It is stateless
// across entries and safe for concurrent use.
type Flattener struct {
	rep *schema.Report
	res *xmlpath.Resolver
}

// New returns a Flattener for the given report schema.
func New(rep *schema.Report) *Flattener {
	return &Flattener{
		rep: rep,
		res: xmlpath.NewResolver(rep.Namespace),
	}
}

// Document flattens every entry under the document root, in document
// order, stamping provenance into each row. A document with no entries
// yields an empty slice.
func (f *Flattener) Document(doc *etree.Document, provenance string) []Row {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var rows []Row
	for _, entry := range f.res.FindAll(root, f.rep.EntryElement) {
		rows = append(rows, f.Entry(entry, provenance)...)
	}
	return rows
}

// Entry flattens a single report entry into one or more rows.
func (f *Flattener) Entry(entry *etree.Element, provenance string) []Row {
	// Step 1: full column set, all empty. Downstream consumers depend on
	// the fixed shape regardless of which optional elements are present.
	working := make(Row, f.rep.ColumnCount())

	// Step 2: entry-level field rules.
	f.applyFields(working, entry, f.rep.Fields)

	// Serialized groups and attribute-dispatched classifiers are
	// entry-level too; they run before any expansion clones the row.
	for _, g := range f.rep.Groups {
		f.applyGroup(working, entry, g)
	}
	for _, c := range f.rep.Classifiers {
		f.applyClassifier(working, entry, c)
	}

	// Step 3: provenance stamp.
	if i, ok := f.rep.ColumnIndex(f.rep.ProvenanceColumn); ok {
		working[i] = provenance
	}

	// Steps 4-5: expansion.
	if f.rep.Expansion == nil {
		return []Row{working}
	}

	children := f.res.FindAll(entry, f.rep.Expansion.Element)
	if len(children) == 0 {
		// At least one row per entry; expansion-owned columns stay empty.
		return []Row{working}
	}

	rows := make([]Row, 0, len(children))
	for _, child := range children {
		row := make(Row, len(working))
		copy(row, working)
		f.applyFields(row, child, f.rep.Expansion.Fields)
		rows = append(rows, row)
	}
	return rows
}

// applyFields runs field rules with scope as the rule anchor base. An
// absent anchor or target leaves the column at its current value.
func (f *Flattener) applyFields(row Row, scope *etree.Element, rules []schema.FieldRule) {
	for _, rule := range rules {
		anchor := f.res.Find(scope, rule.Anchor)
		if anchor == nil {
			continue
		}
		i, ok := f.rep.ColumnIndex(rule.Column)
		if !ok {
			continue
		}
		row[i] = f.extract(anchor, rule)
	}
}

// extract applies one rule's extraction kind against its resolved anchor.
func (f *Flattener) extract(anchor *etree.Element, rule schema.FieldRule) string {
	switch rule.Kind {
	case schema.Text:
		return f.res.Text(anchor, rule.Path, "")
	case schema.Attribute:
		return f.res.Attr(anchor, rule.Path, rule.Attr, "")
	case schema.TypedID:
		return f.res.TypedID(f.res.Find(anchor, rule.Path), rule.TypeValue, "")
	}
	return ""
}

// applyGroup serializes a repeated sub-element group into one JSON column.
// Zero occurrences leave the column empty.
func (f *Flattener) applyGroup(row Row, entry *etree.Element, g schema.GroupRule) {
	container := f.res.Find(entry, g.Anchor)
	children := f.res.FindAll(container, g.Element)
	if len(children) == 0 {
		return
	}

	items := make([]map[string]string, 0, len(children))
	for _, child := range children {
		item := make(map[string]string, len(g.Fields))
		for _, rule := range g.Fields {
			anchor := f.res.Find(child, rule.Anchor)
			if anchor == nil {
				item[rule.Column] = ""
				continue
			}
			item[rule.Column] = f.extract(anchor, rule)
		}
		items = append(items, item)
	}

	data, err := json.Marshal(items)
	if err != nil {
		// Marshaling string maps cannot fail; keep the column empty if it
		// somehow does.
		return
	}
	if i, ok := f.rep.ColumnIndex(g.Column); ok {
		row[i] = string(data)
	}
}

// applyClassifier routes repeated children into column groups by attribute
// prefix. The first matching case wins per child; when several children
// match the same case, the last one in document order wins.
func (f *Flattener) applyClassifier(row Row, entry *etree.Element, c schema.ClassifierRule) {
	for _, child := range f.res.FindAll(entry, c.Element) {
		value := f.res.Attr(child, "", c.Attr, "")
		if value == "" {
			continue
		}
		for _, cs := range c.Cases {
			if !strings.HasPrefix(value, cs.Prefix) {
				continue
			}
			if i, ok := f.rep.ColumnIndex(cs.DescriptorColumn); ok {
				row[i] = value
			}
			f.applyFields(row, child, cs.Fields)
			break
		}
	}
}
