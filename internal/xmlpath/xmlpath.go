// =============================================================================
// Workday Report Flattener - XML Path Resolution Module
// =============================================================================
//
// This module provides namespace-aware lookups over parsed XML documents.
// Workday report exports qualify every element and every disambiguating
// attribute with the report's namespace URI, and real-world exports are
// sparse: any optional element or attribute may be absent from a given
// document. Every lookup here therefore tolerates nil elements and missing
// paths, returning the caller-supplied default instead of failing.
//
// PATH SYNTAX:
//   Paths are '/'-separated chains of local names, resolved as direct-child
//   lookups under the resolver's namespace. "Fund_group/Fund_Code" selects
//   the first <Fund_Code> child of the first <Fund_group> child. There is no
//   wildcard or predicate support; typed-ID disambiguation is a dedicated
//   operation, not a generic predicate.
//
// =============================================================================

package xmlpath

import (
	"strings"

	"github.com/beevik/etree"
)

// idTag is the local name of the generic identifier element used throughout
// Workday reports. The children are told apart by their namespaced "type"
// attribute, not by distinct tag names.
const (
	idTag       = "ID"
	typeAttr    = "type"
	currentPath = "."
)

// Resolver performs namespace-qualified element lookups. A Resolver is
// immutable and safe for concurrent use.
type Resolver struct {
	// ns is the namespace URI all elements and disambiguating attributes
	// must be declared under.
	ns string
}

// NewResolver returns a Resolver bound to the given namespace URI.
func NewResolver(namespaceURI string) *Resolver {
	return &Resolver{ns: namespaceURI}
}

// Namespace returns the namespace URI the resolver is bound to.
func (r *Resolver) Namespace() string {
	return r.ns
}

// =============================================================================
// ELEMENT LOOKUPS
// =============================================================================

// Find resolves a relative path to the first matching descendant element.
// It returns nil when el is nil, when the path is empty, or when any segment
// of the chain is absent. "." resolves to el itself.
func (r *Resolver) Find(el *etree.Element, path string) *etree.Element {
	if el == nil {
		return nil
	}
	if path == "" || path == currentPath {
		return el
	}

	current := el
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == currentPath {
			continue
		}
		current = r.firstChild(current, segment)
		if current == nil {
			return nil
		}
	}
	return current
}

// FindAll returns all direct children of el with the given local name under
// the resolver's namespace, in document order. A nil element yields nil.
func (r *Resolver) FindAll(el *etree.Element, name string) []*etree.Element {
	if el == nil {
		return nil
	}
	var matches []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == name && child.NamespaceURI() == r.ns {
			matches = append(matches, child)
		}
	}
	return matches
}

// firstChild returns the first direct child matching local name and
// namespace, or nil.
func (r *Resolver) firstChild(el *etree.Element, name string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == name && child.NamespaceURI() == r.ns {
			return child
		}
	}
	return nil
}

// =============================================================================
// VALUE EXTRACTION
// =============================================================================

// Text resolves a relative path and returns the element's text, or def when
// the element is absent or its text is empty.
func (r *Resolver) Text(el *etree.Element, path, def string) string {
	target := r.Find(el, path)
	if target == nil {
		return def
	}
	if text := target.Text(); text != "" {
		return text
	}
	return def
}

// Attr resolves a relative path and returns the value of the
// namespace-qualified attribute with the given local name, or def when the
// element or attribute is absent.
func (r *Resolver) Attr(el *etree.Element, path, name, def string) string {
	target := r.Find(el, path)
	if target == nil {
		return def
	}
	for _, a := range target.Attr {
		if a.Key == name && a.NamespaceURI() == r.ns {
			return a.Value
		}
	}
	return def
}

// TypedID scans the direct <ID> children of container for one whose
// namespaced "type" attribute equals typeValue (case-sensitive) and returns
// its text. It returns def when container is nil, when no child matches, or
// when the matching child has empty text.
//
// Only the first match in document order is used. Duplicate typed IDs in one
// container are malformed input and are deliberately not validated against.
func (r *Resolver) TypedID(container *etree.Element, typeValue, def string) string {
	if container == nil {
		return def
	}
	for _, child := range container.ChildElements() {
		if child.Tag != idTag || child.NamespaceURI() != r.ns {
			continue
		}
		if r.attrValue(child, typeAttr) != typeValue {
			continue
		}
		if text := child.Text(); text != "" {
			return text
		}
		return def
	}
	return def
}

// attrValue returns the value of the namespace-qualified attribute with the
// given local name, or the empty string.
func (r *Resolver) attrValue(el *etree.Element, name string) string {
	for _, a := range el.Attr {
		if a.Key == name && a.NamespaceURI() == r.ns {
			return a.Value
		}
	}
	return ""
}
