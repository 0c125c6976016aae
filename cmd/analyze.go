// =============================================================================
// Workday Report Flattener - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, a development aid for inspecting
// an unfamiliar report export before writing its schema declaration. It
// parses the file and prints the declared namespaces, the element tags with
// occurrence counts, the attributes seen on each tag, and the parent/child
// relationships.
//
// COMMAND USAGE:
//   wdreports analyze <file>
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"
)

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Inspect the structure of an XML report export",
	Long: `The analyze command parses an XML file and summarizes its structure:
declared namespaces, element tags with occurrence counts, attributes per
tag, and which tags nest under which. Use it to work out the namespace,
entry element, and field paths when declaring a new report type.

Workday exports often carry a .csv extension despite containing XML; the
file is parsed by content, not extension.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// structureSummary accumulates observations over one document walk.
type structureSummary struct {
	tagCounts  map[string]int
	attrsByTag map[string]map[string]bool
	childTags  map[string]map[string]bool
	namespaces map[string]string // prefix -> URI
}

// runAnalyze parses the file and prints its structure summary.
func runAnalyze(path string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%s has no root element", path)
	}

	s := &structureSummary{
		tagCounts:  make(map[string]int),
		attrsByTag: make(map[string]map[string]bool),
		childTags:  make(map[string]map[string]bool),
		namespaces: make(map[string]string),
	}
	s.walk(root)

	fmt.Printf("=== XML Structure: %s ===\n\n", path)
	fmt.Printf("Root element: %s\n\n", root.Tag)

	fmt.Println("Namespaces:")
	for _, prefix := range sortedKeys(s.namespaces) {
		name := prefix
		if name == "" {
			name = "(default)"
		}
		fmt.Printf("  %-12s %s\n", name, s.namespaces[prefix])
	}

	fmt.Println("\nElement tags (occurrences):")
	for _, tag := range sortedKeys(s.tagCounts) {
		fmt.Printf("  %-50s %d\n", tag, s.tagCounts[tag])
	}

	fmt.Println("\nAttributes by tag:")
	for _, tag := range sortedKeys(s.attrsByTag) {
		fmt.Printf("  %s: %s\n", tag, strings.Join(sortedKeys(s.attrsByTag[tag]), ", "))
	}

	fmt.Println("\nHierarchy (parent -> children):")
	for _, tag := range sortedKeys(s.childTags) {
		fmt.Printf("  %s -> %s\n", tag, strings.Join(sortedKeys(s.childTags[tag]), ", "))
	}
	return nil
}

// walk records one element and recurses into its children.
func (s *structureSummary) walk(el *etree.Element) {
	s.tagCounts[el.Tag]++

	for _, a := range el.Attr {
		if a.Space == "xmlns" {
			s.namespaces[a.Key] = a.Value
			continue
		}
		if a.Space == "" && a.Key == "xmlns" {
			s.namespaces[""] = a.Value
			continue
		}
		if s.attrsByTag[el.Tag] == nil {
			s.attrsByTag[el.Tag] = make(map[string]bool)
		}
		s.attrsByTag[el.Tag][a.FullKey()] = true
	}

	for _, child := range el.ChildElements() {
		if s.childTags[el.Tag] == nil {
			s.childTags[el.Tag] = make(map[string]bool)
		}
		s.childTags[el.Tag][child.Tag] = true
		s.walk(child)
	}
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
