package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReport() *Report {
	return &Report{
		Name:             "test_report",
		Namespace:        "urn:com.workday.report/test",
		EntryElement:     "Report_Entry",
		InputFile:        "test.csv",
		OutputFile:       "parsed_test.csv",
		Columns:          []string{"A", "B", "Updated_Date"},
		ProvenanceColumn: "Updated_Date",
		Fields: []FieldRule{
			text("A", "", "A"),
			text("B", "Group", "B"),
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	rep := validReport()
	require.NoError(t, reg.Register(rep))

	got, err := reg.Get("test_report")
	require.NoError(t, err)
	assert.Same(t, rep, got)

	_, err = reg.Get("nope")
	assert.ErrorContains(t, err, `unknown report type "nope"`)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(validReport()))
	assert.ErrorContains(t, reg.Register(validReport()), "already registered")
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	first := validReport()
	second := validReport()
	second.Name = "second_report"
	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(second))

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "test_report", all[0].Name)
	assert.Equal(t, "second_report", all[1].Name)
}

func TestColumnIndex(t *testing.T) {
	reg := NewRegistry()
	rep := validReport()
	require.NoError(t, reg.Register(rep))

	i, ok := rep.ColumnIndex("B")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = rep.ColumnIndex("missing")
	assert.False(t, ok)

	assert.Equal(t, 3, rep.ColumnCount())
}

func TestValidateRejectsBadSchemas(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Report)
		wantErr string
	}{
		{"no name", func(r *Report) { r.Name = "" }, "no name"},
		{"no namespace", func(r *Report) { r.Namespace = "" }, "namespace is required"},
		{"no entry element", func(r *Report) { r.EntryElement = "" }, "entry element is required"},
		{"empty columns", func(r *Report) { r.Columns = nil }, "column list is empty"},
		{"duplicate column", func(r *Report) { r.Columns = []string{"A", "A", "Updated_Date"} }, "duplicate column"},
		{"no provenance", func(r *Report) { r.ProvenanceColumn = "" }, "provenance column is required"},
		{"undeclared provenance", func(r *Report) { r.ProvenanceColumn = "Missing" }, "not declared"},
		{"undeclared field column", func(r *Report) {
			r.Fields = append(r.Fields, text("Undeclared", "", "X"))
		}, `column "Undeclared" not declared`},
		{"expansion without element", func(r *Report) {
			r.Expansion = &ExpansionRule{}
		}, "expansion element is required"},
		{"undeclared expansion column", func(r *Report) {
			r.Expansion = &ExpansionRule{Element: "Line", Fields: []FieldRule{text("Nope", "", "X")}}
		}, `column "Nope" not declared`},
		{"undeclared group column", func(r *Report) {
			r.Groups = []GroupRule{{Column: "Nope", Element: "Item"}}
		}, `group column "Nope" not declared`},
		{"classifier without attr", func(r *Report) {
			r.Classifiers = []ClassifierRule{{Element: "Worktags"}}
		}, "classifier needs element and attribute"},
		{"undeclared classifier column", func(r *Report) {
			r.Classifiers = []ClassifierRule{{
				Element: "Worktags",
				Attr:    "Descriptor",
				Cases:   []ClassifierCase{{Prefix: "Fund:", DescriptorColumn: "Nope"}},
			}}
		}, `classifier column "Nope" not declared`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := validReport()
			tc.mutate(rep)
			err := NewRegistry().Register(rep)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBuiltInRegistersAllReportTypes(t *testing.T) {
	reg, err := BuiltIn()
	require.NoError(t, err)

	names := make([]string, 0)
	for _, rep := range reg.All() {
		names = append(names, rep.Name)
	}
	assert.Equal(t, []string{
		"costing_allocations_daily",
		"position_master",
		"position_compensation",
		"worktag_grant",
		"worktag_program",
	}, names)

	for _, rep := range reg.All() {
		// Every feed stamps its last column with the source file date.
		assert.Equal(t, "Updated_Date", rep.ProvenanceColumn, rep.Name)
		assert.Equal(t, "Updated_Date", rep.Columns[len(rep.Columns)-1], rep.Name)
		assert.Equal(t, "Report_Entry", rep.EntryElement, rep.Name)
		assert.NotEmpty(t, rep.InputFile, rep.Name)
		assert.NotEmpty(t, rep.OutputFile, rep.Name)
	}
}

func TestBuiltInWorktagFeedsShareNamespace(t *testing.T) {
	reg, err := BuiltIn()
	require.NoError(t, err)

	grant, err := reg.Get("worktag_grant")
	require.NoError(t, err)
	program, err := reg.Get("worktag_program")
	require.NoError(t, err)
	assert.Equal(t, grant.Namespace, program.Namespace)
}
