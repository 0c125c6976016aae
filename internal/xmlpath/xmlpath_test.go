package xmlpath

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNS = "urn:com.workday.report/test-feed"

func parseDoc(t *testing.T, body string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(body))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

const sampleDoc = `
<wd:Report_Data xmlns:wd="urn:com.workday.report/test-feed" xmlns:other="urn:other">
  <wd:Report_Entry>
    <wd:Worker>
      <wd:Position_ID>P100</wd:Position_ID>
      <wd:Empty_Field></wd:Empty_Field>
      <wd:Fund_group>
        <wd:Fund_Code>F01</wd:Fund_Code>
      </wd:Fund_group>
    </wd:Worker>
    <other:Worker>
      <other:Position_ID>WRONG</other:Position_ID>
    </other:Worker>
    <wd:Unit wd:Descriptor="Engineering" Code="unqualified">
      <wd:ID wd:type="WID">abc-123</wd:ID>
      <wd:ID wd:type="Organization_Reference_ID">ORG_ENG</wd:ID>
    </wd:Unit>
  </wd:Report_Entry>
</wd:Report_Data>
`

func TestFindResolvesNestedPath(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	r := NewResolver(testNS)

	entry := r.Find(root, "Report_Entry")
	require.NotNil(t, entry)

	code := r.Find(entry, "Worker/Fund_group/Fund_Code")
	require.NotNil(t, code)
	assert.Equal(t, "F01", code.Text())
}

func TestFindSelfAndEmptyPath(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	r := NewResolver(testNS)

	assert.Same(t, root, r.Find(root, "."))
	assert.Same(t, root, r.Find(root, ""))
}

func TestFindToleratesNilAndMissing(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	r := NewResolver(testNS)

	assert.Nil(t, r.Find(nil, "Worker"))
	assert.Nil(t, r.Find(root, "Report_Entry/No_Such_Element"))
	assert.Nil(t, r.Find(root, "Report_Entry/No_Such/Fund_Code"))
}

func TestFindIgnoresOtherNamespaces(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	entry := NewResolver(testNS).Find(root, "Report_Entry")
	require.NotNil(t, entry)

	// A resolver bound to the wrong namespace sees nothing.
	wrong := NewResolver("urn:not-this-one")
	assert.Nil(t, wrong.Find(entry, "Worker"))
}

func TestFindAllReturnsDocumentOrder(t *testing.T) {
	root := parseDoc(t, `
<wd:Report_Data xmlns:wd="urn:com.workday.report/test-feed">
  <wd:Report_Entry><wd:Code>first</wd:Code></wd:Report_Entry>
  <wd:Report_Entry><wd:Code>second</wd:Code></wd:Report_Entry>
  <wd:Report_Entry><wd:Code>third</wd:Code></wd:Report_Entry>
</wd:Report_Data>`)
	r := NewResolver(testNS)

	entries := r.FindAll(root, "Report_Entry")
	require.Len(t, entries, 3)
	assert.Equal(t, "first", r.Text(entries[0], "Code", ""))
	assert.Equal(t, "second", r.Text(entries[1], "Code", ""))
	assert.Equal(t, "third", r.Text(entries[2], "Code", ""))

	assert.Nil(t, r.FindAll(nil, "Report_Entry"))
	assert.Empty(t, r.FindAll(root, "No_Such"))
}

func TestTextDefaults(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	r := NewResolver(testNS)
	entry := r.Find(root, "Report_Entry")

	assert.Equal(t, "P100", r.Text(entry, "Worker/Position_ID", ""))
	assert.Equal(t, "none", r.Text(entry, "Worker/Missing", "none"))
	assert.Equal(t, "none", r.Text(entry, "Worker/Empty_Field", "none"))
	assert.Equal(t, "none", r.Text(nil, "Worker", "none"))
}

func TestAttrRequiresNamespaceQualification(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	r := NewResolver(testNS)
	entry := r.Find(root, "Report_Entry")

	assert.Equal(t, "Engineering", r.Attr(entry, "Unit", "Descriptor", ""))
	// Attributes without the namespace prefix never match.
	assert.Equal(t, "def", r.Attr(entry, "Unit", "Code", "def"))
	assert.Equal(t, "def", r.Attr(entry, "Unit", "Nope", "def"))
	assert.Equal(t, "def", r.Attr(entry, "Missing", "Descriptor", "def"))
	assert.Equal(t, "def", r.Attr(nil, "", "Descriptor", "def"))
}

func TestTypedID(t *testing.T) {
	root := parseDoc(t, sampleDoc)
	r := NewResolver(testNS)
	unit := r.Find(root, "Report_Entry/Unit")
	require.NotNil(t, unit)

	assert.Equal(t, "abc-123", r.TypedID(unit, "WID", ""))
	assert.Equal(t, "ORG_ENG", r.TypedID(unit, "Organization_Reference_ID", ""))
	assert.Equal(t, "def", r.TypedID(unit, "Cost_Center_Reference_ID", "def"))
	assert.Equal(t, "def", r.TypedID(nil, "WID", "def"))
	// Type matching is case-sensitive.
	assert.Equal(t, "def", r.TypedID(unit, "wid", "def"))
}

func TestTypedIDFirstMatchWins(t *testing.T) {
	root := parseDoc(t, `
<wd:Report_Data xmlns:wd="urn:com.workday.report/test-feed">
  <wd:Unit>
    <wd:ID wd:type="WID">first-wid</wd:ID>
    <wd:ID wd:type="WID">second-wid</wd:ID>
  </wd:Unit>
</wd:Report_Data>`)
	r := NewResolver(testNS)
	unit := r.Find(root, "Unit")

	assert.Equal(t, "first-wid", r.TypedID(unit, "WID", ""))
}

func TestTypedIDEmptyTextYieldsDefault(t *testing.T) {
	root := parseDoc(t, `
<wd:Report_Data xmlns:wd="urn:com.workday.report/test-feed">
  <wd:Unit>
    <wd:ID wd:type="WID"></wd:ID>
  </wd:Unit>
</wd:Report_Data>`)
	r := NewResolver(testNS)

	assert.Equal(t, "def", r.TypedID(r.Find(root, "Unit"), "WID", "def"))
}
