package metadata

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miku/pyoai/pkg/provider"
)

// writeDC runs the Dublin Core writer over rec and returns the dc
// wrapper element.
func writeDC(t *testing.T, rec provider.Record) *etree.Element {
	t.Helper()
	parent := etree.NewElement("metadata")
	require.NoError(t, DublinCoreWriter{}.Write(parent, rec))
	children := parent.ChildElements()
	require.Len(t, children, 1)
	return children[0]
}

func TestDublinCore_FixedFieldOrder(t *testing.T) {
	// Map iteration order must not leak into the output; the writer's
	// fixed field list decides.
	dc := writeDC(t, provider.MapRecord{
		"creator": {"B", "C"},
		"title":   {"A"},
	})

	var got []struct{ tag, text string }
	for _, e := range dc.ChildElements() {
		got = append(got, struct{ tag, text string }{e.FullTag(), e.Text()})
	}
	require.Len(t, got, 3)
	assert.Equal(t, "dc:title", got[0].tag)
	assert.Equal(t, "A", got[0].text)
	assert.Equal(t, "dc:creator", got[1].tag)
	assert.Equal(t, "B", got[1].text)
	assert.Equal(t, "dc:creator", got[2].tag)
	assert.Equal(t, "C", got[2].text)
}

func TestDublinCore_IgnoresUnknownKeys(t *testing.T) {
	dc := writeDC(t, provider.MapRecord{
		"title":     {"A"},
		"embargoed": {"true"},
	})

	require.Len(t, dc.ChildElements(), 1)
	assert.Equal(t, "dc:title", dc.ChildElements()[0].FullTag())
}

func TestDublinCore_SkipsAbsentFields(t *testing.T) {
	dc := writeDC(t, provider.MapRecord{})
	assert.Empty(t, dc.ChildElements(), "no placeholders for absent fields")
}

func TestDublinCore_WrapperAndSchemaLocation(t *testing.T) {
	dc := writeDC(t, provider.MapRecord{"title": {"A"}})

	assert.Equal(t, "oai_dc:dc", dc.FullTag())
	assert.Equal(t, dcSchemaLocation, dc.SelectAttrValue("xsi:schemaLocation", ""))
	// Namespaces are declared on the response root, never here.
	assert.Nil(t, dc.SelectAttr("xmlns:oai_dc"))
	assert.Nil(t, dc.SelectAttr("xmlns:dc"))
}

func TestDublinCore_AllFifteenFields(t *testing.T) {
	rec := provider.MapRecord{}
	for _, f := range dcFields {
		rec[f] = []string{"v-" + f}
	}
	dc := writeDC(t, rec)

	require.Len(t, dc.ChildElements(), len(dcFields))
	for i, e := range dc.ChildElements() {
		assert.Equal(t, "dc:"+dcFields[i], e.FullTag())
	}
}
