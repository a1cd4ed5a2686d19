package metadata

import (
	"github.com/beevik/etree"

	"github.com/miku/pyoai/pkg/provider"
)

// Namespace constants for the Dublin Core container and element sets.
const (
	NsOAIDC = "http://www.openarchives.org/OAI/2.0/oai_dc/"
	NsDC    = "http://purl.org/dc/elements/1.1/"

	// PrefixOAIDC is the metadataPrefix of the default format.
	PrefixOAIDC = "oai_dc"

	dcSchemaLocation = NsDC + " http://www.openarchives.org/OAI/2.0/oai_dc.xsd"
)

// dcFields is the fixed Dublin Core element order. Output follows this
// list, never the record map's iteration order.
var dcFields = []string{
	"title", "creator", "subject", "description", "publisher",
	"contributor", "date", "type", "format", "identifier",
	"source", "language", "relation", "coverage", "rights",
}

// DublinCoreWriter renders a record as an oai_dc:dc fragment. The
// fragment uses the oai_dc and dc prefixes declared on the response
// root, so no namespace is redeclared here.
type DublinCoreWriter struct{}

// Write implements Writer. Fields absent from the record map are
// skipped entirely; present fields emit one dc element per value, in
// the slice's order. Keys outside the Dublin Core element set are
// ignored.
func (DublinCoreWriter) Write(parent *etree.Element, rec provider.Record) error {
	dc := parent.CreateElement("oai_dc:dc")
	dc.CreateAttr("xsi:schemaLocation", dcSchemaLocation)
	m := rec.Map()
	for _, name := range dcFields {
		for _, value := range m[name] {
			e := dc.CreateElement("dc:" + name)
			e.SetText(value)
		}
	}
	return nil
}
