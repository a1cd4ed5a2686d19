package document

import "github.com/miku/pyoai/pkg/metadata"

// Namespace constants for the OAI-PMH envelope.
const (
	NsOAI = "http://www.openarchives.org/OAI/2.0/"
	NsXSI = "http://www.w3.org/2001/XMLSchema-instance"

	// SchemaLocation is the root xsi:schemaLocation value, fixed by the
	// protocol.
	SchemaLocation = NsOAI + " http://www.openarchives.org/OAI/2.0/OAI-PMH.xsd"
)

// rootNamespaces are the four namespace bindings of the response root.
// They are declared there once and never redeclared below it.
var rootNamespaces = []struct{ attr, uri string }{
	{"xmlns", NsOAI},
	{"xmlns:xsi", NsXSI},
	{"xmlns:oai_dc", metadata.NsOAIDC},
	{"xmlns:dc", metadata.NsDC},
}
