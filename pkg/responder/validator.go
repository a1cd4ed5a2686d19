package responder

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/miku/pyoai/pkg/datestamp"
	"github.com/miku/pyoai/pkg/document"
	"github.com/miku/pyoai/pkg/metadata"
)

// Validator checks a built response document before serialization. A
// non-nil error means the document must not reach the caller.
type Validator interface {
	Validate(doc *etree.Document) error
}

// ValidationError reports a single structural violation.
type ValidationError struct {
	Path   string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validate: %s: %s", e.Path, e.Reason)
}

// requiredRootAttrs are the namespace bindings and schema location the
// root element must carry, byte for byte.
var requiredRootAttrs = map[string]string{
	"xmlns":              document.NsOAI,
	"xmlns:xsi":          document.NsXSI,
	"xmlns:oai_dc":       metadata.NsOAIDC,
	"xmlns:dc":           metadata.NsDC,
	"xsi:schemaLocation": document.SchemaLocation,
}

// structuralValidator checks the fixed envelope shape: root name,
// namespace declarations, and the responseDate / request / verb-result
// child order. It stands in for a full XSD engine behind the same
// pass/fail contract.
type structuralValidator struct{}

// NewStructuralValidator returns the default envelope validator.
func NewStructuralValidator() Validator {
	return structuralValidator{}
}

// Validate implements Validator.
func (structuralValidator) Validate(doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return ValidationError{Path: "/", Reason: "no root element"}
	}
	if root.Tag != "OAI-PMH" || root.Space != "" {
		return ValidationError{Path: "/", Reason: fmt.Sprintf("unexpected root element %s", root.FullTag())}
	}
	for name, want := range requiredRootAttrs {
		if got := root.SelectAttrValue(name, ""); got != want {
			return ValidationError{
				Path:   "/OAI-PMH/@" + name,
				Reason: fmt.Sprintf("got %q, want %q", got, want),
			}
		}
	}

	children := root.ChildElements()
	if len(children) != 3 {
		return ValidationError{
			Path:   "/OAI-PMH",
			Reason: fmt.Sprintf("got %d children, want 3", len(children)),
		}
	}
	if children[0].Tag != "responseDate" {
		return ValidationError{Path: "/OAI-PMH/*[1]", Reason: "first child must be responseDate"}
	}
	if _, err := datestamp.Parse(children[0].Text()); err != nil {
		return ValidationError{Path: "/OAI-PMH/responseDate", Reason: err.Error()}
	}
	if children[1].Tag != "request" {
		return ValidationError{Path: "/OAI-PMH/*[2]", Reason: "second child must be request"}
	}
	if children[1].Text() == "" {
		return ValidationError{Path: "/OAI-PMH/request", Reason: "missing base URL text"}
	}

	verb := children[1].SelectAttrValue("verb", "")
	if _, err := ParseVerb(verb); err != nil {
		return ValidationError{Path: "/OAI-PMH/request/@verb", Reason: fmt.Sprintf("unknown verb %q", verb)}
	}
	if children[2].Tag != verb {
		return ValidationError{
			Path:   "/OAI-PMH/*[3]",
			Reason: fmt.Sprintf("verb result %s does not match request verb %s", children[2].Tag, verb),
		}
	}
	return nil
}
