package document

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/miku/pyoai/pkg/datestamp"
	"github.com/miku/pyoai/pkg/metadata"
	"github.com/miku/pyoai/pkg/provider"
)

// Engine builds one response document per verb. It holds no cross-call
// state; concurrent use is safe given a thread-safe provider and a
// frozen registry.
type Engine struct {
	backend  provider.Provider
	registry *metadata.Registry
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock used for responseDate. Intended
// for tests; the default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine returns an engine over the given backend and writer
// registry.
func NewEngine(backend provider.Provider, registry *metadata.Registry, opts ...Option) *Engine {
	e := &Engine{
		backend:  backend,
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// requestAttr is one echoed argument on the request element. Attribute
// order on the wire follows append order.
type requestAttr struct {
	key   string
	value string
}

// selectorAttrs echoes the non-absent optional arguments of a list verb
// under their protocol keywords. The from/until arguments are rendered
// at the repository's granularity.
func selectorAttrs(prefix string, sel provider.Selector, g datestamp.Granularity) []requestAttr {
	var attrs []requestAttr
	if prefix != "" {
		attrs = append(attrs, requestAttr{"metadataPrefix", prefix})
	}
	if !sel.From.IsZero() {
		attrs = append(attrs, requestAttr{"from", datestamp.Format(sel.From, g)})
	}
	if !sel.Until.IsZero() {
		attrs = append(attrs, requestAttr{"until", datestamp.Format(sel.Until, g)})
	}
	if sel.Set != "" {
		attrs = append(attrs, requestAttr{"set", sel.Set})
	}
	if sel.Token != "" {
		attrs = append(attrs, requestAttr{"resumptionToken", sel.Token})
	}
	return attrs
}

// envelope constructs the fixed response frame: root, responseDate and
// the request element echoing the call arguments. It returns the
// document and the root, under which the caller appends the verb body.
func (e *Engine) envelope(verb, baseURL string, attrs []requestAttr) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("OAI-PMH")
	for _, ns := range rootNamespaces {
		root.CreateAttr(ns.attr, ns.uri)
	}
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)

	respDate := root.CreateElement("responseDate")
	respDate.SetText(datestamp.FormatUTC(e.now()))

	request := root.CreateElement("request")
	request.CreateAttr("verb", verb)
	for _, a := range attrs {
		request.CreateAttr(a.key, a.value)
	}
	request.SetText(baseURL)

	return doc, root
}

// Identify builds the Identify response.
func (e *Engine) Identify() (*etree.Document, error) {
	ident, err := e.backend.Identify()
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	doc, root := e.envelope("Identify", ident.BaseURL, nil)

	body := root.CreateElement("Identify")
	body.CreateElement("repositoryName").SetText(ident.RepositoryName)
	body.CreateElement("baseURL").SetText(ident.BaseURL)
	body.CreateElement("protocolVersion").SetText(ident.ProtocolVersion)
	for _, email := range ident.AdminEmails {
		body.CreateElement("adminEmail").SetText(email)
	}
	body.CreateElement("earliestDatestamp").SetText(
		datestamp.Format(ident.EarliestDatestamp, ident.Granularity))
	body.CreateElement("deletedRecord").SetText(string(ident.DeletedRecord))
	body.CreateElement("granularity").SetText(ident.Granularity.Literal())

	// A compression list of exactly ["identity"] means no compression
	// support and emits nothing.
	if !identityOnly(ident.Compression) {
		for _, c := range ident.Compression {
			body.CreateElement("compression").SetText(c)
		}
	}
	return doc, nil
}

// GetRecord builds the GetRecord response for a single item.
func (e *Engine) GetRecord(identifier, prefix string) (*etree.Document, error) {
	ident, err := e.backend.Identify()
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	item, err := e.backend.GetRecord(identifier, prefix)
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", identifier, err)
	}
	attrs := []requestAttr{
		{"identifier", identifier},
		{"metadataPrefix", prefix},
	}
	doc, root := e.envelope("GetRecord", ident.BaseURL, attrs)

	body := root.CreateElement("GetRecord")
	if err := e.appendRecord(body, item, prefix, ident.Granularity); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListIdentifiers builds the ListIdentifiers response, streaming
// headers from the backend.
func (e *Engine) ListIdentifiers(prefix string, sel provider.Selector) (*etree.Document, error) {
	ident, err := e.backend.Identify()
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	cur, err := e.backend.ListIdentifiers(prefix, sel)
	if err != nil {
		return nil, fmt.Errorf("list identifiers: %w", err)
	}
	doc, root := e.envelope("ListIdentifiers", ident.BaseURL,
		selectorAttrs(prefix, sel, ident.Granularity))

	body := root.CreateElement("ListIdentifiers")
	for cur.Next() {
		appendHeader(body, cur.Value(), ident.Granularity)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list identifiers: %w", err)
	}
	return doc, nil
}

// ListMetadataFormats builds the ListMetadataFormats response.
func (e *Engine) ListMetadataFormats(identifier string) (*etree.Document, error) {
	ident, err := e.backend.Identify()
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	cur, err := e.backend.ListMetadataFormats(identifier)
	if err != nil {
		return nil, fmt.Errorf("list metadata formats: %w", err)
	}
	var attrs []requestAttr
	if identifier != "" {
		attrs = append(attrs, requestAttr{"identifier", identifier})
	}
	doc, root := e.envelope("ListMetadataFormats", ident.BaseURL, attrs)

	body := root.CreateElement("ListMetadataFormats")
	for cur.Next() {
		f := cur.Value()
		mf := body.CreateElement("metadataFormat")
		mf.CreateElement("metadataPrefix").SetText(f.Prefix)
		mf.CreateElement("schema").SetText(f.Schema)
		mf.CreateElement("metadataNamespace").SetText(f.Namespace)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list metadata formats: %w", err)
	}
	return doc, nil
}

// ListRecords builds the ListRecords response, streaming items from the
// backend and delegating metadata rendering to the registry.
func (e *Engine) ListRecords(prefix string, sel provider.Selector) (*etree.Document, error) {
	ident, err := e.backend.Identify()
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	cur, err := e.backend.ListRecords(prefix, sel)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	doc, root := e.envelope("ListRecords", ident.BaseURL,
		selectorAttrs(prefix, sel, ident.Granularity))

	body := root.CreateElement("ListRecords")
	for cur.Next() {
		if err := e.appendRecord(body, cur.Value(), prefix, ident.Granularity); err != nil {
			return nil, err
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return doc, nil
}

// ListSets builds the ListSets response.
func (e *Engine) ListSets(token string) (*etree.Document, error) {
	ident, err := e.backend.Identify()
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	cur, err := e.backend.ListSets(token)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	var attrs []requestAttr
	if token != "" {
		attrs = append(attrs, requestAttr{"resumptionToken", token})
	}
	doc, root := e.envelope("ListSets", ident.BaseURL, attrs)

	body := root.CreateElement("ListSets")
	for cur.Next() {
		s := cur.Value()
		set := body.CreateElement("set")
		set.CreateElement("setSpec").SetText(s.Spec)
		set.CreateElement("setName").SetText(s.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return doc, nil
}

// appendHeader renders one header: identifier, datestamp, then the
// setSpec children in the backend's order. Deleted items carry the
// status attribute.
func appendHeader(parent *etree.Element, h provider.Header, g datestamp.Granularity) {
	header := parent.CreateElement("header")
	if h.Deleted {
		header.CreateAttr("status", "deleted")
	}
	header.CreateElement("identifier").SetText(h.Identifier)
	header.CreateElement("datestamp").SetText(datestamp.Format(h.Datestamp, g))
	for _, spec := range h.SetSpecs {
		header.CreateElement("setSpec").SetText(spec)
	}
}

// appendRecord renders one record element: header, then the metadata
// wrapper filled by the registered writer. Deleted items carry no
// metadata. About sections are not rendered.
func (e *Engine) appendRecord(parent *etree.Element, item provider.Item, prefix string, g datestamp.Granularity) error {
	record := parent.CreateElement("record")
	appendHeader(record, item.Header, g)
	if item.Header.Deleted {
		return nil
	}
	w, err := e.registry.Lookup(prefix)
	if err != nil {
		return err
	}
	md := record.CreateElement("metadata")
	if err := w.Write(md, item.Record); err != nil {
		return fmt.Errorf("write metadata %s: %w", item.Header.Identifier, err)
	}
	return nil
}

// identityOnly reports whether the compression list is exactly
// ["identity"].
func identityOnly(compression []string) bool {
	return len(compression) == 1 && compression[0] == "identity"
}
