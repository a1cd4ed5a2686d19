// Package memory implements an in-memory backend provider, used by the
// example and the responder tests. Listings paginate with opaque UUID
// resumption tokens; the core never looks inside them.
package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/miku/pyoai/pkg/provider"
)

// DefaultPageSize bounds a single listing page.
const DefaultPageSize = 100

// Provider serves repository data from memory. Safe for concurrent use.
type Provider struct {
	identity provider.RepositoryIdentity
	items    []provider.Item
	sets     []provider.SetDescriptor
	formats  []provider.FormatDescriptor
	pageSize int

	mu     sync.Mutex
	tokens map[string]resumeState
}

// resumeState records where a token continues a listing.
type resumeState struct {
	verb   string
	offset int
}

// Option configures a Provider.
type Option func(*Provider)

// WithItems seeds the repository's records, in listing order.
func WithItems(items ...provider.Item) Option {
	return func(p *Provider) { p.items = append(p.items, items...) }
}

// WithSets seeds the set hierarchy.
func WithSets(sets ...provider.SetDescriptor) Option {
	return func(p *Provider) { p.sets = append(p.sets, sets...) }
}

// WithFormats seeds the advertised metadata formats.
func WithFormats(formats ...provider.FormatDescriptor) Option {
	return func(p *Provider) { p.formats = append(p.formats, formats...) }
}

// WithPageSize overrides the listing page size.
func WithPageSize(n int) Option {
	return func(p *Provider) { p.pageSize = n }
}

// New returns a provider serving the given identity.
func New(identity provider.RepositoryIdentity, opts ...Option) *Provider {
	p := &Provider{
		identity: identity,
		pageSize: DefaultPageSize,
		tokens:   make(map[string]resumeState),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Identify implements provider.Provider.
func (p *Provider) Identify() (provider.RepositoryIdentity, error) {
	return p.identity, nil
}

// GetRecord implements provider.Provider.
func (p *Provider) GetRecord(identifier, prefix string) (provider.Item, error) {
	for _, item := range p.items {
		if item.Header.Identifier == identifier {
			return item, nil
		}
	}
	return provider.Item{}, fmt.Errorf("record not found: %s", identifier)
}

// ListIdentifiers implements provider.Provider.
func (p *Provider) ListIdentifiers(prefix string, sel provider.Selector) (provider.Cursor[provider.Header], error) {
	items, err := p.page("ListIdentifiers", p.filter(sel), sel.Token)
	if err != nil {
		return nil, err
	}
	headers := make([]provider.Header, len(items))
	for i, item := range items {
		headers[i] = item.Header
	}
	return provider.NewSliceCursor(headers), nil
}

// ListMetadataFormats implements provider.Provider.
func (p *Provider) ListMetadataFormats(identifier string) (provider.Cursor[provider.FormatDescriptor], error) {
	if identifier != "" {
		if _, err := p.GetRecord(identifier, ""); err != nil {
			return nil, err
		}
	}
	return provider.NewSliceCursor(p.formats), nil
}

// ListRecords implements provider.Provider.
func (p *Provider) ListRecords(prefix string, sel provider.Selector) (provider.Cursor[provider.Item], error) {
	items, err := p.page("ListRecords", p.filter(sel), sel.Token)
	if err != nil {
		return nil, err
	}
	return provider.NewSliceCursor(items), nil
}

// ListSets implements provider.Provider.
func (p *Provider) ListSets(token string) (provider.Cursor[provider.SetDescriptor], error) {
	if len(p.sets) == 0 {
		return nil, provider.ErrNotSupported
	}
	return provider.NewSliceCursor(p.sets), nil
}

// NextToken returns the resumption token continuing a truncated listing
// for the given verb, or the empty string when the listing completed.
// Transports would hand this to the harvester out of band of this core.
func (p *Provider) NextToken(verb string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	for token, state := range p.tokens {
		if state.verb == verb {
			return token
		}
	}
	return ""
}

// filter selects items matching the from/until/set arguments, keeping
// insertion order.
func (p *Provider) filter(sel provider.Selector) []provider.Item {
	var out []provider.Item
	for _, item := range p.items {
		h := item.Header
		if !sel.From.IsZero() && h.Datestamp.Before(sel.From) {
			continue
		}
		if !sel.Until.IsZero() && h.Datestamp.After(sel.Until) {
			continue
		}
		if sel.Set != "" && !inSet(h.SetSpecs, sel.Set) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// inSet matches a set selector against a header's setSpecs, honoring
// the colon-separated set hierarchy.
func inSet(specs []string, set string) bool {
	for _, spec := range specs {
		if spec == set || strings.HasPrefix(spec, set+":") {
			return true
		}
	}
	return false
}

// page slices one page out of items, consuming and issuing resumption
// tokens as needed.
func (p *Provider) page(verb string, items []provider.Item, token string) ([]provider.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	offset := 0
	if token != "" {
		state, ok := p.tokens[token]
		if !ok || state.verb != verb {
			return nil, fmt.Errorf("unknown resumption token: %s", token)
		}
		delete(p.tokens, token)
		offset = state.offset
	}
	if offset >= len(items) {
		return nil, nil
	}

	end := offset + p.pageSize
	if end < len(items) {
		next := uuid.NewString()
		p.tokens[next] = resumeState{verb: verb, offset: end}
	} else {
		end = len(items)
	}
	return items[offset:end], nil
}
