package responder

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beevik/etree"

	"github.com/miku/pyoai/pkg/document"
	"github.com/miku/pyoai/pkg/metadata"
	"github.com/miku/pyoai/pkg/provider"
)

// Responder dispatches protocol verbs to the document engine and
// serializes the results. Safe for concurrent use.
type Responder struct {
	engine    *document.Engine
	registry  *metadata.Registry
	validator Validator
	logger    *slog.Logger
	clock     func() time.Time

	handlers map[Verb]func(Arguments) (*etree.Document, error)
}

// Option configures a Responder.
type Option func(*Responder)

// WithRegistry supplies a writer registry. The registry is frozen when
// New returns; register additional writers before passing it in.
func WithRegistry(reg *metadata.Registry) Option {
	return func(r *Responder) { r.registry = reg }
}

// WithValidator replaces the default structural validator. A nil
// validator disables the validation gate; that is meant for debugging
// only.
func WithValidator(v Validator) Option {
	return func(r *Responder) { r.validator = v }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) { r.logger = logger }
}

// WithClock overrides the responseDate clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) { r.clock = now }
}

// New returns a responder over the given backend. The writer registry
// (the default one, or the one supplied via WithRegistry) is frozen
// before New returns, so request handling never races registrations.
func New(backend provider.Provider, opts ...Option) (*Responder, error) {
	if backend == nil {
		return nil, errors.New("backend provider is required")
	}
	r := &Responder{
		registry:  metadata.NewRegistry(),
		validator: NewStructuralValidator(),
		logger:    slog.Default(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registry.Freeze()
	r.engine = document.NewEngine(backend, r.registry, document.WithClock(r.clock))

	// Fixed dispatch table; verb names are never transformed at call
	// time.
	r.handlers = map[Verb]func(Arguments) (*etree.Document, error){
		VerbIdentify: func(Arguments) (*etree.Document, error) {
			return r.engine.Identify()
		},
		VerbGetRecord: func(a Arguments) (*etree.Document, error) {
			return r.engine.GetRecord(a.Identifier, a.Prefix)
		},
		VerbListIdentifiers: func(a Arguments) (*etree.Document, error) {
			return r.engine.ListIdentifiers(a.Prefix, a.selector())
		},
		VerbListMetadataFormats: func(a Arguments) (*etree.Document, error) {
			return r.engine.ListMetadataFormats(a.Identifier)
		},
		VerbListRecords: func(a Arguments) (*etree.Document, error) {
			return r.engine.ListRecords(a.Prefix, a.selector())
		},
		VerbListSets: func(a Arguments) (*etree.Document, error) {
			return r.engine.ListSets(a.Token)
		},
	}
	return r, nil
}

// selector maps the optional list arguments onto the backend contract.
func (a Arguments) selector() provider.Selector {
	return provider.Selector{
		From:  a.From,
		Until: a.Until,
		Set:   a.Set,
		Token: a.Token,
	}
}

// Handle resolves name to a verb, checks the argument set, builds the
// response document and returns its serialized bytes. On any error no
// document bytes are returned.
func (r *Responder) Handle(name string, args Arguments) ([]byte, error) {
	start := time.Now()

	body, err := r.handle(name, args)
	if err != nil {
		r.logger.Error("oaipmh request failed",
			"verb", name,
			"error", err,
			"duration", time.Since(start))
		return nil, err
	}
	r.logger.Debug("oaipmh request served",
		"verb", name,
		"bytes", len(body),
		"duration", time.Since(start))
	return body, nil
}

func (r *Responder) handle(name string, args Arguments) ([]byte, error) {
	verb, err := ParseVerb(name)
	if err != nil {
		return nil, err
	}
	if err := checkArguments(verb, args); err != nil {
		return nil, err
	}

	doc, err := r.handlers[verb](args)
	if err != nil {
		if errors.Is(err, provider.ErrNotSupported) {
			return nil, fmt.Errorf("%w: %s", ErrNotImplemented, verb)
		}
		return nil, err
	}

	if r.validator != nil {
		if err := r.validator.Validate(doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: serialize: %v", ErrInvalidDocument, err)
	}
	return body, nil
}
