package metadata

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/miku/pyoai/pkg/provider"
)

var (
	// ErrUnsupportedFormat is returned when no writer is registered for
	// a requested metadataPrefix.
	ErrUnsupportedFormat = errors.New("unsupported metadata format")

	// ErrFrozen is returned by Register after the registry is frozen.
	ErrFrozen = errors.New("registry is frozen")
)

// Writer renders one metadata record as a namespaced XML fragment
// appended under parent.
type Writer interface {
	Write(parent *etree.Element, rec provider.Record) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(parent *etree.Element, rec provider.Record) error

// Write implements Writer.
func (f WriterFunc) Write(parent *etree.Element, rec provider.Record) error {
	return f(parent, rec)
}

// Registry maps metadataPrefix values to writers. All registrations
// happen during startup; Freeze marks the registry read-only, after
// which concurrent lookups are safe without locking.
type Registry struct {
	writers map[string]Writer
	frozen  bool
}

// NewRegistry returns a registry with the oai_dc writer preinstalled.
func NewRegistry() *Registry {
	return &Registry{
		writers: map[string]Writer{
			PrefixOAIDC: DublinCoreWriter{},
		},
	}
}

// Register installs a writer under prefix, replacing any previous one.
// It fails once the registry has been frozen.
func (r *Registry) Register(prefix string, w Writer) error {
	if r.frozen {
		return fmt.Errorf("register %q: %w", prefix, ErrFrozen)
	}
	r.writers[prefix] = w
	return nil
}

// Freeze marks the registry immutable.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Lookup returns the writer for prefix.
func (r *Registry) Lookup(prefix string) (Writer, error) {
	w, ok := r.writers[prefix]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, prefix)
	}
	return w, nil
}

// Prefixes returns the registered prefixes, for diagnostics.
func (r *Registry) Prefixes() []string {
	out := make([]string, 0, len(r.writers))
	for p := range r.writers {
		out = append(out, p)
	}
	return out
}
