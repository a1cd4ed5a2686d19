package provider

import (
	"errors"
	"time"
)

// ErrNotSupported is returned by backends for operations they do not
// implement. The responder maps it to a capability error for the caller.
var ErrNotSupported = errors.New("operation not supported by provider")

// Selector carries the optional arguments of the list verbs. Zero-value
// times mean "absent"; empty strings mean "absent". Token is an opaque
// backend cursor and is never interpreted by the core.
type Selector struct {
	From  time.Time
	Until time.Time
	Set   string
	Token string
}

// Provider is the backend contract consumed by the document engine.
//
// Every listing returns a Cursor; implementations are expected to
// produce elements lazily. All calls are synchronous; any blocking I/O
// behind them is the backend's concern.
type Provider interface {
	// Identify returns the repository identity.
	Identify() (RepositoryIdentity, error)

	// GetRecord returns the single item named by identifier, rendered
	// in the given metadata format.
	GetRecord(identifier, prefix string) (Item, error)

	// ListIdentifiers streams headers matching the selector.
	ListIdentifiers(prefix string, sel Selector) (Cursor[Header], error)

	// ListMetadataFormats streams the formats the repository can
	// disseminate; with a non-empty identifier, only the formats
	// available for that item.
	ListMetadataFormats(identifier string) (Cursor[FormatDescriptor], error)

	// ListRecords streams (header, record) items matching the selector.
	ListRecords(prefix string, sel Selector) (Cursor[Item], error)

	// ListSets streams the repository's set hierarchy.
	ListSets(token string) (Cursor[SetDescriptor], error)
}
