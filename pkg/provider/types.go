package provider

import (
	"time"

	"github.com/miku/pyoai/pkg/datestamp"
)

// DeletedRecordPolicy declares how a repository handles deleted records.
type DeletedRecordPolicy string

const (
	DeletedRecordNo         DeletedRecordPolicy = "no"
	DeletedRecordTransient  DeletedRecordPolicy = "transient"
	DeletedRecordPersistent DeletedRecordPolicy = "persistent"
)

// Valid reports whether the policy is one of the protocol literals.
func (p DeletedRecordPolicy) Valid() bool {
	switch p {
	case DeletedRecordNo, DeletedRecordTransient, DeletedRecordPersistent:
		return true
	}
	return false
}

// RepositoryIdentity describes a repository for the Identify verb. It is
// supplied fresh by the backend on every call and treated as immutable.
type RepositoryIdentity struct {
	RepositoryName    string
	BaseURL           string
	ProtocolVersion   string
	AdminEmails       []string
	EarliestDatestamp time.Time
	DeletedRecord     DeletedRecordPolicy
	Granularity       datestamp.Granularity
	// Compression lists supported encodings. The protocol treats the
	// single entry "identity" as "none": the responder omits the
	// compression elements entirely in that case.
	Compression []string
}

// Header identifies a single item in a repository. SetSpecs keeps the
// backend's insertion order; that order is significant on the wire.
type Header struct {
	Identifier string
	Datestamp  time.Time
	SetSpecs   []string
	Deleted    bool
}

// Record is an opaque metadata record. The only capability the core
// requires is a multi-valued field mapping; value order within each
// slice is significant, key iteration order is not.
type Record interface {
	Map() map[string][]string
}

// MapRecord is the trivial Record implementation.
type MapRecord map[string][]string

// Map implements Record.
func (m MapRecord) Map() map[string][]string { return m }

// Item pairs a header with its metadata record for record-bearing verbs.
type Item struct {
	Header Header
	Record Record
}

// FormatDescriptor is a metadata format the repository advertises.
type FormatDescriptor struct {
	Prefix    string
	Schema    string
	Namespace string
}

// SetDescriptor describes a set for the ListSets verb.
type SetDescriptor struct {
	Spec string
	Name string
}
