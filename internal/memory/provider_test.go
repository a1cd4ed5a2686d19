package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miku/pyoai/pkg/datestamp"
	"github.com/miku/pyoai/pkg/provider"
)

func testIdentity() provider.RepositoryIdentity {
	return provider.RepositoryIdentity{
		RepositoryName:    "Memory Repo",
		BaseURL:           "http://repo.example.org/oai",
		ProtocolVersion:   "2.0",
		AdminEmails:       []string{"admin@example.org"},
		EarliestDatestamp: time.Date(2002, 1, 1, 0, 0, 0, 0, time.UTC),
		DeletedRecord:     provider.DeletedRecordNo,
		Granularity:       datestamp.Second,
		Compression:       []string{"identity"},
	}
}

func item(id string, day int, sets ...string) provider.Item {
	return provider.Item{
		Header: provider.Header{
			Identifier: id,
			Datestamp:  time.Date(2023, 5, day, 12, 0, 0, 0, time.UTC),
			SetSpecs:   sets,
		},
		Record: provider.MapRecord{"title": {id}},
	}
}

func collect[T any](t *testing.T, cur provider.Cursor[T]) []T {
	t.Helper()
	var out []T
	for cur.Next() {
		out = append(out, cur.Value())
	}
	require.NoError(t, cur.Err())
	return out
}

func TestListIdentifiers_InsertionOrder(t *testing.T) {
	p := New(testIdentity(), WithItems(
		item("oai:x:1", 1),
		item("oai:x:2", 2),
		item("oai:x:3", 3),
	))

	cur, err := p.ListIdentifiers("oai_dc", provider.Selector{})
	require.NoError(t, err)
	headers := collect(t, cur)
	require.Len(t, headers, 3)
	assert.Equal(t, "oai:x:1", headers[0].Identifier)
	assert.Equal(t, "oai:x:3", headers[2].Identifier)
}

func TestListIdentifiers_SelectorFiltering(t *testing.T) {
	p := New(testIdentity(), WithItems(
		item("oai:x:1", 1, "theses"),
		item("oai:x:2", 10, "theses:physics"),
		item("oai:x:3", 20, "articles"),
	))

	cur, err := p.ListIdentifiers("oai_dc", provider.Selector{
		From: time.Date(2023, 5, 5, 0, 0, 0, 0, time.UTC),
		Set:  "theses",
	})
	require.NoError(t, err)
	headers := collect(t, cur)
	// theses:physics is inside the theses hierarchy
	require.Len(t, headers, 1)
	assert.Equal(t, "oai:x:2", headers[0].Identifier)
}

func TestPagination_TokenRoundTrip(t *testing.T) {
	p := New(testIdentity(),
		WithPageSize(2),
		WithItems(
			item("oai:x:1", 1),
			item("oai:x:2", 2),
			item("oai:x:3", 3),
		))

	cur, err := p.ListRecords("oai_dc", provider.Selector{})
	require.NoError(t, err)
	first := collect(t, cur)
	require.Len(t, first, 2)

	token := p.NextToken("ListRecords")
	require.NotEmpty(t, token, "truncated listing must issue a token")

	cur, err = p.ListRecords("oai_dc", provider.Selector{Token: token})
	require.NoError(t, err)
	rest := collect(t, cur)
	require.Len(t, rest, 1)
	assert.Equal(t, "oai:x:3", rest[0].Header.Identifier)

	assert.Empty(t, p.NextToken("ListRecords"), "completed listing leaves no token")
}

func TestPagination_UnknownToken(t *testing.T) {
	p := New(testIdentity(), WithItems(item("oai:x:1", 1)))

	_, err := p.ListRecords("oai_dc", provider.Selector{Token: "bogus"})
	assert.Error(t, err)
}

func TestListSets_NotSupportedWhenEmpty(t *testing.T) {
	p := New(testIdentity())

	_, err := p.ListSets("")
	assert.ErrorIs(t, err, provider.ErrNotSupported)
}

func TestGetRecord(t *testing.T) {
	p := New(testIdentity(), WithItems(item("oai:x:1", 1)))

	got, err := p.GetRecord("oai:x:1", "oai_dc")
	require.NoError(t, err)
	assert.Equal(t, "oai:x:1", got.Header.Identifier)

	_, err = p.GetRecord("oai:x:missing", "oai_dc")
	assert.Error(t, err)
}

func TestListMetadataFormats_UnknownIdentifier(t *testing.T) {
	p := New(testIdentity(), WithFormats(provider.FormatDescriptor{
		Prefix:    "oai_dc",
		Schema:    "http://www.openarchives.org/OAI/2.0/oai_dc.xsd",
		Namespace: "http://www.openarchives.org/OAI/2.0/oai_dc/",
	}))

	cur, err := p.ListMetadataFormats("")
	require.NoError(t, err)
	assert.Len(t, collect(t, cur), 1)

	_, err = p.ListMetadataFormats("oai:x:missing")
	assert.Error(t, err)
}
