package sheets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHierarchyCSV = "Client,Abbr,Brand,Abbr,Project,Abbr\nAcme,ACM,Nova,NV,Launch,LNC\n"
	testMediumsCSV   = "Medium,Abbr\nDigital,DIG\n"
	testMaterialsCSV = "Material,Abbr\nPNG,PNG\n"
)

var testTables = Tables{Hierarchy: "Hierarchy", Mediums: "Mediums", Materials: "Materials"}

// newTableServer serves CSV payloads keyed by the sheet query parameter,
// mimicking the published document's gviz endpoint.
func newTableServer(t *testing.T, docID string, tables map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+docID+"/gviz/tq", r.URL.Path)
		assert.Equal(t, "out:csv", r.URL.Query().Get("tqx"))

		body, ok := tables[r.URL.Query().Get("sheet")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		fmt.Fprint(w, body)
	}))
}

func newTestClient(ts *httptest.Server, docID string) *Client {
	return New(Options{
		DocID:      docID,
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
}

func TestFetchTable_Success(t *testing.T) {
	ts := newTableServer(t, "doc-123", map[string]string{"Hierarchy": testHierarchyCSV})
	defer ts.Close()

	data, err := newTestClient(ts, "doc-123").FetchTable(context.Background(), "Hierarchy")
	require.NoError(t, err)
	assert.Equal(t, testHierarchyCSV, string(data))
}

func TestFetchTable_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "doc-123").FetchTable(context.Background(), "Hierarchy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "Hierarchy", "error should name the sheet")
}

func TestFetchTable_MissingDocID(t *testing.T) {
	ts := newTableServer(t, "unused", nil)
	defer ts.Close()

	_, err := newTestClient(ts, "").FetchTable(context.Background(), "Hierarchy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document ID")
}

func TestFetchCatalog_Success(t *testing.T) {
	ts := newTableServer(t, "doc-123", map[string]string{
		"Hierarchy": testHierarchyCSV,
		"Mediums":   testMediumsCSV,
		"Materials": testMaterialsCSV,
	})
	defer ts.Close()

	cat, warnings, err := newTestClient(ts, "doc-123").FetchCatalog(context.Background(), testTables)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, cat.Clients, 1)
	assert.Equal(t, "ACM", cat.Client("Acme").Abbr)
	assert.Len(t, cat.Mediums, 1)
	assert.Len(t, cat.Materials, 1)
}

func TestFetchCatalog_OneFailureAbortsAll(t *testing.T) {
	// Materials is missing, so the whole load fails and no partial
	// catalog escapes.
	ts := newTableServer(t, "doc-123", map[string]string{
		"Hierarchy": testHierarchyCSV,
		"Mediums":   testMediumsCSV,
	})
	defer ts.Close()

	cat, _, err := newTestClient(ts, "doc-123").FetchCatalog(context.Background(), testTables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load lookup tables")
	assert.Nil(t, cat, "failed load must not return a catalog")
}

func TestFetchCatalog_EmptyHierarchyFails(t *testing.T) {
	ts := newTableServer(t, "doc-123", map[string]string{
		"Hierarchy": "Client,Abbr,Brand,Abbr,Project,Abbr\n",
		"Mediums":   testMediumsCSV,
		"Materials": testMaterialsCSV,
	})
	defer ts.Close()

	cat, _, err := newTestClient(ts, "doc-123").FetchCatalog(context.Background(), testTables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.Nil(t, cat)
}

func TestFetchCatalog_CancelledContext(t *testing.T) {
	ts := newTableServer(t, "doc-123", map[string]string{
		"Hierarchy": testHierarchyCSV,
		"Mediums":   testMediumsCSV,
		"Materials": testMaterialsCSV,
	})
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestClient(ts, "doc-123").FetchCatalog(ctx, testTables)
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{DocID: " doc-123 "})
	assert.Equal(t, "doc-123", c.docID, "doc ID should be trimmed")
	assert.Equal(t, "https://docs.google.com/spreadsheets/d", c.baseURL)
	assert.NotNil(t, c.httpClient)
	assert.NotNil(t, c.logger)
}
