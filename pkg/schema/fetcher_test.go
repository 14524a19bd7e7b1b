package schema

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCaches(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("<schema/>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(t.TempDir())
	url := server.URL + "/wix.xsd"

	path, err := fetcher.Fetch(url)
	require.Nil(t, err)
	assert.Equal(t, fetcher.CachedPath(url), path)

	data, err := os.ReadFile(path)
	require.Nil(t, err)
	assert.Equal(t, "<schema/>", string(data))

	// Second fetch is served from the cache.
	_, err = fetcher.Fetch(url)
	require.Nil(t, err)
	assert.Equal(t, 1, hits)
}

func TestFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(t.TempDir())
	_, err := fetcher.Fetch(server.URL + "/missing.xsd")
	assert.NotNil(t, err)
}

func TestFetchWithFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/primary/util.xsd" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("<schema/>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(t.TempDir())
	path, err := fetcher.FetchWithFallback(server.URL+"/primary/util.xsd", server.URL+"/alternate/util.xsd")
	require.Nil(t, err)
	assert.FileExists(t, path)

	// The first call cached the schema under the same file name, so a
	// fresh cache is needed to observe the no-fallback failure.
	fresh := NewFetcher(t.TempDir())
	_, err = fresh.FetchWithFallback(server.URL+"/primary/util.xsd", "")
	assert.NotNil(t, err)
}
