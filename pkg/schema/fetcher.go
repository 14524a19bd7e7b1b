package schema

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Fetcher downloads schema documents and caches them on disk so
// harvesting can run offline against previously fetched files.
type Fetcher struct {
	client   *http.Client
	cacheDir string
	headers  map[string]string
}

// NewFetcher creates a fetcher caching into cacheDir.
func NewFetcher(cacheDir string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cacheDir: cacheDir,
		headers:  map[string]string{"User-Agent": "wixkit-harvester/1.0"},
	}
}

// WithClient sets a custom HTTP client
func (f *Fetcher) WithClient(client *http.Client) *Fetcher {
	f.client = client
	return f
}

// CachedPath returns the local cache file for a schema URL.
func (f *Fetcher) CachedPath(url string) string {
	parts := strings.Split(url, "/")
	return filepath.Join(f.cacheDir, parts[len(parts)-1])
}

// Fetch returns a local path for the schema at url, downloading it
// into the cache unless a cached copy already exists.
func (f *Fetcher) Fetch(url string) (string, error) {
	cachePath := f.CachedPath(url)
	if _, err := os.Stat(cachePath); err == nil {
		log.Debug().Str("path", cachePath).Msg("Using cached schema")
		return cachePath, nil
	}

	if err := os.MkdirAll(f.cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	log.Debug().Str("url", url).Msg("Downloading schema")
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d downloading %s", resp.StatusCode, url)
	}

	out, err := os.Create(cachePath)
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to write cache file: %w", err)
	}
	return cachePath, nil
}

// FetchWithFallback tries the primary URL first and falls back to the
// alternate when the primary cannot be fetched. An empty alternate
// disables the fallback.
func (f *Fetcher) FetchWithFallback(primary string, alternate string) (string, error) {
	path, err := f.Fetch(primary)
	if err == nil {
		return path, nil
	}
	if alternate == "" {
		return "", err
	}
	log.Warn().Err(err).Str("url", primary).Str("fallback", alternate).Msg("Primary schema URL failed, trying fallback")
	return f.Fetch(alternate)
}
