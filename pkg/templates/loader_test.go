package templates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLoadFromFS(t *testing.T) {
	loader := NewLoader(LoaderOptions{
		FileSystem: fstest.MapFS{
			"quote/summary.html": &fstest.MapFile{Data: []byte("<html>summary</html>")},
		},
	})

	doc, err := loader.Load(context.Background(), SourceFromFS("quote/summary.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>summary</html>", doc)
}

func TestLoaderLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "detail.html")
	require.NoError(t, os.WriteFile(path, []byte("<html>detail</html>"), 0o644))

	loader := NewLoader(LoaderOptions{})

	doc, err := loader.Load(context.Background(), SourceFromFile(path))
	require.NoError(t, err)
	assert.Equal(t, "<html>detail</html>", doc)
}

func TestLoaderHTTPDisabledByDefault(t *testing.T) {
	loader := NewLoader(LoaderOptions{})

	_, err := loader.Load(context.Background(), SourceFromURL("http://example.com/summary.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http support disabled")
}

func TestLoaderLoadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>remote</html>"))
	}))
	defer server.Close()

	loader := NewLoader(LoaderOptions{AllowHTTP: true})

	doc, err := loader.Load(context.Background(), SourceFromURL(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "<html>remote</html>", doc)
}

func TestLoaderLoadFromURLBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	loader := NewLoader(LoaderOptions{AllowHTTP: true})

	_, err := loader.Load(context.Background(), SourceFromURL(server.URL))
	require.Error(t, err)
}

func TestLoadSetFailureReturnsZeroSet(t *testing.T) {
	loader := NewLoader(LoaderOptions{
		FileSystem: fstest.MapFS{
			"summary.html": &fstest.MapFile{Data: []byte("<html>summary</html>")},
		},
	})

	set, err := loader.LoadSet(context.Background(), SourceFromFS("summary.html"), SourceFromFS("missing.html"))
	require.Error(t, err)
	assert.Equal(t, Set{}, set)
	assert.False(t, set.Ready())
}

func TestLoadSetReady(t *testing.T) {
	loader := NewLoader(LoaderOptions{
		FileSystem: fstest.MapFS{
			"summary.html": &fstest.MapFile{Data: []byte("<html>summary</html>")},
			"detail.html":  &fstest.MapFile{Data: []byte("<html>detail</html>")},
		},
	})

	set, err := loader.LoadSet(context.Background(), SourceFromFS("summary.html"), SourceFromFS("detail.html"))
	require.NoError(t, err)
	assert.True(t, set.Ready())
}

func TestSetReady(t *testing.T) {
	assert.False(t, Set{}.Ready())
	assert.False(t, Set{Summary: "x"}.Ready())
	assert.False(t, Set{Summary: "x", Detail: "   "}.Ready())
	assert.True(t, Set{Summary: "x", Detail: "y"}.Ready())
}
