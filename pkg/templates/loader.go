package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// LoaderOptions configure how template sources resolve.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient overrides the client used for URL sources. When nil and
	// AllowHTTP is set, a default client with RequestTimeout is used.
	HTTPClient *http.Client
	AllowHTTP  bool

	RequestTimeout time.Duration
}

// Loader fetches template documents from file, fs.FS, or HTTP sources.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// NewLoader constructs a Loader from pre-resolved options.
func NewLoader(options LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTP:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a single template document as text.
func (l *Loader) Load(ctx context.Context, src Source) (string, error) {
	if src == nil {
		return "", errors.New("templates: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case SourceKindURL:
		if !l.allowHTTP {
			return "", errors.New("templates: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("templates: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadSet fetches the summary and detail documents once and freezes them into
// a Set. Any fetch failure returns the zero Set, so callers never observe a
// half-loaded cache.
func (l *Loader) LoadSet(ctx context.Context, summary, detail Source) (Set, error) {
	summaryDoc, err := l.Load(ctx, summary)
	if err != nil {
		return Set{}, fmt.Errorf("templates: load summary: %w", err)
	}
	detailDoc, err := l.Load(ctx, detail)
	if err != nil {
		return Set{}, fmt.Errorf("templates: load detail: %w", err)
	}
	return Set{Summary: summaryDoc, Detail: detailDoc}, nil
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("templates: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("templates: fs path is required")
	}
	if files == nil {
		return nil, errors.New("templates: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return fs.ReadFile(files, name)
}

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("templates: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("templates: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("templates: unexpected status " + resp.Status)
	}

	return io.ReadAll(resp.Body)
}
