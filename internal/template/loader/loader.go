package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"time"

	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

// Loader implements pkgtemplate.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level cardform package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgtemplate.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgtemplate.LoaderOptions) pkgtemplate.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgtemplate.Source) (pkgtemplate.Document, error) {
	if src == nil {
		return pkgtemplate.Document{}, errors.New("template loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgtemplate.SourceKindFile:
		data, err = loadFile(ctx, l.fs, src.Location())
	case pkgtemplate.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgtemplate.SourceKindURL:
		if !l.allowHTTP {
			return pkgtemplate.Document{}, errors.New("template loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("template loader: unsupported source kind")
	}
	if err != nil {
		return pkgtemplate.Document{}, err
	}

	return pkgtemplate.NewDocument(src, data)
}

func loadFile(ctx context.Context, filesystem fs.FS, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("template loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if filesystem != nil {
		if data, err := fs.ReadFile(filesystem, path); err == nil {
			return data, nil
		}
	}
	return os.ReadFile(path)
}
