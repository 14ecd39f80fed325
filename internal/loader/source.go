package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Source opens a named resource. The name may carry a query string.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// DirSource reads candidates from a local directory. Query strings are
// ignored since there is no cache to defeat.
type DirSource struct {
	Dir string
}

func (d DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	f, err := os.Open(filepath.Join(d.Dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

// HTTPSource fetches candidates relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
	Limiter *RateLimiter
}

// NewHTTPSource creates an HTTPSource paced at rps requests per second.
func NewHTTPSource(baseURL string, rps float64) *HTTPSource {
	return &HTTPSource{
		BaseURL: baseURL,
		Client:  &http.Client{},
		Limiter: NewRateLimiter(rps),
	}
}

func (h *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if h.Limiter != nil {
		if err := h.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	target, err := resolve(h.BaseURL, name)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%s returned status %d", name, resp.StatusCode)
	}

	return resp.Body, nil
}

func resolve(base, name string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	ref, err := url.Parse(name)
	if err != nil {
		return "", fmt.Errorf("parsing candidate %q: %w", name, err)
	}
	return b.ResolveReference(ref).String(), nil
}
