package probe

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/tmarden/handlescout/internal/errors"
)

// maxBodyBytes caps how much of a response body is read. Profile pages
// are scanned for keywords near the top; anything past this is noise.
const maxBodyBytes = 1 << 20

// Request describes one outbound GET.
type Request struct {
	URL             string
	Headers         map[string]string
	FollowRedirects bool
}

// Response is the transport-level result of a GET.
type Response struct {
	StatusCode int
	FinalURL   string
	Body       string
}

// Transport is the HTTP capability the probe strategies depend on.
// Implementations signal connection failures through the returned error;
// non-2xx statuses are not errors.
type Transport interface {
	Get(ctx context.Context, req Request) (*Response, error)
}

// HTTPTransport implements Transport on net/http. One instance is shared
// across resolutions; it holds no per-request state.
type HTTPTransport struct {
	follow   *http.Client
	noFollow *http.Client
}

// NewHTTPTransport builds a transport with the given per-request timeout.
// When insecureSkipVerify is set, TLS certificate verification is disabled.
func NewHTTPTransport(timeout time.Duration, insecureSkipVerify bool) *HTTPTransport {
	rt := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: insecureSkipVerify},
	}

	return &HTTPTransport{
		follow: &http.Client{
			Timeout:   timeout,
			Transport: rt,
		},
		noFollow: &http.Client{
			Timeout:   timeout,
			Transport: rt,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Get issues the request and reads up to maxBodyBytes of the body.
func (t *HTTPTransport) Get(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	client := t.noFollow
	if req.FollowRedirects {
		client = t.follow
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Response{
		StatusCode: resp.StatusCode,
		FinalURL:   finalURL,
		Body:       string(body),
	}, nil
}
