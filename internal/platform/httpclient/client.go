package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-feed/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:49.0) Gecko/20100101 Firefox/49.0"
	maxBodyBytes     = 8 << 20
)

type Config struct {
	// HTTPClient replaces both the direct and proxied clients. Mostly for tests.
	HTTPClient *http.Client
	// Timeout of zero leaves requests unbounded unless ctx carries a deadline.
	Timeout            time.Duration
	UserAgent          string
	ProxyURL           string
	InsecureSkipVerify bool
	Logger             *logging.Logger
}

// Client performs single-attempt requests and converts every failure into a logged, absent result.
type Client struct {
	direct    *http.Client
	proxied   *http.Client
	userAgent string
	verify    bool
	logger    *logging.Logger
}

// Response is a fully read upstream reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func New(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		userAgent: userAgent,
		verify:    !cfg.InsecureSkipVerify,
		logger:    logger.Named("httpclient"),
	}

	if cfg.HTTPClient != nil {
		c.direct = cfg.HTTPClient
		c.proxied = cfg.HTTPClient
		return c, nil
	}

	var proxy *url.URL
	if raw := strings.TrimSpace(cfg.ProxyURL); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, crerr.Wrapf(err, "parse proxy url %q", raw)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return nil, crerr.Newf("proxy url %q must include scheme and host", raw)
		}
		proxy = parsed
	}

	c.direct = newHTTPClient(cfg.Timeout, nil, cfg.InsecureSkipVerify)
	c.proxied = c.direct
	if proxy != nil {
		c.proxied = newHTTPClient(cfg.Timeout, proxy, cfg.InsecureSkipVerify)
	}
	return c, nil
}

func newHTTPClient(timeout time.Duration, proxy *url.URL, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// Proxy comes from config only; the environment is read once at load time.
	transport.Proxy = nil
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via CRICBUZZ_VERIFY_SSL=false
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(transport),
	}
}

// Fetch issues one request and reports failures as errors. Callers that want the
// log-and-absent contract use Do and the decoders instead.
func (c *Client) Fetch(ctx context.Context, rawURL string, opts ...Option) (*Response, error) {
	o := defaultRequestOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var body io.Reader
	if o.body != nil {
		body = bytes.NewReader(o.body)
	}
	req, err := http.NewRequestWithContext(ctx, o.method, rawURL, body)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	for key, values := range o.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}

	client := c.direct
	if o.addProxies {
		client = c.proxied
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.DebugContext(ctx, "requesting url", "method", o.method, "url", rawURL)
	resp, err := client.Do(req)
	if err != nil {
		return nil, crerr.Wrapf(err, "%s %s", o.method, rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := readBody(resp.Body)
	if err != nil {
		return nil, crerr.Wrapf(err, "read body %s", rawURL)
	}

	if o.autoRaise && resp.StatusCode >= http.StatusBadRequest {
		if o.whitelisted(resp.StatusCode) {
			c.logger.DebugContext(ctx, "response status is white listed", "status", resp.StatusCode, "url", rawURL)
		} else {
			return nil, &StatusError{Code: resp.StatusCode, Body: abbreviateBody(raw)}
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       raw,
	}, nil
}

// Do returns nil on any failure after logging it.
func (c *Client) Do(ctx context.Context, rawURL string, opts ...Option) *Response {
	resp, err := c.Fetch(ctx, rawURL, opts...)
	if err != nil {
		c.logFailure(ctx, rawURL, err)
		return nil
	}
	return resp
}

// JSON returns the body only when it is valid JSON accepted by the optional validator.
func (c *Client) JSON(ctx context.Context, rawURL string, opts ...Option) []byte {
	o := defaultRequestOptions()
	for _, opt := range opts {
		opt(&o)
	}

	resp := c.Do(ctx, rawURL, opts...)
	if resp == nil {
		return nil
	}

	var doc any
	if err := sonic.Unmarshal(resp.Body, &doc); err != nil {
		c.logFailure(ctx, rawURL, crerr.Mark(crerr.Wrap(err, "decode json"), ErrInvalidJSON))
		return nil
	}
	if o.validator != nil && !o.validator(doc) {
		c.logFailure(ctx, rawURL, ErrValidationFailed)
		return nil
	}
	return resp.Body
}

// Decode unmarshals a JSON body into target and reports whether it succeeded.
func (c *Client) Decode(ctx context.Context, rawURL string, target any, opts ...Option) bool {
	raw := c.JSON(ctx, rawURL, opts...)
	if raw == nil {
		return false
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		c.logFailure(ctx, rawURL, crerr.Mark(crerr.Wrapf(err, "decode into %T", target), ErrInvalidJSON))
		return false
	}
	return true
}

// Document parses an HTML body.
func (c *Client) Document(ctx context.Context, rawURL string, opts ...Option) *goquery.Document {
	resp := c.Do(ctx, rawURL, opts...)
	if resp == nil || len(resp.Body) == 0 {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		c.logFailure(ctx, rawURL, crerr.Mark(err, ErrInvalidDocument))
		return nil
	}
	return doc
}

// Content returns the raw body. An empty body counts as absent.
func (c *Client) Content(ctx context.Context, rawURL string, opts ...Option) []byte {
	resp := c.Do(ctx, rawURL, opts...)
	if resp == nil || len(resp.Body) == 0 {
		return nil
	}
	return resp.Body
}

func (c *Client) logFailure(ctx context.Context, rawURL string, err error) {
	switch category(err) {
	case errStatusCategory:
		var statusErr *StatusError
		_ = crerr.As(err, &statusErr)
		c.logger.ErrorContext(ctx, "request raised HTTP error",
			"url", rawURL,
			"status", statusErr.Code,
			"cause", statusErr.Cause(),
			"body", statusErr.Body,
		)
	case errTLSCategory:
		if c.verify {
			c.logger.ErrorContext(ctx, "unable to connect to remote host because of a SSL error; the remote certificate is either self-signed or the remote server uses SNI",
				"url", rawURL, "error", err)
			return
		}
		c.logger.ErrorContext(ctx, "SSL error raised during connection, with certificate verification turned off",
			"url", rawURL, "error", err)
	case errTimeoutCategory:
		c.logger.ErrorContext(ctx, "request timed out; the remote host did not respond in a timely manner", "url", rawURL, "error", err)
	case errConnectCategory:
		c.logger.ErrorContext(ctx, "unable to connect to remote host; check if the remote host is up and running", "url", rawURL, "error", err)
	case errDecodeCategory:
		c.logger.ErrorContext(ctx, "response could not be decoded", "url", rawURL, "error", err)
	default:
		c.logger.ErrorContext(ctx, "request raised exception", "url", rawURL, "error", err)
	}
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	n, err := buf.ReadFrom(io.LimitReader(body, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if n > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
