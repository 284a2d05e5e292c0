package cricbuzz

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricket-feed/internal/platform/httpclient"
	"github.com/riskibarqy/cricket-feed/internal/platform/logging"
)

const (
	DefaultBaseURL       = "http://mapps.cricbuzz.com/cbzios/match/"
	DefaultSeriesBaseURL = "http://mapps.cricbuzz.com/cbzios/series/"
	defaultMatchWorkers  = 4
)

// Raw passthrough payloads keep numbers as json.Number so ids and scores survive re-encoding.
var rawAPI = sonic.Config{UseNumber: true}.Froze()

type ClientConfig struct {
	HTTP          *httpclient.Client
	BaseURL       string
	SeriesBaseURL string
	MatchWorkers  int
	// Location renders match start times. Defaults to time.Local.
	Location *time.Location
	Logger   *logging.Logger
}

type Client struct {
	http          *httpclient.Client
	baseURL       string
	seriesBaseURL string
	matchWorkers  int
	location      *time.Location
	logger        *logging.Logger
	validate      *validator.Validate
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		var err error
		httpClient, err = httpclient.New(httpclient.Config{Logger: logger})
		if err != nil {
			return nil, crerr.Wrap(err, "create http client")
		}
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL, DefaultBaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "base url")
	}
	seriesBaseURL, err := normalizeBaseURL(cfg.SeriesBaseURL, DefaultSeriesBaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "series base url")
	}

	workers := cfg.MatchWorkers
	if workers <= 0 {
		workers = defaultMatchWorkers
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return &Client{
		http:          httpClient,
		baseURL:       baseURL,
		seriesBaseURL: seriesBaseURL,
		matchWorkers:  workers,
		location:      location,
		logger:        logger.Named("cricbuzz"),
		validate:      validator.New(),
	}, nil
}

func normalizeBaseURL(raw, fallback string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = fallback
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", value)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", crerr.Newf("%q must include scheme and host", value)
	}
	return strings.TrimRight(value, "/") + "/", nil
}

// Series returns the series match listing as the upstream sent it.
func (c *Client) Series(ctx context.Context, seriesID string) (map[string]any, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.Series")
	defer span.End()

	seriesID, err := c.checkID("series id", seriesID)
	if err != nil {
		return nil, err
	}

	out, err := c.crawlRaw(ctx, c.seriesBaseURL+seriesID+"/matches")
	if err != nil {
		return nil, fmt.Errorf("series series_id=%s: %w", seriesID, err)
	}
	return out, nil
}

// FullMatch returns the graphs payload for a match as the upstream sent it.
func (c *Client) FullMatch(ctx context.Context, matchID string) (map[string]any, error) {
	ctx, span := startSpan(ctx, "cricbuzz.Client.FullMatch")
	defer span.End()

	matchID, err := c.checkID("match id", matchID)
	if err != nil {
		return nil, err
	}

	out, err := c.crawlRaw(ctx, c.matchURL(matchID, "graphs.json"))
	if err != nil {
		return nil, fmt.Errorf("graphs match_id=%s: %w", matchID, err)
	}
	return out, nil
}

func (c *Client) checkID(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if err := c.validate.Var(value, "required,numeric"); err != nil {
		return "", withKind(ErrInvalidInput, crerr.Wrapf(err, "%s %q", field, value))
	}
	if strings.ContainsAny(value, "+-.") {
		return "", crerr.Wrapf(ErrInvalidInput, "%s %q must be a plain integer", field, value)
	}
	return value, nil
}

func (c *Client) matchURL(matchID string, parts ...string) string {
	if len(parts) == 0 {
		return c.baseURL + matchID
	}
	return c.baseURL + matchID + "/" + strings.Join(parts, "/")
}

func (c *Client) liveMatchesURL() string {
	return c.baseURL + "livematches"
}

// crawl returns the validated JSON body, or ErrNoData when the http client gave up.
func (c *Client) crawl(ctx context.Context, rawURL string) ([]byte, error) {
	raw := c.http.JSON(ctx, rawURL)
	if raw == nil {
		return nil, crerr.WithStack(ErrNoData)
	}
	return raw, nil
}

func (c *Client) crawlInto(ctx context.Context, rawURL string, target any) ([]byte, error) {
	raw, err := c.crawl(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, withKind(ErrMalformedPayload, crerr.Wrapf(err, "decode %T", target))
	}
	return raw, nil
}

func (c *Client) crawlRaw(ctx context.Context, rawURL string) (map[string]any, error) {
	raw, err := c.crawl(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := rawAPI.Unmarshal(raw, &out); err != nil {
		return nil, withKind(ErrMalformedPayload, crerr.Wrap(err, "decode object"))
	}
	if out == nil {
		return nil, crerr.WithStack(ErrNoData)
	}
	return out, nil
}
